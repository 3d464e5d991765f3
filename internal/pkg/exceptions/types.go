package exceptions

import (
	"fmt"
	"hemolink-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadline)
	}
	ErrServerProcess = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrSessionNotOwned = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthSessionOwnership)
	}
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrHashPassword = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}

	// Access control
	ErrScopeEmpty = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevScopeEmpty)
	}
	ErrScopeForbidden = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevScopeForbidden)
	}
	ErrPermissionDenied = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevPermissionDenied)
	}
	ErrContextSwitchNotAllowed = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevContextSwitchNotAllowed)
	}
	ErrContextSwitchNotChild = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevContextSwitchNotChild)
	}
	ErrContextSwitchStacked = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevContextSwitchStacked)
	}

	// NotFound deliberately covers both "absent" and "present but out of
	// scope" so callers cannot probe for records they may not see.
	ErrRecordNotFound = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRecordNotFound, constvars.ErrDevRecordNotFound)
	}
	ErrUserNotExist = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRecordNotFound, constvars.ErrDevUserNotExists)
	}
	ErrRoleNotExist = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRecordNotFound, constvars.ErrDevRoleNotExists)
	}
	ErrOrgNotExist = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRecordNotFound, constvars.ErrDevOrgNotExists)
	}
	ErrDonorCodeNotFound = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDonorCodeNotFound, constvars.ErrDevRecordNotFound)
	}

	// Conflict
	ErrOrgCodeAlreadyExists = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientOrgCodeAlreadyExists, constvars.ErrDevServerProcess)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevServerProcess)
	}
	ErrUsernameAlreadyExist = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientUsernameAlreadyExists, constvars.ErrDevServerProcess)
	}
	ErrRoleNameAlreadyExists = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientRoleNameAlreadyExists, constvars.ErrDevServerProcess)
	}
	ErrRoleStillAssigned = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientRoleStillAssigned, constvars.ErrDevServerProcess)
	}
	ErrSystemRoleImmutable = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSystemRoleImmutable, constvars.ErrDevServerProcess)
	}
	ErrParentOrgNotFound = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientParentOrgNotFound, constvars.ErrDevInactiveOrganization)
	}
	ErrInvalidPermissionMap = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidPermissionMap)
	}
	ErrDonorNotEligible = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientDonorNotEligible, constvars.ErrDevDonorNotEligible)
	}
	ErrInvalidStateTransition = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientInvalidStateTransition, constvars.ErrDevInvalidStateTransition)
	}
	ErrInsufficientStock = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientInsufficientStock, constvars.ErrDevInsufficientStock)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCountDocuments)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBAggregate = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToAggregate)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Minio
	ErrMinioUploadObject = func(err error, bucketName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioUploadObject, bucketName))
	}
	ErrMinioPresignedURL = func(err error, bucketName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresignedURL, bucketName))
	}
)

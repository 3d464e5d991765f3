package constvars

// Client-facing messages. Kept intentionally vague for anything that could
// leak record existence to an out-of-scope caller.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientRecordNotFound                = "The requested record was not found"
	ErrClientOrgCodeAlreadyExists          = "Organization code already exists"
	ErrClientEmailAlreadyExists            = "Email already exists"
	ErrClientUsernameAlreadyExists         = "Username already exists"
	ErrClientRoleNameAlreadyExists         = "Role name already exists"
	ErrClientRoleStillAssigned             = "Role is still assigned to one or more users"
	ErrClientSystemRoleImmutable           = "System roles cannot be modified"
	ErrClientParentOrgNotFound             = "Parent organization not found or inactive"
	ErrClientDonorCodeNotFound             = "Donor code not found"
	ErrClientDonorNotEligible              = "Donor is not eligible to donate at this time"
	ErrClientInvalidStateTransition        = "The record is not in a state that allows this operation"
	ErrClientInsufficientStock             = "Not enough matching units in stock"
	ErrClientServerLongRespond             = "Server takes too long to respond"
)

// Dev-facing messages, logged but only exposed outside production.
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON payload"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON payload"
	ErrDevURLParamIDValidationFailed = "invalid url parameter: %s"
	ErrDevAuthTokenMissing           = "authorization token missing"
	ErrDevAuthTokenInvalid           = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevAuthSigningMethod          = "unexpected jwt signing method"
	ErrDevAuthInvalidSession         = "session not found or terminated"
	ErrDevAuthSessionOwnership       = "session does not belong to caller and caller is not an admin"
	ErrDevInvalidCredentials         = "credentials do not match a stored user"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevScopeEmpty                 = "identity resolves to an empty organization scope"
	ErrDevScopeForbidden             = "target organization outside caller scope"
	ErrDevPermissionDenied           = "permission denied for module/action"
	ErrDevContextSwitchNotAllowed    = "caller user type may not switch context"
	ErrDevContextSwitchNotChild      = "target org is not a direct child of caller org"
	ErrDevContextSwitchStacked       = "context switch while already impersonating"
	ErrDevRecordNotFound             = "document absent or outside caller scope"
	ErrDevUserNotExists              = "user does not exist"
	ErrDevRoleNotExists              = "role does not exist"
	ErrDevOrgNotExists               = "organization does not exist"
	ErrDevInvalidPermissionMap       = "permission map references an unknown module or action"
	ErrDevDonorNotEligible           = "donor ineligible or within deferral window"
	ErrDevInvalidStateTransition     = "operation not allowed for current record status"
	ErrDevInsufficientStock          = "available units below requested quantity"
	ErrDevServerProcess              = "internal server process error"

	ErrDevDBFailedToFindDocument     = "mongo: failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongo: failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongo: failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongo: failed to delete document"
	ErrDevDBFailedToCountDocuments   = "mongo: failed to count documents"
	ErrDevDBFailedToIterateDocuments = "mongo: failed to iterate documents"
	ErrDevDBFailedToAggregate        = "mongo: failed to run aggregation"

	ErrDevRedisGetData    = "redis: failed to get data"
	ErrDevRedisSetData    = "redis: failed to set data"
	ErrDevRedisDeleteData = "redis: failed to delete data"

	ErrDevRabbitMQPublish = "rabbitmq: failed to publish message to %s"

	ErrDevMinioUploadObject    = "minio: failed to upload object to bucket %s"
	ErrDevMinioPresignedURL    = "minio: failed to create presigned url in bucket %s"
	ErrDevServerDeadline       = "server deadline exceeded"
	ErrDevUnknown              = "unknown"
	ErrDevInactiveOrganization = "organization is inactive"
)

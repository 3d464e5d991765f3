package users

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/app/services/core/access"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"time"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	RoleRepository contracts.RoleRepository
	ScopeResolver  contracts.ScopeResolver
	AuditSink      contracts.AuditSink
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	roleRepository contracts.RoleRepository,
	scopeResolver contracts.ScopeResolver,
	auditSink contracts.AuditSink,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		RoleRepository: roleRepository,
		ScopeResolver:  scopeResolver,
		AuditSink:      auditSink,
	}
}

func (uc *userUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateUser) (*models.User, error) {
	targetOrgID := request.OrgID
	if targetOrgID == "" {
		targetOrgID = identity.OrgID
	}

	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !writable.Contains(targetOrgID) {
		return nil, exceptions.ErrScopeForbidden(nil)
	}

	existing, err := uc.UserRepository.FindByUsernameOrEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}
	existing, err = uc.UserRepository.FindByUsernameOrEmail(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	if request.CustomRoleID != "" {
		role, err := uc.RoleRepository.FindByID(ctx, request.CustomRoleID)
		if err != nil {
			return nil, err
		}
		if role == nil || role.OrgID != targetOrgID {
			return nil, exceptions.ErrRoleNotExist(nil)
		}
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:           utils.GenerateUUID(),
		OrgID:        targetOrgID,
		Email:        request.Email,
		Username:     request.Username,
		Password:     hashed,
		FullName:     request.FullName,
		UserType:     request.UserType,
		RoleKey:      request.RoleKey,
		CustomRoleID: request.CustomRoleID,
		IsActive:     true,
		TimeModel:    models.NewTimeModel(time.Now().UTC()),
	}
	if err := uc.UserRepository.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.User, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	filter := access.BuildScopeFilter(scope, nil)
	return uc.UserRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *userUsecase) GetByID(ctx context.Context, identity *models.Identity, userID string) (*models.User, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !scope.Contains(user.OrgID) {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return user, nil
}

func (uc *userUsecase) Update(ctx context.Context, identity *models.Identity, userID string, request *requests.UpdateUser) (*models.User, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !writable.Contains(user.OrgID) {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.RoleKey != "" {
		user.RoleKey = request.RoleKey
	}
	if request.CustomRoleID != "" {
		role, err := uc.RoleRepository.FindByID(ctx, request.CustomRoleID)
		if err != nil {
			return nil, err
		}
		if role == nil || role.OrgID != user.OrgID {
			return nil, exceptions.ErrRoleNotExist(nil)
		}
		user.CustomRoleID = request.CustomRoleID
	}
	if request.Password != "" {
		hashed, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		user.Password = hashed
	}
	user.Touch(time.Now().UTC())

	if err := uc.UserRepository.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) Deactivate(ctx context.Context, identity *models.Identity, userID string) error {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return err
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !writable.Contains(user.OrgID) {
		return exceptions.ErrRecordNotFound(nil)
	}

	user.IsActive = false
	user.Touch(time.Now().UTC())
	return uc.UserRepository.Update(ctx, user)
}

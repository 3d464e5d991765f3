package auth

import (
	"context"
	"fmt"
	"hemolink-service/internal/app/config"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/dto/responses"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository         contracts.UserRepository
	SessionRepository      contracts.SessionRepository
	OrganizationRepository contracts.OrganizationRepository
	RedisRepository        contracts.RedisRepository
	AuditSink              contracts.AuditSink
	InternalConfig         *config.InternalConfig
	Logger                 *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionRepository contracts.SessionRepository,
	organizationRepository contracts.OrganizationRepository,
	redisRepository contracts.RedisRepository,
	auditSink contracts.AuditSink,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:         userRepository,
		SessionRepository:      sessionRepository,
		OrganizationRepository: organizationRepository,
		RedisRepository:        redisRepository,
		AuditSink:              auditSink,
		InternalConfig:         internalConfig,
		Logger:                 logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByUsernameOrEmail(ctx, request.Login)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	identity := &models.Identity{
		UserID:          user.ID,
		RoleKey:         user.RoleKey,
		CustomRoleID:    user.CustomRoleID,
		OrgID:           user.OrgID,
		UserType:        user.UserType,
		IsImpersonating: false,
		ActualUserType:  user.UserType,
	}

	token, expiresAt, err := utils.GenerateIdentityJWT(identity, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:           utils.GenerateUUID(),
		UserID:       user.ID,
		OrgID:        user.OrgID,
		TokenHash:    utils.HashToken(token),
		IsActive:     true,
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := uc.SessionRepository.Create(ctx, session); err != nil {
		return nil, err
	}
	uc.cacheSession(ctx, session)

	uc.AuditSink.Log(models.AuditLog{
		ID:          utils.GenerateUUID(),
		OrgID:       user.OrgID,
		UserID:      user.ID,
		Module:      string(models.ModuleSessions),
		Action:      string(models.ActionCreate),
		RecordID:    session.ID,
		Description: "User logged in",
		CreatedAt:   now,
	})

	return &responses.Login{
		Token:     token,
		SessionID: session.ID,
		UserID:    user.ID,
		OrgID:     user.OrgID,
		UserType:  user.UserType,
		ExpiresAt: expiresAt,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, identity *models.Identity, tokenHash string) error {
	session, err := uc.SessionRepository.FindActiveByTokenHash(ctx, tokenHash)
	if err != nil {
		return err
	}
	if session == nil {
		return exceptions.ErrSessionInvalid(nil)
	}

	now := time.Now().UTC()
	if err := uc.SessionRepository.Terminate(ctx, session.ID, identity.UserID, constvars.SessionTerminationLogout, now); err != nil {
		return err
	}
	uc.evictSession(ctx, session.TokenHash)

	uc.AuditSink.Log(models.AuditLog{
		ID:          utils.GenerateUUID(),
		OrgID:       identity.OrgID,
		UserID:      identity.UserID,
		Module:      string(models.ModuleSessions),
		Action:      string(models.ActionDelete),
		RecordID:    session.ID,
		Description: "User logged out",
		CreatedAt:   now,
	})
	return nil
}

// Heartbeat touches the most recent active session for the caller. It never
// creates session rows.
func (uc *authUsecase) Heartbeat(ctx context.Context, identity *models.Identity) error {
	session, err := uc.SessionRepository.FindMostRecentActiveByUser(ctx, identity.UserID)
	if err != nil {
		return err
	}
	if session == nil {
		return exceptions.ErrSessionInvalid(nil)
	}
	return uc.SessionRepository.UpdateLastActivity(ctx, session.ID, time.Now().UTC())
}

func (uc *authUsecase) ListSessions(ctx context.Context, identity *models.Identity) ([]models.Session, error) {
	return uc.SessionRepository.FindActiveByUser(ctx, identity.UserID)
}

func (uc *authUsecase) TerminateSession(ctx context.Context, identity *models.Identity, sessionID string) error {
	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil || !session.IsActive {
		return exceptions.ErrRecordNotFound(nil)
	}
	if !uc.canTerminate(identity, session) {
		return exceptions.ErrSessionNotOwned(nil)
	}

	now := time.Now().UTC()
	if err := uc.SessionRepository.Terminate(ctx, session.ID, identity.UserID, constvars.SessionTerminationManual, now); err != nil {
		return err
	}
	uc.evictSession(ctx, session.TokenHash)

	uc.AuditSink.Log(models.AuditLog{
		ID:          utils.GenerateUUID(),
		OrgID:       identity.OrgID,
		UserID:      identity.UserID,
		Module:      string(models.ModuleSessions),
		Action:      string(models.ActionDelete),
		RecordID:    session.ID,
		Description: "Session terminated",
		CreatedAt:   now,
	})
	return nil
}

// canTerminate allows the owner plus the admin user types. Staff never
// terminates anyone else's session.
func (uc *authUsecase) canTerminate(identity *models.Identity, session *models.Session) bool {
	if session.UserID == identity.UserID {
		return true
	}
	switch identity.UserType {
	case constvars.UserTypeSystemAdmin, constvars.UserTypeSuperAdmin, constvars.UserTypeTenantAdmin:
		return true
	}
	return false
}

func (uc *authUsecase) TerminateAllSessions(ctx context.Context, identity *models.Identity, exceptCurrent bool, tokenHash string) (int64, error) {
	exceptSessionID := ""
	if exceptCurrent {
		current, err := uc.SessionRepository.FindActiveByTokenHash(ctx, tokenHash)
		if err != nil {
			return 0, err
		}
		if current != nil {
			exceptSessionID = current.ID
		}
	}

	sessions, err := uc.SessionRepository.FindActiveByUser(ctx, identity.UserID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	terminated, err := uc.SessionRepository.TerminateAllForUser(ctx, identity.UserID, exceptSessionID, identity.UserID, constvars.SessionTerminationManual, now)
	if err != nil {
		return 0, err
	}
	for _, session := range sessions {
		if session.ID != exceptSessionID {
			uc.evictSession(ctx, session.TokenHash)
		}
	}
	return terminated, nil
}

// SwitchContext issues an impersonation token. Only system admins (to any
// active org) and super admins (to a direct child) may switch. The
// impersonation state lives in the token alone; a new session row backs the
// issued token so it authenticates on subsequent requests, while the
// original session stays live.
func (uc *authUsecase) SwitchContext(ctx context.Context, identity *models.Identity, request *requests.SwitchContext) (*responses.ContextSwitch, error) {
	if identity.IsImpersonating {
		return nil, exceptions.ErrContextSwitchStacked(nil)
	}

	targetOrg, err := uc.OrganizationRepository.FindByID(ctx, request.TargetOrgID)
	if err != nil {
		return nil, err
	}
	if targetOrg == nil || !targetOrg.IsActive {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	switch identity.UserType {
	case constvars.UserTypeSystemAdmin:
	case constvars.UserTypeSuperAdmin:
		if targetOrg.ParentOrgID == nil || *targetOrg.ParentOrgID != identity.OrgID {
			return nil, exceptions.ErrContextSwitchNotChild(nil)
		}
	default:
		return nil, exceptions.ErrContextSwitchNotAllowed(nil)
	}

	targetUserType := request.TargetUserType
	if targetUserType == "" {
		if targetOrg.IsParent {
			targetUserType = constvars.UserTypeSuperAdmin
		} else {
			targetUserType = constvars.UserTypeTenantAdmin
		}
	}

	impersonated := &models.Identity{
		UserID:          identity.UserID,
		RoleKey:         identity.RoleKey,
		CustomRoleID:    identity.CustomRoleID,
		OrgID:           targetOrg.ID,
		UserType:        targetUserType,
		IsImpersonating: true,
		ActualUserType:  identity.ActualUserType,
	}

	token, _, err := utils.GenerateIdentityJWT(impersonated, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:           utils.GenerateUUID(),
		UserID:       identity.UserID,
		OrgID:        targetOrg.ID,
		TokenHash:    utils.HashToken(token),
		IsActive:     true,
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := uc.SessionRepository.Create(ctx, session); err != nil {
		return nil, err
	}
	uc.cacheSession(ctx, session)

	uc.AuditSink.Log(models.AuditLog{
		ID:          utils.GenerateUUID(),
		OrgID:       targetOrg.ID,
		UserID:      identity.UserID,
		Module:      string(models.ModuleSessions),
		Action:      string(models.ActionUpdate),
		Description: fmt.Sprintf("Context switched to organization %s", targetOrg.OrgCode),
		Metadata: map[string]interface{}{
			"fromUserType": identity.UserType,
			"toUserType":   targetUserType,
			"targetOrgId":  targetOrg.ID,
		},
		CreatedAt: time.Now().UTC(),
	})

	return &responses.ContextSwitch{
		Token:           token,
		OrgID:           targetOrg.ID,
		UserType:        targetUserType,
		IsImpersonating: true,
		ActualUserType:  identity.ActualUserType,
	}, nil
}

// ExitContext always rebuilds the identity from the persisted user record,
// never from the token, so account changes made during impersonation are
// reflected on exit.
func (uc *authUsecase) ExitContext(ctx context.Context, identity *models.Identity) (*responses.ContextSwitch, error) {
	if !identity.IsImpersonating {
		return nil, exceptions.ErrContextSwitchNotAllowed(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	restored := &models.Identity{
		UserID:          user.ID,
		RoleKey:         user.RoleKey,
		CustomRoleID:    user.CustomRoleID,
		OrgID:           user.OrgID,
		UserType:        user.UserType,
		IsImpersonating: false,
		ActualUserType:  user.UserType,
	}

	token, _, err := utils.GenerateIdentityJWT(restored, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:           utils.GenerateUUID(),
		UserID:       user.ID,
		OrgID:        user.OrgID,
		TokenHash:    utils.HashToken(token),
		IsActive:     true,
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := uc.SessionRepository.Create(ctx, session); err != nil {
		return nil, err
	}
	uc.cacheSession(ctx, session)

	uc.AuditSink.Log(models.AuditLog{
		ID:          utils.GenerateUUID(),
		OrgID:       user.OrgID,
		UserID:      user.ID,
		Module:      string(models.ModuleSessions),
		Action:      string(models.ActionUpdate),
		Description: "Context switch exited",
		Metadata: map[string]interface{}{
			"fromUserType": identity.UserType,
			"toUserType":   user.UserType,
			"targetOrgId":  user.OrgID,
		},
		CreatedAt: time.Now().UTC(),
	})

	return &responses.ContextSwitch{
		Token:           token,
		OrgID:           user.OrgID,
		UserType:        user.UserType,
		IsImpersonating: false,
		ActualUserType:  user.UserType,
	}, nil
}

// ResolveIdentity verifies the token signature, then confirms a live session
// row backs it. The redis cache only short-circuits the mongo lookup; a cache
// miss is never an authentication failure by itself.
func (uc *authUsecase) ResolveIdentity(ctx context.Context, token string) (*models.Identity, string, error) {
	identity, err := utils.ParseIdentityJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, "", err
	}

	tokenHash := utils.HashToken(token)
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+tokenHash)
	if err != nil {
		uc.Logger.Warn("session cache lookup failed", zap.Error(err))
	}
	if cached == "" {
		session, err := uc.SessionRepository.FindActiveByTokenHash(ctx, tokenHash)
		if err != nil {
			return nil, "", err
		}
		if session == nil {
			return nil, "", exceptions.ErrSessionInvalid(nil)
		}
		uc.cacheSession(ctx, session)
	}

	return identity, tokenHash, nil
}

// SweepExpiredSessions flips sessions idle past the configured timeout. It is
// called from the maintenance ticker only.
func (uc *authUsecase) SweepExpiredSessions(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-time.Duration(uc.InternalConfig.Session.TimeoutMinutes) * time.Minute)

	// Collect the hashes first so the cached entries die with the rows.
	idle, err := uc.SessionRepository.FindActiveIdleSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	swept, err := uc.SessionRepository.TerminateIdleSince(ctx, cutoff, constvars.SessionTerminationIdle)
	if err != nil {
		return 0, err
	}
	for _, session := range idle {
		uc.evictSession(ctx, session.TokenHash)
	}
	if swept > 0 {
		uc.Logger.Info("idle sessions swept", zap.Int64("count", swept))
	}
	return swept, nil
}

// EnforceSessionCap evicts the oldest sessions of any user above the
// concurrent cap, keeping the most recent ones.
func (uc *authUsecase) EnforceSessionCap(ctx context.Context) (int64, error) {
	maxSessions := uc.InternalConfig.Session.MaxConcurrentSessions
	userIDs, err := uc.SessionRepository.FindUserIDsOverCap(ctx, maxSessions)
	if err != nil {
		return 0, err
	}

	var evicted int64
	now := time.Now().UTC()
	for _, userID := range userIDs {
		sessions, err := uc.SessionRepository.FindActiveByUser(ctx, userID)
		if err != nil {
			return evicted, err
		}
		// FindActiveByUser sorts newest first.
		for i := maxSessions; i < len(sessions); i++ {
			if err := uc.SessionRepository.Terminate(ctx, sessions[i].ID, "", constvars.SessionTerminationEvicted, now); err != nil {
				return evicted, err
			}
			uc.evictSession(ctx, sessions[i].TokenHash)
			evicted++
		}
	}
	if evicted > 0 {
		uc.Logger.Info("over-cap sessions evicted", zap.Int64("count", evicted))
	}
	return evicted, nil
}

func (uc *authUsecase) cacheSession(ctx context.Context, session *models.Session) {
	ttl := time.Duration(uc.InternalConfig.Session.TimeoutMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+session.TokenHash, session.ID, ttl); err != nil {
		uc.Logger.Warn("failed to cache session", zap.Error(err))
	}
}

func (uc *authUsecase) evictSession(ctx context.Context, tokenHash string) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+tokenHash); err != nil {
		uc.Logger.Warn("failed to evict cached session", zap.Error(err))
	}
}

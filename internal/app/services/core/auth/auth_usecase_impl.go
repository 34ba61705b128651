package auth

import (
	"context"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Authorizer     contracts.Authorizer
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	authorizer contracts.Authorizer,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			Authorizer:     authorizer,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, slug string, request *requests.AdminLogin) (*responses.AdminLogin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Info("authUsecase.Login invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	decision := uc.Authorizer.Authorize(ctx, models.Identity{UserID: user.ID, Email: user.Email}, slug)
	if !decision.Allowed {
		uc.Log.Info("authUsecase.Login access denied",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		return nil, exceptions.ErrAccessDenied(nil)
	}

	session, err := uc.SessionService.CreateSession(ctx, user.ID, user.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling SessionService.CreateSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.sessionTTL())
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.UserRepository.TouchLastLogin(ctx, user.ID, time.Now())
	if err != nil {
		uc.Log.Warn("authUsecase.Login error calling UserRepository.TouchLastLogin",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.Bool(constvars.LoggingIsSuperAdminKey, decision.IsSuperAdmin),
	)
	return &responses.AdminLogin{
		Token:     token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		UserID:    user.ID,
		Email:     user.Email,
		Tenant:    slug,
		Decision:  responses.AccessDecision{Allowed: decision.Allowed, IsSuperAdmin: decision.IsSuperAdmin},
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.SessionService.DeleteSession(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error calling SessionService.DeleteSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	return uc.SessionService.GetSession(ctx, sessionID)
}

func (uc *authUsecase) Me(ctx context.Context, session *models.Session, slug string) (*responses.Me, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("authUsecase.Me error calling UserRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	decision := uc.Authorizer.Authorize(ctx, models.Identity{UserID: user.ID, Email: user.Email}, slug)
	return &responses.Me{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Tenant:   slug,
		Decision: responses.AccessDecision{Allowed: decision.Allowed, IsSuperAdmin: decision.IsSuperAdmin},
	}, nil
}

func (uc *authUsecase) sessionTTL() time.Duration {
	return time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
}

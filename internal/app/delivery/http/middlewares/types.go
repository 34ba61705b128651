package middlewares

import (
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	Authorizer     contracts.Authorizer
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, authorizer contracts.Authorizer, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		Authorizer:     authorizer,
		InternalConfig: internalConfig,
	}
}

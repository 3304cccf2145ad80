package middlewares

import (
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	IdentityResolver contracts.IdentityResolver
	Enforcer         *casbin.Enforcer
	InternalConfig   *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, identityResolver contracts.IdentityResolver, enforcer *casbin.Enforcer, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:              logger,
		IdentityResolver: identityResolver,
		Enforcer:         enforcer,
		InternalConfig:   internalConfig,
	}
}

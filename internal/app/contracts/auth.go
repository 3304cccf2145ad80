package contracts

import (
	"context"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/requests"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/responses"
)

type TokenClaims struct {
	Role      models.Role
	Email     string
	ExpiresAt time.Time
}

type TokenManager interface {
	CreateToken(ctx context.Context, role models.Role, email string) (string, time.Time, error)
	VerifyToken(ctx context.Context, token string) (*TokenClaims, error)
}

// IdentityResolver turns a raw bearer token into the caller identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*models.Identity, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
}

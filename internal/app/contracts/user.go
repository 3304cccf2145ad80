package contracts

import (
	"context"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

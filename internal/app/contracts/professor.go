package contracts

import (
	"context"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
)

type ProfessorRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Professor, error)
}

package contracts

import (
	"context"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StudentRepository interface {
	FindByID(ctx context.Context, studentID primitive.ObjectID) (*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	FindIDsByProfessorID(ctx context.Context, professorID primitive.ObjectID) ([]primitive.ObjectID, error)
}

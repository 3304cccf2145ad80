package contracts

import (
	"context"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientRepository interface {
	FindByID(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error)
}

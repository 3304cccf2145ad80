package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID                 primitive.ObjectID  `bson:"_id"`
	Name               string              `bson:"nome"`
	BirthDate          *time.Time          `bson:"dataNascimento,omitempty"`
	TreatmentStartDate *time.Time          `bson:"dataInicioTratamento,omitempty"`
	TreatmentEndDate   *time.Time          `bson:"dataTerminoTratamento,omitempty"`
	TreatmentType      string              `bson:"tipoDeTratamento"`
	StudentID          *primitive.ObjectID `bson:"alunoId,omitempty"`
}

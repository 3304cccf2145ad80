package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Student struct {
	ID          primitive.ObjectID  `bson:"_id"`
	Name        string              `bson:"nome"`
	Email       string              `bson:"email"`
	ProfessorID *primitive.ObjectID `bson:"professorId,omitempty"`
}

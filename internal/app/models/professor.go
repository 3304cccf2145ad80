package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Professor struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"nome"`
	Email string             `bson:"email"`
}

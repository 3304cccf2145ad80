package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"senha"`
	Role         Role               `bson:"role"`
	Active       bool               `bson:"ativo"`
}

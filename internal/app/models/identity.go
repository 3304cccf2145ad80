package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Identity is the caller of a request, resolved from the bearer token.
// ProfessorID and StudentID are only set for their own roles, and only when the
// matching record was found by email.
type Identity struct {
	Role        Role
	Email       string
	ProfessorID primitive.ObjectID
	StudentID   primitive.ObjectID
}

// ScopedID returns the record id that limits what a professor or student may read.
func (i *Identity) ScopedID() (primitive.ObjectID, bool) {
	switch i.Role {
	case RoleProfessor:
		return i.ProfessorID, !i.ProfessorID.IsZero()
	case RoleStudent:
		return i.StudentID, !i.StudentID.IsZero()
	case RoleAdmin, RoleSecretary, RolePatient:
		return primitive.NilObjectID, false
	default:
		return primitive.NilObjectID, false
	}
}

// IsScoped reports whether reads by this identity are restricted to its own students.
func (i *Identity) IsScoped() bool {
	switch i.Role {
	case RoleProfessor, RoleStudent:
		return true
	case RoleAdmin, RoleSecretary, RolePatient:
		return false
	default:
		return true
	}
}

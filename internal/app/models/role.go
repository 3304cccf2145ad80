package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Role is the closed set of account roles. The numeric values are what tokens and
// the usuarios collection carry.
type Role int

const (
	RoleAdmin Role = iota
	RoleSecretary
	RoleProfessor
	RoleStudent
	RolePatient
)

var roleNames = map[Role]string{
	RoleAdmin:     "admin",
	RoleSecretary: "secretary",
	RoleProfessor: "professor",
	RoleStudent:   "student",
	RolePatient:   "patient",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole accepts either the numeric code or the lowercase role name.
func ParseRole(value string) (Role, error) {
	value = strings.TrimSpace(value)
	if code, err := strconv.Atoi(value); err == nil {
		role := Role(code)
		if !role.Valid() {
			return 0, fmt.Errorf("unknown role code %d", code)
		}
		return role, nil
	}

	for role, name := range roleNames {
		if strings.EqualFold(name, value) {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", value)
}

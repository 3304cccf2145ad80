package responses

import "time"

type Login struct {
	Token     string    `json:"token"`
	Role      int       `json:"role"`
	RoleName  string    `json:"roleName"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

package models

import "time"

// Role is the closed set of account roles. Guest is a valid session role
// but can never complete a checkout.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
	RoleGuest Role = "GUEST"
)

// IsValid reports whether r is one of the defined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// CanPurchase reports whether a session with this role may produce a sale.
func (r Role) CanPurchase() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Avatar     string    `json:"avatar"`
	LastActive time.Time `json:"lastActive"`
}

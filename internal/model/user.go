package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Upsert(ctx context.Context, user User) (User, error)
}

// User represents a stored user profile keyed by email.
// Role and CreatedAt are written once on first login; LastLoggedIn is
// refreshed on every login.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLoggedIn time.Time `json:"lastLoggedIn"`
}

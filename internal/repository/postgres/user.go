package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/plantnet/plantnet-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, email, name, image, role, created_at, last_logged_in
			  FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.Image, &user.Role,
		&user.CreatedAt, &user.LastLoggedIn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// Upsert inserts the user or, when a row with the same email exists,
// refreshes only last_logged_in. Role and created_at are written on the
// insert arm only, so the stored join time and role survive repeat logins.
func (r *UserRepository) Upsert(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, name, image, role, created_at, last_logged_in)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (email) DO UPDATE SET last_logged_in = EXCLUDED.last_logged_in
			  RETURNING id, email, name, image, role, created_at, last_logged_in`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.Name, user.Image, user.Role,
		user.CreatedAt, user.LastLoggedIn,
	).Scan(
		&savedUser.ID, &savedUser.Email, &savedUser.Name, &savedUser.Image,
		&savedUser.Role, &savedUser.CreatedAt, &savedUser.LastLoggedIn,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	return savedUser, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plantnet/plantnet-server/internal/logger"
	"github.com/plantnet/plantnet-server/internal/model"
)

// Auth issues session credentials and records login events.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Login upserts the user profile for the given identity and signs a
// session credential for it. New profiles get the customer role; repeat
// logins refresh only the last-login timestamp.
func (a *Auth) Login(ctx context.Context, email, name, image string) (string, model.User, error) {
	a.logger.Debug("Auth service: processing login",
		"email", email)

	user, err := a.recordLogin(ctx, email, name, image)
	if err != nil {
		a.logger.Error("Auth service: failed to record login",
			"email", email,
			"error", err.Error())
		return "", model.User{}, err
	}

	token, err := a.tokenManager.GenerateSessionToken(model.SessionClaims{
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to sign session token",
			"email", email,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"email", user.Email,
		"role", user.Role)

	return token, user, nil
}

// RefreshProfile upserts the profile for an already authenticated
// session. The email comes from the verified claims, never the body.
func (a *Auth) RefreshProfile(ctx context.Context, email, name, image string) (model.User, error) {
	a.logger.Debug("Auth service: refreshing profile",
		"email", email)

	return a.recordLogin(ctx, email, name, image)
}

func (a *Auth) recordLogin(ctx context.Context, email, name, image string) (model.User, error) {
	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Image:        image,
		Role:         model.RoleCustomer,
		CreatedAt:    now,
		LastLoggedIn: now,
	}

	cctx, cancel := downstreamCtx(ctx)
	defer cancel()

	saved, err := a.userStore.Upsert(cctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to upsert user: %w", classifyDownstream(err))
	}

	return saved, nil
}

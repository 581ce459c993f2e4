// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/plantnet/plantnet-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Upsert(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

// PlantStore is a mock of model.PlantStore.
type PlantStore struct {
	mock.Mock
}

func (m *PlantStore) List(ctx context.Context) ([]model.Plant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Plant), args.Error(1)
}

func (m *PlantStore) GetByID(ctx context.Context, id uuid.UUID) (model.Plant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Plant), args.Error(1)
}

func (m *PlantStore) Create(ctx context.Context, plant model.Plant) (model.Plant, error) {
	args := m.Called(ctx, plant)
	return args.Get(0).(model.Plant), args.Error(1)
}

// OrderStore is a mock of model.OrderStore.
type OrderStore struct {
	mock.Mock
}

func (m *OrderStore) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(model.Order), args.Error(1)
}

// PaymentProvider is a mock of model.PaymentProvider.
type PaymentProvider struct {
	mock.Mock
}

func (m *PaymentProvider) CreateIntent(ctx context.Context, amount int64, currency string) (model.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency)
	return args.Get(0).(model.PaymentIntent), args.Error(1)
}

func (m *PaymentProvider) GetIntent(ctx context.Context, id string) (model.PaymentIntent, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.PaymentIntent), args.Error(1)
}

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateSessionToken(claims model.SessionClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) ParseSessionToken(token string) (model.SessionClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.SessionClaims), args.Error(1)
}

// ImageStore is a mock of model.ImageStore.
type ImageStore struct {
	mock.Mock
}

func (m *ImageStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *ImageStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *ImageStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *ImageStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

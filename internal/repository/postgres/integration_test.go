//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/plantnet/plantnet-server/internal/model"
	repo "github.com/plantnet/plantnet-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "plantnet_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/plantnet_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_upsert_idempotent", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		now := time.Now()
		u := model.User{
			ID:           uuid.New(),
			Email:        "a@x.com",
			Name:         "A",
			Role:         model.RoleCustomer,
			CreatedAt:    now,
			LastLoggedIn: now,
		}
		first, err := ur.Upsert(ctx, u)
		require.NoError(t, err)
		require.Equal(t, u.ID, first.ID)
		require.Equal(t, model.RoleCustomer, first.Role)

		// Same email again: only last_logged_in moves.
		later := now.Add(time.Hour)
		second, err := ur.Upsert(ctx, model.User{
			ID:           uuid.New(),
			Email:        "a@x.com",
			Name:         "A",
			Role:         model.RoleAdmin,
			CreatedAt:    later,
			LastLoggedIn: later,
		})
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, model.RoleCustomer, second.Role)
		require.WithinDuration(t, first.CreatedAt, second.CreatedAt, time.Second)
		require.WithinDuration(t, later, second.LastLoggedIn, time.Second)

		byEmail, err := ur.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.Equal(t, first.ID, byEmail.ID)

		_, err = ur.GetByEmail(ctx, "missing@x.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("plant_repository", func(t *testing.T) {
		pr := repo.NewPlantRepository(conn)
		p := model.Plant{
			ID:        uuid.New(),
			Name:      "Monstera",
			Category:  "indoor",
			Price:     10.00,
			Stock:     5,
			CreatedAt: time.Now(),
		}
		saved, err := pr.Create(ctx, p)
		require.NoError(t, err)
		require.Equal(t, p.ID, saved.ID)

		byID, err := pr.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, p.Name, byID.Name)
		require.Equal(t, p.Price, byID.Price)

		all, err := pr.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, all)

		_, err = pr.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("order_repository", func(t *testing.T) {
		or := repo.NewOrderRepository(conn)
		o := model.Order{
			ID:              uuid.New(),
			PlantID:         uuid.New(),
			Quantity:        3,
			BuyerEmail:      "a@x.com",
			Amount:          3000,
			PaymentIntentID: "pi_123",
			CreatedAt:       time.Now(),
		}
		saved, err := or.Create(ctx, o)
		require.NoError(t, err)
		require.Equal(t, o.ID, saved.ID)
		require.Equal(t, int64(3000), saved.Amount)
	})
}

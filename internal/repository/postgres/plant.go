package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/plantnet/plantnet-server/internal/model"
)

var _ model.PlantStore = (*PlantRepository)(nil)

type PlantRepository struct {
	db *Connection
}

func NewPlantRepository(db *Connection) *PlantRepository {
	return &PlantRepository{
		db: db,
	}
}

func (r *PlantRepository) List(ctx context.Context) ([]model.Plant, error) {
	query := `SELECT id, name, category, description, price, stock, created_at
			  FROM plants ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	defer rows.Close()

	plants := make([]model.Plant, 0)
	for rows.Next() {
		var plant model.Plant
		if err := rows.Scan(
			&plant.ID, &plant.Name, &plant.Category, &plant.Description,
			&plant.Price, &plant.Stock, &plant.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan plant row: %w", err)
		}
		plants = append(plants, plant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plant rows: %w", err)
	}

	return plants, nil
}

func (r *PlantRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Plant, error) {
	var plant model.Plant
	query := `SELECT id, name, category, description, price, stock, created_at
			  FROM plants WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&plant.ID, &plant.Name, &plant.Category, &plant.Description,
		&plant.Price, &plant.Stock, &plant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Plant{}, model.ErrNotFound
		}
		return model.Plant{}, fmt.Errorf("failed to get plant by id: %w", err)
	}

	return plant, nil
}

func (r *PlantRepository) Create(ctx context.Context, plant model.Plant) (model.Plant, error) {
	query := `INSERT INTO plants (id, name, category, description, price, stock, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, name, category, description, price, stock, created_at`

	var savedPlant model.Plant
	err := r.db.QueryRow(ctx, query,
		plant.ID, plant.Name, plant.Category, plant.Description,
		plant.Price, plant.Stock, plant.CreatedAt,
	).Scan(
		&savedPlant.ID, &savedPlant.Name, &savedPlant.Category, &savedPlant.Description,
		&savedPlant.Price, &savedPlant.Stock, &savedPlant.CreatedAt,
	)
	if err != nil {
		return model.Plant{}, fmt.Errorf("failed to create plant: %w", err)
	}

	return savedPlant, nil
}

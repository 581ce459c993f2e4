package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlantStore defines persistence operations for catalog items.
type PlantStore interface {
	List(ctx context.Context) ([]Plant, error)
	GetByID(ctx context.Context, id uuid.UUID) (Plant, error)
	Create(ctx context.Context, plant Plant) (Plant, error)
}

// Plant represents a catalog item. Price is a major-unit amount; checkout
// converts it to minor units before contacting the payment processor.
type Plant struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

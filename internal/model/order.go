package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderStore defines persistence operations for orders.
type OrderStore interface {
	Create(ctx context.Context, order Order) (Order, error)
}

// Order represents a completed purchase. Orders are append-only and never
// mutated. Amount is the server-recomputed total in minor currency units;
// it is verified against the referenced payment intent before insertion.
type Order struct {
	ID              uuid.UUID `json:"id"`
	PlantID         uuid.UUID `json:"plantId"`
	Quantity        int       `json:"quantity"`
	BuyerEmail      string    `json:"buyerEmail"`
	Amount          int64     `json:"amount"`
	PaymentIntentID string    `json:"paymentIntentId"`
	Address         string    `json:"address"`
	CreatedAt       time.Time `json:"createdAt"`
}

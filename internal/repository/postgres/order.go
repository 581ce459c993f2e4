package postgres

import (
	"context"
	"fmt"

	"github.com/plantnet/plantnet-server/internal/model"
)

var _ model.OrderStore = (*OrderRepository)(nil)

type OrderRepository struct {
	db *Connection
}

func NewOrderRepository(db *Connection) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// Create unconditionally appends the order. Orders are never updated.
func (r *OrderRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	query := `INSERT INTO orders (id, plant_id, quantity, buyer_email, amount, payment_intent_id, address, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, plant_id, quantity, buyer_email, amount, payment_intent_id, address, created_at`

	var savedOrder model.Order
	err := r.db.QueryRow(ctx, query,
		order.ID, order.PlantID, order.Quantity, order.BuyerEmail,
		order.Amount, order.PaymentIntentID, order.Address, order.CreatedAt,
	).Scan(
		&savedOrder.ID, &savedOrder.PlantID, &savedOrder.Quantity, &savedOrder.BuyerEmail,
		&savedOrder.Amount, &savedOrder.PaymentIntentID, &savedOrder.Address, &savedOrder.CreatedAt,
	)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return savedOrder, nil
}

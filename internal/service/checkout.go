package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/plantnet/plantnet-server/internal/logger"
	"github.com/plantnet/plantnet-server/internal/model"
)

// Checkout prices catalog items, creates payment intents and records
// orders. This is the trust boundary: the monetary amount is always
// recomputed from the stored unit price, never taken from the client.
type Checkout struct {
	plantStore model.PlantStore
	orderStore model.OrderStore
	payments   model.PaymentProvider
	currency   string
	logger     *logger.Logger
}

// NewCheckout creates a new Checkout service charging in the given currency.
func NewCheckout(
	plantStore model.PlantStore,
	orderStore model.OrderStore,
	payments model.PaymentProvider,
	currency string,
	logger *logger.Logger,
) *Checkout {
	return &Checkout{
		plantStore: plantStore,
		orderStore: orderStore,
		payments:   payments,
		currency:   currency,
		logger:     logger,
	}
}

// CreatePaymentIntent resolves the item, recomputes the total and asks
// the processor for an intent. Only the client secret is returned; the
// computed total and item data stay server-side.
func (c *Checkout) CreatePaymentIntent(ctx context.Context, plantID uuid.UUID, quantity int) (string, error) {
	c.logger.Debug("Checkout service: creating payment intent",
		"plant_id", plantID,
		"quantity", quantity)

	plant, err := c.resolvePlant(ctx, plantID)
	if err != nil {
		return "", err
	}

	amount := minorUnits(plant.Price, quantity)

	pctx, cancel := downstreamCtx(ctx)
	defer cancel()

	intent, err := c.payments.CreateIntent(pctx, amount, c.currency)
	if err != nil {
		c.logger.Error("Checkout service: failed to create payment intent",
			"plant_id", plantID,
			"error", err.Error())
		return "", fmt.Errorf("failed to create payment intent: %w", classifyDownstream(err))
	}

	c.logger.Info("Checkout service: payment intent created",
		"plant_id", plantID,
		"quantity", quantity,
		"amount", amount)

	return intent.ClientSecret, nil
}

// PlaceOrder verifies the referenced payment intent against the
// recomputed total and appends the order.
func (c *Checkout) PlaceOrder(ctx context.Context, order model.Order) (model.Order, error) {
	c.logger.Debug("Checkout service: placing order",
		"plant_id", order.PlantID,
		"buyer", order.BuyerEmail)

	plant, err := c.resolvePlant(ctx, order.PlantID)
	if err != nil {
		return model.Order{}, err
	}

	expected := minorUnits(plant.Price, order.Quantity)

	pctx, cancel := downstreamCtx(ctx)
	defer cancel()

	intent, err := c.payments.GetIntent(pctx, order.PaymentIntentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Order{}, model.NewValidationError("unknown payment intent")
		}
		c.logger.Error("Checkout service: failed to get payment intent",
			"payment_intent_id", order.PaymentIntentID,
			"error", err.Error())
		return model.Order{}, fmt.Errorf("failed to get payment intent: %w", classifyDownstream(err))
	}

	if intent.Amount != expected {
		c.logger.Info("Checkout service: rejected order with amount mismatch",
			"payment_intent_id", order.PaymentIntentID,
			"intent_amount", intent.Amount,
			"expected_amount", expected)
		return model.Order{}, model.NewValidationError("payment amount does not match order")
	}

	order.ID = uuid.New()
	order.Amount = expected
	order.CreatedAt = time.Now()

	sctx, cancel := downstreamCtx(ctx)
	defer cancel()

	saved, err := c.orderStore.Create(sctx, order)
	if err != nil {
		c.logger.Error("Checkout service: failed to create order",
			"plant_id", order.PlantID,
			"error", err.Error())
		return model.Order{}, fmt.Errorf("failed to create order: %w", classifyDownstream(err))
	}

	c.logger.Info("Checkout service: order recorded",
		"order_id", saved.ID,
		"plant_id", saved.PlantID,
		"amount", saved.Amount)

	return saved, nil
}

func (c *Checkout) resolvePlant(ctx context.Context, plantID uuid.UUID) (model.Plant, error) {
	sctx, cancel := downstreamCtx(ctx)
	defer cancel()

	plant, err := c.plantStore.GetByID(sctx, plantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Plant{}, model.ErrNotFound
		}
		return model.Plant{}, fmt.Errorf("failed to get plant: %w", classifyDownstream(err))
	}

	return plant, nil
}

// minorUnits converts a major-unit price and quantity into the
// processor's minor-unit amount (cents for two-decimal currencies).
func minorUnits(price float64, quantity int) int64 {
	return int64(math.Round(float64(quantity) * price * 100))
}

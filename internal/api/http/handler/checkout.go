package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/plantnet/plantnet-server/internal/api/http/httpctx"
	"github.com/plantnet/plantnet-server/internal/logger"
	"github.com/plantnet/plantnet-server/internal/model"
)

// CheckoutService defines pricing, intent and order operations.
type CheckoutService interface {
	CreatePaymentIntent(ctx context.Context, plantID uuid.UUID, quantity int) (string, error)
	PlaceOrder(ctx context.Context, order model.Order) (model.Order, error)
}

// Checkout handles payment intent and order endpoints.
type Checkout struct {
	checkoutService CheckoutService
	logger          *logger.Logger
}

// NewCheckout creates a new Checkout handler.
func NewCheckout(checkoutService CheckoutService, logger *logger.Logger) *Checkout {
	return &Checkout{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// createIntentRequest deliberately has no price field: any price the
// client attaches is dropped at decode time.
type createIntentRequest struct {
	PlantID  string `json:"plantId"`
	Quantity int    `json:"quantity"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type orderRequest struct {
	PlantID         string `json:"plantId"`
	Quantity        int    `json:"quantity"`
	PaymentIntentID string `json:"paymentIntentId"`
	Address         string `json:"address"`
}

// CreatePaymentIntent prices the requested item server-side and returns
// the processor's client secret.
func (h *Checkout) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plantID, err := uuid.Parse(req.PlantID)
	if err != nil {
		handleError(w, model.NewValidationError("invalid plant id"))
		return
	}
	if req.Quantity <= 0 {
		handleError(w, model.NewValidationError("quantity must be positive"))
		return
	}

	clientSecret, err := h.checkoutService.CreatePaymentIntent(r.Context(), plantID, req.Quantity)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Plant Not Found")
			return
		}
		h.logger.Error("Checkout handler: create payment intent failed",
			"plant_id", plantID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createIntentResponse{ClientSecret: clientSecret})
}

// PlaceOrder records a completed purchase for the authenticated buyer.
func (h *Checkout) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpctx.Claims(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthenticated)
		return
	}

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plantID, err := uuid.Parse(req.PlantID)
	if err != nil {
		handleError(w, model.NewValidationError("invalid plant id"))
		return
	}
	if req.Quantity <= 0 {
		handleError(w, model.NewValidationError("quantity must be positive"))
		return
	}
	if req.PaymentIntentID == "" {
		handleError(w, model.NewValidationError("payment intent id is required"))
		return
	}

	order, err := h.checkoutService.PlaceOrder(r.Context(), model.Order{
		PlantID:         plantID,
		Quantity:        req.Quantity,
		BuyerEmail:      claims.Email,
		PaymentIntentID: req.PaymentIntentID,
		Address:         req.Address,
	})
	if err != nil {
		h.logger.Error("Checkout handler: place order failed",
			"plant_id", plantID,
			"buyer", claims.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, insertedResponse{InsertedID: order.ID})
}

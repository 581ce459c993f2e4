package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/plantnet/plantnet-server/internal/logger"
	"github.com/plantnet/plantnet-server/internal/model"
)

// CatalogService defines catalog read and write operations.
type CatalogService interface {
	List(ctx context.Context) ([]model.Plant, error)
	Get(ctx context.Context, id uuid.UUID) (model.Plant, error)
	Add(ctx context.Context, plant model.Plant) (model.Plant, error)
	AttachImage(ctx context.Context, id uuid.UUID, reader io.Reader, size int64, contentType string) error
	Image(ctx context.Context, id uuid.UUID) (io.ReadCloser, error)
}

// Plant handles catalog endpoints.
type Plant struct {
	catalogService CatalogService
	logger         *logger.Logger
}

// NewPlant creates a new Plant handler.
func NewPlant(catalogService CatalogService, logger *logger.Logger) *Plant {
	return &Plant{
		catalogService: catalogService,
		logger:         logger,
	}
}

type addPlantRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type insertedResponse struct {
	InsertedID uuid.UUID `json:"insertedId"`
}

// List returns all catalog items.
func (h *Plant) List(w http.ResponseWriter, r *http.Request) {
	plants, err := h.catalogService.List(r.Context())
	if err != nil {
		h.logger.Error("Plant handler: list failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, plants)
}

// Get returns a single catalog item.
func (h *Plant) Get(w http.ResponseWriter, r *http.Request) {
	id, err := plantID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	plant, err := h.catalogService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, plant)
}

// Add inserts a new catalog item.
func (h *Plant) Add(w http.ResponseWriter, r *http.Request) {
	var req addPlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		handleError(w, model.NewValidationError("name is required"))
		return
	}
	if req.Price <= 0 {
		handleError(w, model.NewValidationError("price must be positive"))
		return
	}
	if req.Stock < 0 {
		handleError(w, model.NewValidationError("stock must not be negative"))
		return
	}

	plant, err := h.catalogService.Add(r.Context(), model.Plant{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		h.logger.Error("Plant handler: add failed",
			"name", req.Name,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, insertedResponse{InsertedID: plant.ID})
}

// UploadImage stores the request body as the plant's image.
func (h *Plant) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := plantID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.catalogService.AttachImage(r.Context(), id, r.Body, r.ContentLength, contentType); err != nil {
		h.logger.Error("Plant handler: image upload failed",
			"plant_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Image streams the stored plant image.
func (h *Plant) Image(w http.ResponseWriter, r *http.Request) {
	id, err := plantID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	reader, err := h.catalogService.Image(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	defer reader.Close()

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("Plant handler: image stream failed",
			"plant_id", id,
			"error", err.Error())
	}
}

func plantID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, model.NewValidationError("invalid plant id")
	}
	return id, nil
}

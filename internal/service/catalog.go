package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/plantnet/plantnet-server/internal/logger"
	"github.com/plantnet/plantnet-server/internal/model"
)

// Catalog manages catalog items and their images.
type Catalog struct {
	plantStore model.PlantStore
	imageStore model.ImageStore
	logger     *logger.Logger
}

// NewCatalog creates a new Catalog service.
func NewCatalog(plantStore model.PlantStore, imageStore model.ImageStore, logger *logger.Logger) *Catalog {
	return &Catalog{
		plantStore: plantStore,
		imageStore: imageStore,
		logger:     logger,
	}
}

// List returns all catalog items.
func (c *Catalog) List(ctx context.Context) ([]model.Plant, error) {
	cctx, cancel := downstreamCtx(ctx)
	defer cancel()

	plants, err := c.plantStore.List(cctx)
	if err != nil {
		c.logger.Error("Catalog service: failed to list plants",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list plants: %w", classifyDownstream(err))
	}

	return plants, nil
}

// Get returns a single catalog item by id.
func (c *Catalog) Get(ctx context.Context, id uuid.UUID) (model.Plant, error) {
	cctx, cancel := downstreamCtx(ctx)
	defer cancel()

	plant, err := c.plantStore.GetByID(cctx, id)
	if err != nil {
		return model.Plant{}, classifyDownstream(err)
	}

	return plant, nil
}

// Add inserts a new catalog item, stamping its id and creation time.
func (c *Catalog) Add(ctx context.Context, plant model.Plant) (model.Plant, error) {
	plant.ID = uuid.New()
	plant.CreatedAt = time.Now()

	cctx, cancel := downstreamCtx(ctx)
	defer cancel()

	saved, err := c.plantStore.Create(cctx, plant)
	if err != nil {
		c.logger.Error("Catalog service: failed to create plant",
			"name", plant.Name,
			"error", err.Error())
		return model.Plant{}, fmt.Errorf("failed to create plant: %w", classifyDownstream(err))
	}

	c.logger.Info("Catalog service: plant created",
		"plant_id", saved.ID,
		"name", saved.Name)

	return saved, nil
}

// AttachImage stores an image for an existing catalog item.
func (c *Catalog) AttachImage(ctx context.Context, id uuid.UUID, reader io.Reader, size int64, contentType string) error {
	if _, err := c.Get(ctx, id); err != nil {
		return err
	}

	cctx, cancel := downstreamCtx(ctx)
	defer cancel()

	if err := c.imageStore.Upload(cctx, imageKey(id), reader, size, contentType); err != nil {
		c.logger.Error("Catalog service: failed to upload plant image",
			"plant_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to upload plant image: %w", classifyDownstream(err))
	}

	c.logger.Info("Catalog service: plant image stored",
		"plant_id", id)

	return nil
}

// Image streams the stored image for a catalog item. The caller closes
// the returned reader.
func (c *Catalog) Image(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	cctx, cancel := downstreamCtx(ctx)
	defer cancel()

	exists, err := c.imageStore.Exists(cctx, imageKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to check plant image: %w", classifyDownstream(err))
	}
	if !exists {
		return nil, model.ErrNotFound
	}

	reader, err := c.imageStore.Download(ctx, imageKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to download plant image: %w", classifyDownstream(err))
	}

	return reader, nil
}

func imageKey(id uuid.UUID) string {
	return "plants/" + id.String()
}

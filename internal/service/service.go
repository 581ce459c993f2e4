// Package service holds the storefront business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plantnet/plantnet-server/internal/model"
)

// Per-call budget for storage and payment processor calls. A hung
// downstream must not stall the request indefinitely.
const downstreamTimeout = 5 * time.Second

func downstreamCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, downstreamTimeout)
}

// classifyDownstream converts deadline expiry into ErrDownstreamUnavailable
// and leaves every other error untouched so sentinel checks still work.
func classifyDownstream(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("downstream call timed out: %w", model.ErrDownstreamUnavailable)
	}
	return err
}

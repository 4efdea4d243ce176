package v1

import (
	"context"
	"errors"
	"time"

	"github.com/moneywise/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// retry calls fetch until it succeeds, up to attempts additional times.
//
// Only general errors are retried, with a fixed delay between the
// attempts. A cancelled context ends the retries.
func retry[T any](ctx context.Context, attempts int, delay time.Duration, fetch func() (T, error)) (T, error) {
	value, err := fetch()

	for attempt := 1; attempt <= attempts && errors.Is(err, models.ErrGeneral); attempt++ {
		log.Debug().Int("attempt", attempt).Err(err).Msg("Retrying read")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			var zero T
			return zero, ctx.Err()
		case <-timer.C:
		}

		value, err = fetch()
	}

	return value, err
}

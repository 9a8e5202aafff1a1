package identity

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidCount is returned for a negative batch size.
	ErrInvalidCount = errors.New("invalid identity count")

	// ErrBatchTooLarge is returned when a batch exceeds the generator's limit.
	ErrBatchTooLarge = errors.New("identity batch too large")
)

// GenerateMany produces count independent identities with the same options.
// The work is split across the configured number of workers, each drawing
// from its own generator seeded from g, so a seeded generator returns the
// same batch however the workers are scheduled.
func (g *Generator) GenerateMany(ctx context.Context, count int, opts Options) ([]Identity, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate %d identities: %w", count, ErrInvalidCount)
	}
	if count > g.maxBatch {
		return nil, fmt.Errorf("generate %d identities (max %d): %w", count, g.maxBatch, ErrBatchTooLarge)
	}

	out := make([]Identity, count)
	if count == 0 {
		return out, nil
	}

	workers := min(max(g.workers, 1), count)
	chunk := (count + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < count; lo += chunk {
		hi := min(lo+chunk, count)
		w := g.child()
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = w.Generate(opts)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generate identities: %w", err)
	}
	return out, nil
}

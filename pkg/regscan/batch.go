package regscan

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// AnalyzeBatch runs fn over every path with at most jobs calls in flight and
// returns the results in input order. Documents that are unavailable are
// logged and skipped; any other error stops the batch.
func AnalyzeBatch[T any](ctx context.Context, paths []string, jobs int, fn func(path string) (*T, error)) ([]*T, error) {
	if jobs <= 0 {
		jobs = 1
	}

	results := make([]*T, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := fn(path)
			if errors.Is(err, ErrSourceUnavailable) {
				log.Warn().Err(err).Str("file", path).Msg("document unavailable; skipping")
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*T, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

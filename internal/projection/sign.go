package projection

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// signConcurrency bounds how many signing calls run at once per listing.
const signConcurrency = 8

// SignFunc issues a temporary access URL for a stored object key.
type SignFunc func(object string) (string, error)

// SignAll issues access URLs for every key concurrently, preserving input
// order. Empty keys pass through as empty strings. Any signing failure fails
// the whole batch.
func SignAll(ctx context.Context, keys []string, sign SignFunc) ([]string, error) {
	out := make([]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(signConcurrency)

	for i, key := range keys {
		if key == "" {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			url, err := sign(key)
			if err != nil {
				return err
			}
			out[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

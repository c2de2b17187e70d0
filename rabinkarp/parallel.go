package rabinkarp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// scanAll scans every column start of sc. With one worker (or one column
// start) it runs inline; otherwise the column starts are split into
// contiguous chunks, one per worker, scanned concurrently. Column starts are
// independent and the row-hash table is read-only, so chunks share nothing
// but their input. Each chunk writes only its own slot of parts.
func (s *Searcher[S]) scanAll(ctx context.Context, sc *scan[S]) ([]partial, error) {
	cols := sc.table.Cols
	workers := s.opts.workers
	if workers > cols {
		workers = cols
	}
	if workers <= 1 {
		p, err := sc.columns(ctx, 0, cols)
		if err != nil {
			return nil, err
		}

		return []partial{p}, nil
	}

	chunk := (cols + workers - 1) / workers
	parts := make([]partial, (cols+chunk-1)/chunk)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := range parts {
		lo := k * chunk
		hi := min(lo+chunk, cols)
		g.Go(func() error {
			p, err := sc.columns(gctx, lo, hi)
			if err != nil {
				return err
			}
			parts[k] = p

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return parts, nil
}

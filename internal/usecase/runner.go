package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"svw.info/sudokugen/internal/domain"
)

// Run generates the configured number of samples and writes the dataset
// index. Sample seeds derive from the sample index, so output is
// reproducible regardless of worker count. An invariant violation is
// fatal only for its own sample; the run continues and reports how many
// samples were skipped.
func (u *Service) Run(ctx context.Context) ([]domain.TaskMeta, error) {
	n := u.cfg.NumSamples
	results := make([]*domain.TaskMeta, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.cfg.Workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			meta, err := u.GenerateSample(ctx, i)
			switch {
			case errors.Is(err, domain.ErrInvariant):
				u.log.WithError(err).WithField("index", i).Error("skipping sample")
				return nil
			case err != nil:
				return fmt.Errorf("sample %d: %w", i, err)
			}
			results[i] = meta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metas := make([]domain.TaskMeta, 0, n)
	for _, m := range results {
		if m != nil {
			metas = append(metas, *m)
		}
	}
	if skipped := n - len(metas); skipped > 0 {
		u.log.WithField("skipped", skipped).Warn("some samples were not generated")
	}
	if err := u.writer.WriteIndex(ctx, metas); err != nil {
		return nil, err
	}
	return metas, nil
}

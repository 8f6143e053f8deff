package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Service interface {
	QuickStats(ctx context.Context) (*QuickStats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// QuickStats fans the four independent aggregations out concurrently; the
// first failing query cancels the rest.
func (s *service) QuickStats(ctx context.Context) (*QuickStats, error) {
	g, gctx := errgroup.WithContext(ctx)
	stats := &QuickStats{}

	g.Go(func() error {
		totals, err := s.repo.DonationTotals(gctx)
		if err != nil {
			return err
		}
		stats.Totals = totals
		return nil
	})
	g.Go(func() error {
		count, err := s.repo.DonorCount(gctx)
		if err != nil {
			return err
		}
		stats.DonorCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.repo.ActiveGoalCount(gctx)
		if err != nil {
			return err
		}
		stats.ActiveGoals = count
		return nil
	})
	g.Go(func() error {
		top, err := s.repo.TopDonor(gctx)
		if err != nil {
			return err
		}
		stats.TopDonor = top
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

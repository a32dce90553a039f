// Package dashboard aggregates the read-only overview screen from
// several independent API collections in one round trip.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jobdeck/jobdeck/pkg/client"
	"github.com/jobdeck/jobdeck/pkg/domain"
)

// Overview is everything the dashboard screen renders.
type Overview struct {
	Candidates    []domain.Profile
	ProfileStats  *domain.ProfileStats
	CategoryStats []domain.CategoryStat
	FeaturedJobs  []domain.Job
	JobStats      *domain.JobStats
}

// Aggregator loads the dashboard sections concurrently.
type Aggregator struct {
	client *client.Client
}

func New(c *client.Client) *Aggregator {
	return &Aggregator{client: c}
}

// LoadAll fetches every dashboard section in parallel. The overview is
// all or nothing: if any section fails, the first error is returned and
// the partial data is discarded.
func (a *Aggregator) LoadAll(ctx context.Context) (*Overview, error) {
	var ov Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		candidates, err := a.client.AvailableCandidates(ctx)
		if err != nil {
			return err
		}
		ov.Candidates = candidates
		return nil
	})
	g.Go(func() error {
		stats, err := a.client.ProfileStats(ctx)
		if err != nil {
			return err
		}
		ov.ProfileStats = stats
		return nil
	})
	g.Go(func() error {
		stats, err := a.client.CategoryStats(ctx)
		if err != nil {
			return err
		}
		ov.CategoryStats = stats
		return nil
	})
	g.Go(func() error {
		jobs, err := a.client.FeaturedJobs(ctx)
		if err != nil {
			return err
		}
		ov.FeaturedJobs = jobs
		return nil
	})
	g.Go(func() error {
		stats, err := a.client.JobStats(ctx)
		if err != nil {
			return err
		}
		ov.JobStats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ov, nil
}

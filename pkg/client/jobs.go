package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// ListJobs fetches one page of job listings. Empty filter values are
// omitted from the query entirely.
func (c *Client) ListJobs(ctx context.Context, page int, category, location, experience, search string) (*domain.Paginated[domain.Job], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if category != "" {
		params.Set("category", category)
	}
	if location != "" {
		params.Set("location", location)
	}
	if experience != "" {
		params.Set("experience_level", experience)
	}
	if search != "" {
		params.Set("search", search)
	}

	var jobs domain.Paginated[domain.Job]
	if err := c.get(ctx, "/api/jobs/", params, &jobs); err != nil {
		return nil, fmt.Errorf("client.ListJobs: %w", err)
	}
	return &jobs, nil
}

// GetJob fetches a single job by ID.
func (c *Client) GetJob(ctx context.Context, id int) (*domain.Job, error) {
	var job domain.Job
	if err := c.get(ctx, "/api/jobs/"+strconv.Itoa(id)+"/", nil, &job); err != nil {
		return nil, fmt.Errorf("client.GetJob: %w", err)
	}
	return &job, nil
}

// FeaturedJobs fetches the curated featured listings.
func (c *Client) FeaturedJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.get(ctx, "/api/jobs/featured/", nil, &jobs); err != nil {
		return nil, fmt.Errorf("client.FeaturedJobs: %w", err)
	}
	return jobs, nil
}

// ListCategories fetches all job categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories domain.Paginated[domain.Category]
	if err := c.get(ctx, "/api/categories/", nil, &categories); err != nil {
		return nil, fmt.Errorf("client.ListCategories: %w", err)
	}
	return categories.Results, nil
}

// JobStats fetches platform-wide job aggregates.
func (c *Client) JobStats(ctx context.Context) (*domain.JobStats, error) {
	var stats domain.JobStats
	if err := c.get(ctx, "/api/jobs/stats/", nil, &stats); err != nil {
		return nil, fmt.Errorf("client.JobStats: %w", err)
	}
	return &stats, nil
}

// CategoryStats fetches per-category job counts.
func (c *Client) CategoryStats(ctx context.Context) ([]domain.CategoryStat, error) {
	var stats []domain.CategoryStat
	if err := c.get(ctx, "/api/categories/stats/", nil, &stats); err != nil {
		return nil, fmt.Errorf("client.CategoryStats: %w", err)
	}
	return stats, nil
}

// ApplyToJob submits an application with a cover letter.
func (c *Client) ApplyToJob(ctx context.Context, jobID int, coverLetter string) (*domain.Application, error) {
	body := struct {
		JobID       int    `json:"job_id"`
		CoverLetter string `json:"cover_letter"`
	}{JobID: jobID, CoverLetter: coverLetter}

	var app domain.Application
	if err := c.post(ctx, "/api/applications/", body, &app); err != nil {
		return nil, fmt.Errorf("client.ApplyToJob: %w", err)
	}
	return &app, nil
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

func TestListJobsOmitsEmptyFilters(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(domain.Paginated[domain.Job]{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(t, "tok", "ref"))
	_, err := c.ListJobs(context.Background(), 1, "engineering", "", "", "")
	if err != nil {
		t.Fatalf("ListJobs() error: %v", err)
	}

	if got := gotQuery.Get("category"); got != "engineering" {
		t.Errorf("category = %q, want %q", got, "engineering")
	}
	if gotQuery.Has("location") {
		t.Errorf("location param present with empty value: %v", gotQuery)
	}
	if gotQuery.Has("experience_level") || gotQuery.Has("search") {
		t.Errorf("empty filter params leaked into query: %v", gotQuery)
	}
	if got := gotQuery.Get("page"); got != "1" {
		t.Errorf("page = %q, want %q", got, "1")
	}
}

func TestListJobsPastLastPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(domain.Paginated[domain.Job]{ //nolint:errcheck
			Count:   12,
			Next:    nil,
			Results: []domain.Job{},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(t, "tok", "ref"))
	page, err := c.ListJobs(context.Background(), 5, "", "", "", "")
	if err != nil {
		t.Fatalf("ListJobs() error: %v", err)
	}
	if len(page.Results) != 0 {
		t.Errorf("got %d results past last page, want 0", len(page.Results))
	}
	if page.HasNext() {
		t.Error("HasNext() = true past last page")
	}
}

func TestListCategoriesUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(domain.Paginated[domain.Category]{ //nolint:errcheck
			Count: 2,
			Results: []domain.Category{
				{ID: 1, Name: "Engineering", Slug: "engineering"},
				{ID: 2, Name: "Design", Slug: "design"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(t, "tok", "ref"))
	categories, err := c.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if categories[0].Slug != "engineering" {
		t.Errorf("categories[0].Slug = %q, want %q", categories[0].Slug, "engineering")
	}
}

func TestApplyToJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/applications/" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			JobID       int    `json:"job_id"`
			CoverLetter string `json:"cover_letter"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Application{ //nolint:errcheck
			ID:          42,
			Job:         domain.Job{ID: req.JobID},
			CoverLetter: req.CoverLetter,
			Status:      domain.ApplicationPending,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(t, "tok", "ref"))
	app, err := c.ApplyToJob(context.Background(), 7, "I would love to work here.")
	if err != nil {
		t.Fatalf("ApplyToJob() error: %v", err)
	}
	if app.Job.ID != 7 {
		t.Errorf("app.Job.ID = %d, want 7", app.Job.ID)
	}
	if app.Status != domain.ApplicationPending {
		t.Errorf("app.Status = %q, want %q", app.Status, domain.ApplicationPending)
	}
}

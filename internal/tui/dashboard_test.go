package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/jobdeck/jobdeck/internal/dashboard"
	"github.com/jobdeck/jobdeck/pkg/domain"
)

func sampleOverview() *dashboard.Overview {
	return &dashboard.Overview{
		Candidates: []domain.Profile{
			{User: domain.User{Username: "alice"}, JobTitle: "Backend Engineer", ExperienceLevel: "senior"},
		},
		ProfileStats: &domain.ProfileStats{TotalProfiles: 120, Available: 35},
		CategoryStats: []domain.CategoryStat{
			{Name: "Engineering", JobCount: 40},
			{Name: "Design", JobCount: 10},
		},
		FeaturedJobs: []domain.Job{
			{Title: "Staff Engineer", CompanyName: "Acme", SalaryMin: "120000", Category: domain.Category{Slug: "engineering"}},
		},
		JobStats: &domain.JobStats{
			TotalJobs:         80,
			TotalApplications: 300,
			AvgSalaryByLevel: []domain.LevelSalary{
				{ExperienceLevel: "senior", AvgSalary: 95000},
			},
		},
	}
}

func TestDashboardRendersOverview(t *testing.T) {
	m := newDashModel(nil)
	m.width = 80
	m.height = 40
	m, _ = m.Update(overviewLoadedMsg{overview: sampleOverview()})

	if m.loading {
		t.Fatal("expected loading=false after the overview arrived")
	}
	v := m.View()
	for _, want := range []string{
		"80 jobs", "300 applications", "120 profiles", "35 hireable",
		"FEATURED", "Staff Engineer",
		"CATEGORIES", "Engineering",
		"AVG SALARY BY LEVEL", "95000",
		"CANDIDATES (1)", "alice",
	} {
		if !strings.Contains(v, want) {
			t.Errorf("expected %q in dashboard view, got:\n%s", want, v)
		}
	}
}

func TestDashboardErrorAndRetry(t *testing.T) {
	m := newDashModel(nil)
	m.width = 80
	m.height = 40
	m, _ = m.Update(overviewLoadedMsg{err: errors.New("boom")})

	if m.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if m.overview != nil {
		t.Error("expected the overview dropped on failure")
	}
	if !strings.Contains(m.View(), "retry") {
		t.Error("expected a retry hint in view")
	}

	m, _ = m.Update(keyMsg("r"))
	if !m.loading {
		t.Error("expected r to restart the load")
	}
	if m.errMsg != "" {
		t.Error("expected the error cleared on retry")
	}
}

func TestBarLen(t *testing.T) {
	tests := []struct {
		count, biggest, width, want int
	}{
		{40, 40, 20, 20},
		{10, 40, 20, 5},
		{1, 40, 20, 1}, // non-zero counts always show a cell
		{0, 40, 20, 0},
		{5, 0, 20, 0},
	}
	for _, tc := range tests {
		if got := barLen(tc.count, tc.biggest, tc.width); got != tc.want {
			t.Errorf("barLen(%d, %d, %d) = %d, want %d", tc.count, tc.biggest, tc.width, got, tc.want)
		}
	}
}

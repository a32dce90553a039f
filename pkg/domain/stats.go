package domain

// ProfileStats are the aggregate counters from /account/profiles/profile_stats/.
type ProfileStats struct {
	TotalProfiles int `json:"total_profiles"`
	Available     int `json:"available_for_hire"`
	Unavailable   int `json:"unavailable_for_hire"`
}

// MyProfileStats are the per-account counters from /account/profiles/my_stats/.
type MyProfileStats struct {
	TotalViews        int `json:"total_views"`
	TotalApplications int `json:"total_applications"`
	TotalShortlists   int `json:"total_shortlists"`
}

// CategoryStat is one row of /api/categories/stats/.
type CategoryStat struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	JobCount int    `json:"job_count"`
}

// CountByKind is a label + count pair used by distribution breakdowns.
type CountByKind struct {
	EmploymentType  string `json:"employment_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Count           int    `json:"count"`
}

// LevelSalary is an experience level + average salary pair.
type LevelSalary struct {
	ExperienceLevel string  `json:"experience_level"`
	AvgSalary       float64 `json:"avg_salary"`
}

// JobStats are the aggregates from /api/jobs/stats/.
type JobStats struct {
	TotalJobs              int           `json:"total_jobs"`
	TotalApplications      int           `json:"total_applications"`
	EmploymentDistribution []CountByKind `json:"employment_type_distribution"`
	AvgSalaryByLevel       []LevelSalary `json:"average_salary_by_level"`
}

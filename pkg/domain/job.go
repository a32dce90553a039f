package domain

// Category is a job category as served by the backend.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
	JobCount    int    `json:"job_count"`
}

// Job is a single job listing.
type Job struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	CompanyName         string   `json:"company_name"`
	Location            string   `json:"location"`
	EmploymentType      string   `json:"employment_type"`
	ExperienceLevel     string   `json:"experience_level"`
	SalaryMin           string   `json:"salary_min,omitempty"`
	SalaryMax           string   `json:"salary_max,omitempty"`
	Category            Category `json:"category"`
	PostedByUsername    string   `json:"posted_by_username,omitempty"`
	IsActive            bool     `json:"is_active"`
	ApplicationDeadline string   `json:"application_deadline,omitempty"`
	CreatedAt           string   `json:"created_at,omitempty"`
	ApplicationCount    int      `json:"application_count"`
	DaysPosted          int      `json:"days_posted"`
	Description         string   `json:"description,omitempty"`
	Requirements        string   `json:"requirements,omitempty"`
	Benefits            string   `json:"benefits,omitempty"`
}

// SalaryRange renders the salary band for list rows, empty when unset.
func (j Job) SalaryRange() string {
	switch {
	case j.SalaryMin != "" && j.SalaryMax != "":
		return j.SalaryMin + " - " + j.SalaryMax
	case j.SalaryMin != "":
		return "from " + j.SalaryMin
	case j.SalaryMax != "":
		return "up to " + j.SalaryMax
	}
	return ""
}

// ExperienceLevels is the vocabulary accepted by the backend's
// experience_level filter, in cycle order for the UI.
var ExperienceLevels = []string{"entry", "mid", "senior", "expert"}

// ValidExperienceLevel reports whether level is a known experience level.
func ValidExperienceLevel(level string) bool {
	for _, l := range ExperienceLevels {
		if l == level {
			return true
		}
	}
	return false
}

package domain

// Application is a submitted job application.
type Application struct {
	ID                int    `json:"id"`
	Job               Job    `json:"job"`
	ApplicantUsername string `json:"applicant_username,omitempty"`
	ApplicantEmail    string `json:"applicant_email,omitempty"`
	CoverLetter       string `json:"cover_letter,omitempty"`
	Status            string `json:"status"`
	AppliedAt         string `json:"applied_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}

// Application status values as served by the backend.
const (
	ApplicationPending     = "pending"
	ApplicationReviewed    = "reviewed"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
	ApplicationHired       = "hired"
)

package domain

// Profile is a candidate or recruiter profile.
type Profile struct {
	ID                int      `json:"id"`
	User              User     `json:"user"`
	Bio               string   `json:"bio,omitempty"`
	DateOfBirth       string   `json:"date_of_birth,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	PhoneNumber       string   `json:"phone_number,omitempty"`
	Address           string   `json:"address,omitempty"`
	City              string   `json:"city,omitempty"`
	Country           string   `json:"country,omitempty"`
	PostalCode        string   `json:"postal_code,omitempty"`
	JobTitle          string   `json:"job_title,omitempty"`
	Company           string   `json:"company,omitempty"`
	ExperienceLevel   string   `json:"experience_level,omitempty"`
	ExpectedSalaryMin string   `json:"expected_salary_min,omitempty"`
	ExpectedSalaryMax string   `json:"expected_salary_max,omitempty"`
	Skills            string   `json:"skills,omitempty"`
	SkillsList        []string `json:"skills_list,omitempty"`
	Education         string   `json:"education,omitempty"`
	Certifications    string   `json:"certifications,omitempty"`
	ProfileImageURL   string   `json:"profile_image_url,omitempty"`
	ResumeURL         string   `json:"resume_url,omitempty"`
	LinkedinURL       string   `json:"linkedin_url,omitempty"`
	GithubURL         string   `json:"github_url,omitempty"`
	WebsiteURL        string   `json:"website_url,omitempty"`
	IsProfilePublic   bool     `json:"is_profile_public"`
	IsAvailable       bool     `json:"is_available_for_hire"`
	CreatedAt         string   `json:"created_at,omitempty"`
	UpdatedAt         string   `json:"updated_at,omitempty"`
}

// ProfilePayload is the writable subset of Profile used by create and
// update operations. Zero-value fields are omitted so the same type
// serves full updates and partial patches; the booleans are pointers so
// an explicit false still serializes.
type ProfilePayload struct {
	Bio               string `json:"bio,omitempty"`
	PhoneNumber       string `json:"phone_number,omitempty"`
	Address           string `json:"address,omitempty"`
	City              string `json:"city,omitempty"`
	Country           string `json:"country,omitempty"`
	JobTitle          string `json:"job_title,omitempty"`
	Company           string `json:"company,omitempty"`
	ExperienceLevel   string `json:"experience_level,omitempty"`
	ExpectedSalaryMin string `json:"expected_salary_min,omitempty"`
	ExpectedSalaryMax string `json:"expected_salary_max,omitempty"`
	Skills            string `json:"skills,omitempty"`
	Education         string `json:"education,omitempty"`
	LinkedinURL       string `json:"linkedin_url,omitempty"`
	GithubURL         string `json:"github_url,omitempty"`
	WebsiteURL        string `json:"website_url,omitempty"`
	IsProfilePublic   *bool  `json:"is_profile_public,omitempty"`
	IsAvailable       *bool  `json:"is_available_for_hire,omitempty"`
}

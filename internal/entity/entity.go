// Package entity defines the domain types assembled by the scrapers.
// All fields default to zero values; a provider response missing a field
// leaves the field unset rather than failing the whole lookup.
package entity

// Company is a hiring company resolved from a job post.
type Company struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	Description   string `json:"description"`
	EmployeeCount int    `json:"employee_count"`
	// Domain is the bare registrable domain of the company website
	// (no scheme, no subdomains, no path).
	Domain string `json:"domain"`
}

// Employee is a person scraped from a company's staff search results.
// ID is the provider-assigned numeric identifier and is the key used to
// collapse repeated sightings across search passes.
type Employee struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Headline   string `json:"headline"`
	Locale     string `json:"locale"`
	ProfileURL string `json:"profile_url"`
}

// JobPost is a single job posting. The LLM-derived slices are only
// populated when a summarization pass ran; Description is cleared once
// they are.
type JobPost struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// PostDate is an RFC 3339 UTC timestamp derived from the provider's
	// epoch-millisecond listing time.
	PostDate string `json:"post_date"`
	ApplyURL string `json:"apply_url"`
	IsRemote bool   `json:"is_remote"`
	Location string `json:"location"`

	Responsibilities      []string `json:"responsibilities,omitempty"`
	TechnicalRequirements []string `json:"technical_requirements,omitempty"`
	SoftSkills            []string `json:"soft_skills,omitempty"`
	Highlights            []string `json:"highlights,omitempty"`
}

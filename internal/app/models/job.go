package models

import (
	"math"
	"time"
)

// Closed sets for job fields
var (
	ValidJobTypes = []string{"Full-time", "Part-time", "Contract", "Internship", "Remote"}

	ValidExperienceLevels = []string{"Entry Level", "Mid Level", "Senior Level", "Executive"}

	ValidJobCategories = []string{
		"Technology", "Engineering", "Business", "Marketing", "Finance",
		"Healthcare", "Education", "Design", "Sales", "Other",
	}

	ValidCurrencies = []string{"PKR", "USD", "EUR", "GBP"}
)

// DefaultCurrency is assumed when a salary omits its currency
const DefaultCurrency = "PKR"

// Salary is a job's salary range; Min and Max are optional
type Salary struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency"`
}

// Job represents a job posting
type Job struct {
	ID                  int64      `json:"id"`
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Salary              Salary     `json:"salary"`
	JobType             string     `json:"jobType"`
	ExperienceLevel     string     `json:"experienceLevel"`
	Category            string     `json:"category"`
	PostedBy            int64      `json:"postedBy"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	ApplicationEmail    string     `json:"applicationEmail"`
	ApplicationURL      string     `json:"applicationUrl,omitempty"`
	Skills              []string   `json:"skills"`
	Benefits            []string   `json:"benefits"`
	IsActive            bool       `json:"isActive"`
	Views               int        `json:"views"`
	Applications        int        `json:"applications"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`

	// Poster is the lazily resolved postedBy alumni; nil when the
	// reference no longer resolves.
	Poster *Alumni `json:"-"`
}

// DaysSincePosted returns the age of the posting in whole days, rounded up
func (j *Job) DaysSincePosted(now time.Time) int {
	return int(math.Ceil(now.Sub(j.CreatedAt).Hours() / 24))
}

// IsDeadlinePassed reports whether the application deadline has passed
func (j *Job) IsDeadlinePassed(now time.Time) bool {
	if j.ApplicationDeadline == nil {
		return false
	}
	return now.After(*j.ApplicationDeadline)
}

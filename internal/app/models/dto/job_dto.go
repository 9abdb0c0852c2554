package dto

import (
	"time"

	"github.com/namalnexus/backend/internal/app/models"
)

// CreateJobRequest is the payload for posting a job
type CreateJobRequest struct {
	Title               string        `json:"title"`
	Company             string        `json:"company"`
	Location            string        `json:"location"`
	Description         string        `json:"description"`
	Requirements        []string      `json:"requirements"`
	Salary              models.Salary `json:"salary"`
	JobType             string        `json:"jobType"`
	ExperienceLevel     string        `json:"experienceLevel"`
	Category            string        `json:"category"`
	PostedBy            int64         `json:"postedBy"`
	ApplicationDeadline *time.Time    `json:"applicationDeadline"`
	ApplicationEmail    string        `json:"applicationEmail"`
	ApplicationURL      string        `json:"applicationUrl"`
	Skills              []string      `json:"skills"`
	Benefits            []string      `json:"benefits"`
}

// UpdateJobRequest is a partial update; only supplied fields change
type UpdateJobRequest struct {
	Title               *string        `json:"title"`
	Company             *string        `json:"company"`
	Location            *string        `json:"location"`
	Description         *string        `json:"description"`
	Requirements        *[]string      `json:"requirements"`
	Salary              *models.Salary `json:"salary"`
	JobType             *string        `json:"jobType"`
	ExperienceLevel     *string        `json:"experienceLevel"`
	Category            *string        `json:"category"`
	PostedBy            *int64         `json:"postedBy"`
	ApplicationDeadline *time.Time     `json:"applicationDeadline"`
	ApplicationEmail    *string        `json:"applicationEmail"`
	ApplicationURL      *string        `json:"applicationUrl"`
	Skills              *[]string      `json:"skills"`
	Benefits            *[]string      `json:"benefits"`
}

// JobListQuery carries the recognized job list filters
type JobListQuery struct {
	Category        string
	JobType         string
	ExperienceLevel string
	Location        string
	Search          string
	Page            int
	Limit           int
	SortBy          string
	SortOrder       string
}

// PostedByInfo is the resolved postedBy alumni on job responses
type PostedByInfo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company,omitempty"`
	CurrentPosition string `json:"currentPosition,omitempty"`
	ProfileImage    string `json:"profileImage,omitempty"`
}

// JobResponse is a job record plus its derived display fields; PostedBy is
// the lazily resolved reference and may be null when it no longer resolves.
type JobResponse struct {
	models.Job
	PostedBy         *PostedByInfo `json:"postedBy"`
	DaysSincePosted  int           `json:"daysSincePosted"`
	IsDeadlinePassed bool          `json:"isDeadlinePassed"`
}

// FromJob converts a models.Job to a JobResponse
func FromJob(j *models.Job, now time.Time) JobResponse {
	resp := JobResponse{
		Job:              *j,
		DaysSincePosted:  j.DaysSincePosted(now),
		IsDeadlinePassed: j.IsDeadlinePassed(now),
	}
	if j.Poster != nil {
		resp.PostedBy = &PostedByInfo{
			ID:              j.Poster.ID,
			Name:            j.Poster.Name,
			Email:           j.Poster.Email,
			Company:         j.Poster.Company,
			CurrentPosition: j.Poster.CurrentPosition,
			ProfileImage:    j.Poster.ProfileImage,
		}
	}
	return resp
}

// FromJobList converts a page of job records
func FromJobList(jobs []models.Job, now time.Time) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, FromJob(&jobs[i], now))
	}
	return out
}

// JobCategoryStats is one category bucket in the job statistics
type JobCategoryStats struct {
	Category          string  `json:"category"`
	Count             int64   `json:"count"`
	AvgViews          float64 `json:"avgViews"`
	TotalApplications int64   `json:"totalApplications"`
	AvgMinSalary      float64 `json:"avgMinSalary"`
	AvgMaxSalary      float64 `json:"avgMaxSalary"`
}

// LabelCount is a generic grouped count bucket
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// JobStats is the job statistics payload
type JobStats struct {
	ByCategory      []JobCategoryStats `json:"byCategory"`
	ByJobType       []LabelCount       `json:"byJobType"`
	ByExperience    []LabelCount       `json:"byExperience"`
	RecentJobs      int64              `json:"recentJobs"`
	TotalActiveJobs int64              `json:"totalActiveJobs"`
}

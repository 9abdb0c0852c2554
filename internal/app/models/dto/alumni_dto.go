package dto

import (
	"time"

	"github.com/namalnexus/backend/internal/app/models"
)

// CreateAlumniRequest is the payload for registering an alumni
type CreateAlumniRequest struct {
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	GraduationYear  int                `json:"graduationYear"`
	Degree          string             `json:"degree"`
	CurrentPosition string             `json:"currentPosition"`
	Company         string             `json:"company"`
	Location        string             `json:"location"`
	ProfileImage    string             `json:"profileImage"`
	Bio             string             `json:"bio"`
	Skills          []string           `json:"skills"`
	SocialLinks     models.SocialLinks `json:"socialLinks"`
}

// UpdateAlumniRequest is a partial update; only supplied fields change
type UpdateAlumniRequest struct {
	Name            *string             `json:"name"`
	Email           *string             `json:"email"`
	GraduationYear  *int                `json:"graduationYear"`
	Degree          *string             `json:"degree"`
	CurrentPosition *string             `json:"currentPosition"`
	Company         *string             `json:"company"`
	Location        *string             `json:"location"`
	ProfileImage    *string             `json:"profileImage"`
	Bio             *string             `json:"bio"`
	Skills          *[]string           `json:"skills"`
	SocialLinks     *models.SocialLinks `json:"socialLinks"`
}

// AlumniListQuery carries the recognized alumni list filters
type AlumniListQuery struct {
	GraduationYear *int
	Degree         string
	Location       string
	Company        string
	Search         string
	Page           int
	Limit          int
	SortBy         string
	SortOrder      string
}

// AlumniResponse is an alumni record plus its derived display fields
type AlumniResponse struct {
	models.Alumni
	YearsSinceGraduation int `json:"yearsSinceGraduation"`
	ProfileCompletion    int `json:"profileCompletion"`
}

// FromAlumni converts a models.Alumni to an AlumniResponse
func FromAlumni(a *models.Alumni, now time.Time) AlumniResponse {
	return AlumniResponse{
		Alumni:               *a,
		YearsSinceGraduation: a.YearsSinceGraduation(now),
		ProfileCompletion:    a.ProfileCompletion(),
	}
}

// FromAlumniList converts a page of alumni records
func FromAlumniList(alumni []models.Alumni, now time.Time) []AlumniResponse {
	out := make([]AlumniResponse, 0, len(alumni))
	for i := range alumni {
		out = append(out, FromAlumni(&alumni[i], now))
	}
	return out
}

// DegreeCount is one degree bucket in the alumni statistics
type DegreeCount struct {
	Degree string `json:"degree"`
	Count  int64  `json:"count"`
}

// YearCount is one graduation-year bucket in the alumni statistics
type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

// AlumniOverview summarizes the active alumni population
type AlumniOverview struct {
	TotalAlumni       int64   `json:"totalAlumni"`
	AvgGraduationYear float64 `json:"avgGraduationYear"`
}

// AlumniStats is the alumni statistics payload
type AlumniStats struct {
	Overview AlumniOverview `json:"overview"`
	ByDegree []DegreeCount  `json:"byDegree"`
	ByYear   []YearCount    `json:"byYear"`
}

package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Degrees offered by the university; the degree field is a closed set.
var ValidDegrees = []string{
	"Computer Science",
	"Business Administration",
	"Electrical Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
	"Economics",
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"English Literature",
	"Other",
}

// DefaultProfileImage is used when no profile image is supplied
const DefaultProfileImage = "https://via.placeholder.com/150"

// SocialLinks holds per-platform profile URLs
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Alumni represents an alumni record
type Alumni struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	GraduationYear  int         `json:"graduationYear"`
	Degree          string      `json:"degree"`
	CurrentPosition string      `json:"currentPosition,omitempty"`
	Company         string      `json:"company,omitempty"`
	Location        string      `json:"location,omitempty"`
	ProfileImage    string      `json:"profileImage"`
	Bio             string      `json:"bio,omitempty"`
	Skills          []string    `json:"skills"`
	SocialLinks     SocialLinks `json:"socialLinks"`
	IsActive        bool        `json:"isActive"`
	JoinedAt        time.Time   `json:"joinedAt"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// YearsSinceGraduation returns the whole years elapsed since graduation
func (a *Alumni) YearsSinceGraduation(now time.Time) int {
	return now.Year() - a.GraduationYear
}

// ProfileCompletion returns the percentage of profile fields that are set
func (a *Alumni) ProfileCompletion() int {
	fields := []string{
		a.Name, a.Email, a.Degree,
		a.CurrentPosition, a.Company, a.Location, a.Bio,
	}

	completed := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			completed++
		}
	}
	if a.GraduationYear != 0 {
		completed++
	}

	total := len(fields) + 1
	return (completed*100 + total/2) / total
}

// NormalizeName capitalizes the first letter of each word and lower-cases
// the rest, matching how names are stored.
func NormalizeName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

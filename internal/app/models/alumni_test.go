package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ahmed khan", "Ahmed Khan"},
		{"FATIMA MALIK", "Fatima Malik"},
		{"  usman   tariq  ", "Usman Tariq"},
		{"ümit öztürk", "Ümit Öztürk"},
		{"a", "A"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in))
	}
}

func TestYearsSinceGraduation(t *testing.T) {
	a := Alumni{GraduationYear: 2018}
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 8, a.YearsSinceGraduation(now))
}

func TestProfileCompletion(t *testing.T) {
	full := Alumni{
		Name:            "Ahmed Khan",
		Email:           "ahmed@example.com",
		GraduationYear:  2018,
		Degree:          "Computer Science",
		CurrentPosition: "Engineer",
		Company:         "Systems Limited",
		Location:        "Lahore",
		Bio:             "Backend developer",
	}
	assert.Equal(t, 100, full.ProfileCompletion())

	half := Alumni{
		Name:           "Ahmed Khan",
		Email:          "ahmed@example.com",
		GraduationYear: 2018,
		Degree:         "Computer Science",
	}
	assert.Equal(t, 50, half.ProfileCompletion())

	empty := Alumni{}
	assert.Equal(t, 0, empty.ProfileCompletion())
}

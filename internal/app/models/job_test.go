package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysSincePosted(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	j := Job{CreatedAt: now.Add(-49 * time.Hour)}
	assert.Equal(t, 3, j.DaysSincePosted(now))

	fresh := Job{CreatedAt: now.Add(-time.Hour)}
	assert.Equal(t, 1, fresh.DaysSincePosted(now))
}

func TestIsDeadlinePassed(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Job{ApplicationDeadline: &past}).IsDeadlinePassed(now))
	assert.False(t, (&Job{ApplicationDeadline: &future}).IsDeadlinePassed(now))
	assert.False(t, (&Job{}).IsDeadlinePassed(now))
}

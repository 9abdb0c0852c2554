package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ahmed.khan@example.com",
		"a@b.co",
		"first-last@sub.domain.pk",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidTime(t *testing.T) {
	assert.True(t, IsValidTime("09:30"))
	assert.True(t, IsValidTime("9:30"))
	assert.True(t, IsValidTime("23:59"))
	assert.True(t, IsValidTime("00:00"))

	assert.False(t, IsValidTime("24:00"))
	assert.False(t, IsValidTime("12:60"))
	assert.False(t, IsValidTime("noon"))
	assert.False(t, IsValidTime(""))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("http://example.com"))
	assert.True(t, IsValidURL("https://example.com/path?q=1"))
	assert.False(t, IsValidURL("ftp://example.com"))
	assert.False(t, IsValidURL("example.com"))
}

func TestSocialLinkPatterns(t *testing.T) {
	assert.True(t, CompiledPatterns.LinkedIn.MatchString("https://www.linkedin.com/in/ahmed"))
	assert.True(t, CompiledPatterns.LinkedIn.MatchString("http://linkedin.com/in/ahmed"))
	assert.False(t, CompiledPatterns.LinkedIn.MatchString("https://twitter.com/ahmed"))

	assert.True(t, CompiledPatterns.Twitter.MatchString("https://twitter.com/ahmed"))
	assert.True(t, CompiledPatterns.GitHub.MatchString("https://github.com/ahmed"))
	assert.False(t, CompiledPatterns.GitHub.MatchString("https://gitlab.com/ahmed"))
}

func TestOneOf(t *testing.T) {
	set := []string{"networking", "career", "social"}
	assert.True(t, OneOf("career", set))
	assert.False(t, OneOf("Career", set))
	assert.False(t, OneOf("", set))
}

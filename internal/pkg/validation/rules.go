package validation

import "regexp"

// Validation rule patterns
var (
	// EmailPattern matches the address shape accepted across the portal
	EmailPattern = `^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`

	// TimePattern matches 24h clock times in HH:MM form
	TimePattern = `^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`

	// PhonePattern matches international phone numbers without separators
	PhonePattern = `^\+?[1-9][0-9]{0,15}$`

	// URLPattern matches any http(s) URL
	URLPattern = `^https?://.*`

	// Per-platform social link patterns
	LinkedInPattern = `^https?://(www\.)?linkedin\.com/.*`
	TwitterPattern  = `^https?://(www\.)?twitter\.com/.*`
	GitHubPattern   = `^https?://(www\.)?github\.com/.*`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Time     *regexp.Regexp
	Phone    *regexp.Regexp
	URL      *regexp.Regexp
	LinkedIn *regexp.Regexp
	Twitter  *regexp.Regexp
	GitHub   *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Time:     regexp.MustCompile(TimePattern),
	Phone:    regexp.MustCompile(PhonePattern),
	URL:      regexp.MustCompile(URLPattern),
	LinkedIn: regexp.MustCompile(LinkedInPattern),
	Twitter:  regexp.MustCompile(TwitterPattern),
	GitHub:   regexp.MustCompile(GitHubPattern),
}

// IsValidEmail reports whether the address matches EmailPattern
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidTime reports whether the value is an HH:MM clock time
func IsValidTime(value string) bool {
	return CompiledPatterns.Time.MatchString(value)
}

// IsValidURL reports whether the value is an http(s) URL
func IsValidURL(value string) bool {
	return CompiledPatterns.URL.MatchString(value)
}

// OneOf reports whether value is a member of the allowed set
func OneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

package parse

import (
	"regexp"
	"strings"
)

// Contact holds the structured fields recognized in a contact block. Fields
// are empty strings when not found.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Location string `json:"location"`
}

var (
	emailRe    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	websiteRe  = regexp.MustCompile(`(?i)(https?://|www\.)[^\s]+`)

	// Tried in order; the first pattern that matches wins. City names may be
	// multiple capitalized words ("New York, NY").
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,?\s+[A-Z]{2}\b`), // City, ST
		regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s+[A-Z][a-z]+`), // City, State
	}
)

// ExtractContact pulls structured contact fields out of free-form text. The
// first non-empty line is taken as the name.
func ExtractContact(text string) Contact {
	name := ""
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			name = trimmed
			break
		}
	}

	return Contact{
		Name:     name,
		Email:    emailRe.FindString(text),
		Phone:    phoneRe.FindString(text),
		LinkedIn: linkedinRe.FindString(text),
		Location: extractLocation(text),
	}
}

// HasWebsite reports whether the text contains a URL that is not a LinkedIn
// profile link.
func HasWebsite(text string) bool {
	for _, match := range websiteRe.FindAllString(text, -1) {
		if !strings.Contains(strings.ToLower(match), "linkedin.com") {
			return true
		}
	}
	return false
}

func extractLocation(text string) string {
	for _, re := range locationRes {
		if match := re.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

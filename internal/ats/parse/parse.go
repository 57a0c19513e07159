// Package parse segments raw resume text into canonical sections and pulls
// structured contact fields out of free-form text.
package parse

import (
	"regexp"
	"strings"
)

// Canonical section keys. Every ParsedDocument carries all of them, empty
// when the section was not found.
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionAchievements   = "achievements"
)

// SectionOrder is the fixed declaration order of the canonical sections.
var SectionOrder = []string{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionCertifications,
	SectionProjects,
	SectionAchievements,
}

// Metadata describes the source file of a parsed document.
type Metadata struct {
	PageCount int    `json:"pageCount"`
	WordCount int    `json:"wordCount"`
	FileName  string `json:"fileName"`
}

// ParsedDocument is the immutable result of segmenting extracted resume text.
type ParsedDocument struct {
	FullText string            `json:"fullText"`
	Sections map[string]string `json:"sections"`
	Metadata Metadata          `json:"metadata"`
}

// contactScanLimit bounds how many leading lines are treated as the contact
// block when no section header interrupts them.
const contactScanLimit = 10

// Header patterns are tried in SectionOrder; the first match wins. Lines are
// trimmed before matching, so patterns anchor at the start of the content.
var sectionPatterns = []struct {
	key string
	re  *regexp.Regexp
}{
	{SectionContact, regexp.MustCompile(`(?i)^(contact|personal\s+info|contact\s+info)`)},
	{SectionSummary, regexp.MustCompile(`(?i)^(summary|professional\s+summary|objective|profile|about\s+me|career\s+objective)`)},
	{SectionExperience, regexp.MustCompile(`(?i)^(experience|work\s+experience|employment|professional\s+experience|work\s+history)`)},
	{SectionEducation, regexp.MustCompile(`(?i)^(education|academic|qualifications|educational\s+background)`)},
	{SectionSkills, regexp.MustCompile(`(?i)^(skills|technical\s+skills|core\s+competencies|expertise|proficiencies)`)},
	{SectionCertifications, regexp.MustCompile(`(?i)^(certifications?|licenses?|credentials|professional\s+certifications?)`)},
	{SectionProjects, regexp.MustCompile(`(?i)^(projects?|personal\s+projects?|key\s+projects?|portfolio)`)},
	{SectionAchievements, regexp.MustCompile(`(?i)^(achievements?|accomplishments?|awards?|honors?|recognition)`)},
}

// NewDocument segments fullText and wraps it with metadata. pageCount is
// clamped to at least 1.
func NewDocument(fullText, fileName string, pageCount int) ParsedDocument {
	if pageCount < 1 {
		pageCount = 1
	}
	return ParsedDocument{
		FullText: fullText,
		Sections: Segment(fullText),
		Metadata: Metadata{
			PageCount: pageCount,
			WordCount: len(strings.Fields(fullText)),
			FileName:  fileName,
		},
	}
}

// Segment splits fullText into the canonical sections. The leading run of up
// to contactScanLimit non-header lines becomes the contact block; after that,
// each header line opens a section that absorbs following non-blank lines
// until the next header. Unrecognized sections stay empty strings.
func Segment(fullText string) map[string]string {
	sections := make(map[string]string, len(SectionOrder))
	for _, key := range SectionOrder {
		sections[key] = ""
	}

	lines := strings.Split(fullText, "\n")

	var contactLines []string
	start := 0
	limit := len(lines)
	if limit > contactScanLimit {
		limit = contactScanLimit
	}
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if matchHeader(line) != "" {
			break
		}
		contactLines = append(contactLines, line)
		start = i + 1
	}
	sections[SectionContact] = strings.Join(contactLines, "\n")

	current := ""
	var content []string
	flush := func() {
		if current != "" {
			sections[current] = strings.Join(content, "\n")
		}
	}
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if key := matchHeader(line); key != "" {
			flush()
			current = key
			content = nil
			continue
		}
		if current != "" {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

func matchHeader(line string) string {
	for _, p := range sectionPatterns {
		if p.re.MatchString(line) {
			return p.key
		}
	}
	return ""
}

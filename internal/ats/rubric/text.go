package rubric

import (
	"regexp"
	"strings"

	"ats-backend/internal/ats/parse"
)

// TextExtractor derives Evidence from a segmented PDF document. Counts that
// the structured form knows exactly (entries, skills) are estimated from
// textual markers here.
type TextExtractor struct {
	Doc parse.ParsedDocument
}

var (
	dateRangeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d{4}\s*[-–]\s*(\d{4}|present)`),
		regexp.MustCompile(`\d{1,2}/\d{4}`),
		regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}`),
	}
	degreeRe   = regexp.MustCompile(`(?i)(bachelor|master|phd|associate|diploma|b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?b\.?a\.?)`)
	gpaRe      = regexp.MustCompile(`(?i)gpa|grade`)
	numberRe   = regexp.MustCompile(`\d+%?`)
	digitRe    = regexp.MustCompile(`\d`)
	advancedRe = regexp.MustCompile(`(?i)advanced|expert`)
	bulletRe   = regexp.MustCompile(`^[•\-\*]`)
)

// Extract implements Extractor.
func (e TextExtractor) Extract(vocab Vocabulary) Evidence {
	doc := e.Doc
	sections := doc.Sections

	contactText := sections[parse.SectionContact]
	contact := parse.ExtractContact(contactText)

	summaryText := strings.TrimSpace(sections[parse.SectionSummary])
	experienceText := strings.TrimSpace(sections[parse.SectionExperience])
	skillsText := strings.TrimSpace(sections[parse.SectionSkills])
	educationText := strings.TrimSpace(sections[parse.SectionEducation])

	fullLower := strings.ToLower(doc.FullText)

	filled := 0
	for _, key := range parse.SectionOrder {
		if strings.TrimSpace(sections[key]) != "" {
			filled++
		}
	}

	return Evidence{
		Contact: ContactEvidence{
			HasName:     contact.Name != "",
			HasEmail:    contact.Email != "",
			EmailHasAt:  strings.Contains(contact.Email, "@"),
			HasPhone:    contact.Phone != "",
			HasLocation: contact.Location != "",
			HasLinkedIn: contact.LinkedIn != "",
			HasWebsite:  parse.HasWebsite(contactText),
		},
		Summary: SummaryEvidence{
			Present:       len(summaryText) >= 20,
			WordCount:     len(strings.Fields(summaryText)),
			HasActionWord: containsAny(summaryText, vocab.ActionWords),
			HasNumber:     digitRe.MatchString(summaryText),
		},
		Experience: ExperienceEvidence{
			Present:       len(experienceText) >= 50,
			Entries:       countEntries(experienceText, dateRangeRes),
			HasActionWord: containsAny(experienceText, vocab.ActionWords),
			HasQuantified: numberRe.MatchString(experienceText),
			HasDetail:     hasDetailedContent(experienceText),
		},
		Skills: SkillsEvidence{
			Present:        len(skillsText) >= 20,
			Count:          countSkillTokens(skillsText),
			KeywordMatches: countMatches(skillsText, vocab.SkillTerms),
			HasAdvanced:    advancedRe.MatchString(skillsText),
		},
		Education: EducationEvidence{
			Present:    len(educationText) >= 20,
			Entries:    countEntries(educationText, []*regexp.Regexp{degreeRe}),
			GPAEntries: boolToInt(gpaRe.MatchString(educationText)),
			HasDegree:  degreeRe.MatchString(educationText),
		},
		Keywords: KeywordEvidence{
			ActionWordCount: countMatches(doc.FullText, vocab.ActionWords),
			SkillTermCount:  countMatches(doc.FullText, vocab.SkillTerms),
		},
		Document: DocumentEvidence{
			Empty:          strings.TrimSpace(doc.FullText) == "",
			PageCount:      doc.Metadata.PageCount,
			WordCount:      doc.Metadata.WordCount,
			FilledSections: filled,
			HasNonASCII:    hasNonASCII(fullLower),
		},
	}
}

// countEntries estimates how many entries a section holds by counting marker
// matches (date ranges for experience, degree tokens for education). A
// non-empty section always counts as at least one entry.
func countEntries(text string, markers []*regexp.Regexp) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	total := 0
	for _, re := range markers {
		total += len(re.FindAllString(text, -1))
	}
	if total == 0 {
		return 1
	}
	return total
}

func hasDetailedContent(text string) bool {
	bullets := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if bulletRe.MatchString(line) {
			bullets++
		}
		if len(line) > 50 {
			return true
		}
	}
	return bullets >= 2
}

// countSkillTokens splits a skills section on common list separators.
func countSkillTokens(text string) int {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '•' || r == '|' || r == ';'
	})
	count := 0
	for _, tok := range tokens {
		if strings.TrimSpace(tok) != "" {
			count++
		}
	}
	return count
}

func containsAny(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func countMatches(text string, words []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, w := range words {
		if strings.Contains(lower, strings.ToLower(w)) {
			count++
		}
	}
	return count
}

func hasNonASCII(text string) bool {
	for _, r := range text {
		if r > 127 {
			return true
		}
	}
	return false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

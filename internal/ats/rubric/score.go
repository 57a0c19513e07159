package rubric

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// Status classifies a category score against its thresholds.
type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Category display names, in fixed declaration order.
const (
	CategoryContact    = "Contact Information"
	CategorySummary    = "Professional Summary"
	CategoryExperience = "Work Experience"
	CategorySkills     = "Skills"
	CategoryEducation  = "Education"
	CategoryKeywords   = "Keyword Optimization"
	CategoryFormatting = "Formatting & Layout"
)

// CategoryResult is the outcome of scoring one rubric category.
type CategoryResult struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	MaxScore    int      `json:"maxScore"`
	Status      Status   `json:"status"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Result is the aggregated analysis over all seven categories.
type Result struct {
	OverallScore   int              `json:"overallScore"`
	Categories     []CategoryResult `json:"categories"`
	CriticalIssues []string         `json:"criticalIssues"`
	Improvements   []string         `json:"improvements"`
}

const maxImprovements = 10

type scorer func(Evidence, Vocabulary) CategoryResult

// Scorers in category-declaration order. Each is independent of the others.
var scorers = []scorer{
	scoreContact,
	scoreSummary,
	scoreExperience,
	scoreSkills,
	scoreEducation,
	scoreKeywords,
	scoreFormatting,
}

// Analyze extracts evidence once, runs the seven category scorers
// concurrently and aggregates their results.
func Analyze(ex Extractor, vocab Vocabulary) Result {
	ev := ex.Extract(vocab)

	categories := make([]CategoryResult, len(scorers))
	var wg sync.WaitGroup
	for i, score := range scorers {
		wg.Add(1)
		go func(i int, score scorer) {
			defer wg.Done()
			categories[i] = score(ev, vocab)
		}(i, score)
	}
	wg.Wait()

	return Aggregate(categories)
}

// Aggregate computes the overall score and collects critical issues and
// improvements from per-category results.
func Aggregate(categories []CategoryResult) Result {
	total, maxTotal := 0, 0
	for _, cat := range categories {
		total += cat.Score
		maxTotal += cat.MaxScore
	}
	overall := 0
	if maxTotal > 0 {
		overall = int(math.Round(float64(total) / float64(maxTotal) * 100))
	}

	critical := make([]string, 0)
	improvements := make([]string, 0)
	for _, cat := range categories {
		if cat.Status == StatusError {
			critical = append(critical, cat.Issues...)
		}
		for _, s := range cat.Suggestions {
			if len(improvements) < maxImprovements {
				improvements = append(improvements, s)
			}
		}
	}

	return Result{
		OverallScore:   overall,
		Categories:     categories,
		CriticalIssues: critical,
		Improvements:   improvements,
	}
}

// finish clamps the accumulated score into [0, maxScore] and derives the
// status from the good/warn thresholds.
func finish(name string, score, maxScore, good, warn int, issues, suggestions []string) CategoryResult {
	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	status := StatusError
	switch {
	case score >= good:
		status = StatusGood
	case score >= warn:
		status = StatusWarning
	}
	if issues == nil {
		issues = []string{}
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return CategoryResult{
		Name:        name,
		Score:       score,
		MaxScore:    maxScore,
		Status:      status,
		Issues:      issues,
		Suggestions: suggestions,
	}
}

func scoreContact(ev Evidence, _ Vocabulary) CategoryResult {
	c := ev.Contact
	var issues, suggestions []string
	score := 0

	if c.HasName {
		score += 3
	} else {
		issues = append(issues, "Full name not detected")
	}
	if c.HasEmail {
		score += 3
		if !c.EmailHasAt {
			issues = append(issues, "Email format appears invalid")
		}
	} else {
		issues = append(issues, "Email address not found")
	}
	if c.HasPhone {
		score += 3
	} else {
		issues = append(issues, "Phone number not found")
	}
	if c.HasLocation {
		score += 3
	} else {
		suggestions = append(suggestions, "Consider adding your location")
	}
	if c.HasLinkedIn {
		score += 2
	} else {
		suggestions = append(suggestions, "Adding LinkedIn profile increases credibility")
	}
	if c.HasWebsite {
		score += 1
	}

	return finish(CategoryContact, score, 15, 12, 8, issues, suggestions)
}

func scoreSummary(ev Evidence, _ Vocabulary) CategoryResult {
	s := ev.Summary
	if !s.Present {
		return finish(CategorySummary, 0, 15, 12, 8,
			[]string{"Professional summary is missing or too short"},
			[]string{"Add a 2-4 sentence summary highlighting key qualifications"})
	}

	var suggestions []string
	score := 5

	switch {
	case s.WordCount >= 30 && s.WordCount <= 100:
		score += 5
	case s.WordCount < 30:
		suggestions = append(suggestions, "Summary is too short. Aim for 30-100 words")
	default:
		suggestions = append(suggestions, "Summary is too long. Keep it under 100 words")
	}

	if s.HasActionWord {
		score += 3
	} else {
		suggestions = append(suggestions, `Include action verbs like "Led", "Developed", "Achieved"`)
	}
	if s.HasNumber {
		score += 2
	} else {
		suggestions = append(suggestions, `Add quantifiable achievements (e.g., "5+ years experience")`)
	}

	return finish(CategorySummary, score, 15, 12, 8, nil, suggestions)
}

func scoreExperience(ev Evidence, _ Vocabulary) CategoryResult {
	e := ev.Experience
	if !e.Present {
		return finish(CategoryExperience, 0, 25, 20, 12,
			[]string{"Work experience section is missing or too brief"},
			[]string{"Add detailed work experience with job titles, companies, and dates"})
	}

	var suggestions []string
	issues := append([]string(nil), e.EntryIssues...)

	score := e.Entries * 5
	if score > 15 {
		score = 15
	}

	if e.HasActionWord {
		score += 4
	} else {
		suggestions = append(suggestions, `Use action verbs like "Managed", "Developed", "Increased"`)
	}
	if e.HasQuantified {
		score += 3
	} else {
		suggestions = append(suggestions, `Add metrics and numbers (e.g., "increased efficiency by 30%")`)
	}
	if e.HasDetail {
		score += 3
	} else {
		suggestions = append(suggestions, "Add detailed descriptions with 2-4 bullet points per role")
	}

	return finish(CategoryExperience, score, 25, 20, 12, issues, suggestions)
}

func scoreSkills(ev Evidence, vocab Vocabulary) CategoryResult {
	s := ev.Skills
	if !s.Present {
		return finish(CategorySkills, 0, 15, 12, 8,
			[]string{"Skills section is missing or too brief"},
			[]string{"Add a dedicated skills section with 8-15 relevant skills"})
	}

	var suggestions []string
	score := 0

	switch {
	case s.Count >= 10:
		score += 8
	case s.Count >= 5:
		score += 5
	default:
		score += 2
	}

	switch {
	case s.KeywordMatches >= 5:
		score += 5
	case s.KeywordMatches >= 2:
		score += 3
	}
	if s.KeywordMatches < 3 {
		suggestions = append(suggestions,
			"Include more industry-standard keywords like: "+strings.Join(vocab.SkillTerms[:5], ", "))
	}

	if s.HasAdvanced {
		score += 2
	} else {
		suggestions = append(suggestions, `Mark your strongest skills as "Advanced" or "Expert"`)
	}

	return finish(CategorySkills, score, 15, 12, 8, nil, suggestions)
}

func scoreEducation(ev Evidence, _ Vocabulary) CategoryResult {
	e := ev.Education
	if !e.Present {
		return finish(CategoryEducation, 0, 10, 8, 5,
			[]string{"Education section is missing"},
			[]string{"Add your educational background with institution, degree, and dates"})
	}

	var suggestions []string
	issues := append([]string(nil), e.EntryIssues...)

	score := e.Entries * 4
	if score > 8 {
		score = 8
	}
	score += e.GPAEntries

	if e.GPAEntries == 0 {
		suggestions = append(suggestions, "Consider adding GPA if it's 3.0 or higher")
	}
	if !e.HasDegree {
		suggestions = append(suggestions, "Ensure degree title is clearly stated")
	}

	return finish(CategoryEducation, score, 10, 8, 5, issues, suggestions)
}

func scoreKeywords(ev Evidence, _ Vocabulary) CategoryResult {
	if ev.Document.Empty {
		return finish(CategoryKeywords, 0, 10, 8, 5,
			[]string{"No readable text to scan for keywords"},
			[]string{"Upload a resume with selectable text content"})
	}

	k := ev.Keywords
	var suggestions []string
	score := 0

	switch {
	case k.ActionWordCount >= 10:
		score += 5
	case k.ActionWordCount >= 5:
		score += 3
	case k.ActionWordCount >= 2:
		score += 1
	}
	if k.ActionWordCount < 5 {
		suggestions = append(suggestions,
			fmt.Sprintf("Use more action words. Found %d, aim for 10+", k.ActionWordCount))
	}

	switch {
	case k.SkillTermCount >= 8:
		score += 5
	case k.SkillTermCount >= 4:
		score += 3
	case k.SkillTermCount >= 2:
		score += 1
	}
	if k.SkillTermCount < 5 {
		suggestions = append(suggestions,
			fmt.Sprintf("Include more industry keywords. Found %d, aim for 8+", k.SkillTermCount))
	}

	return finish(CategoryKeywords, score, 10, 8, 5, nil, suggestions)
}

func scoreFormatting(ev Evidence, _ Vocabulary) CategoryResult {
	d := ev.Document
	if d.Empty {
		return finish(CategoryFormatting, 0, 10, 8, 5,
			[]string{"Document contains no readable text"},
			[]string{"Upload a resume with selectable text content"})
	}

	var issues, suggestions []string
	score := 0

	if d.PageCount <= 2 {
		score += 3
	} else {
		issues = append(issues, fmt.Sprintf("Resume is %d pages. ATS prefers 1-2 pages", d.PageCount))
	}

	switch {
	case d.WordCount >= 300 && d.WordCount <= 800:
		score += 2
	case d.WordCount < 300:
		suggestions = append(suggestions, "Resume content is too brief. Add more detail")
	default:
		suggestions = append(suggestions, "Resume may be too long. Consider condensing content")
	}

	switch {
	case d.FilledSections >= 5:
		score += 3
	case d.FilledSections >= 3:
		score += 2
	default:
		suggestions = append(suggestions, "Add more standard sections for complete ATS parsing")
	}

	if !d.HasNonASCII {
		score += 2
	} else {
		suggestions = append(suggestions, "Remove special characters that may confuse ATS systems")
	}

	return finish(CategoryFormatting, score, 10, 8, 5, issues, suggestions)
}

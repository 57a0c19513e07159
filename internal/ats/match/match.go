// Package match computes keyword overlap between resume text and a job
// description.
package match

import (
	"math"
	"strings"
	"unicode"

	"ats-backend/internal/ats/rubric"
)

// Result is the outcome of one keyword comparison. Keyword lists keep the
// first-occurrence order of the job-description token stream and are capped
// at maxKeywords entries each.
type Result struct {
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	MatchPercentage int      `json:"matchPercentage"`
}

const (
	minTokenLen = 4
	maxKeywords = 30
)

// Keywords compares resumeText against jobDescription using the stopword
// list of the given vocabulary. The job description is lowercased, stripped
// of punctuation, tokenized, deduplicated and stopword-filtered; each
// remaining keyword is tested by substring containment in the lowercased
// resume text.
func Keywords(resumeText, jobDescription string, vocab rubric.Vocabulary) Result {
	stop := make(map[string]struct{}, len(vocab.JobStopwords))
	for _, w := range vocab.JobStopwords {
		stop[w] = struct{}{}
	}

	seen := make(map[string]struct{})
	var keywords []string
	for _, token := range tokenize(jobDescription) {
		if len(token) < minTokenLen {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if _, skip := stop[token]; skip {
			continue
		}
		keywords = append(keywords, token)
	}

	resumeLower := strings.ToLower(resumeText)
	matched := make([]string, 0)
	missing := make([]string, 0)
	for _, kw := range keywords {
		if strings.Contains(resumeLower, kw) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	percentage := 0
	if len(keywords) > 0 {
		percentage = int(math.Round(float64(len(matched)) / float64(len(keywords)) * 100))
	}

	return Result{
		MatchedKeywords: truncate(matched, maxKeywords),
		MissingKeywords: truncate(missing, maxKeywords),
		MatchPercentage: percentage,
	}
}

// tokenize lowercases text and splits it on anything that is not a letter,
// digit or underscore.
func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

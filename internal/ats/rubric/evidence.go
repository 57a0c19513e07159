// Package rubric scores a resume against the fixed seven-category ATS rubric.
// A single scoring engine consumes an Evidence record; the two Extractor
// implementations (segmented PDF text and structured editor form) produce
// Evidence from their respective inputs, so both paths share one rubric.
package rubric

// ContactEvidence captures presence signals for the contact category.
type ContactEvidence struct {
	HasName     bool
	HasEmail    bool
	EmailHasAt  bool
	HasPhone    bool
	HasLocation bool
	HasLinkedIn bool
	HasWebsite  bool
}

// SummaryEvidence captures signals for the professional summary category.
type SummaryEvidence struct {
	Present       bool
	WordCount     int
	HasActionWord bool
	HasNumber     bool
}

// ExperienceEvidence captures signals for the work experience category.
// EntryIssues carries per-entry missing-field findings; only the form path
// populates it, the text path cannot attribute fields to entries.
type ExperienceEvidence struct {
	Present       bool
	Entries       int
	HasActionWord bool
	HasQuantified bool
	HasDetail     bool
	EntryIssues   []string
}

// SkillsEvidence captures signals for the skills category.
type SkillsEvidence struct {
	Present        bool
	Count          int
	KeywordMatches int
	HasAdvanced    bool
}

// EducationEvidence captures signals for the education category. As with
// experience, EntryIssues is form-path only.
type EducationEvidence struct {
	Present     bool
	Entries     int
	GPAEntries  int
	HasDegree   bool
	EntryIssues []string
}

// KeywordEvidence counts vocabulary hits across the whole document.
type KeywordEvidence struct {
	ActionWordCount int
	SkillTermCount  int
}

// DocumentEvidence captures whole-document layout signals.
type DocumentEvidence struct {
	Empty          bool
	PageCount      int
	WordCount      int
	FilledSections int
	HasNonASCII    bool
}

// Evidence is the extractor-neutral intermediate record the rubric scores.
type Evidence struct {
	Contact    ContactEvidence
	Summary    SummaryEvidence
	Experience ExperienceEvidence
	Skills     SkillsEvidence
	Education  EducationEvidence
	Keywords   KeywordEvidence
	Document   DocumentEvidence
}

// Extractor turns one resume representation into an Evidence record.
type Extractor interface {
	Extract(vocab Vocabulary) Evidence
}

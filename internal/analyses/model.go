package analyses

import (
	"time"

	"ats-backend/internal/ats/parse"
	"ats-backend/internal/ats/rubric"
)

// Analysis statuses. Scoring is synchronous, so an analysis is terminal the
// moment it is persisted.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Analysis is one scored pass over an uploaded resume document.
type Analysis struct {
	ID                string         `json:"id"`
	UserID            string         `json:"userId"`
	DocumentID        string         `json:"documentId"`
	Status            string         `json:"status"`
	VocabularyVersion string         `json:"vocabularyVersion"`
	Result            *rubric.Result `json:"result,omitempty"`
	ErrorMessage      string         `json:"errorMessage,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`

	// Parsed is the segmented document behind a fresh analysis. It feeds the
	// optimized-preview projection and is not persisted; reads from history
	// return the rubric result only.
	Parsed *parse.ParsedDocument `json:"-"`
}

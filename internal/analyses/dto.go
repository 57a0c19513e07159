package analyses

import (
	"time"

	"ats-backend/internal/ats/parse"
	"ats-backend/internal/ats/rubric"
	"ats-backend/resume/model"
)

type analyzeRequest struct {
	DocumentID string `json:"documentId"`
}

type scoreRequest struct {
	Resume model.Resume `json:"resume"`
}

type keywordMatchRequest struct {
	ResumeText     string `json:"resumeText"`
	DocumentID     string `json:"documentId"`
	JobDescription string `json:"jobDescription"`
}

// AnalysisResponse is the outward-facing representation of an analysis.
// ParsedDocument is only set on a fresh analysis; the preview renderer
// re-projects its sections into the optimized single-column layout.
type AnalysisResponse struct {
	AnalysisID        string                `json:"analysisId"`
	DocumentID        string                `json:"documentId"`
	Status            string                `json:"status"`
	VocabularyVersion string                `json:"vocabularyVersion"`
	Result            *rubric.Result        `json:"result,omitempty"`
	ParsedDocument    *parse.ParsedDocument `json:"parsedDocument,omitempty"`
	ErrorMessage      string                `json:"errorMessage,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
}

func toResponse(analysis Analysis) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID:        analysis.ID,
		DocumentID:        analysis.DocumentID,
		Status:            analysis.Status,
		VocabularyVersion: analysis.VocabularyVersion,
		Result:            analysis.Result,
		ParsedDocument:    analysis.Parsed,
		ErrorMessage:      analysis.ErrorMessage,
		CreatedAt:         analysis.CreatedAt,
	}
}

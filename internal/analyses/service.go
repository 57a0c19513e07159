package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/ats/match"
	"ats-backend/internal/ats/parse"
	"ats-backend/internal/ats/rubric"
	"ats-backend/internal/documents"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/resume/model"
)

// Service scores resumes against the rubric and records the results.
type Service struct {
	Repo  Repo
	Docs  *documents.Service
	Vocab rubric.Vocabulary
}

// AnalyzeDocument runs the full text-path analysis for a stored document. An
// empty documentID targets the user's current document. The analysis is
// persisted before it is returned, failed passes included.
func (s *Service) AnalyzeDocument(ctx context.Context, userID, documentID string) (Analysis, error) {
	if userID == "" {
		return Analysis{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}

	var (
		doc documents.Document
		err error
	)
	if documentID == "" {
		doc, err = s.Docs.Current(ctx, userID)
	} else {
		doc, err = s.Docs.Get(ctx, userID, documentID)
	}
	if err != nil {
		if isDocNotFound(err) {
			return Analysis{}, ErrDocumentNotFound
		}
		return Analysis{}, err
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	text, err := s.Docs.Text(ctx, doc)
	if err != nil {
		metrics.IncAnalysisFailed()
		failed := Analysis{
			ID:                uuid.NewString(),
			UserID:            userID,
			DocumentID:        doc.ID,
			Status:            StatusFailed,
			VocabularyVersion: s.Vocab.Version,
			ErrorMessage:      "text extraction failed",
			CreatedAt:         time.Now().UTC(),
		}
		if createErr := s.Repo.Create(ctx, failed); createErr != nil {
			telemetry.Error("analysis.persist_failed", map[string]any{
				"analysis_id": failed.ID,
				"error":       createErr.Error(),
			})
		}
		return Analysis{}, fmt.Errorf("extract document text: %w", err)
	}

	parsed := parse.NewDocument(text, doc.FileName, doc.PageCount)
	result := rubric.Analyze(rubric.TextExtractor{Doc: parsed}, s.Vocab)

	analysis := Analysis{
		ID:                uuid.NewString(),
		UserID:            userID,
		DocumentID:        doc.ID,
		Status:            StatusCompleted,
		VocabularyVersion: s.Vocab.Version,
		Result:            &result,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, err
	}
	analysis.Parsed = &parsed

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id":   analysis.ID,
		"document_id":   doc.ID,
		"user_id":       userID,
		"overall_score": result.OverallScore,
	})

	return analysis, nil
}

// ScoreResume scores the editor's structured resume directly. Nothing is
// persisted; the editor calls this on every change.
func (s *Service) ScoreResume(resume model.Resume) rubric.Result {
	return rubric.Analyze(rubric.FormExtractor{Resume: resume}, s.Vocab)
}

// KeywordMatch compares resume text against a job description. When
// resumeText is empty a documentID may name a stored document to read the
// text from instead.
func (s *Service) KeywordMatch(ctx context.Context, userID, resumeText, documentID, jobDescription string) (match.Result, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return match.Result{}, fmt.Errorf("%w: job description required", ErrInvalidInput)
	}

	if strings.TrimSpace(resumeText) == "" {
		if documentID == "" {
			return match.Result{}, fmt.Errorf("%w: resumeText or documentId required", ErrInvalidInput)
		}
		doc, err := s.Docs.Get(ctx, userID, documentID)
		if err != nil {
			if isDocNotFound(err) {
				return match.Result{}, ErrDocumentNotFound
			}
			return match.Result{}, err
		}
		text, err := s.Docs.Text(ctx, doc)
		if err != nil {
			return match.Result{}, fmt.Errorf("extract document text: %w", err)
		}
		resumeText = text
	}

	return match.Keywords(resumeText, jobDescription, s.Vocab), nil
}

// Get returns an analysis by ID, scoped to the owner.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	if userID == "" || analysisID == "" {
		return Analysis{}, fmt.Errorf("%w: user id and analysis id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, analysisID)
}

// List returns analyses for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func isDocNotFound(err error) bool {
	return errors.Is(err, documents.ErrNotFound)
}

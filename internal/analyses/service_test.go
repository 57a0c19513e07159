package analyses

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"ats-backend/internal/ats/rubric"
	"ats-backend/internal/documents"
	"ats-backend/internal/extract"
)

type fakeStore struct {
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) Save(_ context.Context, ownerID, fileName string, r io.Reader) (string, int64, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", err
	}
	key := ownerID + "/" + fileName
	s.objects[key] = data
	return key, int64(len(data)), extract.MimePDF, nil
}

func (s *fakeStore) SaveWithKey(_ context.Context, storageKey, _ string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.objects[storageKey] = data
	return int64(len(data)), nil
}

func (s *fakeStore) Open(_ context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := s.objects[storageKey]
	if !ok {
		return nil, errors.New("object not found: " + storageKey)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

const resumeText = `John Smith
john.smith@example.com
(555) 123-4567
New York, NY
Professional Summary
Experienced engineer with 8 years building distributed systems and leading teams.
Work Experience
Senior Engineer, Acme Corp, 2019 - Present
• Led migration to Kubernetes, reducing deploy time by 40%
Education
BS Computer Science, State University
Skills
Python, Go, Docker, SQL, Leadership`

// newTestService wires a service over in-memory repos with one extracted
// document already stored for the given user.
func newTestService(t *testing.T, userID string) (*Service, documents.Document) {
	t.Helper()

	store := newFakeStore()
	docsRepo := documents.NewMemoryRepo()
	now := time.Now().UTC()
	doc := documents.Document{
		ID:               "doc-1",
		UserID:           userID,
		FileName:         "resume.pdf",
		MimeType:         extract.MimePDF,
		SizeBytes:        1000,
		PageCount:        1,
		StorageProvider:  "local",
		StorageKey:       userID + "/resume.pdf",
		ExtractedTextKey: extract.ExtractedTextKey(userID + "/resume.pdf"),
		ExtractedAt:      &now,
		CreatedAt:        now,
	}
	if err := docsRepo.Create(context.Background(), doc); err != nil {
		t.Fatalf("seed document: %v", err)
	}
	store.objects[doc.ExtractedTextKey] = []byte(resumeText)

	svc := &Service{
		Repo:  NewMemoryRepo(),
		Docs:  &documents.Service{Store: store, Repo: docsRepo, StorageProvider: "local"},
		Vocab: rubric.DefaultVocabulary(),
	}
	return svc, doc
}

func TestAnalyzeDocumentCompletesAndPersists(t *testing.T) {
	svc, doc := newTestService(t, "guest:u1")

	analysis, err := svc.AnalyzeDocument(context.Background(), "guest:u1", doc.ID)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed", analysis.Status)
	}
	if analysis.Result == nil || len(analysis.Result.Categories) != 7 {
		t.Fatalf("result missing or incomplete: %+v", analysis.Result)
	}
	if analysis.VocabularyVersion != rubric.DefaultVocabulary().Version {
		t.Fatalf("vocabulary version = %s", analysis.VocabularyVersion)
	}
	if analysis.Parsed == nil || len(analysis.Parsed.Sections) != 8 {
		t.Fatalf("parsed document missing or incomplete: %+v", analysis.Parsed)
	}
	if analysis.Parsed.Sections["experience"] == "" {
		t.Fatalf("experience section not segmented")
	}

	stored, err := svc.Get(context.Background(), "guest:u1", analysis.ID)
	if err != nil {
		t.Fatalf("get persisted analysis: %v", err)
	}
	if stored.Result.OverallScore != analysis.Result.OverallScore {
		t.Fatalf("persisted score %d != returned %d",
			stored.Result.OverallScore, analysis.Result.OverallScore)
	}
}

func TestAnalyzeDocumentDefaultsToCurrent(t *testing.T) {
	svc, doc := newTestService(t, "guest:u1")

	analysis, err := svc.AnalyzeDocument(context.Background(), "guest:u1", "")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.DocumentID != doc.ID {
		t.Fatalf("document id = %s, want %s", analysis.DocumentID, doc.ID)
	}
}

func TestAnalyzeDocumentUnknownDocument(t *testing.T) {
	svc, _ := newTestService(t, "guest:u1")

	_, err := svc.AnalyzeDocument(context.Background(), "guest:u1", "no-such-doc")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("err = %v, want ErrDocumentNotFound", err)
	}
}

func TestAnalyzeDocumentExtractionFailureIsRecorded(t *testing.T) {
	svc, doc := newTestService(t, "guest:u1")
	// Drop the extracted copy and replace the binary with junk so the
	// re-extraction fallback fails too.
	store := svc.Docs.Store.(*fakeStore)
	delete(store.objects, doc.ExtractedTextKey)
	store.objects[doc.StorageKey] = []byte("junk")

	_, err := svc.AnalyzeDocument(context.Background(), "guest:u1", doc.ID)
	if err == nil {
		t.Fatal("expected extraction error")
	}

	failed, err := svc.List(context.Background(), "guest:u1", 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(failed) != 1 || failed[0].Status != StatusFailed {
		t.Fatalf("expected one failed analysis, got %+v", failed)
	}
	if failed[0].Result != nil {
		t.Fatalf("failed analysis must not carry a result")
	}
}

func TestScoreResume(t *testing.T) {
	svc, _ := newTestService(t, "guest:u1")

	result := svc.ScoreResume(resumeModelFixture())
	if len(result.Categories) != 7 {
		t.Fatalf("categories = %d, want 7", len(result.Categories))
	}
	if result.OverallScore <= 0 {
		t.Fatalf("overall score = %d, want > 0", result.OverallScore)
	}
}

func TestKeywordMatchValidation(t *testing.T) {
	svc, _ := newTestService(t, "guest:u1")
	ctx := context.Background()

	if _, err := svc.KeywordMatch(ctx, "guest:u1", "text", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing job description err = %v", err)
	}
	if _, err := svc.KeywordMatch(ctx, "guest:u1", "", "", "job text"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing resume source err = %v", err)
	}
	if _, err := svc.KeywordMatch(ctx, "guest:u1", "", "no-such-doc", "job text"); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("unknown document err = %v", err)
	}
}

func TestKeywordMatchFallsBackToDocument(t *testing.T) {
	svc, doc := newTestService(t, "guest:u1")

	result, err := svc.KeywordMatch(context.Background(), "guest:u1", "", doc.ID,
		"Looking for a Python developer with Docker experience")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if result.MatchPercentage == 0 {
		t.Fatalf("expected matches against the stored resume text")
	}
	for _, kw := range result.MatchedKeywords {
		if kw == "python" {
			return
		}
	}
	t.Fatalf("python not matched: %v", result.MatchedKeywords)
}

func TestGetScopedToOwner(t *testing.T) {
	svc, doc := newTestService(t, "guest:u1")

	analysis, err := svc.AnalyzeDocument(context.Background(), "guest:u1", doc.ID)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if _, err := svc.Get(context.Background(), "guest:other", analysis.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user get err = %v, want ErrNotFound", err)
	}
}

package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/extract"
	"ats-backend/internal/shared/storage/object"
	"ats-backend/internal/shared/telemetry"
)

// Service contains business logic for documents.
type Service struct {
	Store           object.ObjectStore
	Repo            DocumentsRepo
	StorageProvider string
}

// Upload validates the PDF, saves it to object storage, extracts its text
// layer and records the document. Extraction happens at upload time so that
// analyses never re-read the binary.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if userID == "" {
		return Document{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Document{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	extraction, err := extract.ExtractPDF(data)
	if err != nil {
		if errors.Is(err, extract.ErrInvalidPDF) {
			return Document{}, fmt.Errorf("%w: %v", ErrNotPDF, err)
		}
		return Document{}, err
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}
	if mimeType != extract.MimePDF {
		// pdfcpu already accepted the bytes; the sniffer can disagree on
		// PDFs with leading junk, so trust the parser.
		mimeType = extract.MimePDF
	}

	now := time.Now().UTC()
	extractedKey := extract.ExtractedTextKey(storageKey)
	if _, err := s.Store.SaveWithKey(ctx, extractedKey, "text/plain; charset=utf-8", strings.NewReader(extraction.Text)); err != nil {
		return Document{}, fmt.Errorf("persist extracted text: %w", err)
	}

	doc := Document{
		ID:               uuid.NewString(),
		UserID:           userID,
		FileName:         fileName,
		MimeType:         mimeType,
		SizeBytes:        size,
		PageCount:        extraction.PageCount,
		StorageProvider:  s.StorageProvider,
		StorageKey:       storageKey,
		ExtractedTextKey: extractedKey,
		ExtractedAt:      &now,
		CreatedAt:        now,
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	telemetry.Info("document.uploaded", map[string]any{
		"document_id": doc.ID,
		"user_id":     userID,
		"size_bytes":  size,
		"page_count":  doc.PageCount,
	})

	return doc, nil
}

// Current returns the most recently uploaded document for a user.
func (s *Service) Current(ctx context.Context, userID string) (Document, error) {
	if userID == "" {
		return Document{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// Get returns a document by ID, scoped to the owner.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	if userID == "" || documentID == "" {
		return Document{}, fmt.Errorf("%w: user id and document id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, documentID)
}

// List returns documents newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Text loads the extracted text layer for a document, re-extracting from the
// stored PDF when the derived copy is missing.
func (s *Service) Text(ctx context.Context, doc Document) (string, error) {
	if doc.ExtractedTextKey != "" {
		text, err := extract.ReadExtractedText(ctx, s.Store, doc.StorageKey)
		if err == nil {
			return text, nil
		}
		telemetry.Error("document.extracted_text_missing", map[string]any{
			"document_id": doc.ID,
			"error":       err.Error(),
		})
	}

	extraction, err := extract.ExtractText(ctx, s.Store, doc.StorageKey)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateExtraction(ctx, doc.UserID, doc.ID, extract.ExtractedTextKey(doc.StorageKey), time.Now().UTC()); err != nil {
		telemetry.Error("document.update_extraction_failed", map[string]any{
			"document_id": doc.ID,
			"error":       err.Error(),
		})
	}
	return extraction.Text, nil
}

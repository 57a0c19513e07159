// Package extract pulls the text layer out of uploaded PDF files. It is the
// boundary to the external PDF parsing collaborators: pdfcpu validates the
// file structure, ledongthuc/pdf reads the per-page text fragments.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"ats-backend/internal/shared/storage/object"
)

// MimePDF is the only content type accepted for analysis.
const MimePDF = "application/pdf"

// ErrInvalidPDF marks uploads that are not structurally valid PDF files.
// Extraction failures are terminal: the caller resets and re-uploads.
var ErrInvalidPDF = errors.New("invalid or corrupt PDF")

// Extraction is the result of reading a PDF text layer.
type Extraction struct {
	Text      string
	PageCount int
}

// ValidatePDF checks that data is a readable PDF and returns its page count.
func ValidatePDF(data []byte) (int, error) {
	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	return ctx.PageCount, nil
}

// ExtractPDF extracts the text layer from PDF bytes. Text fragments within a
// page are joined with single spaces, pages are joined with newlines.
func ExtractPDF(data []byte) (Extraction, error) {
	pageCount, err := ValidatePDF(data)
	if err != nil {
		return Extraction{}, err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		var fragments []string
		for _, text := range page.Content().Text {
			if text.S != "" {
				fragments = append(fragments, text.S)
			}
		}
		pages = append(pages, strings.Join(fragments, " "))
	}

	if pageCount < len(pages) {
		pageCount = len(pages)
	}

	return Extraction{
		Text:      strings.Join(pages, "\n"),
		PageCount: pageCount,
	}, nil
}

// ExtractText reads a stored PDF object, extracts its text and persists a
// derived .extracted.txt copy next to the original.
func ExtractText(ctx context.Context, store object.ObjectStore, fileKey string) (Extraction, error) {
	if err := ctx.Err(); err != nil {
		return Extraction{}, err
	}

	body, err := store.Open(ctx, fileKey)
	if err != nil {
		return Extraction{}, fmt.Errorf("extract text key=%s: %w", fileKey, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return Extraction{}, fmt.Errorf("extract text key=%s: read: %w", fileKey, err)
	}

	result, err := ExtractPDF(raw)
	if err != nil {
		return Extraction{}, fmt.Errorf("extract text key=%s: %w", fileKey, err)
	}

	extractedKey := ExtractedTextKey(fileKey)
	if _, err := store.SaveWithKey(ctx, extractedKey, "text/plain; charset=utf-8", strings.NewReader(result.Text)); err != nil {
		return Extraction{}, fmt.Errorf("extract text key=%s: %w", fileKey, err)
	}

	return result, nil
}

// ExtractedTextKey returns the storage key of the derived text copy.
func ExtractedTextKey(fileKey string) string {
	return fileKey + ".extracted.txt"
}

// ReadExtractedText loads a previously persisted text copy of a document.
func ReadExtractedText(ctx context.Context, store object.ObjectStore, fileKey string) (string, error) {
	body, err := store.Open(ctx, ExtractedTextKey(fileKey))
	if err != nil {
		return "", err
	}
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

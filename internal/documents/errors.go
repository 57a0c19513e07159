package documents

import "errors"

var (
	// ErrNotFound is returned when a document does not exist for the owner.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput marks rejected request input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotPDF is returned when an upload is not a readable PDF file.
	ErrNotPDF = errors.New("file is not a valid PDF")
)

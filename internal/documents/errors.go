package documents

import "errors"

// Ingestion failure taxonomy. Unsupported formats and a missing OCR
// credential are caller errors; OCR and parse failures are server-side.
var (
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrOCRUnavailable    = errors.New("ocr not configured")
	ErrOCRFailed         = errors.New("ocr failed")
	ErrParseFailed       = errors.New("failed to parse file")
)

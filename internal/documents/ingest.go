package documents

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// minReadablePDFChars is the threshold below which an extracted PDF is
// treated as scanned rather than parsed.
const minReadablePDFChars = 30

const scannedPDFMessage = "PDF appears to be scanned (contains images). For OCR, upload PDF pages as images (jpg/png) or enable a PDF-to-image step on the server."

// Ingested is the outcome of extracting text from an uploaded file.
// Scanned marks a recognized-but-unextractable PDF; Text is empty then and
// Message carries the advisory for the caller.
type Ingested struct {
	Text    string
	Scanned bool
	Message string
}

// Ingester extracts text from uploaded file bytes. The zero value handles
// txt, pdf and docx; OCR must be set for image formats.
type Ingester struct {
	OCR *VisionClient
}

// Ingest dispatches on the lowercased filename extension and returns the
// extracted text or a typed failure. A scanned PDF is a soft fail: a valid
// Ingested with Scanned set, not an error.
func (ing *Ingester) Ingest(ctx context.Context, data []byte, fileName string) (Ingested, error) {
	if err := ctx.Err(); err != nil {
		return Ingested{}, err
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		return Ingested{Text: string(data)}, nil
	case ".pdf":
		return ingestPDF(data)
	case ".docx":
		return ingestDOCX(data)
	case ".png", ".jpg", ".jpeg":
		return ing.ingestImage(ctx, data)
	default:
		return Ingested{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, fileName)
	}
}

func ingestPDF(data []byte) (Ingested, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return Ingested{}, fmt.Errorf("%w: pdf: %v", ErrParseFailed, err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return Ingested{}, fmt.Errorf("%w: pdf: %v", ErrParseFailed, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Ingested{}, fmt.Errorf("%w: pdf: %v", ErrParseFailed, err)
	}

	return classifyPDFText(buf.String()), nil
}

// classifyPDFText decides whether extracted PDF text is usable or the
// document is likely scanned.
func classifyPDFText(text string) Ingested {
	if len(strings.TrimSpace(text)) < minReadablePDFChars {
		return Ingested{Scanned: true, Message: scannedPDFMessage}
	}
	return Ingested{Text: text}
}

func ingestDOCX(data []byte) (Ingested, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Ingested{}, fmt.Errorf("%w: docx: %v", ErrParseFailed, err)
	}
	defer doc.Close()

	return Ingested{Text: stripDocxXML(doc.Editable().GetContent())}, nil
}

func (ing *Ingester) ingestImage(ctx context.Context, data []byte) (Ingested, error) {
	if ing.OCR == nil || !ing.OCR.Configured() {
		return Ingested{}, ErrOCRUnavailable
	}
	text, err := ing.OCR.DetectText(ctx, data)
	if err != nil {
		return Ingested{}, fmt.Errorf("%w: %v", ErrOCRFailed, err)
	}
	return Ingested{Text: text}, nil
}

// stripDocxXML reduces word/document.xml markup to plain text, inserting
// line breaks at paragraph and br boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

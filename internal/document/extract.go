// Package document extracts plain text from uploaded files.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
)

// MIME types accepted for upload.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeGIF  = "image/gif"
)

// AllowedMimeTypes lists the upload types the file endpoints accept.
var AllowedMimeTypes = map[string]bool{
	MimePDF:  true,
	MimeDOCX: true,
	MimeDOC:  true,
	MimeJPEG: true,
	MimePNG:  true,
	MimeGIF:  true,
}

// ExtractText converts file bytes to plain text. It never returns an error:
// unsupported types and conversion failures degrade to a short placeholder
// string, which downstream resume parsing rejects via its minimum-length
// guard.
func ExtractText(data []byte, mimeType, originalName string) string {
	switch mimeType {
	case MimePDF, MimeDOCX:
		res, err := docconv.Convert(bytes.NewReader(data), mimeType, true)
		if err != nil {
			return fmt.Sprintf("File: %s (text extraction failed)", originalName)
		}
		return strings.TrimSpace(res.Body)
	case MimeDOC:
		// Legacy .doc needs external tooling; store a reference only.
		return "Document: " + originalName
	default:
		return "Image: " + originalName
	}
}

// ShouldExtract reports whether a file of the given purpose and type carries
// text worth extracting at upload time.
func ShouldExtract(purpose, mimeType string) bool {
	if purpose == "resume" {
		return true
	}
	return strings.Contains(mimeType, "pdf") || strings.Contains(mimeType, "document")
}

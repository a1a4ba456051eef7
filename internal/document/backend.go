// Package document counts pages in the document formats print jobs arrive
// in: PDF, PowerPoint and Word (OOXML) and single-page images.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnreadable is returned when the content does not match its extension or
// cannot be parsed.
var ErrUnreadable = errors.New("document unreadable")

// ErrUnsupported is returned for extensions without a page counter.
var ErrUnsupported = errors.New("unsupported document type")

type counter struct {
	// accepts checks the sniffed content type before parsing.
	accepts func(*mimetype.MIME) bool
	count   func([]byte) (int, error)
}

// Backend maps extensions to page counters.
type Backend struct {
	counters map[string]counter
}

func NewBackend() *Backend {
	pdf := counter{accepts: isA("application/pdf"), count: countPDF}
	pptx := counter{accepts: isA("application/zip"), count: countPPTX}
	docx := counter{accepts: isA("application/zip"), count: countDOCX}
	image := counter{accepts: isImage, count: func([]byte) (int, error) { return 1, nil }}

	return &Backend{counters: map[string]counter{
		".pdf":  pdf,
		".pptx": pptx,
		".docx": docx,
		".jpg":  image,
		".jpeg": image,
		".png":  image,
		".gif":  image,
		".bmp":  image,
		".tif":  image,
		".tiff": image,
	}}
}

// Supports reports whether ext (".pdf", case-insensitive) has a page counter.
func (b *Backend) Supports(ext string) bool {
	_, ok := b.counters[strings.ToLower(ext)]
	return ok
}

// Count returns the number of pages in data.
func (b *Backend) Count(data []byte, ext string) (int, error) {
	c, ok := b.counters[strings.ToLower(ext)]
	if !ok {
		return 0, fmt.Errorf("%s: %w", ext, ErrUnsupported)
	}
	if len(data) == 0 {
		return 0, fmt.Errorf("empty %s: %w", ext, ErrUnreadable)
	}
	mt := mimetype.Detect(data)
	if !c.accepts(mt) {
		return 0, fmt.Errorf("%s content is %s: %w", ext, mt.String(), ErrUnreadable)
	}
	n, err := c.count(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %v", ext, ErrUnreadable, err)
	}
	return n, nil
}

// PageCount is Count with failures reported as zero pages.
func (b *Backend) PageCount(data []byte, ext string) int {
	n, err := b.Count(data, ext)
	if err != nil {
		return 0
	}
	return n
}

// isA matches a MIME type or any of its ancestors, so an OOXML file that is
// only recognized as a generic zip is still accepted.
func isA(want string) func(*mimetype.MIME) bool {
	return func(mt *mimetype.MIME) bool {
		for m := mt; m != nil; m = m.Parent() {
			if m.Is(want) {
				return true
			}
		}
		return false
	}
}

func isImage(mt *mimetype.MIME) bool {
	return strings.HasPrefix(mt.String(), "image/")
}

// Package classify assigns every file exactly one output category.
package classify

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/printquote/internal/rules"
)

type Category int

const (
	MonochromePrint Category = iota
	ColorPrint
	BinderPart
	TableOfContents
	SkipStorageMedia
)

var categoryNames = map[Category]string{
	MonochromePrint:  "monochrome-print",
	ColorPrint:       "color-print",
	BinderPart:       "binder-part",
	TableOfContents:  "table-of-contents",
	SkipStorageMedia: "skip-storage-media",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "unknown"
}

// ParseCategory is the inverse of String.
func ParseCategory(s string) (Category, bool) {
	for c, n := range categoryNames {
		if n == s {
			return c, true
		}
	}
	return 0, false
}

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, ok := ParseCategory(string(b))
	if !ok {
		return fmt.Errorf("unknown category %q", b)
	}
	*c = v
	return nil
}

// IsPrint reports whether the category adds to the color or monochrome totals.
func (c Category) IsPrint() bool {
	return c == MonochromePrint || c == ColorPrint
}

// Classify decides the category of a file. Structural keywords are matched
// against the file name only: a folder called "목차 작업" must not turn every
// file inside it into a table of contents. Storage media and color may come
// from the hierarchy as well (immediate parent first).
func Classify(filename string, hierarchy []string) Category {
	switch {
	case rules.HasBinderPart(filename):
		return BinderPart
	case rules.HasTableOfContents(filename):
		return TableOfContents
	case HasStorageMedia(filename, hierarchy):
		return SkipStorageMedia
	case isColor(filename, hierarchy):
		return ColorPrint
	default:
		return MonochromePrint
	}
}

// HasStorageMedia reports a removable-media keyword in the file name or any
// hierarchy text.
func HasStorageMedia(filename string, hierarchy []string) bool {
	if rules.HasStorageMedia(filename) {
		return true
	}
	return rules.HasStorageMedia(strings.Join(hierarchy, "\n"))
}

func isColor(filename string, hierarchy []string) bool {
	if c, ok := rules.ExtractColor(filename); ok {
		return c
	}
	for _, h := range hierarchy {
		if c, ok := rules.ExtractColor(h); ok {
			return c
		}
	}
	return false
}

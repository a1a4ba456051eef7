// Package rules extracts printing parameters from noisy instruction text:
// file names, folder names and the contents of instruction notes.
//
// Every extractor normalizes its input first and reports a missing signal as
// ok == false, so callers can tell "not specified" from "explicitly one".
package rules

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	blankRun     = regexp.MustCompile(`[ \t\f\v\p{Zs}]+`)
	segmentSplit = regexp.MustCompile(`[\n,;|·()\[\]{}]+|\.\s+`)
)

// Normalize folds text for matching: NFKC (full-width digits become ASCII),
// lower case, underscores as blanks, one blank between words. Line breaks are
// kept because they delimit segments.
func Normalize(text string) string {
	s := norm.NFKC.String(text)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(blankRun.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Segments splits text into the clauses keyword exclusion works on. A number
// and a keyword in different segments are unrelated.
func Segments(text string) []string {
	parts := segmentSplit.Split(Normalize(text), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExtractLayoutDivisor finds an N-up marker and returns N when it is a
// realistic layout (2, 4, 6, 8, 9 or 16).
func ExtractLayoutDivisor(text string) (int, bool) {
	v := Vocab()
	for _, seg := range Segments(text) {
		for _, re := range v.LayoutPatterns {
			for _, m := range re.FindAllStringSubmatchIndex(seg, -1) {
				n, ok := v.number(seg, m[2], m[3])
				if ok && v.LayoutAllowed[n] {
					return n, true
				}
			}
		}
	}
	return 0, false
}

// ExtractCopyCount finds a copy multiplier ("3 copies", "3부", "2세트").
// Segments that mention a material are skipped: "비닐 10장" or "10 dividers"
// quantify the material, not the print run.
func ExtractCopyCount(text string) (int, bool) {
	v := Vocab()
	for _, seg := range Segments(text) {
		if v.AnyMaterial.Match(seg) {
			continue
		}
		for _, re := range v.CopyPatterns {
			for _, m := range re.FindAllStringSubmatchIndex(seg, -1) {
				if len(m) >= 6 && m[4] >= 0 && v.ForbiddenNext[seg[m[4]:m[5]]] {
					continue
				}
				if v.ordinal(seg, m[2]) {
					continue
				}
				n, ok := v.number(seg, m[2], m[3])
				if ok && n >= 1 && n <= v.CopiesMax {
					return n, true
				}
			}
		}
	}
	return 0, false
}

// ExtractColor reports the color mode named in text. Color wins over an
// explicit monochrome marker in the same text. Segments describing a
// material or a binder part ("컬러 간지", "컬러 표지") say nothing about the
// document itself and are ignored.
func ExtractColor(text string) (color bool, ok bool) {
	v := Vocab()
	mono := false
	for _, seg := range Segments(text) {
		if v.AnyMaterial.Match(seg) || v.BinderPart.Match(seg) {
			continue
		}
		if v.Color.Match(seg) {
			return true, true
		}
		if v.Monochrome.Match(seg) {
			mono = true
		}
	}
	if mono {
		return false, true
	}
	return false, false
}

// IsColorMarked reports whether text asks for color printing.
func IsColorMarked(text string) bool {
	color, ok := ExtractColor(text)
	return ok && color
}

// ExtractDuplex reports the sided-ness named in text. An explicit simplex
// marker overrides a duplex one.
func ExtractDuplex(text string) (duplex bool, ok bool) {
	v := Vocab()
	s := Normalize(text)
	if v.Simplex.Match(s) {
		return false, true
	}
	if v.Duplex.Match(s) {
		return true, true
	}
	return false, false
}

// IsPrintSuppressed reports a "do not print" marker such as "인쇄x".
func IsPrintSuppressed(text string) bool {
	return Vocab().Suppress.Match(Normalize(text))
}

// HasStorageMedia reports whether text mentions removable media (USB, CD,
// DVD) outside the excluded look-alikes (ci/cd, usb-c).
func HasStorageMedia(text string) bool {
	return Vocab().Materials[FamilyStorage].Match(Normalize(text))
}

// HasBinderPart reports a structural binder component keyword.
func HasBinderPart(text string) bool {
	return Vocab().BinderPart.Match(Normalize(text))
}

// HasTableOfContents reports a table-of-contents keyword.
func HasTableOfContents(text string) bool {
	return Vocab().TableOfContents.Match(Normalize(text))
}

// number parses the captured group [start,end) of seg, digits or a number
// word, and rejects captures glued to neighbouring digits or letters.
func (v *Vocabulary) number(seg string, start, end int) (int, bool) {
	if start < 0 || end <= start {
		return 0, false
	}
	word := seg[start:end]
	prev, _ := utf8.DecodeLastRuneInString(seg[:start])
	next, _ := utf8.DecodeRuneInString(seg[end:])

	if isDigits(word) {
		if start > 0 && unicode.IsDigit(prev) || end < len(seg) && unicode.IsDigit(next) {
			return 0, false
		}
		n, err := strconv.Atoi(word)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	n, ok := v.NumberWords[word]
	if !ok || start == 0 {
		return n, ok
	}
	if isASCII(word) && (prev >= 'a' && prev <= 'z') {
		return 0, false
	}
	if !isASCII(word) && isHangul(prev) {
		return 0, false
	}
	return n, true
}

// ordinal reports whether the number starting at start is preceded by an
// ordinal prefix such as 제, blanks allowed.
func (v *Vocabulary) ordinal(seg string, start int) bool {
	if start <= 0 {
		return false
	}
	head := strings.TrimRight(seg[:start], " \t")
	if head == "" {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(head)
	return v.ForbiddenPrev[string(prev)]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package materials

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/printquote/internal/rules"
)

// Count window and valid range for a quantity written next to a keyword.
const (
	countWindow = 10
	minCount    = 1
	maxCount    = 200
)

var countRe = regexp.MustCompile(`\d{1,3}`)

// Mode tells how a resolved material quantity is applied.
type Mode int

const (
	None Mode = iota
	// Fixed quantities are stated once for a scope and counted once.
	Fixed
	// Each quantities apply to every qualifying file, scaled by its copies.
	Each
)

func (m Mode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case Each:
		return "each"
	default:
		return "none"
	}
}

// Level is one instruction scope: the folder the text belongs to and the
// text itself.
type Level struct {
	Scope string
	Text  string
}

// Instruction is a fixed quantity stated in one scope.
type Instruction struct {
	Scope string
	Value int
}

// Resolution is the outcome of scanning a file's hierarchy for one kind.
type Resolution struct {
	Kind    Kind
	Mode    Mode
	PerFile int
	Fixed   []Instruction
}

// Resolve scans every level for the keyword family of kind.
//
// A keyword sharing a segment with an each-qualifier ("각 usb", "비닐 each")
// switches the kind to Each for the whole hierarchy; the per-file quantity is
// the first explicit count found next to such a keyword, else 1. Otherwise
// every explicit count becomes a Fixed instruction of its scope. Bare
// mentions only matter when no level states a count, and then they collapse
// to one unit in the innermost scope that mentions the kind.
func Resolve(levels []Level, kind Kind) Resolution {
	res := Resolution{Kind: kind}
	kw := kind.keywords()
	if kw == nil {
		return res
	}
	v := rules.Vocab()

	eachCounted := false
	var bare []Instruction
	for _, lvl := range levels {
		for _, seg := range rules.Segments(lvl.Text) {
			spans := kw.Find(seg)
			if len(spans) == 0 {
				continue
			}
			all := v.AnyMaterial.Find(seg)
			each := v.Each.Match(seg)
			for _, sp := range spans {
				n, explicit := adjacentCount(seg, sp, all, v.Units)
				if each {
					if res.Mode != Each {
						res.Mode = Each
						res.PerFile = 1
					}
					if explicit && !eachCounted {
						res.PerFile = n
						eachCounted = true
					}
					continue
				}
				if explicit {
					res.Fixed = append(res.Fixed, Instruction{Scope: lvl.Scope, Value: n})
				} else {
					bare = append(bare, Instruction{Scope: lvl.Scope, Value: 1})
				}
			}
		}
	}

	switch {
	case res.Mode == Each:
		res.Fixed = nil
	case len(res.Fixed) > 0:
		res.Mode = Fixed
	case len(bare) > 0:
		res.Mode = Fixed
		res.Fixed = bare[:1]
	}
	return res
}

// Apply returns the quantity one file contributes. Each quantities are scaled
// by copies and never deduplicated; Fixed instructions count only when the
// registry has not seen them in this job.
func Apply(res Resolution, copies int, reg *Registry) int {
	if copies < 1 {
		copies = 1
	}
	switch res.Mode {
	case Each:
		return res.PerFile * copies
	case Fixed:
		total := 0
		for _, in := range res.Fixed {
			if reg.Claim(in.Scope, res.Kind, in.Value) {
				total += in.Value
			}
		}
		return total
	}
	return 0
}

// adjacentCount finds a quantity stated for the keyword at sp. A number
// counts only when a unit word follows it ("비닐 10장", "usb 2개") or when it
// sits right before an English keyword that serves as its own unit
// ("2 sleeves"); bare numbers such as file sequence numbers are ignored. The
// window stops at any other material keyword so "비닐 usb 2개" does not give
// the sleeve a count. Hangul keywords usually take the number after, English
// ones before; the other side is the fallback.
func adjacentCount(seg string, sp rules.Span, all []rules.Span, units []string) (int, bool) {
	lo, hi := 0, len(seg)
	for _, o := range all {
		if o.End <= sp.Start && o.End > lo {
			lo = o.End
		}
		if o.Start >= sp.End && o.Start < hi {
			hi = o.Start
		}
	}

	ascii := isASCIIWord(sp.Word)
	counted := func(end int) bool {
		if hasUnit(seg[end:], units) {
			return true
		}
		return ascii && end <= sp.Start && strings.TrimSpace(seg[end:sp.Start]) == ""
	}
	after := func() (int, bool) { return firstCount(seg, sp.End, hi, counted) }
	before := func() (int, bool) { return lastCount(seg, lo, sp.Start, counted) }
	if ascii {
		if n, ok := before(); ok {
			return n, true
		}
		return after()
	}
	if n, ok := after(); ok {
		return n, true
	}
	return before()
}

// hasUnit reports whether rest starts with a unit word, blanks allowed.
func hasUnit(rest string, units []string) bool {
	rest = strings.TrimLeft(rest, " \t")
	for _, u := range units {
		if u == "" || !strings.HasPrefix(rest, u) {
			continue
		}
		if !isASCIIWord(u) || len(rest) == len(u) || !isAlnum(rest[len(u)]) {
			return true
		}
	}
	return false
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

func firstCount(seg string, from, to int, counted func(end int) bool) (int, bool) {
	to = min(to, runeOffset(seg, from, countWindow))
	for _, m := range countRe.FindAllStringIndex(seg[from:to], -1) {
		if n, ok := parseCount(seg, from+m[0], from+m[1]); ok && counted(from+m[1]) {
			return n, true
		}
	}
	return 0, false
}

func lastCount(seg string, from, to int, counted func(end int) bool) (int, bool) {
	from = max(from, runeOffsetBack(seg, to, countWindow))
	ms := countRe.FindAllStringIndex(seg[from:to], -1)
	for i := len(ms) - 1; i >= 0; i-- {
		if n, ok := parseCount(seg, from+ms[i][0], from+ms[i][1]); ok && counted(from+ms[i][1]) {
			return n, true
		}
	}
	return 0, false
}

func parseCount(seg string, start, end int) (int, bool) {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(seg[:start]); unicode.IsDigit(r) {
			return 0, false
		}
	}
	if end < len(seg) {
		if r, _ := utf8.DecodeRuneInString(seg[end:]); unicode.IsDigit(r) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(seg[start:end])
	if err != nil || n < minCount || n > maxCount {
		return 0, false
	}
	return n, true
}

// runeOffset returns the byte offset n runes after from, capped at len(s).
func runeOffset(s string, from, n int) int {
	i := from
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// runeOffsetBack returns the byte offset n runes before to, floored at 0.
func runeOffsetBack(s string, to, n int) int {
	i := to
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return i
}

func isASCIIWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

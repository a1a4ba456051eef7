package rules

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// vocabularyYAML is the baked-in instruction vocabulary. It is data, not
// configuration: the estimator ships one fixed table.
//
//go:embed vocabulary.yaml
var vocabularyYAML []byte

// Material keyword families, as named in vocabulary.yaml.
const (
	FamilySleeve  = "sleeve"
	FamilyDivider = "divider"
	FamilySpecial = "special"
	FamilyStorage = "storage"
)

type keywordList struct {
	Words   []string `yaml:"words"`
	Exclude []string `yaml:"exclude"`
}

type vocabularyFile struct {
	Layout struct {
		Allowed     []int          `yaml:"allowed"`
		NumberWords map[string]int `yaml:"number_words"`
		Patterns    []string       `yaml:"patterns"`
	} `yaml:"layout"`
	Copies struct {
		Max           int      `yaml:"max"`
		Patterns      []string `yaml:"patterns"`
		ForbiddenNext []string `yaml:"forbidden_next"`
		ForbiddenPrev []string `yaml:"forbidden_prev"`
	} `yaml:"copies"`
	Color       keywordList            `yaml:"color"`
	Monochrome  keywordList            `yaml:"monochrome"`
	Duplex      keywordList            `yaml:"duplex"`
	Simplex     keywordList            `yaml:"simplex"`
	Suppress    keywordList            `yaml:"suppress"`
	Materials   map[string]keywordList `yaml:"materials"`
	Each        []string               `yaml:"each"`
	Units       []string               `yaml:"units"`
	BinderPart  keywordList            `yaml:"binder_part"`
	TableOfCont keywordList            `yaml:"table_of_contents"`
}

// Vocabulary is the compiled form of vocabulary.yaml.
type Vocabulary struct {
	LayoutAllowed  map[int]bool
	NumberWords    map[string]int
	LayoutPatterns []*regexp.Regexp

	CopiesMax     int
	CopyPatterns  []*regexp.Regexp
	ForbiddenNext map[string]bool
	ForbiddenPrev map[string]bool

	Color      *Keywords
	Monochrome *Keywords
	Duplex     *Keywords
	Simplex    *Keywords
	Suppress   *Keywords

	Materials map[string]*Keywords
	// AnyMaterial is the union of all material families.
	AnyMaterial *Keywords
	Each        *Keywords
	Units       []string

	BinderPart      *Keywords
	TableOfContents *Keywords
}

var vocab = mustLoad(vocabularyYAML)

// Vocab returns the compiled vocabulary shared by the extractor, the material
// resolver and the classifier.
func Vocab() *Vocabulary {
	return vocab
}

func mustLoad(data []byte) *Vocabulary {
	v, err := load(data)
	if err != nil {
		panic(fmt.Sprintf("rules: invalid embedded vocabulary: %v", err))
	}
	return v
}

func load(data []byte) (*Vocabulary, error) {
	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}

	v := &Vocabulary{
		LayoutAllowed: make(map[int]bool, len(f.Layout.Allowed)),
		NumberWords:   f.Layout.NumberWords,
		CopiesMax:     f.Copies.Max,
		ForbiddenNext: make(map[string]bool, len(f.Copies.ForbiddenNext)),
		ForbiddenPrev: make(map[string]bool, len(f.Copies.ForbiddenPrev)),
		Materials:     make(map[string]*Keywords, len(f.Materials)),
		Units:         normalizeAll(f.Units),
	}
	for _, n := range f.Layout.Allowed {
		v.LayoutAllowed[n] = true
	}
	for _, s := range f.Copies.ForbiddenNext {
		v.ForbiddenNext[s] = true
	}
	for _, s := range f.Copies.ForbiddenPrev {
		v.ForbiddenPrev[Normalize(s)] = true
	}

	var err error
	if v.LayoutPatterns, err = compileAll(f.Layout.Patterns); err != nil {
		return nil, err
	}
	if v.CopyPatterns, err = compileAll(f.Copies.Patterns); err != nil {
		return nil, err
	}

	v.Color = NewKeywords(f.Color.Words, f.Color.Exclude)
	v.Monochrome = NewKeywords(f.Monochrome.Words, f.Monochrome.Exclude)
	v.Duplex = NewKeywords(f.Duplex.Words, f.Duplex.Exclude)
	v.Simplex = NewKeywords(f.Simplex.Words, f.Simplex.Exclude)
	v.Suppress = NewKeywords(f.Suppress.Words, f.Suppress.Exclude)
	v.Each = NewKeywords(f.Each, nil)
	v.BinderPart = NewKeywords(f.BinderPart.Words, f.BinderPart.Exclude)
	v.TableOfContents = NewKeywords(f.TableOfCont.Words, f.TableOfCont.Exclude)

	var allWords, allExcl []string
	for _, family := range []string{FamilySleeve, FamilyDivider, FamilySpecial, FamilyStorage} {
		kl, ok := f.Materials[family]
		if !ok {
			return nil, fmt.Errorf("material family %q missing", family)
		}
		v.Materials[family] = NewKeywords(kl.Words, kl.Exclude)
		allWords = append(allWords, kl.Words...)
		allExcl = append(allExcl, kl.Exclude...)
	}
	v.AnyMaterial = NewKeywords(allWords, allExcl)

	return v, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func normalizeAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, Normalize(w))
	}
	return out
}

// Span is the byte range of a keyword occurrence inside normalized text.
type Span struct {
	Start, End int
	Word       string
}

// Keywords matches a keyword family against normalized text. ASCII words
// match on whole words only; Hangul words match as substrings and tolerate
// blanks between syllables ("비닐 내지" matches "비닐내지"). Occurrences
// inside an exclusion phrase are ignored.
type Keywords struct {
	words    []string
	patterns []*regexp.Regexp
	excludes []exclusion
}

type exclusion struct {
	re    *regexp.Regexp
	ascii bool
}

// NewKeywords compiles a keyword family and its exclusion phrases.
func NewKeywords(words, exclude []string) *Keywords {
	k := &Keywords{}
	ws := normalizeAll(words)
	// longer words first so "비닐내지" wins over "비닐" at the same position
	sort.SliceStable(ws, func(i, j int) bool { return len(ws[i]) > len(ws[j]) })
	for _, w := range ws {
		if w == "" {
			continue
		}
		k.words = append(k.words, w)
		k.patterns = append(k.patterns, regexp.MustCompile(wordPattern(w)))
	}
	for _, e := range normalizeAll(exclude) {
		if e == "" {
			continue
		}
		k.excludes = append(k.excludes, exclusion{re: regexp.MustCompile(wordPattern(e)), ascii: isASCII(e)})
	}
	return k
}

// Words returns the normalized keyword list, longest first.
func (k *Keywords) Words() []string {
	return k.words
}

// Match reports whether any keyword occurs in normalized text.
func (k *Keywords) Match(text string) bool {
	return len(k.Find(text)) > 0
}

// Find returns non-overlapping keyword occurrences ordered by position.
func (k *Keywords) Find(text string) []Span {
	if text == "" {
		return nil
	}
	var excluded [][2]int
	for _, ex := range k.excludes {
		for _, m := range ex.re.FindAllStringSubmatchIndex(text, -1) {
			if !ex.ascii || asciiTail(text, m[3]) {
				excluded = append(excluded, [2]int{m[2], m[3]})
			}
		}
	}

	var spans []Span
	for i, re := range k.patterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			s := Span{Start: m[2], End: m[3], Word: k.words[i]}
			if !k.bounded(text, s) || overlapsAny(s, excluded) || overlapsSpans(s, spans) {
				continue
			}
			spans = append(spans, s)
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// bounded applies the checks the pattern itself cannot express. ASCII words
// must not run into a following letter or digit; the pattern consumes only
// the leading boundary so adjacent occurrences ("usb usb") both match.
// Single-syllable Hangul words ("각") must start a word.
func (k *Keywords) bounded(text string, s Span) bool {
	if isASCII(s.Word) {
		return asciiTail(text, s.End)
	}
	if utf8.RuneCountInString(s.Word) == 1 && s.Start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:s.Start])
		return !isHangul(prev)
	}
	return true
}

func asciiTail(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	c := text[end]
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9')
}

func isHangul(r rune) bool {
	return unicode.Is(unicode.Hangul, r)
}

func overlapsAny(s Span, ranges [][2]int) bool {
	for _, r := range ranges {
		if s.Start < r[1] && r[0] < s.End {
			return true
		}
	}
	return false
}

func overlapsSpans(s Span, spans []Span) bool {
	for _, o := range spans {
		if s.Start < o.End && o.Start < s.End {
			return true
		}
	}
	return false
}

func wordPattern(w string) string {
	if isASCII(w) {
		return `(?:^|[^a-z0-9])(` + regexp.QuoteMeta(w) + `)`
	}
	parts := make([]string, 0, len(w))
	for _, r := range w {
		if unicode.IsSpace(r) {
			continue
		}
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}
	return `(` + strings.Join(parts, `\s*`) + `)`
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

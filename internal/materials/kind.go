// Package materials resolves ancillary material quantities (sleeves,
// dividers, binders, removable media) from hierarchy instruction text and
// keeps the per-folder tallies they accumulate into.
package materials

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/printquote/internal/rules"
)

// Kind is a material kind. The set is closed.
type Kind int

const (
	Sleeve Kind = iota
	Divider
	SpecialItem
	StorageMedia
	BinderPart
	TOCUnit

	kindCount
)

// Kinds lists every kind in display order.
var Kinds = []Kind{Sleeve, Divider, SpecialItem, StorageMedia, BinderPart, TOCUnit}

// Keyword kinds are resolved from instruction text; BinderPart and TOCUnit
// come from file classification instead.
var KeywordKinds = []Kind{Sleeve, Divider, SpecialItem, StorageMedia}

var kindNames = [kindCount]string{"sleeve", "divider", "special-item", "storage-media", "binder-part", "toc-unit"}

// Korean labels used on printed and exported reports.
var kindLabels = [kindCount]string{"비닐", "간지", "바인더", "USB/CD", "표지/측면", "목차"}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Label is the display name shown to the print shop.
func (k Kind) Label() string {
	if k < 0 || k >= kindCount {
		return k.String()
	}
	return kindLabels[k]
}

// ParseKind is the inverse of String.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

func (k Kind) keywords() *rules.Keywords {
	v := rules.Vocab()
	switch k {
	case Sleeve:
		return v.Materials[rules.FamilySleeve]
	case Divider:
		return v.Materials[rules.FamilyDivider]
	case SpecialItem:
		return v.Materials[rules.FamilySpecial]
	case StorageMedia:
		return v.Materials[rules.FamilyStorage]
	}
	return nil
}

// Tally holds one non-negative counter per kind.
type Tally [kindCount]int

// Add increases the counter for k. Non-positive amounts are ignored; a tally
// never decreases.
func (t *Tally) Add(k Kind, n int) {
	if n <= 0 || k < 0 || k >= kindCount {
		return
	}
	t[k] += n
}

// Get returns the counter for k, 0 for an unknown kind.
func (t Tally) Get(k Kind) int {
	if k < 0 || k >= kindCount {
		return 0
	}
	return t[k]
}

// Total sums all counters.
func (t Tally) Total() int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}

// Merge adds every counter of o.
func (t *Tally) Merge(o Tally) {
	for i, n := range o {
		t.Add(Kind(i), n)
	}
}

// IsZero reports whether no material was counted.
func (t Tally) IsZero() bool {
	return t.Total() == 0
}

// String renders the non-zero counters, e.g. "sleeve=2 storage-media=1".
func (t Tally) String() string {
	var b strings.Builder
	for i, n := range t {
		if n == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Kind(i).String())
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// MarshalJSON writes the non-zero counters as an object keyed by kind name.
func (t Tally) MarshalJSON() ([]byte, error) {
	m := make(map[string]int)
	for i, n := range t {
		if n != 0 {
			m[Kind(i).String()] = n
		}
	}
	return json.Marshal(m)
}

func (t *Tally) UnmarshalJSON(b []byte) error {
	var m map[string]int
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*t = Tally{}
	for name, n := range m {
		k, ok := ParseKind(name)
		if !ok {
			return fmt.Errorf("unknown material kind %q", name)
		}
		t.Add(k, n)
	}
	return nil
}

package materials

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_StringAndLabel(t *testing.T) {
	assert.Equal(t, "sleeve", Sleeve.String())
	assert.Equal(t, "storage-media", StorageMedia.String())
	assert.Equal(t, "비닐", Sleeve.Label())
	assert.Equal(t, "USB/CD", StorageMedia.Label())
	assert.Equal(t, "kind(42)", Kind(42).String())

	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("stapler")
	assert.False(t, ok)
}

func TestTally(t *testing.T) {
	var a Tally
	a.Add(Sleeve, 2)
	a.Add(Sleeve, -5)
	a.Add(StorageMedia, 1)
	a.Add(Kind(99), 3)

	var b Tally
	b.Add(Sleeve, 1)
	b.Add(TOCUnit, 4)
	a.Merge(b)

	assert.Equal(t, 3, a.Get(Sleeve))
	assert.Equal(t, 1, a.Get(StorageMedia))
	assert.Equal(t, 4, a.Get(TOCUnit))
	assert.Equal(t, 8, a.Total())
	assert.Equal(t, "sleeve=3 storage-media=1 toc-unit=4", a.String())
	assert.True(t, Tally{}.IsZero())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		levels  []Level
		kind    Kind
		want    Mode
		perFile int
		fixed   []Instruction
	}{
		{
			name:   "nothing",
			levels: []Level{{Scope: "A", Text: "report 4up"}},
			kind:   Sleeve,
			want:   None,
		},
		{
			name:   "english count before keyword",
			levels: []Level{{Scope: "JobA", Text: "JobA\nnotes\n2 sleeves"}},
			kind:   Sleeve,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "JobA", Value: 2}},
		},
		{
			name:   "korean count after keyword",
			levels: []Level{{Scope: "A", Text: "비닐 10장"}},
			kind:   Sleeve,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "A", Value: 10}},
		},
		{
			name:   "bare keyword is one unit in the innermost scope",
			levels: []Level{{Scope: "A/B", Text: "usb제작 파일.pdf"}, {Scope: "A", Text: "usb 작업"}},
			kind:   StorageMedia,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "A/B", Value: 1}},
		},
		{
			name:   "explicit count beats bare mentions",
			levels: []Level{{Scope: "A", Text: "비닐작업"}, {Scope: "", Text: "비닐 3장"}},
			kind:   Sleeve,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "", Value: 3}},
		},
		{
			name:   "explicit count in a parent folder drops a nested bare mention",
			levels: []Level{{Scope: "JobF/sub", Text: "비닐"}, {Scope: "JobF", Text: "비닐 10장"}},
			kind:   Sleeve,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "JobF", Value: 10}},
		},
		{
			name:    "each qualifier",
			levels:  []Level{{Scope: "A", Text: "각usb"}},
			kind:    StorageMedia,
			want:    Each,
			perFile: 1,
		},
		{
			name:    "each beats fixed anywhere",
			levels:  []Level{{Scope: "A/B", Text: "비닐 5장"}, {Scope: "A", Text: "비닐 2장 각각"}},
			kind:    Sleeve,
			want:    Each,
			perFile: 2,
		},
		{
			name:   "window stops at another material",
			levels: []Level{{Scope: "A", Text: "비닐 usb 2개"}},
			kind:   Sleeve,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "A", Value: 1}},
		},
		{
			name:   "number without a unit is not a count",
			levels: []Level{{Scope: "JobC", Text: "usb제작 파일2"}},
			kind:   StorageMedia,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "JobC", Value: 1}},
		},
		{
			name:   "unit word after english keyword",
			levels: []Level{{Scope: "A", Text: "usb 2개"}},
			kind:   StorageMedia,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "A", Value: 2}},
		},
		{
			name:   "unit word before keyword",
			levels: []Level{{Scope: "A", Text: "3 pieces divider"}},
			kind:   Divider,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "A", Value: 3}},
		},
		{
			name:   "version number is not a count",
			levels: []Level{{Scope: "A", Text: "sleeve v2 final"}},
			kind:   Sleeve,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "A", Value: 1}},
		},
		{
			name:   "year is not a count",
			levels: []Level{{Scope: "A", Text: "2024 usb"}},
			kind:   StorageMedia,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "A", Value: 1}},
		},
		{
			name:   "count out of range",
			levels: []Level{{Scope: "A", Text: "간지 500장"}},
			kind:   Divider,
			want:   Fixed,
			fixed:  []Instruction{{Scope: "A", Value: 1}},
		},
		{
			name:   "ci/cd is not storage",
			levels: []Level{{Scope: "A", Text: "ci/cd guide"}},
			kind:   StorageMedia,
			want:   None,
		},
		{
			name:   "binder parts are not keyword resolved",
			levels: []Level{{Scope: "A", Text: "표지"}},
			kind:   BinderPart,
			want:   None,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.levels, tt.kind)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.want, got.Mode)
			assert.Equal(t, tt.perFile, got.PerFile)
			assert.Equal(t, tt.fixed, got.Fixed)
		})
	}
}

func TestApply_FixedCountedOncePerScope(t *testing.T) {
	reg := NewRegistry()
	levels := []Level{{Scope: "JobA", Text: "2 sleeves"}}

	total := 0
	for i := 0; i < 5; i++ {
		total += Apply(Resolve(levels, Sleeve), 3, reg)
	}
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, reg.Len())
}

func TestApply_RestatedInstructionCountedOnce(t *testing.T) {
	reg := NewRegistry()
	res := Resolve([]Level{{Scope: "A", Text: "비닐 10장\n비닐 10장"}}, Sleeve)
	require.Len(t, res.Fixed, 2)
	assert.Equal(t, 10, Apply(res, 1, reg))
}

func TestApply_EachScalesWithCopies(t *testing.T) {
	reg := NewRegistry()
	res := Resolve([]Level{{Scope: "A", Text: "each sleeve"}}, Sleeve)
	require.Equal(t, Each, res.Mode)

	total := 0
	for _, copies := range []int{1, 3, 2, 0} {
		total += Apply(res, copies, reg)
	}
	assert.Equal(t, 1+3+2+1, total)
	assert.Zero(t, reg.Len())
}

func TestApply_SeparateScopesAddUp(t *testing.T) {
	reg := NewRegistry()
	a := Resolve([]Level{{Scope: "A", Text: "usb"}}, StorageMedia)
	b := Resolve([]Level{{Scope: "B", Text: "usb"}}, StorageMedia)

	assert.Equal(t, 1, Apply(a, 1, reg))
	assert.Equal(t, 1, Apply(b, 1, reg))
	assert.Equal(t, 0, Apply(a, 1, reg))
}

func TestRegistry_Claim(t *testing.T) {
	reg := NewRegistry()
	assert.True(t, reg.Claim("A", Sleeve, 2))
	assert.False(t, reg.Claim("A", Sleeve, 2))
	assert.True(t, reg.Claim("A", Sleeve, 3))
	assert.True(t, reg.Claim("A", Divider, 2))
	assert.True(t, reg.Claim("B", Sleeve, 2))
	assert.Equal(t, 4, reg.Len())
}

func TestTally_JSON(t *testing.T) {
	var in Tally
	in.Add(Sleeve, 2)
	in.Add(TOCUnit, 4)

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sleeve":2,"toc-unit":4}`, string(b))

	var out Tally
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	require.Error(t, json.Unmarshal([]byte(`{"stapler":1}`), &out))
}

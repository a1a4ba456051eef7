package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower and blanks", "  Report_FINAL   4UP ", "report final 4up"},
		{"full width digits", "４ｕｐ", "4up"},
		{"keeps line breaks", "a\r\n\r\n  b\tc", "a\nb c"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestSegments(t *testing.T) {
	got := Segments("비닐 2장, 3부\n(컬러) 단면; ci/cd")
	assert.Equal(t, []string{"비닐 2장", "3부", "컬러", "단면", "ci/cd"}, got)
}

func TestExtractLayoutDivisor(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"report 4up.pdf", 4, true},
		{"report 4-up.pdf", 4, true},
		{"2024 4up", 4, true},
		{"v20244up", 0, false},
		{"2in1 handout", 2, true},
		{"3up", 0, false},
		{"1면에 2페이지", 2, true},
		{"한면 4쪽", 4, true},
		{"6쪽 모아찍기", 6, true},
		{"네 페이지 모아 인쇄", 4, true},
		{"9분할", 9, true},
		{"two up", 2, true},
		{"8 pages per side", 8, true},
		{"split into 16", 16, true},
		{"7up", 0, false},
		{"annual report 2024", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ExtractLayoutDivisor(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCopyCount(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"3 copies", 3, true},
		{"2 sets", 2, true},
		{"3부", 3, true},
		{"5부씩 출력", 5, true},
		{"2세트", 2, true},
		{"부수: 4", 4, true},
		{"1부터 10까지", 0, false},
		{"2부록", 0, false},
		{"제3부 보고서.pdf", 0, false},
		{"제 2부 자료", 0, false},
		{"제출용 3부", 3, true},
		{"비닐 2장, 3부", 3, true},
		{"10 copies of dividers", 0, false},
		{"비닐 10부", 0, false},
		{"1000부", 0, false},
		{"0 copies", 0, false},
		{"no instructions here", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ExtractCopyCount(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractColor(t *testing.T) {
	tests := []struct {
		in        string
		wantColor bool
		wantOK    bool
	}{
		{"컬러 출력", true, true},
		{"칼라", true, true},
		{"Color", true, true},
		{"흑백", false, true},
		{"흑백\n본문은 컬러", true, true},
		{"b&w copies", false, true},
		{"컬러 간지 3장", false, false},
		{"컬러 표지", false, false},
		{"colorful", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			color, ok := ExtractColor(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantColor, color)
			assert.Equal(t, tt.wantColor && tt.wantOK, IsColorMarked(tt.in))
		})
	}
}

func TestExtractDuplex(t *testing.T) {
	tests := []struct {
		in         string
		wantDuplex bool
		wantOK     bool
	}{
		{"양면", true, true},
		{"double-sided", true, true},
		{"단면", false, true},
		{"양면 말고 단면", false, true},
		{"단면도.pdf", false, false},
		{"양면테이프 포함", false, false},
		{"report", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			duplex, ok := ExtractDuplex(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDuplex, duplex)
		})
	}
}

func TestIsPrintSuppressed(t *testing.T) {
	assert.True(t, IsPrintSuppressed("원본_인쇄X.pdf"))
	assert.True(t, IsPrintSuppressed("참고용 출력 없음"))
	assert.True(t, IsPrintSuppressed("Do not print"))
	assert.False(t, IsPrintSuppressed("인쇄 3부"))
}

func TestHasStorageMedia(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"usb제작 파일.pdf", true},
		{"USB", true},
		{"CD 2장", true},
		{"각usb", true},
		{"ci/cd pipeline", false},
		{"usb-c cable", false},
		{"abcd", false},
		{"usbmanual", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HasStorageMedia(tt.in))
		})
	}
}

func TestBinderPartAndTOC(t *testing.T) {
	assert.True(t, HasBinderPart("앞표지.pdf"))
	assert.True(t, HasBinderPart("cover.pdf"))
	assert.False(t, HasBinderPart("측면도.pdf"))
	assert.False(t, HasBinderPart("discover.pdf"))

	assert.True(t, HasTableOfContents("목차.pdf"))
	assert.True(t, HasTableOfContents("TOC.pdf"))
	assert.False(t, HasTableOfContents("protocol.pdf"))
	assert.False(t, HasTableOfContents("차례대로 출력"))
}

func TestKeywords_Find(t *testing.T) {
	k := NewKeywords([]string{"비닐", "비닐내지", "usb"}, []string{"usb-c"})

	spans := k.Find(Normalize("비닐 내지 5장 usb usb usb-c"))
	require.Len(t, spans, 3)
	assert.Equal(t, "비닐내지", spans[0].Word)
	assert.Equal(t, "usb", spans[1].Word)
	assert.Equal(t, "usb", spans[2].Word)
	assert.Less(t, spans[1].Start, spans[2].Start)
}

func TestKeywords_SingleSyllableStartsWord(t *testing.T) {
	k := NewKeywords([]string{"각"}, nil)
	assert.True(t, k.Match("각 usb"))
	assert.True(t, k.Match("파일 각usb"))
	assert.False(t, k.Match("생각 usb"))
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load([]byte("layout: [1, 2"))
	require.Error(t, err)

	_, err = load([]byte("layout:\n  patterns: ['(']\n"))
	require.Error(t, err)
}

func TestVocab_Materials(t *testing.T) {
	v := Vocab()
	for _, family := range []string{FamilySleeve, FamilyDivider, FamilySpecial, FamilyStorage} {
		require.Contains(t, v.Materials, family)
		assert.NotEmpty(t, v.Materials[family].Words())
	}
}

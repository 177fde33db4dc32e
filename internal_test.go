package datagrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapCellWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is a full-width character (2 columns). With width=1, Truncate
	// returns "" because the char doesn't fit. The safety branch advances
	// one rune to avoid an infinite loop.
	lines := wrapCell("你好", 1)
	assert.Equal(t, []string{"你", "好"}, lines)
}

func TestWrapCellNoWrap(t *testing.T) {
	t.Parallel()
	lines := wrapCell("hi", 0)
	assert.Equal(t, []string{"hi"}, lines)
}

func TestWrapCellFits(t *testing.T) {
	t.Parallel()
	lines := wrapCell("hi", 5)
	assert.Equal(t, []string{"hi"}, lines)
}

func TestWrapCellBasic(t *testing.T) {
	t.Parallel()
	lines := wrapCell("Hello", 3)
	assert.Equal(t, []string{"Hel", "lo"}, lines)
}

func TestParseWidthHint(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in     string
		want   int
		wantOK bool
	}{
		"bare":     {in: "12", want: 12, wantOK: true},
		"ch":       {in: "8ch", want: 8, wantOK: true},
		"spaces":   {in: " 5 ", want: 5, wantOK: true},
		"px":       {in: "120px", wantOK: false},
		"percent":  {in: "20%", wantOK: false},
		"zero":     {in: "0", wantOK: false},
		"negative": {in: "-3", wantOK: false},
		"empty":    {in: "", wantOK: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseWidthHint(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFitMessage(t *testing.T) {
	t.Parallel()
	inner := func(ws []int) int { return tableInnerWidth(ws) - 2 }
	assert.Equal(t, []int{5}, fitMessage(nil, "hello", inner))
	assert.Equal(t, []int{4, 10}, fitMessage([]int{4, 3}, "No data available", inner))
	assert.Equal(t, []int{20, 20}, fitMessage([]int{20, 20}, "short", inner))
}

func TestCellStyle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", cellStyle(AlignLeft, ""))
	assert.Equal(t, ` style="text-align: center"`, cellStyle(AlignCenter, ""))
	assert.Equal(t, ` style="width: 12ch"`, cellStyle(AlignLeft, "12"))
	assert.Equal(t, ` style="text-align: right; width: 20%"`, cellStyle(AlignRight, "20%"))
}

func TestSelectionCloneIsIndependent(t *testing.T) {
	t.Parallel()
	s := NewSelection("a")
	m := s.clone(1)
	m["b"] = struct{}{}
	assert.False(t, s.Has("b"))
}

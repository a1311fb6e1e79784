package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		Index int64
		Want  string
	}{
		{Index: -1, Want: ""},
		{Index: 0, Want: ""},
		{Index: 1, Want: "A"},
		{Index: 2, Want: "B"},
		{Index: 26, Want: "Z"},
		{Index: 27, Want: "AA"},
		{Index: 50, Want: "AX"},
		{Index: 52, Want: "AZ"},
		{Index: 53, Want: "BA"},
		{Index: 702, Want: "ZZ"},
		{Index: 703, Want: "AAA"},
		{Index: 16384, Want: "XFD"},
	}
	for _, tt := range tests {
		got := ColumnLetter(tt.Index)
		if got != tt.Want {
			t.Errorf("%d: letters mismatched! want %s, got %s", tt.Index, tt.Want, got)
		}
	}
}

func TestColumnLetterRoundTrip(t *testing.T) {
	for n := int64(1); n <= 20000; n++ {
		letters := ColumnLetter(n)
		if got := ColumnIndex(letters); got != n {
			t.Fatalf("%d: %s decoded to %d", n, letters, got)
		}
	}
}

func TestCellReference(t *testing.T) {
	assert.Equal(t, "A1", CellReference(0, 1))
	assert.Equal(t, "B2", CellReference(1, 2))
	assert.Equal(t, "AA10", CellReference(26, 10))
	assert.Equal(t, "A1:B2", RangeReference("A1", "B2"))
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		Addr string
		Want Position
	}{
		{Addr: "A1", Want: Position{Line: 1, Column: 1}},
		{Addr: "b2", Want: Position{Line: 2, Column: 2}},
		{Addr: "AX251", Want: Position{Line: 251, Column: 50}},
	}
	for _, tt := range tests {
		got := ParsePosition(tt.Addr)
		assert.Equal(t, tt.Want, got, tt.Addr)
		assert.True(t, IsAddress(tt.Addr), tt.Addr)
	}
	assert.False(t, IsAddress("A0"))
	assert.False(t, IsAddress("12"))
	assert.False(t, IsAddress("AB"))
}

func TestBounding(t *testing.T) {
	rg := Bounding(Dimension{Lines: 2, Columns: 2})
	assert.Equal(t, "A1:B2", rg.String())
	assert.Equal(t, int64(2), rg.Width())
	assert.Equal(t, int64(2), rg.Height())
	assert.True(t, rg.Contains(Position{Line: 2, Column: 1}))
	assert.False(t, rg.Contains(Position{Line: 3, Column: 1}))

	assert.Equal(t, "A1:A1", Bounding(Dimension{}).String())
	assert.Equal(t, "A1:AX251", Bounding(Dimension{Lines: 251, Columns: 50}).String())
}

func TestParseRange(t *testing.T) {
	dim := Dimension{Lines: 10, Columns: 5}
	tests := []struct {
		Input  string
		Want   string
		Width  int64
		Height int64
	}{
		{Input: "B2:C4", Want: "B2:C4", Width: 2, Height: 3},
		{Input: "c3", Want: "C3:C3", Width: 1, Height: 1},
		{Input: "B:D", Want: "B1:D10", Width: 3, Height: 10},
		{Input: "B", Want: "B1:B10", Width: 1, Height: 10},
		{Input: "A5:E", Want: "A5:E10", Width: 5, Height: 6},
		{Input: "D8:Z99", Want: "D8:E10", Width: 2, Height: 3},
		{Input: "Z1", Want: "Z1:E1", Width: 0, Height: 1},
	}
	for _, tt := range tests {
		rg, err := ParseRange(tt.Input, dim)
		require.NoError(t, err, tt.Input)
		assert.Equal(t, tt.Want, rg.String(), tt.Input)
		assert.Equal(t, tt.Width, rg.Width(), tt.Input)
		assert.Equal(t, tt.Height, rg.Height(), tt.Input)
	}
	for _, str := range []string{"", "12", "A0", "B2:A1", "A1:", "A1-B2"} {
		_, err := ParseRange(str, dim)
		assert.ErrorIs(t, err, ErrRange, str)
	}
}

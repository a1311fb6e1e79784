package layout

import (
	"errors"
	"fmt"
	"strings"
)

var ErrRange = errors.New("invalid range")

type Range struct {
	Starts Position
	Ends   Position
}

func NewRange(starts, ends Position) *Range {
	return &Range{
		Starts: starts,
		Ends:   ends,
	}
}

// ParseRange reads a selection within a block of the given dimension. Each
// bound is either a cell address (B2) or column letters (B) covering all the
// lines of dim. A single bound selects one cell or one column. Bounds are
// clipped to dim.
func ParseRange(str string, dim Dimension) (*Range, error) {
	fst, lst, ok := strings.Cut(str, ":")
	if !ok {
		lst = fst
	}
	starts, err := parseBound(fst, 1)
	if err != nil {
		return nil, err
	}
	ends, err := parseBound(lst, max(dim.Lines, 1))
	if err != nil {
		return nil, err
	}
	if starts.Line > ends.Line || starts.Column > ends.Column {
		return nil, fmt.Errorf("%w: %s: bounds are reversed", ErrRange, str)
	}
	return Bounding(dim).clip(NewRange(starts, ends)), nil
}

func parseBound(str string, line int64) (Position, error) {
	if IsAddress(str) {
		return ParsePosition(str), nil
	}
	if !isColumn(str) {
		return Position{}, fmt.Errorf("%w: %q", ErrRange, str)
	}
	pos := Position{
		Line:   line,
		Column: ColumnIndex(str),
	}
	return pos, nil
}

// Bounding gives the range covering a block of the given size anchored on A1.
func Bounding(dim Dimension) *Range {
	start := Position{
		Line:   1,
		Column: 1,
	}
	end := Position{
		Line:   max(dim.Lines, 1),
		Column: max(dim.Columns, 1),
	}
	return NewRange(start, end)
}

func (r *Range) clip(other *Range) *Range {
	return NewRange(
		Position{
			Line:   max(other.Starts.Line, r.Starts.Line),
			Column: max(other.Starts.Column, r.Starts.Column),
		},
		Position{
			Line:   min(other.Ends.Line, r.Ends.Line),
			Column: min(other.Ends.Column, r.Ends.Column),
		},
	)
}

func (r *Range) Contains(pos Position) bool {
	ok := pos.Line >= r.Starts.Line && pos.Line <= r.Ends.Line
	if !ok {
		return false
	}
	return pos.Column >= r.Starts.Column && pos.Column <= r.Ends.Column
}

// Width and Height are 0 for a range that does not overlap its block.
func (r *Range) Width() int64 {
	return max(r.Ends.Column-r.Starts.Column+1, 0)
}

func (r *Range) Height() int64 {
	return max(r.Ends.Line-r.Starts.Line+1, 0)
}

// String always gives the start:end form, even for a single cell.
func (r *Range) String() string {
	return RangeReference(r.Starts.Addr(), r.Ends.Addr())
}

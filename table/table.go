package table

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/midbel/tabkit/layout"
	"github.com/midbel/tabkit/oxml"
	"github.com/midbel/tabkit/value"
)

var ErrInvalidArgument = errors.New("invalid argument")

// RowError reports a row whose number of cells does not match the number of
// columns of the table or that holds a nil cell.
type RowError struct {
	// position of the row in the batch given to AddRowRange
	Index    int
	Expected int
	Actual   int
	// 0-based index of a cell without value, -1 when all cells are set
	Column int
}

func (e *RowError) Error() string {
	if e.Column >= 0 && e.Expected == e.Actual {
		return fmt.Sprintf("row %d: no value in column %d", e.Index, e.Column+1)
	}
	return fmt.Sprintf("row %d: %d cells given, %d columns expected", e.Index, e.Actual, e.Expected)
}

func (e *RowError) Is(err error) bool {
	return err == ErrInvalidArgument
}

// Table is a list of named columns and rows of typed values. Rows can only be
// appended. A Table is not safe for concurrent use.
type Table struct {
	columns []string
	rows    [][]value.Value
}

func New(columns []string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: table without columns", ErrInvalidArgument)
	}
	t := Table{
		columns: slices.Clone(columns),
	}
	return &t, nil
}

func NewWithRows(columns []string, rows [][]value.Value) (*Table, error) {
	t, err := New(columns)
	if err != nil {
		return nil, err
	}
	if err := t.AddRowRange(rows); err != nil {
		return nil, err
	}
	return t, nil
}

// AddRow appends a copy of cells to the table. The table is left unchanged if
// the number of cells differs from the number of columns or if a cell has no
// value.
func (t *Table) AddRow(cells []value.Value) error {
	if len(cells) != len(t.columns) {
		return &RowError{
			Expected: len(t.columns),
			Actual:   len(cells),
			Column:   -1,
		}
	}
	if ix := slices.Index(cells, nil); ix >= 0 {
		return &RowError{
			Expected: len(t.columns),
			Actual:   len(cells),
			Column:   ix,
		}
	}
	t.rows = append(t.rows, slices.Clone(cells))
	return nil
}

// AddRowRange appends each row in order and stops at the first invalid one.
// Rows appended before the failure stay in the table.
func (t *Table) AddRowRange(rows [][]value.Value) error {
	for i, r := range rows {
		if err := t.AddRow(r); err != nil {
			var re *RowError
			if errors.As(err, &re) {
				re.Index = i
			}
			return err
		}
	}
	return nil
}

func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Row(ix int) []value.Value {
	if ix < 0 || ix >= len(t.rows) {
		return nil
	}
	return slices.Clone(t.rows[ix])
}

func (t *Table) Rows() iter.Seq[[]value.Value] {
	it := func(yield func([]value.Value) bool) {
		for _, r := range t.rows {
			if !yield(slices.Clone(r)) {
				break
			}
		}
	}
	return it
}

func (t *Table) Dimension() layout.Dimension {
	return layout.Dimension{
		Lines:   int64(len(t.rows)),
		Columns: int64(len(t.columns)),
	}
}

// Generate writes the spreadsheet of the table to w. Errors from w are
// returned as is.
func (t *Table) Generate(w io.Writer, options ...oxml.Option) error {
	return oxml.Write(w, t, options...)
}

// WriteFile writes the spreadsheet of the table to file.
func (t *Table) WriteFile(file string, options ...oxml.Option) error {
	return oxml.WriteFile(file, t, options...)
}

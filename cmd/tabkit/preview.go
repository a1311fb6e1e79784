package main

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/midbel/cli"

	"github.com/midbel/tabkit/doc"
	"github.com/midbel/tabkit/format"
	"github.com/midbel/tabkit/layout"
	tbl "github.com/midbel/tabkit/table"
	"github.com/midbel/tabkit/value"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Align(lipgloss.Center).Padding(0, 1)
	oddStyle    = cellStyle.Faint(true)
)

type PreviewTableCommand struct {
	Rows   int
	Comma  string
	Number string
	Date   string
	Range  string
}

func (c PreviewTableCommand) Run(args []string) error {
	set := cli.NewFlagSet("preview")
	set.IntVar(&c.Rows, "n", 20, "maximum number of rows to print")
	set.StringVar(&c.Comma, "c", string(cfg.Comma), "fields separator")
	set.StringVar(&c.Number, "f", "", "pattern used to display numbers")
	set.StringVar(&c.Date, "d", "", "pattern used to display dates")
	set.StringVar(&c.Range, "r", "", "cells to print (B2:D10, B:D)")
	if err := set.Parse(args); err != nil {
		return err
	}
	comma, err := getComma(c.Comma)
	if err != nil {
		return err
	}
	vf, err := c.formatter()
	if err != nil {
		return err
	}
	tb, err := doc.Open(set.Arg(0), comma)
	if err != nil {
		return err
	}
	sel := layout.Bounding(tb.Dimension())
	if c.Range != "" {
		if sel, err = layout.ParseRange(c.Range, tb.Dimension()); err != nil {
			return err
		}
	}
	str, err := renderTable(tb, vf, sel, c.Rows)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, str)
	return nil
}

func (c PreviewTableCommand) formatter() (*format.ValueFormatter, error) {
	vf := format.FormatValue()
	vf.Set(value.KindBool, format.FormatBool("TRUE", "FALSE"))
	if c.Number != "" {
		if err := vf.Number(c.Number); err != nil {
			return nil, err
		}
	}
	if err := vf.Date(c.Date); err != nil {
		return nil, err
	}
	return vf, nil
}

// renderTable draws the cells of sel the way they appear in the worksheet:
// column letters on the first line, names of the columns as header, banded
// rows. Lines of sel are the lines of the worksheet, the first row of the
// table being on line 1.
func renderTable(tb *tbl.Table, vf *format.ValueFormatter, sel *layout.Range, limit int) (string, error) {
	if sel.Width() == 0 || sel.Height() == 0 {
		return "", fmt.Errorf("%s: %w: selection is empty", sel, layout.ErrRange)
	}
	var (
		columns = tb.Columns()
		letters = make([]string, 0, sel.Width())
		header  = make([]string, 0, sel.Width())
		rows    [][]string
		line    int64
	)
	for i := range columns {
		pos := layout.Position{
			Line:   sel.Starts.Line,
			Column: int64(i + 1),
		}
		if !sel.Contains(pos) {
			continue
		}
		letters = append(letters, layout.ColumnLetter(pos.Column))
		header = append(header, columns[i])
	}
	rows = append(rows, header)
	for r := range tb.Rows() {
		line++
		if line > sel.Ends.Line || (limit > 0 && len(rows) > limit) {
			break
		}
		row, err := displayRow(vf, sel, line, r)
		if err != nil {
			return "", err
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow || row == 0:
				return headerStyle
			case row%2 == 0:
				return oddStyle
			default:
				return cellStyle
			}
		}).
		Headers(letters...).
		Rows(rows...)
	return t.String(), nil
}

func displayRow(vf *format.ValueFormatter, sel *layout.Range, line int64, row []value.Value) ([]string, error) {
	var list []string
	for i := range row {
		pos := layout.Position{
			Line:   line,
			Column: int64(i + 1),
		}
		if !sel.Contains(pos) {
			continue
		}
		str, err := vf.Format(row[i])
		if err != nil {
			return nil, err
		}
		list = append(list, str)
	}
	return list, nil
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/midbel/tabkit/format"
	"github.com/midbel/tabkit/layout"
	"github.com/midbel/tabkit/table"
	"github.com/midbel/tabkit/value"
)

func TestGetComma(t *testing.T) {
	tests := []struct {
		Input string
		Want  byte
	}{
		{Input: "", Want: cfg.Comma},
		{Input: ";", Want: ';'},
		{Input: `\t`, Want: '\t'},
	}
	for _, c := range tests {
		got, err := getComma(c.Input)
		require.NoError(t, err, c.Input)
		assert.Equal(t, c.Want, got, c.Input)
	}
	_, err := getComma(";;")
	assert.Error(t, err)
}

func TestSampleTable(t *testing.T) {
	tb, err := sampleTable(50, 32, defaultWords)
	require.NoError(t, err)

	dim := tb.Dimension()
	assert.Equal(t, int64(50), dim.Columns)
	assert.GreaterOrEqual(t, tb.Len(), demoMinRows+1)
	assert.LessOrEqual(t, tb.Len(), demoMaxRows)

	first := tb.Row(0)
	assert.Equal(t, value.Str("the first"), first[2])
	assert.Equal(t, value.Integer(47), first[4])
	assert.Equal(t, value.Str("Some Data :) 49"), first[49])

	again, err := sampleTable(50, 32, defaultWords)
	require.NoError(t, err)
	assert.Equal(t, tb.Len(), again.Len())
	assert.Equal(t, tb.Row(tb.Len()-1), again.Row(again.Len()-1))

	few, err := sampleTable(3, 1, defaultWords)
	require.NoError(t, err)
	assert.Equal(t, []value.Value{value.Str("this"), value.Str("is"), value.Str("the first")}, few.Row(0))
}

func TestWriteTable(t *testing.T) {
	tb, err := sampleTable(27, 32, defaultWords)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "out", "demo.xlsx")
	require.NoError(t, writeTable(tb, file))

	f, err := excelize.OpenFile(file)
	require.NoError(t, err)
	defer f.Close()

	tables, err := f.GetTables("Report")
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.True(t, strings.HasPrefix(tables[0].Range, "A1:AA"))
}

func TestLoadWords(t *testing.T) {
	words, err := loadWords("")
	require.NoError(t, err)
	assert.Equal(t, defaultWords, words)

	dir := t.TempDir()
	file := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(file, []byte("foo\n\n  bar \n"), 0644))
	words, err = loadWords(file)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, words)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = loadWords(empty)
	assert.Error(t, err)
}

func TestRenderTable(t *testing.T) {
	tb, err := table.NewWithRows([]string{"Name", "Val", "When"}, [][]value.Value{
		{value.Str("Yeeetus"), value.Number(1.5), value.Time(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))},
		{value.Str("Other"), value.Integer(2), value.Time(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))},
	})
	require.NoError(t, err)

	vf := format.FormatValue()
	require.NoError(t, vf.Number("#.00"))
	require.NoError(t, vf.Date("DD/MM/YYYY"))

	str, err := renderTable(tb, vf, layout.Bounding(tb.Dimension()), 1)
	require.NoError(t, err)
	for _, want := range []string{"A", "C", "Name", "Yeeetus", "1.50", "20/02/2026"} {
		assert.Contains(t, str, want)
	}
	assert.NotContains(t, str, "Other")

	sel, err := layout.ParseRange("B2:C", tb.Dimension())
	require.NoError(t, err)
	str, err = renderTable(tb, vf, sel, 0)
	require.NoError(t, err)
	for _, want := range []string{"Val", "When", "2.00", "01/03/2026"} {
		assert.Contains(t, str, want)
	}
	for _, skip := range []string{"Name", "Yeeetus", "1.50", "20/02/2026"} {
		assert.NotContains(t, str, skip)
	}

	sel, err = layout.ParseRange("Z1", tb.Dimension())
	require.NoError(t, err)
	_, err = renderTable(tb, vf, sel, 0)
	assert.ErrorIs(t, err, layout.ErrRange)
}

func TestPreviewFormatter(t *testing.T) {
	c := PreviewTableCommand{Number: "#,###"}
	vf, err := c.formatter()
	require.NoError(t, err)

	tests := []struct {
		Input value.Value
		Want  string
	}{
		{Input: value.Bool(true), Want: "TRUE"},
		{Input: value.Integer(1234), Want: "1,234"},
		{Input: value.Time(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)), Want: "2026-02-20"},
		{Input: value.Time(time.Date(2026, 2, 20, 18, 30, 0, 0, time.UTC)), Want: "2026-02-20 18:30:00"},
	}
	for _, tt := range tests {
		got, err := vf.Format(tt.Input)
		require.NoError(t, err)
		assert.Equal(t, tt.Want, got)
	}

	c.Number = "#x"
	_, err = c.formatter()
	assert.ErrorIs(t, err, format.ErrPattern)
}

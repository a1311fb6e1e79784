package csv

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/tabkit/table"
	"github.com/midbel/tabkit/value"
)

func TestReader(t *testing.T) {
	tests := []struct {
		Input string
		Want  [][]string
	}{
		{
			Input: "a,b\n1,2\n",
			Want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			Input: "a,b\r\n1,2\r\n",
			Want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			Input: "a,b\n1,2",
			Want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			Input: "a,b\n\n1,\n",
			Want:  [][]string{{"a", "b"}, {"1", ""}},
		},
		{
			Input: "a,\"b,c\"\n\"say \"\"hi\"\"\",\"multi\nline\"\n",
			Want:  [][]string{{"a", "b,c"}, {"say \"hi\"", "multi\nline"}},
		},
	}
	for _, tt := range tests {
		got, err := NewReader(strings.NewReader(tt.Input)).ReadAll()
		require.NoError(t, err, tt.Input)
		assert.Equal(t, tt.Want, got, tt.Input)
	}
}

func TestReaderInvalid(t *testing.T) {
	tests := []string{
		"a,b\"c\n",
		"\"a\"b\n",
		"\"unterminated\n",
		"a\rb\n",
	}
	for _, str := range tests {
		_, err := NewReader(strings.NewReader(str)).ReadAll()
		assert.Error(t, err, str)
	}
}

func TestReadTable(t *testing.T) {
	input := "Name;Val;When;Done\nYeeetus;69;2026-02-20;true\nOther;1.5;;false\n"
	tb, err := ReadTable(strings.NewReader(input), ';')
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Val", "When", "Done"}, tb.Columns())
	require.Equal(t, 2, tb.Len())
	assert.Equal(t, []value.Value{
		value.Str("Yeeetus"),
		value.Integer(69),
		value.Time(time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)),
		value.Bool(true),
	}, tb.Row(0))
	assert.Equal(t, []value.Value{
		value.Str("Other"),
		value.Number(1.5),
		value.Str(""),
		value.Bool(false),
	}, tb.Row(1))
}

func TestReadTableInvalid(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ReadTable(strings.NewReader("a,b\n1,2,3\n"), 0)
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	tb, err := table.NewWithRows([]string{"Name", "Val"}, [][]value.Value{
		{value.Str("Yeeetus"), value.Integer(69)},
		{value.Str("the first"), value.Bool(true)},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, tb, 0))
	assert.Equal(t, "Name,Val\nYeeetus,69\n\"the first\",true\n", buf.String())

	back, err := ReadTable(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, tb.Columns(), back.Columns())
	assert.Equal(t, tb.Row(1), back.Row(1))
}

func TestWriteTableRoundTrip(t *testing.T) {
	rows := [][]value.Value{
		{value.Str(`5"x`), value.Str(`"quoted"`)},
		{value.Str("a,b"), value.Str("two\nlines")},
		{value.Str(""), value.Time(time.Date(2026, time.February, 20, 14, 5, 9, 0, time.UTC))},
	}
	tb, err := table.NewWithRows([]string{"Name", "Val"}, rows)
	require.NoError(t, err)

	for _, comma := range []byte{',', ';'} {
		var buf bytes.Buffer
		require.NoError(t, WriteTable(&buf, tb, comma))

		back, err := ReadTable(&buf, comma)
		require.NoError(t, err, string(comma))
		require.Equal(t, tb.Len(), back.Len())
		for i := range rows {
			assert.Equal(t, rows[i], back.Row(i), "row %d", i)
		}
	}
}

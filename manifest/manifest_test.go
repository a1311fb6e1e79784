package manifest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/tabkit/table"
	"github.com/midbel/tabkit/value"
)

const sample = `
columns: [Name, Val, Ratio, Done, When]
rows:
  - [Yeeetus, 69, 0.5, true, 2026-02-20]
  - ["42", -1, 1e3, false, "not a date"]
`

func TestRead(t *testing.T) {
	tb, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Val", "Ratio", "Done", "When"}, tb.Columns())
	require.Equal(t, 2, tb.Len())

	row := tb.Row(0)
	assert.Equal(t, value.Str("Yeeetus"), row[0])
	assert.Equal(t, value.Integer(69), row[1])
	assert.Equal(t, value.Number(0.5), row[2])
	assert.Equal(t, value.Bool(true), row[3])
	require.Equal(t, value.KindDate, row[4].Kind())
	when := time.Time(row[4].(value.Date))
	assert.Equal(t, "2026-02-20", when.Format("2006-01-02"))

	row = tb.Row(1)
	assert.Equal(t, value.Str("42"), row[0])
	assert.Equal(t, value.Integer(-1), row[1])
	assert.Equal(t, value.Number(1000), row[2])
	assert.Equal(t, value.Bool(false), row[3])
	assert.Equal(t, value.Str("not a date"), row[4])
}

func TestReadInvalid(t *testing.T) {
	tests := []struct {
		Input string
		Err   error
	}{
		{
			Input: "",
			Err:   ErrManifest,
		},
		{
			Input: "columns: [a, b",
			Err:   ErrManifest,
		},
		{
			Input: "rows:\n  - [1]\n",
			Err:   table.ErrInvalidArgument,
		},
		{
			Input: "columns: [a]\nrows:\n  - [1, 2]\n",
			Err:   table.ErrInvalidArgument,
		},
		{
			Input: "columns: [a]\nrows:\n  - [~]\n",
			Err:   ErrManifest,
		},
		{
			Input: "columns: [a]\nrows:\n  - [{k: v}]\n",
			Err:   ErrManifest,
		},
	}
	for _, tt := range tests {
		_, err := Read(strings.NewReader(tt.Input))
		assert.ErrorIs(t, err, tt.Err, tt.Input)
	}
}

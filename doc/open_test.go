package doc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/tabkit/table"
	"github.com/midbel/tabkit/value"
)

func TestDetect(t *testing.T) {
	dir := t.TempDir()

	tb, err := table.NewWithRows([]string{"Name", "Val"}, [][]value.Value{
		{value.Str("Yeeetus"), value.Integer(69)},
	})
	require.NoError(t, err)

	var (
		xlsx = filepath.Join(dir, "report.xlsx")
		data = filepath.Join(dir, "data.csv")
		yml  = filepath.Join(dir, "report.yml")
		tiny = filepath.Join(dir, "tiny.csv")
	)
	require.NoError(t, tb.WriteFile(xlsx))
	require.NoError(t, os.WriteFile(data, []byte("Name,Val\nYeeetus,69\n"), 0644))
	require.NoError(t, os.WriteFile(yml, []byte("columns: [Name]\nrows:\n  - [Yeeetus]\n"), 0644))
	require.NoError(t, os.WriteFile(tiny, []byte("A\n"), 0644))

	tests := []struct {
		File string
		Want Format
	}{
		{File: xlsx, Want: OXML},
		{File: data, Want: CSV},
		{File: yml, Want: Manifest},
		{File: tiny, Want: CSV},
	}
	for _, c := range tests {
		got, err := Detect(c.File)
		require.NoError(t, err, c.File)
		assert.Equal(t, c.Want, got, c.File)
	}

	_, err = Detect(filepath.Join(dir, "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(file, []byte("Name;Val\nYeeetus;69\n"), 0644))

	tb, err := Open(file, ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Val"}, tb.Columns())
	assert.Equal(t, []value.Value{value.Str("Yeeetus"), value.Integer(69)}, tb.Row(0))

	xlsx := filepath.Join(dir, "report.xlsx")
	require.NoError(t, tb.WriteFile(xlsx))
	_, err = Open(xlsx, 0)
	assert.ErrorIs(t, err, ErrUnsupported)
}

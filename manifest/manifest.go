package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/midbel/tabkit/table"
	"github.com/midbel/tabkit/value"
)

var ErrManifest = errors.New("invalid manifest")

// Manifest describes a report: the names of its columns and its rows of
// scalars.
type Manifest struct {
	Columns []string        `yaml:"columns"`
	Rows    [][]interface{} `yaml:"rows"`
}

func Open(file string) (*table.Table, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Read(r)
}

func Read(r io.Reader) (*table.Table, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrManifest)
		}
		return nil, fmt.Errorf("%w: %s", ErrManifest, err)
	}
	return m.Table()
}

// Table converts the manifest to a table. Rows are added in order and the
// first invalid row stops the conversion.
func (m Manifest) Table() (*table.Table, error) {
	tb, err := table.New(m.Columns)
	if err != nil {
		return nil, err
	}
	for i, r := range m.Rows {
		row := make([]value.Value, 0, len(r))
		for j, v := range r {
			x, err := convert(v)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			row = append(row, x)
		}
		if err := tb.AddRow(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return tb, nil
}

func convert(v interface{}) (value.Value, error) {
	switch v := v.(type) {
	case string:
		if when, err := value.ParseDate(v); err == nil {
			return value.Time(when), nil
		}
		return value.Str(v), nil
	case int:
		return value.Integer(int64(v)), nil
	case int64:
		return value.Integer(v), nil
	case uint64:
		return value.Number(float64(v)), nil
	case float64:
		return value.Number(v), nil
	case bool:
		return value.Bool(v), nil
	case time.Time:
		return value.Time(v), nil
	case nil:
		return nil, fmt.Errorf("%w: null value", ErrManifest)
	default:
		return nil, fmt.Errorf("%w: unsupported value %v", ErrManifest, v)
	}
}

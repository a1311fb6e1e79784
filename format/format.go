package format

import (
	"errors"
	"fmt"

	"github.com/midbel/tabkit/value"
)

var (
	ErrPattern = errors.New("invalid pattern")
	ErrType    = errors.New("unexpected value")
)

type Formatter interface {
	Format(value.Value) (string, error)
}

// ValueFormatter selects a Formatter from the kind of a value. Values without
// a registered formatter are displayed with their String method.
type ValueFormatter struct {
	formatters map[value.ValueKind]Formatter
}

func FormatValue() *ValueFormatter {
	vf := ValueFormatter{
		formatters: make(map[value.ValueKind]Formatter),
	}
	return &vf
}

// Set registers formatter for each kind given in the kind mask.
func (vf *ValueFormatter) Set(kind value.ValueKind, formatter Formatter) {
	for k := value.KindText; k <= value.KindDate; k <<= 1 {
		if kind&k != 0 {
			vf.formatters[k] = formatter
		}
	}
}

func (vf *ValueFormatter) Number(pattern string) error {
	f, err := ParseNumberFormatter(pattern)
	if err == nil {
		vf.Set(value.KindInt|value.KindFloat, f)
	}
	return err
}

// Date registers a formatter for dates. An empty pattern selects FormatDate.
func (vf *ValueFormatter) Date(pattern string) error {
	if pattern == "" {
		vf.Set(value.KindDate, FormatDate())
		return nil
	}
	f, err := ParseDateFormatter(pattern)
	if err == nil {
		vf.Set(value.KindDate, f)
	}
	return err
}

func (vf *ValueFormatter) Format(v value.Value) (string, error) {
	f, ok := vf.formatters[v.Kind()]
	if ok {
		return f.Format(v)
	}
	return v.String(), nil
}

func FormatBool(yes, no string) Formatter {
	return boolFormatter{
		yes: yes,
		no:  no,
	}
}

type boolFormatter struct {
	yes string
	no  string
}

func (f boolFormatter) Format(v value.Value) (string, error) {
	b, ok := v.(value.Boolean)
	if !ok {
		return "", errKind(v, value.KindBool)
	}
	if b {
		return f.yes, nil
	}
	return f.no, nil
}

func errKind(v value.Value, want value.ValueKind) error {
	return fmt.Errorf("%w: %s given, %s expected", ErrType, v.Kind(), want)
}

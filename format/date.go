package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/tabkit/value"
)

const (
	DefaultDatePattern     = "YYYY-MM-DD"
	DefaultDateTimePattern = "YYYY-MM-DD hh:mm:ss"
)

type dateWriter func(*strings.Builder, time.Time)

type dateFormatter struct {
	writers []dateWriter
}

// ParseDateFormatter compiles a date pattern. A run of one of the letters Y,
// M, D, J, h, m, s is a field and the length of the run selects how it is
// written:
//
//	YY YYYY         year on 2 or 4 digits
//	M MM MMM MMMM   month: number, padded number, short and long name
//	D DD DDD DDDD   day of month: number, padded number, short and long weekday name
//	J JJJ           day of year: number, padded number
//	h hh m mm s ss  time of day: number, padded number
//
// Text between single quotes and any other character is copied as is.
func ParseDateFormatter(pattern string) (Formatter, error) {
	var df dateFormatter
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '\'' {
			n := strings.IndexByte(pattern[i+1:], '\'')
			if n < 0 {
				return nil, fmt.Errorf("%w: %q: unterminated quote", ErrPattern, pattern)
			}
			df.writers = append(df.writers, writeLiteral(pattern[i+1:i+1+n]))
			i += n + 2
			continue
		}
		size := 1
		for i+size < len(pattern) && pattern[i+size] == c {
			size++
		}
		w, err := dateField(c, size)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", ErrPattern, pattern, err)
		}
		if w == nil {
			w = writeLiteral(pattern[i : i+size])
		}
		df.writers = append(df.writers, w)
		i += size
	}
	return df, nil
}

func (f dateFormatter) Format(v value.Value) (string, error) {
	d, ok := v.(value.Date)
	if !ok {
		return "", errKind(v, value.KindDate)
	}
	var str strings.Builder
	for _, w := range f.writers {
		w(&str, time.Time(d))
	}
	return str.String(), nil
}

// FormatDate gives a formatter writing the time of day only for dates whose
// serial has a fractional part.
func FormatDate() Formatter {
	var (
		day, _  = ParseDateFormatter(DefaultDatePattern)
		full, _ = ParseDateFormatter(DefaultDateTimePattern)
	)
	return autoDateFormatter{
		day:  day,
		full: full,
	}
}

type autoDateFormatter struct {
	day  Formatter
	full Formatter
}

func (f autoDateFormatter) Format(v value.Value) (string, error) {
	d, ok := v.(value.Date)
	if !ok {
		return "", errKind(v, value.KindDate)
	}
	if _, frac := math.Modf(value.Serial(time.Time(d))); frac != 0 {
		return f.full.Format(v)
	}
	return f.day.Format(v)
}

func dateField(c byte, size int) (dateWriter, error) {
	var get func(time.Time) int
	switch c {
	case 'Y':
		switch size {
		case 2:
			return writeNumber(func(t time.Time) int { return t.Year() % 100 }, 2), nil
		case 4:
			return writeNumber(time.Time.Year, 4), nil
		}
		return nil, fmt.Errorf("year written with %d letters", size)
	case 'M':
		switch size {
		case 3:
			return writeName(func(t time.Time) string { return t.Month().String()[:3] }), nil
		case 4:
			return writeName(func(t time.Time) string { return t.Month().String() }), nil
		}
		get = func(t time.Time) int { return int(t.Month()) }
	case 'D':
		switch size {
		case 3:
			return writeName(func(t time.Time) string { return t.Weekday().String()[:3] }), nil
		case 4:
			return writeName(func(t time.Time) string { return t.Weekday().String() }), nil
		}
		get = time.Time.Day
	case 'J':
		if size == 1 || size == 3 {
			return writeNumber(time.Time.YearDay, size), nil
		}
		return nil, fmt.Errorf("day of year written with %d letters", size)
	case 'h':
		get = time.Time.Hour
	case 'm':
		get = time.Time.Minute
	case 's':
		get = time.Time.Second
	default:
		return nil, nil
	}
	if size > 2 {
		return nil, fmt.Errorf("%c written with %d letters", c, size)
	}
	return writeNumber(get, size), nil
}

func writeLiteral(str string) dateWriter {
	return func(w *strings.Builder, _ time.Time) {
		w.WriteString(str)
	}
}

func writeName(get func(time.Time) string) dateWriter {
	return func(w *strings.Builder, t time.Time) {
		w.WriteString(get(t))
	}
}

func writeNumber(get func(time.Time) int, width int) dateWriter {
	return func(w *strings.Builder, t time.Time) {
		str := strconv.Itoa(get(t))
		if n := width - len(str); n > 0 {
			w.WriteString(strings.Repeat("0", n))
		}
		w.WriteString(str)
	}
}

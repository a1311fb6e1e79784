package value

import (
	"strconv"
	"strings"
	"time"
)

var supportedDateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02 15:04:05",
}

func ParseDate(str string) (time.Time, error) {
	var (
		when time.Time
		err  error
	)
	for _, f := range supportedDateFormats {
		when, err = time.Parse(f, str)
		if err == nil {
			break
		}
	}
	return when, err
}

// Infer gives the most specific value for str: integer, float, boolean, date
// and text otherwise.
func Infer(str string) Value {
	trimmed := strings.TrimSpace(str)
	if trimmed == "" {
		return Text(str)
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && isDecimal(trimmed) {
		return Float(f)
	}
	switch trimmed {
	case "true", "TRUE", "True":
		return Boolean(true)
	case "false", "FALSE", "False":
		return Boolean(false)
	}
	if when, err := ParseDate(trimmed); err == nil {
		return Date(when)
	}
	return Text(str)
}

// reject inf, nan and hexadecimal forms accepted by strconv
func isDecimal(str string) bool {
	for i := 0; i < len(str); i++ {
		c := str[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			continue
		}
		return false
	}
	return true
}

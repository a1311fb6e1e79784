package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/midbel/tabkit/value"
)

// numberFormatter renders numbers from a pattern made of an optional leading
// +, an integral part of #, 0 and , (grouping) and an optional fractional part
// of 0 followed by #. A 0 is a digit always written, a # a digit written only
// when significant.
type numberFormatter struct {
	sign    bool
	group   bool
	minInt  int
	minFrac int
	maxFrac int
}

func ParseNumberFormatter(pattern string) (Formatter, error) {
	var nf numberFormatter
	if rest, ok := strings.CutPrefix(pattern, "+"); ok {
		nf.sign = true
		pattern = rest
	}
	integral, fractional, _ := strings.Cut(pattern, ".")
	if strings.Trim(integral, ",") == "" {
		return nil, fmt.Errorf("%w: %q: no integral part", ErrPattern, pattern)
	}
	for _, c := range integral {
		switch c {
		case '0':
			nf.minInt++
		case ',':
			nf.group = true
		case '#':
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %c in integral part", ErrPattern, pattern, c)
		}
	}
	for _, c := range fractional {
		switch {
		case c == '0' && nf.maxFrac == nf.minFrac:
			nf.minFrac++
		case c == '#':
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %c in fractional part", ErrPattern, pattern, c)
		}
		nf.maxFrac++
	}
	return nf, nil
}

func (nf numberFormatter) Format(v value.Value) (string, error) {
	switch n := v.(type) {
	case value.Int:
		str := strconv.FormatInt(int64(n), 10)
		digits := strings.TrimPrefix(str, "-")
		return nf.join(len(digits) < len(str), digits, ""), nil
	case value.Float:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return n.String(), nil
		}
		str := strconv.FormatFloat(math.Abs(f), 'f', nf.maxFrac, 64)
		integral, fractional, _ := strings.Cut(str, ".")
		negative := math.Signbit(f) && strings.Trim(str, "0.") != ""
		return nf.join(negative, integral, fractional), nil
	default:
		return "", errKind(v, value.KindFloat)
	}
}

func (nf numberFormatter) join(negative bool, integral, fractional string) string {
	fractional = strings.TrimRight(fractional, "0")
	if n := nf.minFrac - len(fractional); n > 0 {
		fractional += strings.Repeat("0", n)
	}
	if n := nf.minInt - len(integral); n > 0 {
		integral = strings.Repeat("0", n) + integral
	}
	if nf.group {
		integral = groupThousands(integral)
	}

	var str strings.Builder
	if negative {
		str.WriteByte('-')
	} else if nf.sign {
		str.WriteByte('+')
	}
	str.WriteString(integral)
	if fractional != "" {
		str.WriteByte('.')
		str.WriteString(fractional)
	}
	return str.String()
}

func groupThousands(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = min(3, len(digits))
	}
	var str strings.Builder
	str.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		str.WriteByte(',')
		str.WriteString(digits[i : i+3])
	}
	return str.String()
}

package layout

import (
	"strconv"
	"strings"
)

type Position struct {
	Line   int64
	Column int64
}

func ParsePosition(addr string) Position {
	var (
		pos    Position
		offset int
	)
	pos.Column, offset = ParseIndex(addr)
	pos.Line, _ = strconv.ParseInt(addr[offset:], 10, 64)
	return pos
}

// Addr gives the A1 reference of a 1-based position.
func (p Position) Addr() string {
	return CellReference(p.Column-1, p.Line)
}

func (p Position) String() string {
	return p.Addr()
}

// ColumnLetter converts a 1-based column ordinal to its letters. Letters form a
// bijective base-26 numeration: there is no digit for zero so each step
// reduces n-1 instead of n. Ordinals lower than 1 give an empty string.
func ColumnLetter(n int64) string {
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ColumnIndex is the reverse of ColumnLetter.
func ColumnIndex(letters string) int64 {
	ix, _ := ParseIndex(letters)
	return ix
}

// CellReference gives the reference of the cell at the 0-based column index
// and the 1-based row index.
func CellReference(col, row int64) string {
	var str strings.Builder
	str.WriteString(ColumnLetter(col + 1))
	str.WriteString(strconv.FormatInt(row, 10))
	return str.String()
}

func RangeReference(start, end string) string {
	return start + ":" + end
}

func IsAddress(addr string) bool {
	size := len(addr)
	if size < 2 {
		return false
	}
	var offset int
	for offset < size && isLetter(rune(addr[offset])) {
		offset++
	}
	if offset == 0 || offset >= size || addr[offset] == '0' {
		return false
	}
	for offset < size {
		c := addr[offset]
		if c < '0' || c > '9' {
			return false
		}
		offset++
	}
	return offset == size
}

func ParseIndex(str string) (int64, int) {
	if len(str) == 0 {
		return 0, 0
	}
	var (
		offset int
		index  int64
	)
	for offset < len(str) && isLetter(rune(str[offset])) {
		delta := byte('A')
		if isLower(rune(str[offset])) {
			delta = 'a'
		}
		index = index*26 + int64(str[offset]-delta+1)
		offset++
	}
	return index, offset
}

func isColumn(str string) bool {
	if str == "" {
		return false
	}
	for _, c := range str {
		if !isLetter(c) {
			return false
		}
	}
	return true
}

func isLower(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func isLetter(c rune) bool {
	return isLower(c) || isUpper(c)
}

package value

import (
	"fmt"
)

type ValueKind int8

const (
	KindText ValueKind = 1 << iota
	KindInt
	KindFloat
	KindBool
	KindDate
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// declared types of a cell
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeDate    = "date"
)

// values of the t attribute of a worksheet cell. Dates are numbers on the
// wire: the serial only becomes a date through the style of the cell.
const (
	WireString = "str"
	WireNumber = "n"
	WireBool   = "b"
	WireError  = "e"
)

// Value is a typed cell value. The set of implementations is closed: Text,
// Int, Float, Boolean and Date.
type Value interface {
	fmt.Stringer
	Kind() ValueKind
	Type() string
	Wire() string
	Literal() string

	scalar()
}

package value

import (
	"math"
	"strconv"
	"time"
)

type Text string

func Str(str string) Value {
	return Text(str)
}

func (Text) Kind() ValueKind {
	return KindText
}

func (Text) Type() string {
	return TypeString
}

func (Text) Wire() string {
	return WireString
}

// Literal returns the text as is. Escaping is left to the encoder.
func (t Text) Literal() string {
	return string(t)
}

func (t Text) String() string {
	return string(t)
}

func (Text) scalar() {}

type Int int64

func Integer(n int64) Value {
	return Int(n)
}

func (Int) Kind() ValueKind {
	return KindInt
}

func (Int) Type() string {
	return TypeNumber
}

func (Int) Wire() string {
	return WireNumber
}

func (i Int) Literal() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i Int) String() string {
	return i.Literal()
}

func (Int) scalar() {}

type Float float64

func Number(f float64) Value {
	return Float(f)
}

func (Float) Kind() ValueKind {
	return KindFloat
}

func (Float) Type() string {
	return TypeNumber
}

// Wire gives an error cell for NaN and infinities: they have no literal a
// spreadsheet accepts as a number.
func (f Float) Wire() string {
	if !f.finite() {
		return WireError
	}
	return WireNumber
}

func (f Float) Literal() string {
	if !f.finite() {
		return errNum
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f Float) finite() bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func (Float) scalar() {}

const errNum = "#NUM!"

type Boolean bool

func Bool(b bool) Value {
	return Boolean(b)
}

func (Boolean) Kind() ValueKind {
	return KindBool
}

func (Boolean) Type() string {
	return TypeBoolean
}

func (Boolean) Wire() string {
	return WireBool
}

func (b Boolean) Literal() string {
	if b {
		return "1"
	}
	return "0"
}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

func (Boolean) scalar() {}

type Date time.Time

func Time(when time.Time) Value {
	return Date(when)
}

func (Date) Kind() ValueKind {
	return KindDate
}

func (Date) Type() string {
	return TypeDate
}

func (Date) Wire() string {
	return WireNumber
}

func (d Date) Literal() string {
	return strconv.FormatFloat(Serial(time.Time(d)), 'g', -1, 64)
}

// String gives the day of d, followed by its time when d is not at midnight.
func (d Date) String() string {
	when := time.Time(d)
	if h, m, s := when.Clock(); h == 0 && m == 0 && s == 0 {
		return when.Format("2006-01-02")
	}
	return when.Format("2006-01-02 15:04:05")
}

func (Date) scalar() {}

const (
	secondsPerDay = 24 * 60 * 60
	nanosPerDay   = secondsPerDay * int64(time.Second)
	leapDay       = 61
)

// epoch of the 1900 date system as used by spreadsheet applications. Day 60
// is the fictitious 1900-02-29 so serials are counted from 1899-12-30.
var epoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Serial returns the spreadsheet serial of the given time: the number of days
// since the epoch with the time of day as fraction. The location of when is
// kept as is: a wall clock of 12:00 always gives .5 whatever the zone.
//
// Serials of the first two months of 1900 are shifted by one day: the 1900
// system counts a 29th of February that never existed, 1900-03-01 is 61 but
// 1900-02-28 is 59.
func Serial(when time.Time) float64 {
	wall := time.Date(when.Year(), when.Month(), when.Day(), 0, 0, 0, 0, time.UTC)
	days := (wall.Unix() - epoch.Unix()) / secondsPerDay
	if days > 0 && days < leapDay {
		days--
	}
	var (
		hour, minute, sec = when.Clock()
		elapsed           = int64(hour*3600+minute*60+sec)*int64(time.Second) + int64(when.Nanosecond())
	)
	return float64(days) + float64(elapsed)/float64(nanosPerDay)
}

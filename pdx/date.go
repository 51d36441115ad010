package pdx

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a compact calendar date as it appears in script files. The
// packed representation is 4 bytes; ordering is lexicographic by
// (year, month, day).
type Date struct {
	y uint16
	m uint8
	d uint8
}

func NewDate(year uint16, month, day uint8) Date {
	return Date{y: year, m: month, d: day}
}

func (d Date) Year() uint16 { return d.y }
func (d Date) Month() uint8 { return d.m }
func (d Date) Day() uint8   { return d.d }

func (d Date) String() string {
	return fmt.Sprintf("%d.%d.%d", d.y, d.m, d.d)
}

// Less reports whether d sorts before e.
func (d Date) Less(e Date) bool {
	if d.y != e.y {
		return d.y < e.y
	}
	if d.m != e.m {
		return d.m < e.m
	}
	return d.d < e.d
}

var dateFieldNames = [3]string{"year", "month", "day"}
var dateFieldMax = [3]uint64{0xFFFF, 0xFF, 0xFF}

// ParseDate decodes a date token already known to match \d+\.\d+\.\d+.
// A field beyond its representable maximum is a fatal error: dates are
// rare in practice and a malformed one indicates corrupt data worth
// stopping for.
func ParseDate(text string, loc FileLocation) (Date, error) {
	var num [3]uint64
	rest := text
	for i := 0; i < 3; i++ {
		part := rest
		if i < 2 {
			dot := strings.IndexByte(rest, '.')
			part, rest = rest[:dot], rest[dot+1:]
		}
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			v = dateFieldMax[i] + 1 // out-of-range digits overflow uint64
		}
		if v > dateFieldMax[i] {
			return Date{}, &ParseError{
				Loc: loc,
				Msg: fmt.Sprintf("cannot represent %s %s (maximum is %d) in date value",
					dateFieldNames[i], part, dateFieldMax[i]),
			}
		}
		num[i] = v
	}
	return Date{
		y: uint16(num[0]),
		m: uint8(num[1]),
		d: uint8(num[2]),
	}, nil
}

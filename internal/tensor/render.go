package tensor

import (
	"math"
	"strconv"
	"strings"
)

// Render serializes v in deterministic compact notation: sequences as
// [a,b,c], strings double-quoted, numbers in shortest form, null as null.
// Error messages embed this rendering so failures are diagnosable as-is.
func Render(v Value) string {
	var b strings.Builder
	render(&b, v)
	return b.String()
}

func render(b *strings.Builder, v Value) {
	if v.seq {
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			render(b, item)
		}
		b.WriteByte(']')
		return
	}

	switch v.kind {
	case Number:
		b.WriteString(formatNumber(v.num))
	case String:
		b.WriteString(strconv.Quote(v.str))
	case Bool:
		b.WriteString(strconv.FormatBool(v.flag))
	default:
		b.WriteString("null")
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

package tensor

import (
	"strconv"
	"strings"
)

// IndexPath locates an element through nested levels, outermost first.
// It is only used for error reporting.
type IndexPath []int

// With returns a new path extended by i. The receiver is never modified, so
// sibling recursive frames cannot alias each other's paths.
func (p IndexPath) With(i int) IndexPath {
	next := make(IndexPath, len(p)+1)
	copy(next, p)
	next[len(p)] = i
	return next
}

// String renders the path as arr[1][1][0].
func (p IndexPath) String() string {
	var b strings.Builder
	b.WriteString("arr")
	for _, i := range p {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
	}
	return b.String()
}

package tensor

// Value is an immutable, arbitrarily nested tensor value.
//
// A Value is either a leaf (a number, string, boolean, or null) or a
// sequence of Values. It carries no shape; use InferShape to derive one.
// The zero Value is the null leaf.
//
// Example:
//
//	x := tensor.Seq(tensor.Numbers(1, 2), tensor.Numbers(3, 4))
//	shape, err := tensor.InferShape(x) // [2,2]
type Value struct {
	items []Value
	seq   bool
	kind  Kind
	num   float64
	str   string
	flag  bool
}

// Null returns the null leaf.
func Null() Value {
	return Value{}
}

// Num returns a number leaf.
func Num(f float64) Value {
	return Value{kind: Number, num: f}
}

// Str returns a string leaf.
func Str(s string) Value {
	return Value{kind: String, str: s}
}

// Boolean returns a boolean leaf.
func Boolean(b bool) Value {
	return Value{kind: Bool, flag: b}
}

// Seq returns a sequence of the given values. The argument slice is copied.
func Seq(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return node(cp)
}

// node wraps items without copying; callers must not retain items.
func node(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{items: items, seq: true}
}

// Numbers returns a rank-1 sequence of number leaves.
func Numbers(xs ...float64) Value {
	items := make([]Value, len(xs))
	for i, x := range xs {
		items[i] = Num(x)
	}
	return node(items)
}

// Strings returns a rank-1 sequence of string leaves.
func Strings(xs ...string) Value {
	items := make([]Value, len(xs))
	for i, x := range xs {
		items[i] = Str(x)
	}
	return node(items)
}

// Matrix returns a rank-2 sequence built from rows. Rows of unequal length
// produce a ragged value that InferShape will reject.
func Matrix(rows [][]float64) Value {
	items := make([]Value, len(rows))
	for i, row := range rows {
		items[i] = Numbers(row...)
	}
	return node(items)
}

// IsSequence reports whether v is a sequence rather than a leaf.
func (v Value) IsSequence() bool {
	return v.seq
}

// IsNull reports whether v is the null leaf.
func (v Value) IsNull() bool {
	return !v.seq && v.kind == Invalid
}

// Kind returns the leaf kind. Sequences and null report Invalid.
func (v Value) Kind() Kind {
	if v.seq {
		return Invalid
	}
	return v.kind
}

// Len returns the number of elements of a sequence, or 0 for a leaf.
func (v Value) Len() int {
	return len(v.items)
}

// At returns the i-th element of a sequence.
// Panics if v is not a sequence or i is out of range.
func (v Value) At(i int) Value {
	if !v.seq {
		panic("tensor: At called on a leaf value")
	}
	return v.items[i]
}

// Items returns a copy of the sequence's elements, or nil for a leaf.
func (v Value) Items() []Value {
	if !v.seq {
		return nil
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// Float returns the number held by a number leaf.
func (v Value) Float() (float64, bool) {
	if v.seq || v.kind != Number {
		return 0, false
	}
	return v.num, true
}

// Text returns the string held by a string leaf.
func (v Value) Text() (string, bool) {
	if v.seq || v.kind != String {
		return "", false
	}
	return v.str, true
}

// Truth returns the boolean held by a boolean leaf.
func (v Value) Truth() (bool, bool) {
	if v.seq || v.kind != Bool {
		return false, false
	}
	return v.flag, true
}

// String renders v in compact bracketed notation, e.g. [[1,2],["a",true]].
func (v Value) String() string {
	return Render(v)
}

// Equal reports whether a and b have the same structure and leaves.
// Number leaves compare with ==, so NaN never equals NaN.
func Equal(a, b Value) bool {
	if a.seq != b.seq {
		return false
	}
	if a.seq {
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Number:
		return a.num == b.num
	case String:
		return a.str == b.str
	case Bool:
		return a.flag == b.flag
	default:
		return true
	}
}

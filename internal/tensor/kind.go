// Package tensor implements the validation and reshape engine shared by every
// algorithm in kalimdor: shape inference over nested values, rank and element
// type contracts, and row-major flatten/reshape.
package tensor

import (
	"strings"
)

// Kind is the runtime type tag of a leaf value.
type Kind uint8

// Recognized leaf kinds. Invalid is the kind of the null value.
const (
	Invalid Kind = iota
	Number
	String
	Bool
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "boolean"
	default:
		return "null"
	}
}

// ParseKind maps a kind name to its Kind. "bool" is accepted as an alias of
// "boolean".
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "number":
		return Number, true
	case "string":
		return String, true
	case "boolean", "bool":
		return Bool, true
	default:
		return Invalid, false
	}
}

// KindSet is a set of leaf kinds accepted by ValidateMatrixType.
type KindSet uint8

// AllKinds accepts every recognized leaf kind.
const AllKinds = KindSet(1<<Number | 1<<String | 1<<Bool)

// Kinds builds a KindSet from the given kinds.
func Kinds(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		if k == Invalid {
			continue
		}
		s |= 1 << k
	}
	return s
}

// ParseKinds builds a KindSet from kind names such as "number,string".
func ParseKinds(names []string) (KindSet, error) {
	var s KindSet
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, ok := ParseKind(name)
		if !ok {
			return 0, &TypeContractError{Op: "kinds", Message: "unknown element type " + name}
		}
		s |= Kinds(k)
	}
	return s, nil
}

// Has reports whether k is a member of the set.
func (s KindSet) Has(k Kind) bool {
	if k == Invalid {
		return false
	}
	return s&(1<<k) != 0
}

// String renders the set, e.g. {number, string}.
func (s KindSet) String() string {
	names := make([]string, 0, 3)
	for _, k := range []Kind{Number, String, Bool} {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}

package tensor

import (
	"fmt"
	"reflect"
)

// FromAny converts an in-memory Go value into a Value.
//
// Accepted leaves: nil, Value, every Go integer and float type, string,
// bool. Accepted sequences: []any and any slice or array of accepted
// values (e.g. [][]float64). The structural probe runs once per node; no
// shape checking is done here, so ragged input converts fine and is
// rejected later by InferShape.
func FromAny(x any) (Value, error) {
	return fromAny(x, nil)
}

//nolint:gocyclo,cyclop // One case per supported Go type
func fromAny(x any, path IndexPath) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case float64:
		return Num(t), nil
	case float32:
		return Num(float64(t)), nil
	case int:
		return Num(float64(t)), nil
	case int8:
		return Num(float64(t)), nil
	case int16:
		return Num(float64(t)), nil
	case int32:
		return Num(float64(t)), nil
	case int64:
		return Num(float64(t)), nil
	case uint:
		return Num(float64(t)), nil
	case uint8:
		return Num(float64(t)), nil
	case uint16:
		return Num(float64(t)), nil
	case uint32:
		return Num(float64(t)), nil
	case uint64:
		return Num(float64(t)), nil
	case string:
		return Str(t), nil
	case bool:
		return Boolean(t), nil
	case []float64:
		return Numbers(t...), nil
	case []string:
		return Strings(t...), nil
	case [][]float64:
		return Matrix(t), nil
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			v, err := fromAny(item, path.With(i))
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return node(items), nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return node(nil), nil
		}
		items := make([]Value, rv.Len())
		for i := range items {
			v, err := fromAny(rv.Index(i).Interface(), path.With(i))
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return node(items), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromAny(rv.Elem().Interface(), path)
	default:
		return Value{}, &TypeContractError{
			Op:      "convert",
			Message: fmt.Sprintf("Element %s has unsupported type %T", path, x),
		}
	}
}

// ToAny converts v back into plain Go values: []any for sequences, float64,
// string, bool, or nil. The result is suitable for encoding/json.
func ToAny(v Value) any {
	if v.seq {
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = ToAny(item)
		}
		return out
	}
	switch v.kind {
	case Number:
		return v.num
	case String:
		return v.str
	case Bool:
		return v.flag
	default:
		return nil
	}
}

// Float64s returns the numbers of a rank-1 numeric tensor.
func Float64s(v Value) ([]float64, error) {
	if err := ValidateMatrix1D(v); err != nil {
		return nil, err
	}
	if err := ValidateMatrixType(v, Kinds(Number)); err != nil {
		return nil, err
	}

	out := make([]float64, len(v.items))
	for i, item := range v.items {
		out[i] = item.num
	}
	return out, nil
}

// Float64Matrix returns the rows of a rank-2 numeric tensor.
func Float64Matrix(v Value) ([][]float64, error) {
	if err := ValidateMatrix2D(v); err != nil {
		return nil, err
	}
	if err := ValidateMatrixType(v, Kinds(Number)); err != nil {
		return nil, err
	}

	rows := make([][]float64, len(v.items))
	for i, row := range v.items {
		rows[i] = make([]float64, len(row.items))
		for j, item := range row.items {
			rows[i][j] = item.num
		}
	}
	return rows, nil
}

package soql

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindString is a single-quoted string literal.
	KindString Kind = iota
	// KindBool is a true or false literal.
	KindBool
	// KindNull is the null literal.
	KindNull
	// KindNumber is an unquoted numeric literal.
	KindNumber
	// KindRaw is text rendered verbatim.
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindRaw:
		return "raw"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// DateTimeLayout is the literal layout used for time.Time values.
const DateTimeLayout = "2006-01-02T15:04:05Z07:00"

// Value is a condition operand. The zero Value is an empty string literal.
type Value struct {
	kind Kind
	text string
}

// String returns a string literal. The text is quoted verbatim; embedded
// quotes are not escaped.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Bool returns a boolean literal.
func Bool(b bool) Value { return Value{kind: KindBool, text: strconv.FormatBool(b)} }

// Null returns the null literal.
func Null() Value { return Value{kind: KindNull, text: "null"} }

// Int returns an integer literal.
func Int(n int64) Value { return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)} }

// Uint returns an unsigned integer literal.
func Uint(n uint64) Value { return Value{kind: KindNumber, text: strconv.FormatUint(n, 10)} }

// Float returns a decimal literal in its shortest exact form.
func Float(f float64) Value { return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'f', -1, 64)} }

// Raw returns an expression that is rendered verbatim, such as a date
// literal (2019-10-10) or a date function (LAST_N_DAYS:30).
func Raw(expr string) Value { return Value{kind: KindRaw, text: expr} }

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// Text returns the unformatted text of v.
func (v Value) Text() string { return v.text }

// Format returns v as it appears in a query.
func (v Value) Format() string {
	if v.kind == KindString {
		return "'" + v.text + "'"
	}
	return v.text
}

// ValueOf converts a Go value into a Value. Pointers are dereferenced, a
// nil pointer becomes Null, and named types are formatted by their
// underlying kind unless they implement fmt.Stringer.
func ValueOf(v any) Value {
	switch val := v.(type) {
	case Value:
		return val
	case nil:
		return Null()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return Null()
		}
		return ValueOf(rv.Elem().Interface())
	}

	switch val := v.(type) {
	case []byte:
		return String(string(val))
	case float32:
		return Value{kind: KindNumber, text: strconv.FormatFloat(float64(val), 'f', -1, 32)}
	case time.Time:
		return Raw(val.Format(DateTimeLayout))
	case fmt.Stringer:
		return String(val.String())
	}

	switch rv.Kind() {
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint())
	case reflect.Float32:
		return Value{kind: KindNumber, text: strconv.FormatFloat(rv.Float(), 'f', -1, 32)}
	case reflect.Float64:
		return Float(rv.Float())
	}
	return Raw(fmt.Sprintf("%v", v))
}

// rawOf converts v without quoting, for date comparisons.
func rawOf(v any) Value {
	switch val := v.(type) {
	case Value:
		return Raw(val.text)
	case string:
		return Raw(val)
	}
	return Raw(ValueOf(v).text)
}

// valuesOf flattens vs into Values. A single slice or array argument is
// expanded element by element.
func valuesOf(vs []any) []Value {
	if len(vs) == 1 {
		if _, ok := vs[0].([]byte); !ok {
			rv := reflect.ValueOf(vs[0])
			if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
				out := make([]Value, rv.Len())
				for i := range out {
					out[i] = ValueOf(rv.Index(i).Interface())
				}
				return out
			}
		}
	}
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = ValueOf(v)
	}
	return out
}

func joinValues(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.Format()
	}
	return strings.Join(parts, ", ")
}

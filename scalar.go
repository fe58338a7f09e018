package redact

import "reflect"

// Char is a single-character value that redacts to RedactedChar instead of
// zero. Go folds rune into int32, so a plain rune field under walk resets
// to 0 like any numeric; declare the field as Char to get the sentinel,
// which carries a visible "redacted" connotation that a zero does not.
type Char rune

// RedactedChar is the sentinel a walked Char resets to.
const RedactedChar Char = 'X'

var charType = reflect.TypeOf(Char(0))

// redactScalar substitutes a scalar leaf with its redacted default. The set
// of handled kinds is closed: booleans, integers, unsigned integers, floats,
// and complex numbers reset to zero; Char resets to RedactedChar. Any other
// kind is left untouched.
func redactScalar(v reflect.Value) {
	if v.Type() == charType {
		v.SetInt(int64(RedactedChar))
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(false)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(0)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(0)
	case reflect.Float32, reflect.Float64:
		v.SetFloat(0)
	case reflect.Complex64, reflect.Complex128:
		v.SetComplex(0)
	}
}

// isScalarKind reports whether the kind participates in scalar redaction.
func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

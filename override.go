package redact

// SelfRedactor allows types to bypass reflection-based traversal.
// When a type implements this interface, the Redactor calls RedactSelf
// instead of walking the type's fields.
//
// This provides two benefits:
// 1. Performance: Avoid reflection overhead for hot paths
// 2. Custom logic: Implement redaction that can't be expressed via tags
//
// The interface is designed for codegen: a code generator can implement
// RedactSelf from the same struct tags, providing compile-time safety and
// optimal performance.
//
// It is also the hook for dynamic values: during walk traversal, a non-nil
// interface value whose dynamic type implements SelfRedactor is redacted
// through it. Declare RedactSelf on a pointer receiver and store pointers
// in interface fields so the mutation is observable.
type SelfRedactor interface {
	// RedactSelf redacts the receiver's fields in place.
	// The receiver is a clone, so mutations are safe.
	RedactSelf()
}

//go:build !redactcleartext

package redact

import "fmt"

// CleartextDebug reports whether Debug renders true values. It is false
// unless the binary was built with the redactcleartext tag.
const CleartextDebug = false

// Debug renders a diagnostic representation of v with every sensitive field
// redacted. In a production build this is the only rendering available;
// building with the redactcleartext tag swaps in the cleartext renderer.
// The selection is build-scoped, never a per-call argument.
func Debug[T Cloner[T]](v T) string {
	return fmt.Sprintf("%+v", Redact(v))
}

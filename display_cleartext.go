//go:build redactcleartext

package redact

import "fmt"

// CleartextDebug reports whether Debug renders true values. This build was
// made with the redactcleartext tag, so it is true.
const CleartextDebug = true

// Debug renders a diagnostic representation of v with true values visible.
// This renderer exists only in redactcleartext builds and must never be
// enabled in production configurations.
func Debug[T Cloner[T]](v T) string {
	return fmt.Sprintf("%+v", v)
}

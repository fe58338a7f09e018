// Package redact provides type-directed redaction for structured data.
//
// The package separates two concerns:
//
//   - Classification: what kind of sensitive data a value is (secret, email,
//     credit card, ...)
//   - Policy: how that classification's text is sanitized (full replacement,
//     prefix/suffix masking)
//
// Fields declare their classification via struct tags; the engine walks the
// value and applies the bound policy at every sensitive leaf. The result is
// an irreversibly sanitized copy that is safe to log or display.
//
// # Tag Syntax
//
// Field behavior is declared via the "redact" struct tag:
//
//	redact:"walk"       - Reset scalars to defaults, recurse into containers
//	redact:"{class}"    - Apply the classification's policy to a text leaf
//
// Fields without a redact tag pass through unchanged, so external types work
// without any special handling.
//
// # Basic Usage
//
//	type Customer struct {
//	    ID       string
//	    Email    string `redact:"email"`
//	    Password string `redact:"secret"`
//	    Balance  int64  `redact:"walk"`
//	    Notes    string
//	}
//
//	func (c Customer) Clone() Customer { return c }
//
//	safe := redact.Redact(customer)
//	// safe.Email    == "al***************" (keep first 2)
//	// safe.Password == "[REDACTED]"
//	// safe.Balance  == 0
//	// safe.ID and safe.Notes are unchanged
//
// # Classifications
//
// Built-in classifications and their default policies:
//
//   - secret, date_of_birth: full replacement with "[REDACTED]"
//   - account_id, session_id, national_id, credit_card, ip_address,
//     pii, token: keep last 4 characters
//   - blockchain_address: keep last 6 characters
//   - phone_number: keep last 2 characters
//   - email: keep first 2 characters
//
// Consumers may register additional classifications with Bind. Policies are
// bound per classification, never per call; a caller that needs a different
// policy defines a new classification.
//
// # Containers
//
// Both traversal modes compose through pointers, slices, arrays, and maps to
// any nesting depth. Map keys and set members are never redacted, only map
// values. Presence, order, and element counts are preserved.
//
// # Custom Leaf Types
//
// String-like types that are not plain strings implement SensitiveValue to
// participate in classification:
//
//	type APIKey struct{ raw string }
//
//	func (k APIKey) SensitiveString() string { return k.raw }
//	func (k *APIKey) SetRedacted(s string)   { k.raw = s }
//
// # Diagnostics
//
// Debug renders the redacted form of a value. Building with the
// "redactcleartext" tag swaps in a cleartext renderer for test debugging;
// the toggle is build-scoped, never a runtime flag.
package redact

// SensitiveValue is the contract for string-like leaf types that can have a
// classification applied directly.
//
// SensitiveString exposes a read-only text view. SetRedacted reconstructs
// the value from the policy output; it must be declared on a pointer
// receiver so the engine can rewrite the leaf in place. Reconstruction only
// needs to carry the redacted text, not preserve the original
// representation.
//
// Plain string fields (and named string types) do not need this interface;
// the engine rewrites them directly.
type SensitiveValue interface {
	// SensitiveString returns the text the policy is applied to.
	SensitiveString() string

	// SetRedacted replaces the value's text with the policy output.
	SetRedacted(redacted string)
}

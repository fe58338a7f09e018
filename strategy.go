package redact

import "reflect"

// Strategy supplies the two leaf behaviors threaded through a traversal:
// scalar default substitution and classification-driven text redaction.
//
// Strategies must be stateless; a single strategy value is shared by
// reference across concurrent traversals.
type Strategy interface {
	// RedactScalar substitutes a scalar leaf in place with its redacted
	// default.
	RedactScalar(v reflect.Value)

	// RedactLeaf transforms the text of a classified leaf.
	RedactLeaf(class Classification, value string) string
}

// policyStrategy is the canonical strategy: scalar defaults plus the policy
// bound to each classification.
type policyStrategy struct{}

func (policyStrategy) RedactScalar(v reflect.Value) {
	redactScalar(v)
}

func (policyStrategy) RedactLeaf(class Classification, value string) string {
	return PolicyFor(class).Apply(value)
}

// DefaultStrategy is the strategy used by Redact and Redactor.Redact. It is
// stateless and safe for concurrent use.
var DefaultStrategy Strategy = policyStrategy{}

package redact

import "sync"

var (
	bindings   = builtinPolicies()
	bindingsMu sync.RWMutex
)

// builtinPolicies returns the default classification bindings.
func builtinPolicies() map[Classification]Policy {
	return map[Classification]Policy{
		ClassSecret:            Full(),
		ClassDateOfBirth:       Full(),
		ClassAccountID:         KeepLast(4),
		ClassSessionID:         KeepLast(4),
		ClassNationalID:        KeepLast(4),
		ClassCreditCard:        KeepLast(4),
		ClassIPAddress:         KeepLast(4),
		ClassPII:               KeepLast(4),
		ClassToken:             KeepLast(4),
		ClassBlockchainAddress: KeepLast(6),
		ClassPhoneNumber:       KeepLast(2),
		ClassEmail:             KeepFirst(2),
	}
}

// Bind associates a classification with a policy, replacing any existing
// binding. Safe for concurrent use. There is no upper bound on the number
// of classifications.
//
// Bindings are meant to be established at startup, before redactors for the
// affected types are built.
func Bind(class Classification, policy Policy) {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()
	bindings[class] = policy
}

// PolicyFor returns the policy bound to the classification.
//
// An unbound classification resolves to full redaction: traversal never
// fails, and over-redacting is the only safe fallback.
func PolicyFor(class Classification) Policy {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()
	if policy, ok := bindings[class]; ok {
		return policy
	}
	return Full()
}

// IsBound reports whether the classification has a policy binding.
func IsBound(class Classification) bool {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()
	_, ok := bindings[class]
	return ok
}

// ResetBindings restores the built-in bindings, discarding any added with
// Bind. This is primarily useful for test isolation.
func ResetBindings() {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()
	bindings = builtinPolicies()
}

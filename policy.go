package redact

// Placeholder is the default replacement text for full redaction.
const Placeholder = "[REDACTED]"

// defaultMaskChar masks hidden characters unless overridden.
const defaultMaskChar = '*'

// policyKind discriminates the Policy variants.
type policyKind int

const (
	policyFull policyKind = iota
	policyKeep
	policyMask
)

// Policy is a deterministic text transformation bound to a classification.
//
// A Policy is one of three variants:
//
//   - Full: replace the entire value with a fixed placeholder
//   - Keep: keep configured leading/trailing characters visible, mask the rest
//   - Mask: mask configured leading/trailing characters, keep the rest
//
// Apply counts Unicode code points, never bytes, so multi-byte characters
// are never split. Policies are immutable values and safe to share.
//
// The zero Policy is full redaction with the default placeholder.
type Policy struct {
	kind        policyKind
	placeholder string
	prefix      int
	suffix      int
	maskChar    rune
}

// Full returns a policy that replaces the entire value with Placeholder.
func Full() Policy {
	return Policy{kind: policyFull, placeholder: Placeholder}
}

// FullWith returns a policy that replaces the entire value with a custom
// placeholder. An empty placeholder falls back to Placeholder; full
// redaction never produces an empty string.
func FullWith(placeholder string) Policy {
	return Policy{kind: policyFull, placeholder: placeholder}
}

// Keep returns a policy that keeps the first prefix and last suffix
// characters visible and masks everything between. If prefix+suffix covers
// the whole value, the value is returned unchanged. Negative counts are
// treated as zero; Apply stays total for every constructible policy.
func Keep(prefix, suffix int) Policy {
	return Policy{kind: policyKeep, prefix: clampCount(prefix), suffix: clampCount(suffix), maskChar: defaultMaskChar}
}

// KeepFirst keeps only the first n characters visible.
func KeepFirst(n int) Policy {
	return Keep(n, 0)
}

// KeepLast keeps only the last n characters visible.
func KeepLast(n int) Policy {
	return Keep(0, n)
}

// Mask returns a policy that masks the first prefix and last suffix
// characters and leaves the middle untouched. If prefix+suffix covers the
// whole value, the entire value is masked. Negative counts are treated as
// zero.
func Mask(prefix, suffix int) Policy {
	return Policy{kind: policyMask, prefix: clampCount(prefix), suffix: clampCount(suffix), maskChar: defaultMaskChar}
}

// MaskFirst masks only the first n characters.
func MaskFirst(n int) Policy {
	return Mask(n, 0)
}

// MaskLast masks only the last n characters.
func MaskLast(n int) Policy {
	return Mask(0, n)
}

// clampCount floors window counts at zero. The counts index into the rune
// slice, so a negative value must never reach the masking loops.
func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// WithMaskChar returns a copy of the policy using a specific masking
// character. It has no effect on Full policies, which replace the whole
// value rather than masking individual characters.
func (p Policy) WithMaskChar(mask rune) Policy {
	if p.kind != policyFull {
		p.maskChar = mask
	}
	return p
}

// Apply transforms value according to the policy. It is total and pure:
// identical inputs always yield identical outputs, and no input can fail.
//
// Keep and Mask return empty input unchanged. Full returns the placeholder
// for every input, including empty.
func (p Policy) Apply(value string) string {
	switch p.kind {
	case policyKeep:
		return p.applyKeep(value)
	case policyMask:
		return p.applyMask(value)
	default:
		if p.placeholder == "" {
			return Placeholder
		}
		return p.placeholder
	}
}

// applyKeep masks every character strictly between the visible windows.
func (p Policy) applyKeep(value string) string {
	runes := []rune(value)
	total := len(runes)
	if total == 0 {
		return ""
	}

	// Visible windows cover the whole value: nothing to mask
	if p.prefix+p.suffix >= total {
		return value
	}

	for i := p.prefix; i < total-p.suffix; i++ {
		runes[i] = p.maskChar
	}
	return string(runes)
}

// applyMask masks the window characters and leaves the middle untouched.
func (p Policy) applyMask(value string) string {
	runes := []rune(value)
	total := len(runes)
	if total == 0 {
		return ""
	}

	// Mask windows cover the whole value: mask everything
	if p.prefix+p.suffix >= total {
		for i := range runes {
			runes[i] = p.maskChar
		}
		return string(runes)
	}

	for i := 0; i < p.prefix; i++ {
		runes[i] = p.maskChar
	}
	for i := total - p.suffix; i < total; i++ {
		runes[i] = p.maskChar
	}
	return string(runes)
}

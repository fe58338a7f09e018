package redact

// Classification names a category of sensitive data.
// Use these constants (or your own) in struct tags: `redact:"secret"`
//
// A classification carries no runtime state; it is a tag that selects a
// Policy through the binding table. Classification is a static association
// declared in source, never decided by inspecting data at runtime.
type Classification string

const (
	// ClassSecret marks secrets such as passwords or private keys.
	ClassSecret Classification = "secret"

	// ClassAccountID marks account identifiers.
	ClassAccountID Classification = "account_id"

	// ClassBlockchainAddress marks blockchain addresses (e.g., Ethereum, Bitcoin).
	ClassBlockchainAddress Classification = "blockchain_address"

	// ClassCreditCard marks credit card numbers or PANs.
	ClassCreditCard Classification = "credit_card"

	// ClassDateOfBirth marks dates of birth.
	ClassDateOfBirth Classification = "date_of_birth"

	// ClassEmail marks email addresses.
	ClassEmail Classification = "email"

	// ClassIPAddress marks IP addresses.
	ClassIPAddress Classification = "ip_address"

	// ClassNationalID marks government-issued identifiers.
	ClassNationalID Classification = "national_id"

	// ClassPhoneNumber marks phone numbers.
	ClassPhoneNumber Classification = "phone_number"

	// ClassPII marks generic personally identifiable information.
	ClassPII Classification = "pii"

	// ClassSessionID marks session identifiers.
	ClassSessionID Classification = "session_id"

	// ClassToken marks authentication tokens and API keys.
	ClassToken Classification = "token"
)

// TagRedact is the struct tag key read by the engine.
const TagRedact = "redact"

// TagWalk is the reserved tag value selecting walk behavior. It is not a
// valid classification name.
const TagWalk = "walk"

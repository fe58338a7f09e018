// Package testing provides test fixtures for redact.
package testing

// PlainUser is a test type with no redact tags.
type PlainUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Clone implements Cloner[PlainUser].
func (u PlainUser) Clone() PlainUser { return u }

// Customer is a test type demonstrating classification and walk tags.
type Customer struct {
	ID       string   `json:"id"`
	Email    string   `json:"email" redact:"email"`
	Password string   `json:"password" redact:"secret"`
	Card     string   `json:"card" redact:"credit_card"`
	Phone    string   `json:"phone" redact:"phone_number"`
	Balance  int64    `json:"balance" redact:"walk"`
	Tags     []string `json:"tags"`
	Notes    string   `json:"notes"`
}

// Clone implements Cloner[Customer].
func (c Customer) Clone() Customer {
	clone := c
	if c.Tags != nil {
		clone.Tags = make([]string, len(c.Tags))
		copy(clone.Tags, c.Tags)
	}
	return clone
}

// Session is a test type exercising wrapper nesting around classified leaves.
type Session struct {
	Token   *string             `json:"token" redact:"token"`
	Devices map[string][]string `json:"devices" redact:"session_id"`
}

// Clone implements Cloner[Session].
func (s Session) Clone() Session {
	clone := Session{}
	if s.Token != nil {
		t := *s.Token
		clone.Token = &t
	}
	if s.Devices != nil {
		clone.Devices = make(map[string][]string, len(s.Devices))
		for k, v := range s.Devices {
			ids := make([]string, len(v))
			copy(ids, v)
			clone.Devices[k] = ids
		}
	}
	return clone
}

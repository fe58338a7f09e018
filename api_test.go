package redact_test

import (
	"testing"

	"github.com/zoobzio/redact"
	fixtures "github.com/zoobzio/redact/testing"
)

func TestRedact_Customer(t *testing.T) {
	customer := fixtures.Customer{
		ID:       "cust_001",
		Email:    "alice@example.com",
		Password: "hunter2",
		Card:     "4111111111111111",
		Phone:    "5551234567",
		Balance:  1_000_00,
		Tags:     []string{"vip"},
		Notes:    "prefers email contact",
	}

	safe := redact.Redact(customer)

	if safe.Email != "al***************" {
		t.Errorf("Email = %q", safe.Email)
	}
	if safe.Password != redact.Placeholder {
		t.Errorf("Password = %q, want %q", safe.Password, redact.Placeholder)
	}
	if safe.Card != "************1111" {
		t.Errorf("Card = %q", safe.Card)
	}
	if safe.Phone != "********67" {
		t.Errorf("Phone = %q", safe.Phone)
	}
	if safe.Balance != 0 {
		t.Errorf("Balance = %d, want 0", safe.Balance)
	}

	// Unannotated fields pass through unchanged
	if safe.ID != customer.ID || safe.Notes != customer.Notes {
		t.Error("unannotated fields were modified")
	}
	if len(safe.Tags) != 1 || safe.Tags[0] != "vip" {
		t.Errorf("Tags = %v, want [vip]", safe.Tags)
	}

	// The original is untouched
	if customer.Password != "hunter2" {
		t.Error("input value was mutated")
	}
}

func TestRedact_PlainTypeIsIdentity(t *testing.T) {
	user := fixtures.PlainUser{ID: "u1", Name: "Alice"}
	safe := redact.Redact(user)
	if safe != user {
		t.Errorf("Redact() of an unannotated type = %+v, want %+v", safe, user)
	}
}

func TestRedact_SessionWrappers(t *testing.T) {
	token := "tok_abcdefghij1234"
	session := fixtures.Session{
		Token: &token,
		Devices: map[string][]string{
			"laptop": {"sess_11112222", "sess_33334444"},
		},
	}

	safe := redact.Redact(session)

	if safe.Token == nil {
		t.Fatal("present token became absent")
	}
	// 18 chars, keep last 4
	if *safe.Token != "**************1234" {
		t.Errorf("Token = %q", *safe.Token)
	}

	ids, ok := safe.Devices["laptop"]
	if !ok {
		t.Fatal("map key was modified")
	}
	if len(ids) != 2 {
		t.Fatalf("sequence count = %d, want 2", len(ids))
	}
	for _, id := range ids {
		if id != "*********2222" && id != "*********4444" {
			t.Errorf("session id = %q, want keep-last-4 masking", id)
		}
	}

	// Order preserved
	if ids[0] != "*********2222" || ids[1] != "*********4444" {
		t.Errorf("sequence order not preserved: %v", ids)
	}

	// The original token is untouched through the pointer clone
	if token != "tok_abcdefghij1234" {
		t.Error("input value was mutated through shared pointer")
	}
}

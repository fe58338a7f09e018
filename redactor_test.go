package redact

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

type BadClassRecord struct {
	Value string `redact:"not_a_classification"`
}

func (r BadClassRecord) Clone() BadClassRecord { return r }

type BadShapeRecord struct {
	Count int `redact:"secret"`
}

func (r BadShapeRecord) Clone() BadShapeRecord { return r }

func TestNew(t *testing.T) {
	r, err := New[SecretNote]()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if r == nil {
		t.Error("New() returned nil")
	}
}

func TestNew_UnknownClassification(t *testing.T) {
	_, err := New[BadClassRecord]()
	if err == nil {
		t.Fatal("New() should fail for an unknown classification")
	}
	if !errors.Is(err, ErrUnknownClassification) {
		t.Errorf("error = %v, want ErrUnknownClassification", err)
	}

	var tagErr *TagError
	if !errors.As(err, &tagErr) {
		t.Fatal("error should be a *TagError")
	}
	if tagErr.Field != "BadClassRecord.Value" {
		t.Errorf("Field = %q, want %q", tagErr.Field, "BadClassRecord.Value")
	}
}

func TestNew_ClassifyOnNonTextShape(t *testing.T) {
	_, err := New[BadShapeRecord]()
	if err == nil {
		t.Fatal("New() should fail when classifying a numeric field")
	}
	if !errors.Is(err, ErrNotClassifiable) {
		t.Errorf("error = %v, want ErrNotClassifiable", err)
	}
}

func TestNew_CustomClassification(t *testing.T) {
	defer ResetBindings()
	defer Reset()

	type Ticket struct {
		Code string `redact:"ticket_code"`
	}
	// Unbound classification is a construction error...
	if _, err := planFor(reflect.TypeFor[Ticket]()); err == nil {
		t.Fatal("planFor() should fail before the classification is bound")
	}

	// ...and binding it first makes construction succeed.
	Reset()
	Bind(Classification("ticket_code"), MaskFirst(3))
	plan, err := planFor(reflect.TypeFor[Ticket]())
	if err != nil {
		t.Fatalf("planFor() error after Bind: %v", err)
	}

	v := Ticket{Code: "abcdef"}
	plan.apply(reflect.ValueOf(&v).Elem(), DefaultStrategy)
	if v.Code != "***def" {
		t.Errorf("Code = %q, want %q", v.Code, "***def")
	}
}

func TestFor_CachesRedactor(t *testing.T) {
	defer Reset()

	first, err := For[SecretNote]()
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}
	second, err := For[SecretNote]()
	if err != nil {
		t.Fatalf("For() error: %v", err)
	}
	if first != second {
		t.Error("For() should return the cached redactor")
	}
}

func TestRedact_PackageLevel(t *testing.T) {
	defer Reset()

	redacted := Redact(SecretNote{Value: "classified"})
	if redacted.Value != Placeholder {
		t.Errorf("Value = %q, want %q", redacted.Value, Placeholder)
	}
}

func TestRedact_PanicsOnInvalidType(t *testing.T) {
	defer Reset()
	defer func() {
		if recover() == nil {
			t.Error("Redact() should panic for a misconfigured type")
		}
	}()

	Redact(BadClassRecord{Value: "x"})
}

// OverrideRecord bypasses reflection entirely.
type OverrideRecord struct {
	Raw string `redact:"secret"`
}

func (o OverrideRecord) Clone() OverrideRecord { return o }

func (o *OverrideRecord) RedactSelf() {
	o.Raw = "<custom>"
}

func TestRedact_SelfRedactorOverride(t *testing.T) {
	r, err := New[OverrideRecord]()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	redacted := r.Redact(OverrideRecord{Raw: "secret"})
	if redacted.Raw != "<custom>" {
		t.Errorf("Raw = %q, want override output %q", redacted.Raw, "<custom>")
	}
}

// countingStrategy verifies RedactWith threads a custom strategy.
type countingStrategy struct {
	mu      sync.Mutex
	scalars int
	leaves  int
}

func (s *countingStrategy) RedactScalar(v reflect.Value) {
	s.mu.Lock()
	s.scalars++
	s.mu.Unlock()
	redactScalar(v)
}

func (s *countingStrategy) RedactLeaf(class Classification, value string) string {
	s.mu.Lock()
	s.leaves++
	s.mu.Unlock()
	return PolicyFor(class).Apply(value)
}

func TestRedactWith_CustomStrategy(t *testing.T) {
	r, err := New[MixedRecord]()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	strategy := &countingStrategy{}
	r.RedactWith(MixedRecord{SSN: "x", Score: 1, Ratio: 2, Active: true, Initial: 'A'}, strategy)

	if strategy.scalars != 4 {
		t.Errorf("scalar substitutions = %d, want 4", strategy.scalars)
	}
	if strategy.leaves != 1 {
		t.Errorf("leaf redactions = %d, want 1", strategy.leaves)
	}
}

func TestRedact_ConcurrentCalls(t *testing.T) {
	r, err := New[SecretNote]()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				redacted := r.Redact(SecretNote{Value: "parallel-secret"})
				if redacted.Value != Placeholder {
					t.Errorf("Value = %q, want %q", redacted.Value, Placeholder)
				}
			}
		}()
	}
	wg.Wait()
}

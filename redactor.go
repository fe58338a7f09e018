package redact

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// Redactor produces sanitized copies of values of type T.
//
// A Redactor is built once per type, validates the type's redact tags at
// construction, and is safe for concurrent use: traversal shares no mutable
// state and each call operates on its own clone.
type Redactor[T Cloner[T]] struct {
	plan       *typePlan
	typeName   string
	walked     int
	classified int
}

// New builds a Redactor for type T, scanning its redact tags and validating
// every annotated field. Tag misuse (an unknown classification, or a
// classification on a field that has no string-like leaf) is reported here;
// a successfully built Redactor cannot fail at redaction time.
func New[T Cloner[T]]() (*Redactor[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, newTagError(ErrUnsupportedType, rt.String(), "")
	}

	spec := sentinel.Scan[T]()

	plan, err := planFor(rt)
	if err != nil {
		return nil, err
	}

	r := &Redactor[T]{
		plan:     plan,
		typeName: spec.TypeName,
	}
	r.walked, r.classified = plan.counts()

	emitRedactorCreated(context.Background(), r.typeName, r.walked, r.classified)
	return r, nil
}

// Redact returns a sanitized copy of v using the default policy-driven
// strategy. The input is cloned first; callers must not assume any aliasing
// between input and output beyond the returned value.
//
// This is the only sanctioned way to obtain a copy that is safe for
// logging and diagnostics.
func (r *Redactor[T]) Redact(v T) T {
	return r.RedactWith(v, DefaultStrategy)
}

// RedactWith redacts v using a custom strategy. The strategy must be
// stateless; it is shared across the whole traversal.
func (r *Redactor[T]) RedactWith(v T, strategy Strategy) T {
	ctx := context.Background()
	start := time.Now()
	emitRedactStart(ctx, r.typeName)

	clone := v.Clone()

	// Check for override interface
	if sr, ok := any(&clone).(SelfRedactor); ok {
		sr.RedactSelf()
	} else {
		rv := reflect.ValueOf(&clone).Elem()
		r.plan.apply(rv, strategy)
	}

	emitRedactComplete(ctx, r.typeName, time.Since(start), r.walked, r.classified)
	return clone
}

// registryKey is the cache key for built redactors.
type registryKey struct {
	typ reflect.Type
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// For returns a cached Redactor for type T, building one on first use.
func For[T Cloner[T]]() (*Redactor[T], error) {
	key := registryKey{typ: reflect.TypeFor[T]()}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Redactor[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Redactor[T]), nil
	}

	redactor, err := New[T]()
	if err != nil {
		return nil, err
	}

	registry[key] = redactor
	return redactor, nil
}

// Redact returns a sanitized copy of v, building or reusing the cached
// Redactor for T.
//
// A type whose redact tags are invalid panics here: tag misuse is a
// programmer error caught the first time the type's shape is inspected,
// not a runtime condition. Use New or For to surface it as an error
// during startup instead.
func Redact[T Cloner[T]](v T) T {
	r, err := For[T]()
	if err != nil {
		panic("redact: " + err.Error())
	}
	return r.Redact(v)
}

// Reset clears the redactor and plan caches.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	registry = make(map[registryKey]any)
	registryMu.Unlock()

	plansMu.Lock()
	plans = make(map[reflect.Type]*typePlan)
	plansMu.Unlock()
}

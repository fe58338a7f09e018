// Package slog emits redacted values through log/slog.
//
// The adapter guarantees that the logged representation is derived from the
// redacted form of a value, never the original. Serialization failures
// degrade to a fixed placeholder string rather than propagating, so a
// marshal error can never cause a caller to fall back to logging the
// unredacted value.
//
// The package does not configure log/slog, define redaction policy, or
// validate policy choices.
//
//	import slogx "github.com/zoobzio/redact/slog"
//
//	logger.Info("payment received", slogx.Attr("payment", payment))
package slog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/zoobzio/redact"
)

// marshalFallback replaces values whose redacted form cannot be serialized.
const marshalFallback = "Failed to serialize redacted value"

// Redacted wraps a value and logs its redacted form as structured
// attributes. It implements slog.LogValuer; redaction happens when the log
// record is resolved, and the original value is never serialized.
type Redacted[T redact.Cloner[T]] struct {
	value T
}

// Value wraps v for logging. The value is captured as-is and redacted at
// resolve time.
func Value[T redact.Cloner[T]](v T) Redacted[T] {
	return Redacted[T]{value: v}
}

// Attr builds a slog.Attr whose value resolves to the redacted form of v.
func Attr[T redact.Cloner[T]](key string, v T) slog.Attr {
	return slog.Attr{Key: key, Value: slog.AnyValue(Value(v))}
}

// LogValue implements slog.LogValuer. It redacts the wrapped value, then
// converts it to nested slog groups via a JSON round trip. A type with
// invalid redact tags, or a redacted value that cannot be marshaled,
// resolves to the fallback string; the unredacted value is never emitted.
func (r Redacted[T]) LogValue() slog.Value {
	redactor, err := redact.For[T]()
	if err != nil {
		return slog.StringValue(marshalFallback)
	}

	safe := redactor.Redact(r.value)

	data, err := json.Marshal(safe)
	if err != nil {
		return slog.StringValue(marshalFallback)
	}
	// UseNumber keeps integer fields exact; plain decoding would round
	// anything above 2^53 through float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return slog.StringValue(marshalFallback)
	}

	return toValue(generic)
}

// toValue converts a decoded JSON value into a slog.Value, mapping objects
// to groups with deterministic key order.
func toValue(v any) slog.Value {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		attrs := make([]slog.Attr, 0, len(t))
		for _, k := range keys {
			attrs = append(attrs, slog.Attr{Key: k, Value: toValue(t[k])})
		}
		return slog.GroupValue(attrs...)
	case string:
		return slog.StringValue(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return slog.Int64Value(i)
		}
		if f, err := t.Float64(); err == nil {
			return slog.Float64Value(f)
		}
		return slog.StringValue(t.String())
	case bool:
		return slog.BoolValue(t)
	default:
		return slog.AnyValue(t)
	}
}

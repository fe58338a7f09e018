package redact

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for redaction events.
var (
	SignalRedactorCreated = capitan.NewSignal("redact.redactor.created", "Redactor instantiated")
	SignalRedactStart     = capitan.NewSignal("redact.redact.start", "Redaction beginning")
	SignalRedactComplete  = capitan.NewSignal("redact.redact.complete", "Redaction finished")
)

// Keys for typed event data.
var (
	KeyTypeName        = capitan.NewStringKey("type_name")
	KeyDuration        = capitan.NewDurationKey("duration")
	KeyWalkedCount     = capitan.NewIntKey("walked_count")
	KeyClassifiedCount = capitan.NewIntKey("classified_count")
)

// emitRedactorCreated emits an event when a redactor is built.
func emitRedactorCreated(ctx context.Context, typeName string, walked, classified int) {
	capitan.Emit(ctx, SignalRedactorCreated,
		KeyTypeName.Field(typeName),
		KeyWalkedCount.Field(walked),
		KeyClassifiedCount.Field(classified),
	)
}

// emitRedactStart emits an event when redaction begins.
func emitRedactStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalRedactStart,
		KeyTypeName.Field(typeName),
	)
}

// emitRedactComplete emits an event when redaction finishes. Redaction is
// total, so there is no error variant.
func emitRedactComplete(ctx context.Context, typeName string, duration time.Duration, walked, classified int) {
	capitan.Emit(ctx, SignalRedactComplete,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyWalkedCount.Field(walked),
		KeyClassifiedCount.Field(classified),
	)
}

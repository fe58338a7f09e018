package redact

import (
	"context"
	"testing"
	"time"
)

func TestEmitRedactorCreated(_ *testing.T) {
	// Should not panic
	emitRedactorCreated(context.Background(), "TestType", 2, 3)
}

func TestEmitRedactStart(_ *testing.T) {
	emitRedactStart(context.Background(), "TestType")
}

func TestEmitRedactComplete(_ *testing.T) {
	emitRedactComplete(context.Background(), "TestType", 100*time.Millisecond, 2, 3)
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalRedactorCreated", SignalRedactorCreated},
		{"SignalRedactStart", SignalRedactStart},
		{"SignalRedactComplete", SignalRedactComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyTypeName", KeyTypeName},
		{"KeyDuration", KeyDuration},
		{"KeyWalkedCount", KeyWalkedCount},
		{"KeyClassifiedCount", KeyClassifiedCount},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}

package sentry

import (
	"errors"
	"testing"
	"time"
)

func TestInitializeDisabledWithoutDSN(t *testing.T) {
	if err := Initialize(Config{}); err != nil {
		t.Fatalf("Initialize() with empty DSN should be a no-op, got %v", err)
	}
}

func TestCaptureExceptionSafeWhenDisabled(t *testing.T) {
	// Must not panic with no initialized client.
	CaptureException(errors.New("boom"))
	CaptureException(nil)
}

func TestFlushWhenDisabled(t *testing.T) {
	if ok := Flush(10 * time.Millisecond); !ok {
		t.Error("Flush() with no pending events should return true")
	}
}

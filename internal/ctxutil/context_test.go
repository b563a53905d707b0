package ctxutil

import (
	"context"
	"testing"
	"time"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if id, ok := GetRequestID(ctx); ok || id != "" {
		t.Errorf("empty context should have no request ID, got %q", id)
	}

	ctx = WithRequestID(ctx, "req-42")
	id, ok := GetRequestID(ctx)
	if !ok || id != "req-42" {
		t.Errorf("GetRequestID() = %q, %v; want req-42, true", id, ok)
	}
}

func TestInteractionTypeRoundTrip(t *testing.T) {
	ctx := WithInteractionType(context.Background(), "command")
	if got := GetInteractionType(ctx); got != "command" {
		t.Errorf("GetInteractionType() = %q, want command", got)
	}
	if got := GetInteractionType(context.Background()); got != "" {
		t.Errorf("GetInteractionType() on empty context = %q, want empty", got)
	}
}

func TestPreserveTracing(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	parent = WithRequestID(parent, "req-7")
	parent = WithInteractionType(parent, "component")

	detached := PreserveTracing(parent)

	if id, ok := GetRequestID(detached); !ok || id != "req-7" {
		t.Errorf("detached context lost request ID: %q, %v", id, ok)
	}
	if got := GetInteractionType(detached); got != "component" {
		t.Errorf("detached context lost interaction type: %q", got)
	}
	if _, hasDeadline := detached.Deadline(); hasDeadline {
		t.Error("detached context must not inherit the parent deadline")
	}
}

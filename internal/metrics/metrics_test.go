package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordInteraction("command", "success", 0.01)
	m.RecordInteraction("command", "error", 0.02)
	m.RecordCatalogFetch("success", 0.1)
	m.RecordFollowup("error")
	m.SignatureRejectionsTotal.Inc()
	m.UnknownInteractionsTotal.Inc()

	if got := testutil.ToFloat64(m.InteractionsTotal.WithLabelValues("command", "success")); got != 1 {
		t.Errorf("interactions_total{command,success} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CatalogRequestsTotal.WithLabelValues("success")); got != 1 {
		t.Errorf("catalog_requests_total{success} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.FollowupTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("followup_total{error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.SignatureRejectionsTotal); got != 1 {
		t.Errorf("signature_rejections_total = %v, want 1", got)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() failed: %v", err)
	}
	if len(families) == 0 {
		t.Error("expected registered metric families after recording")
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	_ = New(registry)

	defer func() {
		if r := recover(); r == nil {
			t.Error("registering the same metrics twice should panic")
		}
	}()
	_ = New(registry)
}

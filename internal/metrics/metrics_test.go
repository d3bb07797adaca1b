package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNew(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	if m == nil {
		t.Fatal("New() returned nil")
	}

	// Verify all metric fields are initialized
	if m.TurnsTotal == nil {
		t.Error("TurnsTotal is nil")
	}
	if m.TurnDurationSeconds == nil {
		t.Error("TurnDurationSeconds is nil")
	}
	if m.SessionsActive == nil {
		t.Error("SessionsActive is nil")
	}
	if m.SessionsSweptTotal == nil {
		t.Error("SessionsSweptTotal is nil")
	}
	if m.SafetyTriggersTotal == nil {
		t.Error("SafetyTriggersTotal is nil")
	}
	if m.DomainMatchesTotal == nil {
		t.Error("DomainMatchesTotal is nil")
	}
	if m.RetrievalsTotal == nil {
		t.Error("RetrievalsTotal is nil")
	}
	if m.RetrievalLowConfidence == nil {
		t.Error("RetrievalLowConfidence is nil")
	}
	if m.RetrievalResultCount == nil {
		t.Error("RetrievalResultCount is nil")
	}
	if m.EscalationsTotal == nil {
		t.Error("EscalationsTotal is nil")
	}
	if m.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration is nil")
	}
	if m.HTTPErrorsTotal == nil {
		t.Error("HTTPErrorsTotal is nil")
	}
}

func TestRecordTurn(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordTurn("text", "choose_domain", 0.002)
	m.RecordTurn("action", "refine_and_show", 0.001)
}

func TestRecordSafetyTrigger(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordSafetyTrigger("sensitive")
	m.RecordSafetyTrigger("urgent")
}

func TestRecordDomainMatch(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordDomainMatch("healthcare", "hard")
	m.RecordDomainMatch("financial", "soft")
	m.RecordDomainMatch("", "none")
}

func TestRecordRetrieval(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordRetrieval(5, false)
	m.RecordRetrieval(0, true)
}

func TestRecordEscalation(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordEscalation("sensitive")
	m.RecordEscalation("urgent")
	m.RecordEscalation("low_confidence")
	m.RecordEscalation("user_requested")
}

func TestRecordHTTPRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.RecordHTTPRequest("/api/chat/text", "200", 0.05)
	m.RecordHTTPRequest("/api/chat/action", "400", 0.01)
}

func TestSessionGauges(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	// Should not panic
	m.SetActiveSessions(3)
	m.RecordSessionsSwept(2)
}

func TestMetrics_Gather(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordTurn("text", "choose_domain", 0.01)
	m.RecordSafetyTrigger("urgent")
	m.RecordRetrieval(3, false)
	m.RecordEscalation("low_confidence")

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Error("No metrics were gathered")
	}

	expectedMetrics := map[string]bool{
		"carebot_turns_total":           false,
		"carebot_turn_duration_seconds": false,
		"carebot_safety_triggers_total": false,
		"carebot_retrievals_total":      false,
		"carebot_escalations_total":     false,
	}

	for _, mf := range metricFamilies {
		if _, ok := expectedMetrics[mf.GetName()]; ok {
			expectedMetrics[mf.GetName()] = true
		}
	}

	for name, found := range expectedMetrics {
		if !found {
			t.Errorf("Expected metric %q not found", name)
		}
	}
}

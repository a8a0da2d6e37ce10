package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewBaseEvent("credit.loan.originated", "42", "Loan")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "credit.loan.originated" {
		t.Errorf("expected event type %q, got %q", "credit.loan.originated", event.EventType())
	}

	if event.AggregateID() != "42" {
		t.Errorf("expected aggregate ID %q, got %q", "42", event.AggregateID())
	}

	if event.AggregateType() != "Loan" {
		t.Errorf("expected aggregate type %q, got %q", "Loan", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestBaseEventMarshalsToJSON(t *testing.T) {
	event := NewBaseEvent("credit.customer.registered", "7", "Customer")

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	if parsed["event_type"] != "credit.customer.registered" {
		t.Errorf("expected event_type in payload, got %v", parsed["event_type"])
	}

	if parsed["aggregate_id"] != "7" {
		t.Errorf("expected aggregate_id in payload, got %v", parsed["aggregate_id"])
	}
}

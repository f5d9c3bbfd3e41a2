package bridge

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fwcsim/fwc/internal/runtime"
)

func TestInboxAcceptsSingleInjection(t *testing.T) {
	inbox := NewInbox()
	payload := []byte(`{"signal": "radio_height_1", "family": "number", "number": 150}`)
	if err := inbox.Accept(payload); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	got := inbox.Drain()
	if len(got) != 1 || got[0].Signal != "radio_height_1" {
		t.Fatalf("expected one radio height injection, got %v", got)
	}
	if got[0].Number == nil || *got[0].Number != 150 {
		t.Fatalf("number did not parse: %v", got[0].Number)
	}
}

func TestInboxAcceptsBatch(t *testing.T) {
	inbox := NewInbox()
	payload := []byte(`[
		{"signal": "lh_lg_compressed_1", "family": "flag", "bool": true},
		{"signal": "lh_lg_compressed_2", "family": "flag", "bool": true}
	]`)
	if err := inbox.Accept(payload); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if got := inbox.Drain(); len(got) != 2 {
		t.Fatalf("expected 2 injections, got %d", len(got))
	}
}

func TestInboxRejectsMalformedPayload(t *testing.T) {
	inbox := NewInbox()
	if err := inbox.Accept([]byte("not json")); err == nil {
		t.Fatalf("expected an error for a malformed payload")
	}
	if got := inbox.Drain(); got != nil {
		t.Fatalf("malformed payload was queued: %v", got)
	}
}

func TestInboxDrainEmptiesQueue(t *testing.T) {
	inbox := NewInbox()
	_ = inbox.Accept([]byte(`{"signal": "alti_select", "family": "number", "number": 5000}`))

	if got := inbox.Drain(); len(got) != 1 {
		t.Fatalf("expected 1 injection, got %d", len(got))
	}
	if got := inbox.Drain(); got != nil {
		t.Fatalf("expected an empty second drain, got %v", got)
	}
}

func TestFormatWarning(t *testing.T) {
	ts := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	payload, err := FormatWarning(WarningEvent{Timestamp: ts, Code: "22-00-050", Phase: 6})
	if err != nil {
		t.Fatalf("FormatWarning: %v", err)
	}

	var back WarningEvent
	if err := json.Unmarshal(payload, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Code != "22-00-050" || back.Phase != 6 || !back.Timestamp.Equal(ts) {
		t.Fatalf("warning event did not round trip: %+v", back)
	}
}

func TestFakeClientRecords(t *testing.T) {
	f := NewFakeClient()
	if err := f.PublishSnapshot(runtime.Snapshot{FlightPhase: 1}); err != nil {
		t.Fatalf("PublishSnapshot: %v", err)
	}
	if err := f.PublishWarning(WarningEvent{Code: "34-00-330"}); err != nil {
		t.Fatalf("PublishWarning: %v", err)
	}
	if len(f.Snapshots) != 1 || len(f.Warnings) != 1 {
		t.Fatalf("fake did not record messages")
	}
	if err := f.Close(); err != nil || !f.Closed {
		t.Fatalf("fake close did not latch")
	}
}

var _ Publisher = (*FakeClient)(nil)
var _ Publisher = (*RealClient)(nil)

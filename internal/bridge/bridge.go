// Package bridge connects the warning computer to an MQTT broker: cockpit
// parameters arrive as injections on the parameter topic, outputs and
// warning events go back out.
package bridge

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/fwcsim/fwc/internal/params"
	"github.com/fwcsim/fwc/internal/runtime"
)

// TopicParameters carries inbound parameter injections.
const TopicParameters = "fwc/parameters"

// TopicOutputs carries the per-tick output snapshot.
const TopicOutputs = "fwc/outputs"

// TopicWarnings carries one event per raised warning.
const TopicWarnings = "fwc/warnings"

// Publisher publishes computer outputs to the broker.
type Publisher interface {
	// PublishSnapshot sends the outputs of one tick.
	PublishSnapshot(snap runtime.Snapshot) error

	// PublishWarning sends a warning activation event.
	PublishWarning(event WarningEvent) error

	// Close disconnects from the broker.
	Close() error
}

// WarningEvent is the outbound payload for one raised warning.
type WarningEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Code      string    `json:"code"`
	Phase     int       `json:"flight_phase"`
}

// FormatWarning creates the JSON payload for a warning event.
func FormatWarning(event WarningEvent) ([]byte, error) {
	return json.Marshal(event)
}

// #region inbox

// Inbox accumulates injections between ticks. Broker callbacks run on the
// paho network goroutine, so the queue is locked.
type Inbox struct {
	mu      sync.Mutex
	pending []params.Injection
}

func NewInbox() *Inbox {
	return &Inbox{}
}

// Accept parses an inbound payload, either a single injection or an
// array, and queues it. Malformed payloads are dropped and reported.
func (b *Inbox) Accept(payload []byte) error {
	var batch []params.Injection
	if err := json.Unmarshal(payload, &batch); err != nil {
		var single params.Injection
		if err := json.Unmarshal(payload, &single); err != nil {
			return err
		}
		batch = []params.Injection{single}
	}

	b.mu.Lock()
	b.pending = append(b.pending, batch...)
	b.mu.Unlock()
	return nil
}

// Drain returns the queued injections and empties the queue.
func (b *Inbox) Drain() []params.Injection {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}

// #endregion inbox

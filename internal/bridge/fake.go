package bridge

import "github.com/fwcsim/fwc/internal/runtime"

// FakeClient records published messages for test assertions.
type FakeClient struct {
	// Snapshots contains every published output snapshot.
	Snapshots []runtime.Snapshot

	// Warnings contains every published warning event.
	Warnings []WarningEvent

	// PublishError, if set, is returned by both publish methods.
	PublishError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeClient creates a FakeClient for testing.
func NewFakeClient() *FakeClient {
	return &FakeClient{}
}

// PublishSnapshot records the snapshot.
func (f *FakeClient) PublishSnapshot(snap runtime.Snapshot) error {
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Snapshots = append(f.Snapshots, snap)
	return nil
}

// PublishWarning records the warning event.
func (f *FakeClient) PublishWarning(event WarningEvent) error {
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Warnings = append(f.Warnings, event)
	return nil
}

// Close marks the client as closed.
func (f *FakeClient) Close() error {
	f.Closed = true
	return nil
}

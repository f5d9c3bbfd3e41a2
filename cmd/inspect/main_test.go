package main

import "testing"

func TestSoundLabel(t *testing.T) {
	if got := soundLabel(nil); got != "-" {
		t.Fatalf("expected \"-\" for a silent tick, got %q", got)
	}
	id := uint8(131)
	if got := soundLabel(&id); got != "131" {
		t.Fatalf("expected \"131\", got %q", got)
	}
}

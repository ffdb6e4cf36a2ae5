package util

import (
	"encoding/hex"
	"testing"
)

func TestDeriveID(t *testing.T) {
	id := DeriveID("Ana")
	if len(id) != 32 {
		t.Fatalf("expected 32 hex chars, got %d (%q)", len(id), id)
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("id %q is not hex: %v", id, err)
	}

	// Different seeds at (almost certainly) different instants should differ.
	if other := DeriveID("Ben"); other == id {
		t.Errorf("distinct seeds produced the same id %q", id)
	}
}

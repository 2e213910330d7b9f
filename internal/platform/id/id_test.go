package id

import (
	"strings"
	"testing"
)

func decode(t *testing.T, id string) []byte {
	t.Helper()
	decoded, err := encoding.DecodeString(strings.ToUpper(id))
	if err != nil {
		t.Fatalf("decode %q: %v", id, err)
	}
	return decoded
}

func TestNewIDFormat(t *testing.T) {
	t.Parallel()

	id, err := NewID()
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	if len(id) != 26 {
		t.Fatalf("len(NewID()) = %d, want 26", len(id))
	}
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '2' || r > '7') {
			t.Fatalf("NewID() = %q has character %q", id, r)
		}
	}
	if got := len(decode(t, id)); got != 16 {
		t.Fatalf("decoded length = %d, want 16", got)
	}
}

func TestNewIDIsUUIDv4(t *testing.T) {
	t.Parallel()

	decoded := decode(t, mustID(t))
	if version := decoded[6] >> 4; version != 4 {
		t.Fatalf("version = %d, want 4", version)
	}
	if variant := decoded[8] & 0xC0; variant != 0x80 {
		t.Fatalf("variant = 0x%X, want 0x80", variant)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		id := mustID(t)
		if seen[id] {
			t.Fatalf("NewID() repeated %q", id)
		}
		seen[id] = true
	}
}

func mustID(t *testing.T) string {
	t.Helper()
	id, err := NewID()
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	return id
}

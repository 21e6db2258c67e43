package store

import (
	"testing"
	"time"
)

func TestNewIDIsMonotonic(t *testing.T) {
	prev := NewID()
	for i := 0; i < 100; i++ {
		id := NewID()
		if id <= prev {
			t.Fatalf("id %s not after %s", id, prev)
		}
		prev = id
	}
}

func TestIDTime(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	got, err := IDTime(NewIDAt(at))
	if err != nil {
		t.Fatalf("id time: %v", err)
	}
	if !got.Equal(at) {
		t.Fatalf("IDTime = %v, want %v", got, at)
	}
	if _, err := IDTime("not-an-id"); err == nil {
		t.Fatalf("expected parse error")
	}
}

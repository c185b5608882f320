package obslog

import "testing"

func TestRingTracerWrapsAround(t *testing.T) {
	r := NewRingTracer(3)
	for i := 0; i < 5; i++ {
		r.Emit(Event{Kind: KindCacheHit, Detail: string(rune('a' + i))})
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 buffered events, got %d", len(snap))
	}
	if snap[0].Detail != "c" || snap[2].Detail != "e" {
		t.Fatalf("unexpected ring contents: %+v", snap)
	}
}

func TestNopTracerDiscardsEvents(t *testing.T) {
	Nop.Emit(Event{Kind: KindCacheMiss})
	if err := Nop.Flush(); err != nil {
		t.Fatalf("Nop.Flush should never error: %v", err)
	}
}

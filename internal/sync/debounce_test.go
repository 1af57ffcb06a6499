package sync

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestDebouncerLastTriggerWins(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var got atomic.Int32
	d.Trigger(func() { got.Store(1) })
	d.Trigger(func() { got.Store(2) })

	time.Sleep(80 * time.Millisecond)
	if got.Load() != 2 {
		t.Fatalf("got = %d, want last-triggered fn to run", got.Load())
	}
}

func TestFlushRunsPendingImmediately(t *testing.T) {
	d := NewDebouncer(time.Hour)
	defer d.Stop()

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Flush()

	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1 after flush", calls.Load())
	}

	// Nothing left to run afterwards.
	d.Flush()
	time.Sleep(10 * time.Millisecond)
	if calls.Load() != 1 {
		t.Fatalf("calls = %d after second flush, want still 1", calls.Load())
	}
}

func TestStopDropsPendingWork(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 0 {
		t.Fatalf("calls = %d, want 0 after stop", calls.Load())
	}

	d.Trigger(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 0 {
		t.Fatalf("trigger after stop should be ignored")
	}
}

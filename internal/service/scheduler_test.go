package service

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerFires(t *testing.T) {
	s := NewReturnScheduler()
	fired := make(chan struct{})

	s.Schedule("100", time.Now().Add(20*time.Millisecond), func() {
		close(fired)
	})
	if s.Pending() != 1 {
		t.Fatalf("expected 1 pending alert, got %d", s.Pending())
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("alert did not fire")
	}

	// The timer removes its own entry once it has fired.
	deadline := time.Now().Add(time.Second)
	for s.Pending() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 0 pending alerts, got %d", s.Pending())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSchedulerReplaceCancelsPrior(t *testing.T) {
	s := NewReturnScheduler()
	firstFired := make(chan struct{})
	secondFired := make(chan struct{})

	s.Schedule("100", time.Now().Add(50*time.Millisecond), func() {
		close(firstFired)
	})
	s.Schedule("100", time.Now().Add(20*time.Millisecond), func() {
		close(secondFired)
	})

	if s.Pending() != 1 {
		t.Fatalf("rescheduling must replace, not add; got %d pending", s.Pending())
	}

	select {
	case <-secondFired:
	case <-time.After(time.Second):
		t.Fatal("replacement alert did not fire")
	}

	select {
	case <-firstFired:
		t.Fatal("replaced alert must not fire")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSchedulerStaleCallbackDoesNotEvictReplacement(t *testing.T) {
	// A timer that expires in the instant it is being replaced must neither
	// fire its announcement nor remove the replacement's entry.
	s := NewReturnScheduler()

	for i := 0; i < 200; i++ {
		var replaced, firedAfterReplace atomic.Bool
		s.Schedule("100", time.Now().Add(time.Microsecond), func() {
			if replaced.Load() {
				firedAfterReplace.Store(true)
			}
		})
		s.Schedule("100", time.Now().Add(time.Hour), func() {})
		replaced.Store(true)

		time.Sleep(time.Millisecond)
		if s.Pending() != 1 {
			t.Fatalf("replacement entry lost on iteration %d", i)
		}
		if firedAfterReplace.Load() {
			t.Fatalf("replaced alert fired after its replacement on iteration %d", i)
		}
		s.Cancel("100")
	}
}

func TestSchedulerIgnoresPastEnds(t *testing.T) {
	s := NewReturnScheduler()
	s.Schedule("100", time.Now().Add(-time.Minute), func() {
		t.Error("alert for a past end must never fire")
	})
	if s.Pending() != 0 {
		t.Errorf("expected 0 pending alerts, got %d", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewReturnScheduler()
	s.Schedule("100", time.Now().Add(time.Hour), func() {})

	if !s.Cancel("100") {
		t.Error("expected Cancel to report a pending alert")
	}
	if s.Cancel("100") {
		t.Error("expected second Cancel to report nothing pending")
	}
	if s.Pending() != 0 {
		t.Errorf("expected 0 pending alerts, got %d", s.Pending())
	}
}

func TestSchedulerIndependentUsers(t *testing.T) {
	s := NewReturnScheduler()
	s.Schedule("100", time.Now().Add(time.Hour), func() {})
	s.Schedule("200", time.Now().Add(time.Hour), func() {})

	if s.Pending() != 2 {
		t.Fatalf("expected 2 pending alerts, got %d", s.Pending())
	}
	s.Cancel("100")
	if s.Pending() != 1 {
		t.Errorf("cancelling one user must not touch the other, got %d", s.Pending())
	}
}

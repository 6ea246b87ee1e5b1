package circuitbreaker

import (
	"testing"
	"time"
)

func TestBreaker_OpensAtThreshold(t *testing.T) {
	b := NewBreaker(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !b.Allow() {
			t.Fatalf("call %d rejected while closed", i)
		}
		b.RecordFailure()
	}

	if b.CurrentState() != Open {
		t.Errorf("state = %v, want Open", b.CurrentState())
	}
	if b.Allow() {
		t.Error("open breaker allowed a call before timeout")
	}
}

func TestBreaker_SuccessResets(t *testing.T) {
	b := NewBreaker(3, time.Minute)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	b.RecordFailure()

	if b.CurrentState() != Closed {
		t.Errorf("state = %v, want Closed after reset", b.CurrentState())
	}
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	b := NewBreaker(1, 10*time.Millisecond)
	b.RecordFailure()

	if b.Allow() {
		t.Fatal("open breaker allowed a call immediately")
	}

	time.Sleep(20 * time.Millisecond)

	if !b.Allow() {
		t.Fatal("breaker did not allow a probe after timeout")
	}
	if b.Allow() {
		t.Error("breaker allowed a second concurrent probe")
	}

	b.RecordSuccess()
	if b.CurrentState() != Closed {
		t.Errorf("state = %v, want Closed after successful probe", b.CurrentState())
	}
}

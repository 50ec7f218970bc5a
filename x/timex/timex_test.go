package timex

import (
	"testing"
	"time"
)

func TestPeriodFromHz(t *testing.T) {
	type C struct {
		hz   uint32
		want uint64
	}
	for _, c := range []C{
		{0, 1_000_000_000},
		{1, 1_000_000_000},
		{1000, 1_000_000},
		{20_000, 50_000},
	} {
		if got := PeriodFromHz(c.hz); got != c.want {
			t.Fatalf("PeriodFromHz(%d) = %d, want %d", c.hz, got, c.want)
		}
	}
}

func TestStepInterval(t *testing.T) {
	type C struct {
		total time.Duration
		steps uint32
		want  time.Duration
	}
	for _, c := range []C{
		{time.Second, 100, 10 * time.Millisecond},
		{time.Second, 3, 333 * time.Millisecond},
		{time.Second, 0, time.Second},
		{10 * time.Millisecond, 1000, time.Millisecond}, // floor
		{0, 5, time.Millisecond},
	} {
		if got := StepInterval(c.total, c.steps); got != c.want {
			t.Fatalf("StepInterval(%v, %d) = %v, want %v", c.total, c.steps, got, c.want)
		}
	}
}

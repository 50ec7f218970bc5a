package ramp

import (
	"context"
	"time"

	"fadecode-go/x/interp"
	"fadecode-go/x/mathx"
	"fadecode-go/x/timex"
)

// Step sets the new logical level in [0..top].
type Step func(level uint16)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// ContextTick sleeps for d unless ctx is done first.
func ContextTick(ctx context.Context) Tick {
	return func(d time.Duration) bool {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
			return true
		}
	}
}

// StartLinear starts a synchronous (caller-driven) integer ramp.
// Call it from a goroutine and provide Tick to handle timing & cancellation.
// steps==0 or durationMs==0 snaps to 'to'.
func StartLinear(cur, to, top uint16, durationMs uint32, steps uint16, tick Tick, set Step) {
	to = mathx.Min(to, top)
	if steps == 0 || durationMs == 0 {
		set(to)
		return
	}
	every := timex.StepInterval(time.Duration(durationMs)*time.Millisecond, uint32(steps))
	Run[uint16](mathx.Min(cur, top), to, uint32(steps), every, tick, set)
}

// Run moves from cur to to in steps ticks of length every, calling set
// whenever the level changes. The last tick lands exactly on to. It
// reports false if tick cancelled the ramp part way.
func Run[T interp.Number](cur, to T, steps uint32, every time.Duration, tick Tick, set func(T)) bool {
	var lin interp.Linear[T]
	if lin.Initialize(cur, to, steps) != nil {
		set(to)
		return true
	}
	last := cur
	for i := uint32(1); i < steps; i++ {
		if !tick(every) {
			return false
		}
		if v := lin.Step(); v != last {
			last = v
			set(v)
		}
	}
	if !tick(every) {
		return false
	}
	if last != to {
		set(to)
	}
	return true
}

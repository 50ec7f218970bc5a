package ramp

import (
	"context"
	"sync"
	"time"

	"fadecode-go/x/interp"
	"fadecode-go/x/mathx"
)

// Sink receives levels, e.g. a PWM compare register or an LED driver
// channel.
type Sink interface {
	Set(level uint16)
}

// Fader drives a Sink from an interp.Linear, one sample per Tick. Tick may
// be called from a timer callback while Start and Stop come from the main
// loop; a mutex serialises them.
type Fader struct {
	mu     sync.Mutex
	sink   Sink
	top    uint16
	lin    interp.Linear[uint16]
	level  uint16
	wrote  bool
	target uint16
	left   uint32 // ticks remaining
}

// NewFader returns a Fader writing levels in [0..top] to sink. The sink
// is assumed to sit at 0 until the first write.
func NewFader(sink Sink, top uint16) *Fader {
	return &Fader{sink: sink, top: mathx.Max(top, 1), lin: interp.New[uint16]()}
}

// Set stops any fade and writes level immediately.
func (f *Fader) Set(level uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stop()
	f.write(mathx.Min(level, f.top))
}

// Start fades from the current level to 'to' over steps ticks, replacing
// any fade in progress.
func (f *Fader) Start(to uint16, steps uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	to = mathx.Min(to, f.top)
	if err := f.lin.Initialize(f.level, to, steps); err != nil {
		return err
	}
	f.target, f.left = to, steps
	return nil
}

// Tick advances the fade by one sample and reports whether more remain.
// The final tick writes the target itself.
func (f *Fader) Tick() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.left == 0 {
		return false
	}
	f.left--
	if f.left == 0 {
		f.lin.Reset()
		f.write(f.target)
		return false
	}
	f.write(f.lin.Step())
	return true
}

// Stop freezes the output at the current level.
func (f *Fader) Stop() {
	f.mu.Lock()
	f.stop()
	f.mu.Unlock()
}

// Level returns the last level written to the sink.
func (f *Fader) Level() uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.level
}

// Active reports whether a fade is in progress.
func (f *Fader) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.left > 0
}

// Run ticks every period until the fade completes or ctx is done. A
// cancelled fade is stopped where it is.
func (f *Fader) Run(ctx context.Context, every time.Duration) error {
	t := time.NewTicker(mathx.Max(every, time.Millisecond))
	defer t.Stop()
	for f.Active() {
		select {
		case <-ctx.Done():
			f.Stop()
			return ctx.Err()
		case <-t.C:
			f.Tick()
		}
	}
	return nil
}

// caller holds lock
func (f *Fader) stop() {
	f.lin.Reset()
	f.left = 0
}

// caller holds lock
func (f *Fader) write(level uint16) {
	if f.wrote && level == f.level {
		return
	}
	f.level, f.wrote = level, true
	f.sink.Set(level)
}

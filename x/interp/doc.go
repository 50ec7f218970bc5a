// Package interp steps a value linearly from a start to an end over a fixed
// number of calls, one sample per call, without floating point for
// integer outputs.
//
//	var fade interp.Linear[uint8]
//	_ = fade.Initialize(0, 255, 512)
//	for i := 0; i < 512; i++ {
//		pwm.Set(fade.Step()) // e.g. from a timer interrupt
//	}
//
// The arithmetic is chosen per output width:
//
//	8 bit   8.7 fixed point,  16-bit accumulator, <= 128 steps per unit
//	16 bit  16.15 fixed point, 32-bit accumulator, <= 32768 steps per unit
//	32 bit  32.16 fixed point, 64-bit accumulator, <= 65536 steps per unit
//	other   float32
//
// Signed and unsigned types of one width share a strategy. The 32-bit
// fractional part is kept byte-aligned so CPUs without a barrel shifter
// can move bytes instead of shifting. Targets without 64-bit arithmetic
// (avr) use float32 for 32-bit outputs.
//
// Asking for more steps than the width allows per unit of distance does
// not fail: the per-step delta bottoms out at one fractional quantum and
// the sequence simply moves slower than requested. Stepping past the end
// keeps going and wraps at the accumulator width; nothing is clamped.
//
// Each call returns the sample in the middle of the next step interval,
// so truncation approximates rounding and a full run never passes the
// end value. Initialize, Step and Reset are constant time and never
// allocate. A Linear is not safe for concurrent use; guard it when it is
// shared between a main loop and an interrupt handler.
package interp

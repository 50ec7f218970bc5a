package interp

import "fadecode-go/x/mathx"

// fixed8 is signed 8.7 fixed point. A full-range difference of ±255 uses
// the integer part; the 7 fractional bits allow 128 steps per unit, 2^15
// over the whole 8-bit range.
type fixed8 struct {
	acc   uint16
	delta int16
}

func (a *fixed8) init(cur, end int16, steps uint32) {
	raw := (end - cur) << frac8
	// |raw| < 1<<15, so larger counts yield a zero quotient either way.
	steps = mathx.Min(steps, 1<<15)
	d := int16(int32(raw) / int32(steps))
	if d == 0 {
		d = mathx.Sign(raw)
	}
	a.delta = d
	a.acc = uint16(cur)<<frac8 + uint16(d/2)
}

// step returns the midpoint of the coming interval, then advances.
func (a *fixed8) step() uint16 {
	out := a.acc >> frac8
	a.acc += uint16(a.delta)
	return out
}

// fixed16 is signed 16.15 fixed point: 32768 steps per unit, 2^31 over
// the whole 16-bit range.
type fixed16 struct {
	acc   uint32
	delta int32
}

func (a *fixed16) init(cur, end int32, steps uint32) {
	raw := (end - cur) << frac16
	d := int32(int64(raw) / int64(steps))
	if d == 0 {
		d = mathx.Sign(raw)
	}
	a.delta = d
	a.acc = uint32(cur)<<frac16 + uint32(d/2)
}

func (a *fixed16) step() uint32 {
	out := a.acc >> frac16
	a.acc += uint32(a.delta)
	return out
}

// fixed32 is signed 32.16 fixed point: 65536 steps per unit. 16 rather
// than 31 fractional bits keeps the shift byte-aligned.
type fixed32 struct {
	acc   uint64
	delta int64
}

func (a *fixed32) init(cur, end int64, steps uint32) {
	raw := (end - cur) << frac32
	d := raw / int64(steps)
	if d == 0 {
		d = mathx.Sign(raw)
	}
	a.delta = d
	a.acc = uint64(cur)<<frac32 + uint64(d/2)
}

func (a *fixed32) step() uint64 {
	out := a.acc >> frac32
	a.acc += uint64(a.delta)
	return out
}

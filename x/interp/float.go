package interp

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"fadecode-go/x/mathx"
)

// Machine epsilons, the smallest delta used when the exact one rounds to
// zero.
const (
	epsilon32 float32 = 0x1p-23
	epsilon64 float64 = 0x1p-52
)

// floatAcc is the fallback accumulator. float64 serves 8-byte outputs,
// float32 everything else.
type floatAcc[F constraints.Float] struct {
	acc   F
	delta F
}

func (a *floatAcc[F]) init(cur, end F, steps uint32) {
	diff := end - cur
	d := diff / F(steps)
	if d == 0 {
		d = epsilonOf[F]() * mathx.Sign(diff)
	}
	a.delta = d
	a.acc = cur + d/2
}

// step returns the midpoint of the coming interval, then advances.
func (a *floatAcc[F]) step() F {
	out := a.acc
	a.acc += a.delta
	return out
}

func epsilonOf[F constraints.Float]() F {
	var e F
	if unsafe.Sizeof(e) == 8 {
		return F(epsilon64)
	}
	return F(epsilon32)
}

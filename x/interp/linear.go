package interp

import (
	"unsafe"

	"fadecode-go/errcode"
)

type state uint8

const (
	uninitialized state = iota
	active
	frozen
)

// Linear produces one interpolated sample of T per Step. The zero value
// is ready to use; New only fixes the strategy up front.
type Linear[T Number] struct {
	kind  Kind
	wide  bool // 8-byte T, float path accumulates in float64
	state state
	last  T

	flt   floatAcc[float32]
	flt64 floatAcc[float64]
	f8    fixed8
	f16   fixed16
	f32   fixed32
}

// New returns a Linear with its strategy selected for T.
func New[T Number]() Linear[T] {
	var l Linear[T]
	l.Kind()
	return l
}

// Kind reports the strategy in use.
func (l *Linear[T]) Kind() Kind {
	if l.kind == kindUnknown {
		l.kind = KindOf[T]()
		l.wide = unsafe.Sizeof(l.last) == 8
	}
	return l.kind
}

// Active reports whether Step still advances.
func (l *Linear[T]) Active() bool { return l.state == active }

// Initialize starts a run from current to end in steps calls to Step,
// discarding any previous run. steps must be non-zero; otherwise
// errcode.ZeroSteps is returned and the previous state is kept.
func (l *Linear[T]) Initialize(current, end T, steps uint32) error {
	if steps == 0 {
		return errcode.ZeroSteps
	}
	switch l.Kind() {
	case KindFixed8:
		l.f8.init(int16(current), int16(end), steps)
	case KindFixed16:
		l.f16.init(int32(current), int32(end), steps)
	case KindFixed32:
		l.f32.init(int64(current), int64(end), steps)
	default:
		if l.wide {
			l.flt64.init(float64(current), float64(end), steps)
		} else {
			l.flt.init(float32(current), float32(end), steps)
		}
	}
	l.last = current
	l.state = active
	return nil
}

// Step returns the next sample. Once frozen by Reset it keeps returning
// the last sample; before the first Initialize it returns zero.
func (l *Linear[T]) Step() T {
	if l.state != active {
		return l.last
	}
	switch l.kind {
	case KindFixed8:
		l.last = T(l.f8.step())
	case KindFixed16:
		l.last = T(l.f16.step())
	case KindFixed32:
		l.last = T(l.f32.step())
	default:
		if l.wide {
			l.last = T(l.flt64.step())
		} else {
			l.last = T(l.flt.step())
		}
	}
	return l.last
}

// Reset freezes the output at the last sample until the next Initialize.
func (l *Linear[T]) Reset() {
	l.flt.delta = 0
	l.flt64.delta = 0
	l.f8.delta = 0
	l.f16.delta = 0
	l.f32.delta = 0
	if l.state == active {
		l.state = frozen
	}
}

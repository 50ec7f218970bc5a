package interp

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is any type a Linear can produce.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind identifies the arithmetic a Linear uses.
type Kind uint8

const (
	kindUnknown Kind = iota
	KindFloat
	KindFixed8
	KindFixed16
	KindFixed32
)

// Fractional bits per fixed-point kind.
const (
	frac8  = 7
	frac16 = 15
	frac32 = 16
)

// KindOf selects the strategy for T from its width. Integer widths without
// a fixed-point strategy, and all floats, use KindFloat.
func KindOf[T Number]() Kind {
	var one T = 1
	if one/2 != 0 {
		return KindFloat
	}
	switch unsafe.Sizeof(one) {
	case 1:
		return KindFixed8
	case 2:
		return KindFixed16
	case 4:
		if native64 {
			return KindFixed32
		}
	}
	return KindFloat
}

// FractionalBits is the number of fractional bits of the kind's fixed-point
// format, 0 for KindFloat.
func (k Kind) FractionalBits() uint {
	switch k {
	case KindFixed8:
		return frac8
	case KindFixed16:
		return frac16
	case KindFixed32:
		return frac32
	}
	return 0
}

// StepsPerUnit is the width ceiling: the most steps one unit of distance
// can be spread over before the delta stops shrinking.
func (k Kind) StepsPerUnit() uint32 {
	if k == KindFloat {
		return math.MaxUint32
	}
	return 1 << k.FractionalBits()
}

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindFixed8:
		return "fixed8"
	case KindFixed16:
		return "fixed16"
	case KindFixed32:
		return "fixed32"
	}
	return "unknown"
}

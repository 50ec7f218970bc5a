package interp

import (
	"testing"
	"unsafe"
)

type level uint16

func TestKindOf(t *testing.T) {
	type C struct {
		name string
		got  Kind
		want Kind
	}
	platformInt := KindFloat
	if unsafe.Sizeof(int(0)) == 4 {
		platformInt = KindFixed32
	}
	for _, c := range []C{
		{"uint8", KindOf[uint8](), KindFixed8},
		{"int8", KindOf[int8](), KindFixed8},
		{"uint16", KindOf[uint16](), KindFixed16},
		{"int16", KindOf[int16](), KindFixed16},
		{"named uint16", KindOf[level](), KindFixed16},
		{"uint32", KindOf[uint32](), KindFixed32},
		{"int32", KindOf[int32](), KindFixed32},
		{"uint64", KindOf[uint64](), KindFloat},
		{"int64", KindOf[int64](), KindFloat},
		{"int", KindOf[int](), platformInt},
		{"float32", KindOf[float32](), KindFloat},
		{"float64", KindOf[float64](), KindFloat},
	} {
		if c.got != c.want {
			t.Fatalf("KindOf[%s] = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestKindCeilings(t *testing.T) {
	type C struct {
		k     Kind
		frac  uint
		steps uint32
	}
	for _, c := range []C{
		{KindFixed8, 7, 128},
		{KindFixed16, 15, 32768},
		{KindFixed32, 16, 65536},
	} {
		if c.k.FractionalBits() != c.frac || c.k.StepsPerUnit() != c.steps {
			t.Fatalf("%v: frac=%d steps=%d, want %d/%d",
				c.k, c.k.FractionalBits(), c.k.StepsPerUnit(), c.frac, c.steps)
		}
	}
	if KindFloat.FractionalBits() != 0 {
		t.Fatal("float has no fractional bits")
	}
}

//go:build !avr

package interp

const native64 = true

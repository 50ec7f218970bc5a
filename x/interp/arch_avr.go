//go:build avr

package interp

// No 64-bit integers worth using; 32-bit outputs fall back to float32.
const native64 = false

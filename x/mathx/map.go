package mathx

// MapU16 maps x in [inMin,inMax] to [outMin,outMax] with 32-bit
// intermediates, rounding to nearest. Input outside the range is clamped;
// a degenerate input range maps everything to outMin. outMin must not
// exceed outMax.
func MapU16(x, inMin, inMax, outMin, outMax uint16) uint16 {
	if inMax == inMin {
		return outMin
	}
	x = Clamp(x, inMin, inMax)
	if inMax < inMin {
		inMin, inMax = inMax, inMin
	}
	num := uint32(x-inMin) * uint32(outMax-outMin)
	return outMin + uint16(RoundDiv(num, uint32(inMax-inMin)))
}

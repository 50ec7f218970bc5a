package timex

import "time"

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}

// StepInterval splits total evenly over steps, rounding down to whole
// milliseconds with a floor of 1 ms. steps==0 is treated as one step.
func StepInterval(total time.Duration, steps uint32) time.Duration {
	if steps == 0 {
		steps = 1
	}
	ms := total.Milliseconds() / int64(steps)
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}

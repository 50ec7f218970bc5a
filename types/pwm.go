package types

// ------------------------
// PWM
// ------------------------

// PWMOutput is one MCU pin driven by the PWM block.
type PWMOutput struct {
	Pin       int       `json:"pin"`
	FreqHz    uint32    `json:"freq_hz,omitempty"`
	Top       uint16    `json:"top,omitempty"` // logical resolution, 0..Top
	ActiveLow bool      `json:"active_low"`
	Initial   uint16    `json:"initial"`
	Ramps     []PWMRamp `json:"ramps"`
}

// PWMRamp is one fade to a logical level. Steps==0 derives the count from
// the duration and the tick period.
type PWMRamp struct {
	To         uint16 `json:"to"`          // 0..Top (logical)
	DurationMs uint32 `json:"duration_ms"` // total duration
	Steps      uint32 `json:"steps,omitempty"`
	HoldMs     uint32 `json:"hold_ms,omitempty"` // pause after the ramp
}

// ------------------------
// PCA9685 expander
// ------------------------

type ExpanderConfig struct {
	Address   uint16            `json:"address,omitempty"`
	FreqHz    uint32            `json:"freq_hz,omitempty"`
	Inverted  bool              `json:"inverted"`
	OpenDrain bool              `json:"open_drain"`
	Channels  []ExpanderChannel `json:"channels"`
}

type ExpanderChannel struct {
	Channel uint8     `json:"channel"`
	Top     uint16    `json:"top,omitempty"`
	Ramps   []PWMRamp `json:"ramps"`
}

// ------------------------
// Status
// ------------------------

// FadeStatus is published retained on fade/<name> whenever a ramp starts
// or ends.
type FadeStatus struct {
	Level  uint16 `json:"level"`
	Target uint16 `json:"target"`
	Active bool   `json:"active"`
}

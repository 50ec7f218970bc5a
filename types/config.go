package types

// FadeConfig is the per-device configuration of the fade demo.
type FadeConfig struct {
	PeriodMs uint32          `json:"period_ms,omitempty"` // tick period
	Loop     bool            `json:"loop"`                // repeat ramps forever
	Console  ConsoleConfig   `json:"console"`
	PWM      []PWMOutput     `json:"pwm"`
	PCA9685  *ExpanderConfig `json:"pca9685,omitempty"`
}

// ConsoleConfig selects the UART that mirrors log lines.
type ConsoleConfig struct {
	UART string `json:"uart,omitempty"` // "uart0", "uart1" or "" for none
	Baud uint32 `json:"baud,omitempty"`
	TX   int    `json:"tx"`
	RX   int    `json:"rx"`
}

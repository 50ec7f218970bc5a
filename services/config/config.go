package config

import (
	"encoding/json"

	"fadecode-go/errcode"
	"fadecode-go/types"
	"fadecode-go/x/mathx"
)

const (
	DefaultPeriodMs = 10
	DefaultTop      = 255
	DefaultPWMHz    = 1000
	DefaultBaud     = 115200

	maxChannels = 16
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Load resolves the embedded config for device, decodes and validates it.
func Load(device string) (types.FadeConfig, error) {
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return types.FadeConfig{}, &errcode.E{C: errcode.InvalidParams, Op: "config.load", Msg: "no embedded config for device: " + device}
	}
	return Decode(raw)
}

// Decode parses raw JSON into a FadeConfig and applies Validate.
func Decode(raw []byte) (types.FadeConfig, error) {
	var c types.FadeConfig
	if err := json.Unmarshal(raw, &c); err != nil {
		return types.FadeConfig{}, &errcode.E{C: errcode.InvalidPayload, Op: "config.decode", Err: err}
	}
	if err := Validate(&c); err != nil {
		return types.FadeConfig{}, err
	}
	return c, nil
}

// Validate fills defaults and rejects configs the faders cannot run.
// Ramps without an explicit step count get one tick per period.
func Validate(c *types.FadeConfig) error {
	if c.PeriodMs == 0 {
		c.PeriodMs = DefaultPeriodMs
	}
	if c.Console.UART != "" {
		if c.Console.UART != "uart0" && c.Console.UART != "uart1" {
			return invalid("console.uart", c.Console.UART)
		}
		if c.Console.Baud == 0 {
			c.Console.Baud = DefaultBaud
		}
	}
	for i := range c.PWM {
		p := &c.PWM[i]
		if !mathx.Between(p.Pin, 0, 29) {
			return invalid("pwm.pin", "out of range")
		}
		if p.FreqHz == 0 {
			p.FreqHz = DefaultPWMHz
		}
		if p.Top == 0 {
			p.Top = DefaultTop
		}
		p.Initial = mathx.Min(p.Initial, p.Top)
		if err := ramps(p.Ramps, c.PeriodMs); err != nil {
			return err
		}
	}
	if x := c.PCA9685; x != nil {
		for i := range x.Channels {
			ch := &x.Channels[i]
			if ch.Channel >= maxChannels {
				return invalid("pca9685.channel", "out of range")
			}
			if ch.Top == 0 {
				ch.Top = DefaultTop
			}
			if err := ramps(ch.Ramps, c.PeriodMs); err != nil {
				return err
			}
		}
	}
	return nil
}

func ramps(rs []types.PWMRamp, periodMs uint32) error {
	for i := range rs {
		r := &rs[i]
		if r.Steps == 0 {
			r.Steps = mathx.CeilDiv(r.DurationMs, periodMs)
		}
		if r.Steps == 0 {
			return &errcode.E{C: errcode.ZeroSteps, Op: "config.validate", Msg: "ramp needs steps or duration_ms"}
		}
	}
	return nil
}

func invalid(field, msg string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: "config.validate", Msg: field + ": " + msg}
}

package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

// Breathing on-board LED plus a four-channel chase on a PCA9685 at 0x40.
const cfgPico = `{
  "period_ms": 10,
  "loop": true,
  "console": {"uart": "uart0", "baud": 115200, "tx": 0, "rx": 1},
  "pwm": [
    {"pin": 25, "freq_hz": 1000, "top": 1000, "ramps": [
      {"to": 1000, "duration_ms": 1500},
      {"to": 0, "duration_ms": 1500, "hold_ms": 500}
    ]}
  ],
  "pca9685": {
    "address": 64,
    "freq_hz": 500,
    "channels": [
      {"channel": 0, "top": 4095, "ramps": [{"to": 4095, "duration_ms": 800}, {"to": 0, "duration_ms": 800}]},
      {"channel": 1, "top": 4095, "ramps": [{"to": 4095, "duration_ms": 1200}, {"to": 0, "duration_ms": 400}]},
      {"channel": 2, "top": 255, "ramps": [{"to": 255, "steps": 255, "duration_ms": 2550}, {"to": 0, "steps": 255, "duration_ms": 2550}]},
      {"channel": 3, "top": 255, "ramps": [{"to": 128, "duration_ms": 300, "hold_ms": 1000}, {"to": 0, "duration_ms": 300}]}
    ]
  }
}`

var embeddedConfigs = map[string][]byte{
	"pico": []byte(cfgPico),
}

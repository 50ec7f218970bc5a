// Package pca9685 provides a driver for the PCA9685 16-channel, 12-bit
// PWM/LED controller.
//
//	d := pca9685.New(i2c)
//	err := d.Configure(pca9685.Config{FrequencyHz: 500})
//	err = d.Set(0, 2048) // channel 0 at 50%
//
// Channel adapts one output to a level sink so faders can drive it
// directly. All register writes use auto-increment; the driver never reads
// back, so a write-only bus adapter is enough.
package pca9685

import (
	"errors"
	"sync"
	"time"

	"fadecode-go/errcode"
	"fadecode-go/x/mathx"

	"tinygo.org/x/drivers"
)

// Address is the default I2C address with A0..A5 low.
const Address = 0x40

const (
	Channels     = 16
	MaxDuty      = 4095
	OscillatorHz = 25_000_000 // internal oscillator
)

const (
	regMode1    = 0x00
	regMode2    = 0x01
	regLED0     = 0x06 // ON_L, ON_H, OFF_L, OFF_H per channel
	regAllLED   = 0xFA
	regPrescale = 0xFE

	mode1Restart = 0x80
	mode1AI      = 0x20
	mode1Sleep   = 0x10
	mode1AllCall = 0x01

	mode2Invrt  = 0x10
	mode2OutDrv = 0x04

	fullBit = 0x10 // in ON_H / OFF_H

	prescaleMin = 3
	prescaleMax = 255
)

// Errors returned by the driver.
var (
	ErrChannel   = errors.New("pca9685: channel out of range")
	ErrFrequency = errors.New("pca9685: frequency out of range")
)

// Config controls device setup. All fields are optional.
type Config struct {
	// Address defaults to 0x40 if zero.
	Address uint16
	// OscillatorHz is the clock feeding the prescaler. Default 25 MHz.
	OscillatorHz uint32
	// FrequencyHz is the PWM frequency. Default 200 Hz; roughly 24..1526 Hz
	// with the internal oscillator.
	FrequencyHz uint32
	// Inverted flips output polarity (for sinking LEDs without a driver).
	Inverted bool
	// OpenDrain selects open-drain outputs instead of totem pole.
	OpenDrain bool
}

// Device wraps an I2C connection to a PCA9685. Set and SetAll may be
// called from several goroutines; each transfer holds mu.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg   Config
	mode1 byte
	mu    sync.Mutex
	buf   [5]byte
}

// New creates a new PCA9685 connection. The I2C bus must already be
// configured. This function only creates the Device object; it does not
// touch the device.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Configure wakes the device, sets the output stage and the PWM frequency.
func (d *Device) Configure(cfgs ...Config) error {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Address != 0 {
		d.Address = c.Address
	}
	if c.OscillatorHz == 0 {
		c.OscillatorHz = OscillatorHz
	}
	if c.FrequencyHz == 0 {
		c.FrequencyHz = 200
	}
	d.cfg = c

	var mode2 byte
	if !c.OpenDrain {
		mode2 |= mode2OutDrv
	}
	if c.Inverted {
		mode2 |= mode2Invrt
	}
	d.mode1 = mode1AI | mode1AllCall
	if err := d.write(regMode1, d.mode1); err != nil {
		return err
	}
	if err := d.write(regMode2, mode2); err != nil {
		return err
	}
	return d.SetFrequency(c.FrequencyHz)
}

// Prescale returns the prescaler value for freqHz from an oscillator at
// oscHz, rounded to nearest.
func Prescale(oscHz, freqHz uint32) (byte, error) {
	if freqHz == 0 || freqHz > oscHz/4096 {
		return 0, ErrFrequency
	}
	p := mathx.RoundDiv(oscHz, 4096*freqHz)
	if !mathx.Between(p, prescaleMin+1, prescaleMax+1) {
		return 0, ErrFrequency
	}
	return byte(p - 1), nil
}

// SetFrequency changes the PWM frequency. The prescaler only accepts
// writes while the oscillator sleeps, so outputs pause briefly.
func (d *Device) SetFrequency(freqHz uint32) error {
	osc := d.cfg.OscillatorHz
	if osc == 0 {
		osc = OscillatorHz
	}
	p, err := Prescale(osc, freqHz)
	if err != nil {
		return err
	}
	if err := d.write(regMode1, d.mode1&^mode1Restart|mode1Sleep); err != nil {
		return err
	}
	if err := d.write(regPrescale, p); err != nil {
		return err
	}
	if err := d.write(regMode1, d.mode1); err != nil {
		return err
	}
	// Oscillator needs 500 µs before RESTART.
	time.Sleep(500 * time.Microsecond)
	d.cfg.FrequencyHz = freqHz
	return d.write(regMode1, d.mode1|mode1Restart)
}

// Set writes a 12-bit duty cycle to channel ch. 0 and MaxDuty (or more)
// use the full-off and full-on encodings.
func (d *Device) Set(ch uint8, duty uint16) error {
	if ch >= Channels {
		return ErrChannel
	}
	return d.setReg(regLED0+4*ch, duty)
}

// SetAll writes the same duty cycle to every channel in one transfer.
func (d *Device) SetAll(duty uint16) error {
	return d.setReg(regAllLED, duty)
}

// Sleep stops the oscillator; outputs go off.
func (d *Device) Sleep() error {
	d.mode1 |= mode1Sleep
	return d.write(regMode1, d.mode1)
}

// Wake restarts the oscillator and resumes the previous duty cycles.
func (d *Device) Wake() error {
	d.mode1 &^= mode1Sleep
	if err := d.write(regMode1, d.mode1); err != nil {
		return err
	}
	time.Sleep(500 * time.Microsecond)
	return d.write(regMode1, d.mode1|mode1Restart)
}

func (d *Device) setReg(reg uint8, duty uint16) error {
	var on, off uint16
	switch {
	case duty >= MaxDuty:
		on = fullBit << 8
	case duty == 0:
		off = fullBit << 8
	default:
		off = duty
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf = [5]byte{reg, byte(on), byte(on >> 8), byte(off), byte(off >> 8)}
	return d.bus.Tx(d.Address, d.buf[:], nil)
}

func (d *Device) write(reg, v byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf[0], d.buf[1] = reg, v
	return d.bus.Tx(d.Address, d.buf[:2], nil)
}

// Channel is one output scaled from logical levels 0..top.
type Channel struct {
	dev *Device
	ch  uint8
	top uint16
	err error
}

// Channel returns output ch as a level sink with logical range 0..top.
func (d *Device) Channel(ch uint8, top uint16) *Channel {
	return &Channel{dev: d, ch: ch, top: mathx.Max(top, 1)}
}

// Set writes level, scaled to 12 bits. Failures are kept for Err since a
// sink cannot report them.
func (c *Channel) Set(level uint16) {
	duty := mathx.MapU16(level, 0, c.top, 0, MaxDuty)
	if err := c.dev.Set(c.ch, duty); err != nil && c.err == nil {
		c.err = &errcode.E{C: errcode.MapDriverErr(err), Op: "pca9685.set", Err: err}
	}
}

// Err returns the first write failure, if any.
func (c *Channel) Err() error { return c.err }

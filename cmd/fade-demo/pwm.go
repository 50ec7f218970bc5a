//go:build rp2040

package main

import (
	"sync"

	"fadecode-go/errcode"
	"fadecode-go/types"
	"fadecode-go/x/mathx"
	"fadecode-go/x/timex"
	"machine"
)

// pwmCtrl is the part of a machine PWM slice this file drives.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Top() uint32
	Set(channel uint8, value uint32)
}

// pwmGroupBySlice maps a slice number (0..7) to its controller.
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// slice frequencies already claimed; both channels of a slice share it.
var slices [8]uint32

// pwmOut drives one pin of a PWM slice with a logical level in [0..top].
type pwmOut struct {
	mu        sync.Mutex
	ctrl      pwmCtrl
	chIdx     uint8 // 0 => A, 1 => B
	top       uint16
	hwTop     uint32
	activeLow bool
}

func newPWMOut(o types.PWMOutput) (*pwmOut, error) {
	slice, err := machine.PWMPeripheral(machine.Pin(o.Pin))
	if err != nil {
		return nil, errcode.Unsupported
	}
	ctrl := pwmGroupBySlice(slice)
	switch slices[slice] {
	case 0:
		if err := ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(o.FreqHz)}); err != nil {
			return nil, errcode.Wrap(errcode.Error, "pwm.configure", err)
		}
		slices[slice] = o.FreqHz
	case o.FreqHz:
	default:
		return nil, errcode.Busy
	}
	machine.Pin(o.Pin).Configure(machine.PinConfig{Mode: machine.PinPWM})
	return &pwmOut{
		ctrl:      ctrl,
		chIdx:     uint8(o.Pin & 1),
		top:       mathx.Max(o.Top, 1),
		hwTop:     ctrl.Top(),
		activeLow: o.ActiveLow,
	}, nil
}

// Set scales level from [0..top] to [0..hwTop].
func (p *pwmOut) Set(level uint16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	level = mathx.Min(level, p.top)
	hw := uint32(uint64(level) * uint64(p.hwTop) / uint64(p.top))
	if p.activeLow {
		hw = p.hwTop - hw
	}
	p.ctrl.Set(p.chIdx, hw)
}

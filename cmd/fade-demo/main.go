//go:build rp2040

// fade-demo fades the on-board LED and the channels of a PCA9685 through
// the ramps of the embedded "pico" config, logging to the console UART.
package main

import (
	"context"
	"strconv"
	"time"

	"fadecode-go/bus"
	"fadecode-go/drivers/pca9685"
	"fadecode-go/services/config"
	"fadecode-go/services/fade"
	"fadecode-go/types"
	"machine"
)

const device = "pico"

func main() {
	time.Sleep(2 * time.Second)
	ctx := context.Background()

	cfg, err := config.Load(device)
	if err != nil {
		println("[main] config:", err.Error())
		return
	}
	con := openConsole(cfg.Console)

	b := bus.NewBus(8)
	svc := fade.New(cfg, con, b.NewConnection("fade"))

	for _, o := range cfg.PWM {
		out, err := newPWMOut(o)
		if err != nil {
			println("[main] pwm pin", o.Pin, "skipped:", err.Error())
			continue
		}
		svc.Add("gp"+strconv.Itoa(o.Pin), out, o.Top, o.Initial, o.Ramps)
	}

	var chans []*pca9685.Channel
	if x := cfg.PCA9685; x != nil {
		chans = addExpander(svc, x)
	}

	go monitor(b.NewConnection("ui"), con)

	println("[main] fading …")
	if err := svc.Run(ctx); err != nil {
		println("[main] fade:", err.Error())
	}
	for _, c := range chans {
		if err := c.Err(); err != nil {
			println("[main] pca9685:", err.Error())
		}
	}
	println("[main] done")
	select {}
}

func addExpander(svc *fade.Service, x *types.ExpanderConfig) []*pca9685.Channel {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	}); err != nil {
		println("[main] i2c0:", err.Error())
		return nil
	}
	dev := pca9685.New(i2c)
	if err := dev.Configure(pca9685.Config{
		Address:     x.Address,
		FrequencyHz: x.FreqHz,
		Inverted:    x.Inverted,
		OpenDrain:   x.OpenDrain,
	}); err != nil {
		println("[main] pca9685 not found:", err.Error())
		return nil
	}
	var out []*pca9685.Channel
	for _, c := range x.Channels {
		ch := dev.Channel(c.Channel, c.Top)
		svc.Add("pca"+strconv.Itoa(int(c.Channel)), ch, c.Top, 0, c.Ramps)
		out = append(out, ch)
	}
	return out
}

// monitor prints every fade status change.
func monitor(conn *bus.Connection, con *console) {
	sub := conn.Subscribe(bus.T("fade", "#"))
	for m := range sub.Channel() {
		st, ok := m.Payload.(types.FadeStatus)
		if !ok {
			continue
		}
		line := "[monitor] " + m.Topic.String() + " level=" + strconv.Itoa(int(st.Level)) +
			" target=" + strconv.Itoa(int(st.Target))
		if st.Active {
			line += " active"
		}
		con.Println(line)
	}
}

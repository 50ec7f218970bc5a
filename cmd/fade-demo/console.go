//go:build rp2040

package main

import (
	"sync"

	"fadecode-go/types"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// console mirrors log lines to a UART. A nil console only prints. The
// fade service and the monitor share it, so writes hold mu.
type console struct {
	mu sync.Mutex
	u  *uartx.UART
}

func openConsole(c types.ConsoleConfig) *console {
	var hw *uartx.UART
	switch c.UART {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: c.Baud,
		TX:       machine.Pin(c.TX),
		RX:       machine.Pin(c.RX),
	}); err != nil {
		println("[main] console:", err.Error())
		return nil
	}
	return &console{u: hw}
}

func (c *console) Write(b []byte) (int, error) {
	if c == nil {
		return len(b), nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.u.Write(b)
}

func (c *console) Println(s string) {
	println(s)
	_, _ = c.Write([]byte(s + "\r\n"))
}

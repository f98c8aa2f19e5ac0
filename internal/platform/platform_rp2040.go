//go:build rp2040

package platform

import (
	"io"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/delay"

	"romemu-go/drivers/pinbank"
	"romemu-go/services/config"
)

// Target holds what start-up hands to the loop.
type Target struct {
	Bank    *pinbank.Bank
	Console io.Writer // nil unless the trace is built in

	status pinbank.Pin
}

// Open claims the bank 0 register groups and, with the trace built in,
// brings up the console UART. It succeeds once.
func Open(b config.Board) (*Target, error) {
	regs, err := pinbank.Take()
	if err != nil {
		return nil, err
	}
	t := &Target{Bank: pinbank.New(regs), status: b.Geometry.Status}
	if b.TraceEvery != 0 {
		u := uartx.UART0
		if err := u.Configure(uartx.UARTConfig{
			BaudRate: b.Console.Baud,
			TX:       machine.Pin(b.Console.TX),
			RX:       machine.Pin(b.Console.RX),
		}); err != nil {
			println("[boot] console unavailable:", err.Error())
		} else {
			t.Console = u
		}
	}
	return t, nil
}

// Settle waits for freshly configured input pads and pulls to reach their
// levels before the first sample.
func (t *Target) Settle() {
	delay.Sleep(10 * time.Microsecond)
}

// CheckClock warns when the runtime did not bring the CPU up at the
// frequency the profile's timing assumes.
func CheckClock(b config.Board) {
	if f := machine.CPUFrequency(); f != b.SysClockHz {
		println("[boot] warning: cpu at", f, "Hz, profile expects", b.SysClockHz)
	}
}

// Halt reports err and never returns. The onboard LED blinks blinkCount(err)
// times per second. Use it only before Open; afterwards the bank owns GP25
// and Target.Halt must be used instead.
func Halt(err error) {
	println("[fatal]", err.Error())
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	blinkForever(blinkCount(err), led.High, led.Low)
}

// Halt reports err like the package Halt, but blinks the status pin
// through the bank that owns it.
func (t *Target) Halt(err error) {
	println("[fatal]", err.Error())
	b, p := t.Bank, t.status
	b.Configure(p)
	b.SetDirOutMasked(p.Mask())
	blinkForever(blinkCount(err), func() { b.SetPin(p) }, func() { b.ClearPin(p) })
}

func blinkForever(n int, on, off func()) {
	for {
		for i := 0; i < n; i++ {
			on()
			time.Sleep(150 * time.Millisecond)
			off()
			time.Sleep(150 * time.Millisecond)
		}
		time.Sleep(time.Second)
	}
}

// Package config holds the compile-time board profile. Nothing here is
// runtime-configurable; a different wiring means a different build.
package config

import (
	"romemu-go/drivers/pinbank"
	"romemu-go/errcode"
	"romemu-go/services/romemu"
	"romemu-go/x/fmtx"
)

// Console is the UART used by the diagnostic trace.
type Console struct {
	TX, RX pinbank.Pin
	Baud   uint32
}

// Board is everything start-up needs to know about one wiring.
type Board struct {
	Name     string
	Geometry romemu.Geometry

	XtalHz     uint32 // reference crystal
	SysClockHz uint32 // expected CPU clock once the runtime has set up the PLLs

	// FillByte pads the array past the end of the ROM image.
	FillByte byte

	Console Console

	// TraceEvery is the trace period in loop iterations; 0 disables the trace.
	TraceEvery uint32
}

// Validate compiles the geometry and, when tracing is on, checks the
// console pins stay clear of every bus pin.
func (b Board) Validate() (romemu.Layout, error) {
	l, err := b.Geometry.Compile()
	if err != nil {
		return romemu.Layout{}, err
	}
	if b.TraceEvery == 0 {
		return l, nil
	}
	used := l.AddrMask | l.DataMask | l.CSMask | l.StatusMask
	for _, p := range []pinbank.Pin{b.Console.TX, b.Console.RX} {
		if err := pinbank.CheckPin(p); err != nil {
			return romemu.Layout{}, err
		}
		if used&p.Mask() != 0 {
			return romemu.Layout{}, errcode.New(errcode.BusOverlap, "config", fmtx.Sprintf("console pin %d is in use by the bus", int(p)))
		}
	}
	return l, nil
}

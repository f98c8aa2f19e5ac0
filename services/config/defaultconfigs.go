package config

import "romemu-go/services/romemu"

// -----------------------------------------------------------------------------
// Board profiles
//
// Pico wiring: 15-bit address on GP0..14, 8-bit data on GP15..22,
// chip-select on GP26, onboard LED on GP25. UART0 can only reach GP28/GP29
// without landing on a bus.
// -----------------------------------------------------------------------------

const (
	LEDPin          = 25
	AddrBusStartPin = 0
	AddrBusBits     = 15
	DataBusStartPin = 15
	DataBusBits     = 8
	CSPin           = 26
	XtalFreqHz      = 12_000_000
	SysClockHz      = 125_000_000
	ConsoleTXPin    = 28
	ConsoleRXPin    = 29
	ConsoleBaud     = 115200
	DefaultFillByte = 0x00
)

// Default is the profile the firmware is built with.
func Default() Board {
	return Board{
		Name: "pico",
		Geometry: romemu.Geometry{
			AddrStart:  AddrBusStartPin,
			AddrBits:   AddrBusBits,
			DataStart:  DataBusStartPin,
			DataBits:   DataBusBits,
			CS:         CSPin,
			Status:     LEDPin,
			PullDownCS: true,
		},
		XtalHz:     XtalFreqHz,
		SysClockHz: SysClockHz,
		FillByte:   DefaultFillByte,
		Console:    Console{TX: ConsoleTXPin, RX: ConsoleRXPin, Baud: ConsoleBaud},
		TraceEvery: TraceEvery,
	}
}

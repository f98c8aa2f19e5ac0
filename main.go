// Firmware entry: emulate a parallel ROM on the Pico's GPIO pins.
//
//	tinygo flash -target=pico .
//	tinygo flash -target=pico -tags romtrace .   // with the UART trace
//
// Replace rom.bin with any image up to 32 KiB.
package main

import (
	_ "embed"

	"romemu-go/internal/platform"
	"romemu-go/services/config"
	"romemu-go/services/heartbeat"
	"romemu-go/services/romemu"
)

//go:embed rom.bin
var romImage []byte

func main() {
	board := config.Default()
	if _, err := board.Validate(); err != nil {
		platform.Halt(err)
	}

	target, err := platform.Open(board)
	if err != nil {
		platform.Halt(err)
	}
	platform.CheckClock(board)

	mem, err := romemu.NewMemory(board.Geometry.AddrBits, romImage, board.FillByte)
	if err != nil {
		target.Halt(err)
	}
	if mem.Truncated() {
		println("[boot] rom image cut to", mem.Len(), "bytes")
	}

	var opts []romemu.Option
	if board.TraceEvery != 0 && target.Console != nil {
		tr := heartbeat.NewTracer(target.Console, board.TraceEvery, board.Geometry.AddrBits)
		opts = append(opts, romemu.WithObserver(tr))
	}

	emu, err := romemu.New(target.Bank, board.Geometry, mem, opts...)
	if err != nil {
		target.Halt(err)
	}
	target.Settle()

	println("[boot]", board.Name, "rom ready:", mem.Loaded(), "of", mem.Len(), "bytes")
	emu.Run()
}

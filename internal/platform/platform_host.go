//go:build !rp2040

package platform

import (
	"io"
	"os"
	"sync/atomic"

	"romemu-go/drivers/pinbank"
	"romemu-go/drivers/pinbank/pinsim"
	"romemu-go/errcode"
	"romemu-go/services/config"
)

// Target holds what start-up hands to the loop. On the host the registers
// are a simulated chip.
type Target struct {
	Bank    *pinbank.Bank
	Console io.Writer
	Chip    *pinsim.Chip
}

var opened atomic.Bool

// Open hands out a simulated bank 0. It succeeds once per process, like
// the hardware claim.
func Open(b config.Board) (*Target, error) {
	if !opened.CompareAndSwap(false, true) {
		return nil, errcode.AlreadyClaimed
	}
	chip := pinsim.New()
	t := &Target{Bank: pinbank.New(chip.Registers()), Chip: chip}
	if b.TraceEvery != 0 {
		t.Console = os.Stdout
	}
	return t, nil
}

func (t *Target) Settle() {}

func CheckClock(config.Board) {}

// Halt reports err and exits.
func Halt(err error) {
	println("[fatal]", err.Error(), "blink code", blinkCount(err))
	os.Exit(1)
}

func (t *Target) Halt(err error) { Halt(err) }

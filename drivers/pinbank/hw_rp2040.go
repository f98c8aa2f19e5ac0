//go:build rp2040

package pinbank

import (
	"device/rp"
	"runtime/volatile"
	"sync/atomic"
	"unsafe"

	"romemu-go/errcode"
)

// Register overlays indexed by pin number; the generated device/rp types
// expose GPIO0..GPIO29 as separate fields.
type ioType struct {
	status volatile.Register32
	ctrl   volatile.Register32
}

type ioBank0Type struct {
	io [PinCount]ioType
}

type padsBank0Type struct {
	voltageSelect volatile.Register32
	io            [PinCount]volatile.Register32
}

var (
	ioBank0   = (*ioBank0Type)(unsafe.Pointer(rp.IO_BANK0))
	padsBank0 = (*padsBank0Type)(unsafe.Pointer(rp.PADS_BANK0))
)

type hwSIO struct{}

func (hwSIO) In() uint32         { return rp.SIO.GPIO_IN.Get() }
func (hwSIO) Out() uint32        { return rp.SIO.GPIO_OUT.Get() }
func (hwSIO) OE() uint32         { return rp.SIO.GPIO_OE.Get() }
func (hwSIO) OutSet(mask uint32) { rp.SIO.GPIO_OUT_SET.Set(mask) }
func (hwSIO) OutClr(mask uint32) { rp.SIO.GPIO_OUT_CLR.Set(mask) }
func (hwSIO) OutXor(mask uint32) { rp.SIO.GPIO_OUT_XOR.Set(mask) }
func (hwSIO) OESet(mask uint32)  { rp.SIO.GPIO_OE_SET.Set(mask) }
func (hwSIO) OEClr(mask uint32)  { rp.SIO.GPIO_OE_CLR.Set(mask) }

type hwPads struct{}

func (hwPads) Pad(p Pin) uint32       { return padsBank0.io[p].Get() }
func (hwPads) SetPad(p Pin, v uint32) { padsBank0.io[p].Set(v) }

type hwIOCtrl struct{}

func (hwIOCtrl) Ctrl(p Pin) uint32       { return ioBank0.io[p].ctrl.Get() }
func (hwIOCtrl) SetCtrl(p Pin, v uint32) { ioBank0.io[p].ctrl.Set(v) }

var taken atomic.Bool

// Take hands out the bank 0 register groups. Only the first call succeeds.
func Take() (Registers, error) {
	if !taken.CompareAndSwap(false, true) {
		return Registers{}, errcode.AlreadyClaimed
	}
	return Registers{SIO: hwSIO{}, Pads: hwPads{}, IO: hwIOCtrl{}}, nil
}

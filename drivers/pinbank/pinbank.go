// Package pinbank drives many GPIO lines as one hardware operation.
//
// Every level or direction change is a single write to an atomic alias
// register of the SIO block, so all pins in a mask change on the same cycle.
// Range checks belong to configuration time (CheckPin); the operations here
// never fail.
package pinbank

import (
	"romemu-go/errcode"
	"romemu-go/x/fmtx"
)

// Bank owns the pad, function-select and SIO register groups.
type Bank struct {
	sio  SIO
	pads Pads
	io   IOCtrl
}

// New takes ownership of r. Callers must not keep or reuse r afterwards.
func New(r Registers) *Bank {
	return &Bank{sio: r.SIO, pads: r.Pads, io: r.IO}
}

// CheckPin reports whether p exists in bank 0.
func CheckPin(p Pin) error {
	if p >= PinCount {
		return errcode.New(errcode.PinOutOfRange, "pinbank", fmtx.Sprintf("pin %d >= %d", int(p), PinCount))
	}
	return nil
}

// Configure puts p into the default input state routed to SIO, output low.
func (b *Bank) Configure(p Pin) {
	b.pads.SetPad(p, padDefaultInput)
	b.io.SetCtrl(p, uint32(FuncSIO))
	m := p.Mask()
	b.sio.OEClr(m)
	b.sio.OutClr(m)
}

// RouteToPeripheral hands p to another function block, clearing the
// override bits of its control register.
func (b *Bank) RouteToPeripheral(p Pin, fn Func) {
	b.io.SetCtrl(p, uint32(fn)&ctrlFuncselMsk)
}

// EnablePulldown sets the pull-down on p, leaving the rest of the pad alone.
// A pull-up already set stays set.
func (b *Bank) EnablePulldown(p Pin) {
	b.pads.SetPad(p, b.pads.Pad(p)|padPDE)
}

func (b *Bank) Set(mask uint32)   { b.sio.OutSet(mask) }
func (b *Bank) Clear(mask uint32) { b.sio.OutClr(mask) }

func (b *Bank) SetPin(p Pin)   { b.sio.OutSet(p.Mask()) }
func (b *Bank) ClearPin(p Pin) { b.sio.OutClr(p.Mask()) }

// PutMasked makes the output bits under mask equal to value. Only the bits
// that differ are flipped, in one XOR write.
func (b *Bank) PutMasked(mask, value uint32) {
	b.sio.OutXor((b.sio.Out() ^ value) & mask)
}

func (b *Bank) SetDirOutMasked(mask uint32)      { b.sio.OESet(mask) }
func (b *Bank) SetDirDisabledMasked(mask uint32) { b.sio.OEClr(mask) }

func (b *Bank) Get(p Pin) bool               { return b.sio.In()&p.Mask() != 0 }
func (b *Bank) GetMasked(mask uint32) uint32 { return b.sio.In() & mask }

// Driving returns the pins of mask whose output driver is enabled.
func (b *Bank) Driving(mask uint32) uint32 { return b.sio.OE() & mask }

// Output returns the output latch restricted to mask.
func (b *Bank) Output(mask uint32) uint32 { return b.sio.Out() & mask }

func (b *Bank) PadConfig(p Pin) PadConfig { return DecodePad(b.pads.Pad(p)) }

func (b *Bank) Func(p Pin) Func { return Func(b.io.Ctrl(p) & ctrlFuncselMsk) }

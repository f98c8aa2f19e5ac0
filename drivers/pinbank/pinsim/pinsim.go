// Package pinsim is a host model of the RP2040 bank 0 register groups with
// other devices attached to the pins.
package pinsim

import "romemu-go/drivers/pinbank"

// Writes counts register writes per alias register.
type Writes struct {
	OutSet, OutClr, OutXor int
	OESet, OEClr           int
	Pad, Ctrl              int
}

// Total is the number of SIO writes.
func (w Writes) Total() int { return w.OutSet + w.OutClr + w.OutXor + w.OESet + w.OEClr }

// Chip implements pinbank.SIO, pinbank.Pads and pinbank.IOCtrl.
// It is not safe for concurrent use.
type Chip struct {
	out, oe uint32
	pads    [pinbank.PinCount]uint32
	ctrl    [pinbank.PinCount]uint32

	// external drivers: pins in extMask are held at extLevel by another device
	extMask, extLevel uint32

	// OnWrite, when set, is called after every SIO write with the register name.
	OnWrite func(reg string, mask uint32)

	W Writes
}

var (
	_ pinbank.SIO    = (*Chip)(nil)
	_ pinbank.Pads   = (*Chip)(nil)
	_ pinbank.IOCtrl = (*Chip)(nil)
)

// New returns a chip in its reset state.
func New() *Chip {
	c := &Chip{}
	for i := range c.pads {
		c.pads[i] = pinbank.PadResetBits
		c.ctrl[i] = pinbank.CtrlResetBits
	}
	return c
}

// Registers exposes c as the three register groups.
func (c *Chip) Registers() pinbank.Registers {
	return pinbank.Registers{SIO: c, Pads: c, IO: c}
}

// ---- external side ----

// Drive holds pin p at level from outside the chip.
func (c *Chip) Drive(p pinbank.Pin, level bool) {
	m := p.Mask()
	c.extMask |= m
	if level {
		c.extLevel |= m
	} else {
		c.extLevel &^= m
	}
}

// DriveMasked holds every pin in mask at the matching bit of value.
func (c *Chip) DriveMasked(mask, value uint32) {
	c.extMask |= mask
	c.extLevel = (c.extLevel &^ mask) | (value & mask)
}

// Release stops driving the pins in mask from outside.
func (c *Chip) Release(mask uint32) {
	c.extMask &^= mask
	c.extLevel &^= mask
}

// Contention returns pins driven both by the chip and by an external device.
func (c *Chip) Contention() uint32 { return c.sioDriven() & c.extMask }

// Floating returns the pins of mask that nobody drives.
func (c *Chip) Floating(mask uint32) uint32 { return mask &^ (c.sioDriven() | c.extMask) }

// Level reports what a probe on pin p would see.
func (c *Chip) Level(p pinbank.Pin) bool { return c.In()&p.Mask() != 0 }

var padOD = pinbank.PadConfig{OutputDisable: true}.Encode()

// sioDriven is OE restricted to pins routed to SIO with the pad driver enabled.
func (c *Chip) sioDriven() uint32 {
	var m uint32
	for i := range c.ctrl {
		if pinbank.Func(c.ctrl[i]&0x1f) == pinbank.FuncSIO && c.pads[i]&padOD == 0 {
			m |= 1 << i
		}
	}
	return c.oe & m
}

// ---- pinbank.SIO ----

// In resolves each pin: own driver, then external driver, then pull resistor.
func (c *Chip) In() uint32 {
	driven := c.sioDriven()
	var v uint32
	for i := 0; i < pinbank.PinCount; i++ {
		m := uint32(1) << i
		pad := pinbank.DecodePad(c.pads[i])
		if !pad.InputEnable {
			continue
		}
		switch {
		case driven&m != 0:
			v |= c.out & m
		case c.extMask&m != 0:
			v |= c.extLevel & m
		case pad.PullUp && !pad.PullDown:
			v |= m
		}
	}
	return v
}

func (c *Chip) Out() uint32 { return c.out }
func (c *Chip) OE() uint32  { return c.oe }

func (c *Chip) OutSet(mask uint32) { c.out |= mask; c.W.OutSet++; c.notify("out_set", mask) }
func (c *Chip) OutClr(mask uint32) { c.out &^= mask; c.W.OutClr++; c.notify("out_clr", mask) }
func (c *Chip) OutXor(mask uint32) { c.out ^= mask; c.W.OutXor++; c.notify("out_xor", mask) }
func (c *Chip) OESet(mask uint32)  { c.oe |= mask; c.W.OESet++; c.notify("oe_set", mask) }
func (c *Chip) OEClr(mask uint32)  { c.oe &^= mask; c.W.OEClr++; c.notify("oe_clr", mask) }

func (c *Chip) notify(reg string, mask uint32) {
	if c.OnWrite != nil {
		c.OnWrite(reg, mask)
	}
}

// ---- pinbank.Pads / pinbank.IOCtrl ----

func (c *Chip) Pad(p pinbank.Pin) uint32       { return c.pads[p] }
func (c *Chip) SetPad(p pinbank.Pin, v uint32) { c.pads[p] = v; c.W.Pad++ }

func (c *Chip) Ctrl(p pinbank.Pin) uint32       { return c.ctrl[p] }
func (c *Chip) SetCtrl(p pinbank.Pin, v uint32) { c.ctrl[p] = v; c.W.Ctrl++ }

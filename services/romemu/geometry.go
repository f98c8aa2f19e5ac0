package romemu

import (
	"romemu-go/drivers/pinbank"
	"romemu-go/errcode"
	"romemu-go/x/fmtx"
	"romemu-go/x/mathx"
)

// Geometry is the pin layout of the emulated chip. Buses are contiguous
// ranges of bank 0 pins.
type Geometry struct {
	AddrStart pinbank.Pin
	AddrBits  uint8
	DataStart pinbank.Pin
	DataBits  uint8

	CS     pinbank.Pin // active high
	Status pinbank.Pin // liveness indicator, never part of the data bus

	// PullDownCS makes chip-select rest deasserted while nothing drives it.
	PullDownCS bool
}

// Layout is a validated Geometry with its masks computed once.
type Layout struct {
	Geometry
	AddrMask   uint32
	DataMask   uint32
	CSMask     uint32
	StatusMask uint32
}

// RangeMask returns the mask with bits [start, start+width) set.
func RangeMask(start pinbank.Pin, width uint8) uint32 {
	return mathx.LowMask[uint32](width) << start
}

// Compile validates g and caches its masks. Nothing here touches hardware,
// so a bad layout is rejected before any pin is switched to output.
func (g Geometry) Compile() (Layout, error) {
	const op = "geometry"
	if g.AddrBits == 0 || g.DataBits == 0 {
		return Layout{}, errcode.New(errcode.InvalidGeometry, op, "bus width is zero")
	}
	if g.DataBits > 8 {
		return Layout{}, errcode.New(errcode.InvalidGeometry, op, fmtx.Sprintf("data bus is %d bits, max 8", int(g.DataBits)))
	}
	if g.AddrBits > MaxAddrBits {
		return Layout{}, errcode.New(errcode.InvalidGeometry, op, fmtx.Sprintf("address bus is %d bits, max %d", int(g.AddrBits), MaxAddrBits))
	}
	if err := checkRange("address", g.AddrStart, g.AddrBits); err != nil {
		return Layout{}, err
	}
	if err := checkRange("data", g.DataStart, g.DataBits); err != nil {
		return Layout{}, err
	}
	for _, p := range []pinbank.Pin{g.CS, g.Status} {
		if err := pinbank.CheckPin(p); err != nil {
			return Layout{}, err
		}
	}

	l := Layout{
		Geometry:   g,
		AddrMask:   RangeMask(g.AddrStart, g.AddrBits),
		DataMask:   RangeMask(g.DataStart, g.DataBits),
		CSMask:     g.CS.Mask(),
		StatusMask: g.Status.Mask(),
	}
	if l.AddrMask&l.DataMask != 0 {
		return Layout{}, errcode.New(errcode.BusOverlap, op, fmtx.Sprintf("address and data share pins %x", l.AddrMask&l.DataMask))
	}
	buses := l.AddrMask | l.DataMask
	if l.CSMask&buses != 0 {
		return Layout{}, errcode.New(errcode.BusOverlap, op, fmtx.Sprintf("chip-select pin %d is on a bus", int(g.CS)))
	}
	if l.StatusMask&(buses|l.CSMask) != 0 {
		return Layout{}, errcode.New(errcode.BusOverlap, op, fmtx.Sprintf("status pin %d is already in use", int(g.Status)))
	}
	return l, nil
}

func checkRange(name string, start pinbank.Pin, width uint8) error {
	if int(start)+int(width) > pinbank.PinCount {
		return errcode.New(errcode.PinOutOfRange, "geometry",
			fmtx.Sprintf("%s bus %d..%d exceeds %d pins", name, int(start), int(start)+int(width)-1, pinbank.PinCount))
	}
	return nil
}

// Pins returns the pins in mask in ascending order.
func Pins(mask uint32) []pinbank.Pin {
	var out []pinbank.Pin
	for p := pinbank.Pin(0); p < pinbank.PinCount; p++ {
		if mask&p.Mask() != 0 {
			out = append(out, p)
		}
	}
	return out
}

package romemu

import (
	"errors"
	"testing"

	"romemu-go/drivers/pinbank"
	"romemu-go/drivers/pinbank/pinsim"
	"romemu-go/errcode"
)

// 2-bit address on GP2..3, 8-bit data on GP15..22, chip-select GP26.
func smallGeometry() Geometry {
	return Geometry{AddrStart: 2, AddrBits: 2, DataStart: 15, DataBits: 8, CS: 26, Status: 25}
}

func newRig(t *testing.T, g Geometry, image []byte, opts ...Option) (*Emulator, *pinsim.Chip) {
	t.Helper()
	chip := pinsim.New()
	mem, err := NewMemory(g.AddrBits, image, 0)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	e, err := New(pinbank.New(chip.Registers()), g, mem, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, chip
}

func TestNew_InitialState(t *testing.T) {
	g := smallGeometry()
	e, chip := newRig(t, g, []byte{0x42, 0x43, 0x44, 0x45})
	l := e.Layout()

	if chip.OE()&l.DataMask != 0 {
		t.Fatalf("data bus must float after init, oe=%#x", chip.OE())
	}
	if chip.OE()&l.StatusMask == 0 || !chip.Level(g.Status) {
		t.Fatalf("status pin should be driven high")
	}
	bank := pinbank.New(chip.Registers())
	for _, p := range Pins(l.AddrMask | l.DataMask | l.CSMask) {
		if bank.Func(p) != pinbank.FuncSIO || !bank.PadConfig(p).InputEnable {
			t.Fatalf("pin %d not configured", p)
		}
	}
}

func TestStep_ChipSelectHighDrivesData(t *testing.T) {
	e, chip := newRig(t, smallGeometry(), []byte{0x42, 0x43, 0x44, 0x45})
	l := e.Layout()

	chip.Drive(26, true)
	chip.DriveMasked(l.AddrMask, 0b01<<2)
	s := e.Step()

	if !s.Driving || s.Addr != 1 || s.Value != 0x43 {
		t.Fatalf("sample = %+v", s)
	}
	if got := chip.In() & l.DataMask; got != 0x43<<15 {
		t.Fatalf("data pins = %#x, want %#x", got, uint32(0x43)<<15)
	}
	if chip.OE()&l.DataMask != l.DataMask {
		t.Fatalf("data bus not driving: oe=%#x", chip.OE())
	}

	chip.DriveMasked(l.AddrMask, 0b11<<2)
	e.Step()
	if got := chip.In() & l.DataMask; got != 0x45<<15 {
		t.Fatalf("data pins = %#x after address change", got)
	}
}

func TestStep_ChipSelectLowFloats(t *testing.T) {
	e, chip := newRig(t, smallGeometry(), []byte{0x42, 0x43, 0x44, 0x45})
	l := e.Layout()

	chip.Drive(26, true)
	e.Step()

	chip.Drive(26, false)
	for addr := uint32(0); addr < 4; addr++ {
		chip.DriveMasked(l.AddrMask, addr<<2)
		s := e.Step()
		if s.Driving {
			t.Fatalf("addr %d: sample says driving", addr)
		}
		if chip.OE()&l.DataMask != 0 || chip.Floating(l.DataMask) != l.DataMask {
			t.Fatalf("addr %d: data bus not floating, oe=%#x", addr, chip.OE())
		}
	}

	// Another device may now own the bus without contention.
	chip.DriveMasked(l.DataMask, 0xAA<<15)
	e.Step()
	if chip.Contention() != 0 {
		t.Fatalf("contention on %#x", chip.Contention())
	}
}

func TestStep_DirectionBeforeData(t *testing.T) {
	e, chip := newRig(t, smallGeometry(), []byte{0x42, 0x43, 0x44, 0x45})
	var seq []string
	chip.OnWrite = func(reg string, mask uint32) { seq = append(seq, reg) }

	chip.Drive(26, true)
	e.Step()
	if len(seq) != 2 || seq[0] != "oe_set" || seq[1] != "out_xor" {
		t.Fatalf("asserted sequence = %v", seq)
	}

	seq = nil
	chip.Drive(26, false)
	e.Step()
	if len(seq) != 2 || seq[0] != "oe_clr" || seq[1] != "out_xor" {
		t.Fatalf("deasserted sequence = %v", seq)
	}
}

func TestStep_NoDirectionMemory(t *testing.T) {
	e, chip := newRig(t, smallGeometry(), []byte{0x42, 0x43, 0x44, 0x45})
	l := e.Layout()

	chip.Drive(26, true)
	e.Step()
	// Something outside the loop flips the direction behind its back.
	chip.OEClr(l.DataMask)
	e.Step()
	if chip.OE()&l.DataMask != l.DataMask {
		t.Fatalf("direction not re-established from a fresh chip-select sample")
	}
}

func TestStep_FullWidthAddressing(t *testing.T) {
	g := Geometry{AddrStart: 0, AddrBits: 8, DataStart: 8, DataBits: 8, CS: 26, Status: 25}
	img := make([]byte, 256)
	for i := range img {
		img[i] = byte(255 - i)
	}
	e, chip := newRig(t, g, img)
	chip.Drive(26, true)
	for _, a := range []uint32{0, 1, 44, 200, 255} {
		chip.DriveMasked(e.Layout().AddrMask, a)
		s := e.Step()
		if s.Addr != a || s.Value != byte(255-a) {
			t.Fatalf("addr %d: sample %+v", a, s)
		}
	}
}

func TestStep_StatusPinUntouched(t *testing.T) {
	e, chip := newRig(t, smallGeometry(), []byte{0, 0, 0, 0})
	chip.Drive(26, true)
	e.Step()
	chip.Drive(26, false)
	e.Step()
	if !chip.Level(25) || chip.OE()&(1<<25) == 0 {
		t.Fatalf("status pin changed by the loop")
	}
}

func TestNew_PullDownCS(t *testing.T) {
	g := smallGeometry()
	g.PullDownCS = true
	e, chip := newRig(t, g, []byte{1, 2, 3, 4})
	if !pinbank.New(chip.Registers()).PadConfig(26).PullDown {
		t.Fatalf("chip-select pad has no pull-down")
	}
	if s := e.Step(); s.Driving {
		t.Fatalf("undriven chip-select should read deasserted")
	}
}

func TestNew_FatalLayoutTouchesNoRegisters(t *testing.T) {
	cases := []struct {
		name string
		g    Geometry
		want errcode.Code
	}{
		{"overlap", Geometry{AddrStart: 0, AddrBits: 4, DataStart: 3, DataBits: 8, CS: 26, Status: 25}, errcode.BusOverlap},
		{"out of range", Geometry{AddrStart: 0, AddrBits: 4, DataStart: 25, DataBits: 8, CS: 26, Status: 24}, errcode.PinOutOfRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			chip := pinsim.New()
			mem, _ := NewMemory(c.g.AddrBits, nil, 0)
			_, err := New(pinbank.New(chip.Registers()), c.g, mem)
			if !errors.Is(err, c.want) {
				t.Fatalf("want %s, got %v", c.want, err)
			}
			if chip.W != (pinsim.Writes{}) {
				t.Fatalf("registers written before validation: %+v", chip.W)
			}
		})
	}
}

func TestStep_WideBusWrapsIntoSmallMemory(t *testing.T) {
	g := Geometry{AddrStart: 0, AddrBits: 8, DataStart: 8, DataBits: 8, CS: 26, Status: 25}
	mem, err := NewMemory(2, []byte{0x10, 0x11, 0x12, 0x13}, 0)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	chip := pinsim.New()
	e, err := New(pinbank.New(chip.Registers()), g, mem)
	if err != nil {
		t.Fatalf("8-bit bus over 4 bytes should run, got %v", err)
	}
	l := e.Layout()

	chip.Drive(26, true)
	for _, raw := range []uint32{0xFD, 0x01, 0x81, 0xFF} {
		chip.DriveMasked(l.AddrMask, raw)
		s := e.Step()
		want := raw % 4
		if s.Addr != want || s.Value != 0x10+byte(want) {
			t.Fatalf("raw %#x: sample %+v, want addr %d", raw, s, want)
		}
		if got := chip.In() & l.DataMask; got != uint32(0x10+want)<<8 {
			t.Fatalf("raw %#x: data pins = %#x", raw, got)
		}
	}
}

func TestNew_NilMemory(t *testing.T) {
	chip := pinsim.New()
	if _, err := New(pinbank.New(chip.Registers()), smallGeometry(), nil); err == nil {
		t.Fatalf("nil memory accepted")
	}
	if chip.W != (pinsim.Writes{}) {
		t.Fatalf("registers written: %+v", chip.W)
	}
}

type recorder struct {
	ticks   []uint32
	samples []Sample
}

func (r *recorder) Observe(tick uint32, s Sample) {
	r.ticks = append(r.ticks, tick)
	r.samples = append(r.samples, s)
}

func TestRunFor_Observer(t *testing.T) {
	rec := &recorder{}
	e, chip := newRig(t, smallGeometry(), []byte{9, 8, 7, 6}, WithObserver(rec))
	chip.Drive(26, true)
	chip.DriveMasked(e.Layout().AddrMask, 2<<2)
	last := e.RunFor(3)
	if len(rec.ticks) != 3 || rec.ticks[2] != 2 {
		t.Fatalf("ticks = %v", rec.ticks)
	}
	if last.Value != 7 || rec.samples[0] != last {
		t.Fatalf("samples = %+v", rec.samples)
	}

	e.RunFor(2)
	if len(rec.ticks) != 5 || rec.ticks[3] != 3 || rec.ticks[4] != 4 {
		t.Fatalf("ticks restarted across calls: %v", rec.ticks)
	}
}

// Package romemu makes a set of GPIO pins behave like a parallel ROM.
//
// While chip-select is high the data bus presents memory[address]; while it
// is low the data bus floats. Every loop iteration decides the direction from
// a fresh chip-select sample, so no direction state is carried over.
package romemu

import (
	"romemu-go/drivers/pinbank"
	"romemu-go/errcode"
)

// Sample is what one iteration saw and did.
type Sample struct {
	Addr    uint32 // index into memory after wrap
	Value   byte
	Driving bool // chip-select was asserted
}

// Observer receives every iteration of Run. It runs on the loop's own
// thread and adds directly to the response time.
type Observer interface {
	Observe(tick uint32, s Sample)
}

// Option configures an Emulator.
type Option func(*Emulator)

// WithObserver attaches a diagnostic observer. A nil o is ignored.
func WithObserver(o Observer) Option {
	return func(e *Emulator) { e.obs = o }
}

type Emulator struct {
	bank *pinbank.Bank
	lay  Layout
	mem  *Memory
	obs  Observer
	tick uint32 // iterations seen by obs, across Run and RunFor
}

// New validates the layout, configures every pin it names and leaves the
// data bus floating. The status pin is driven high last. mem need not match
// the address bus width: a wider bus wraps, a narrower one reaches a prefix.
func New(bank *pinbank.Bank, g Geometry, mem *Memory, opts ...Option) (*Emulator, error) {
	lay, err := g.Compile()
	if err != nil {
		return nil, err
	}
	if mem == nil {
		return nil, errcode.New(errcode.Error, "romemu", "no memory")
	}

	e := &Emulator{bank: bank, lay: lay, mem: mem}
	for _, o := range opts {
		o(e)
	}

	for _, p := range Pins(lay.AddrMask | lay.DataMask | lay.CSMask) {
		bank.Configure(p)
	}
	if g.PullDownCS {
		bank.EnablePulldown(g.CS)
	}
	bank.SetDirDisabledMasked(lay.DataMask)

	bank.Configure(g.Status)
	bank.SetDirOutMasked(lay.StatusMask)
	bank.SetPin(g.Status)
	return e, nil
}

func (e *Emulator) Layout() Layout { return e.lay }

// Step runs one iteration. Direction is set before the data write so a new
// assertion never drives stale data and a deassertion floats at once.
func (e *Emulator) Step() Sample {
	b, l := e.bank, &e.lay

	cs := b.GetMasked(l.CSMask)
	if cs != 0 {
		b.SetDirOutMasked(l.DataMask)
	} else {
		b.SetDirDisabledMasked(l.DataMask)
	}

	addr := e.mem.Index(b.GetMasked(l.AddrMask) >> l.AddrStart)
	v := e.mem.data[addr]
	b.PutMasked(l.DataMask, uint32(v)<<l.DataStart)

	return Sample{Addr: addr, Value: v, Driving: cs != 0}
}

// Run polls forever. It never yields.
func (e *Emulator) Run() {
	if e.obs != nil {
		for {
			e.obs.Observe(e.tick, e.Step())
			e.tick++
		}
	}
	for {
		e.Step()
	}
}

// RunFor runs n iterations; used by the simulator and tests.
func (e *Emulator) RunFor(n int) Sample {
	var s Sample
	for i := 0; i < n; i++ {
		s = e.Step()
		if e.obs != nil {
			e.obs.Observe(e.tick, s)
			e.tick++
		}
	}
	return s
}

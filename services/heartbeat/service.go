// Package heartbeat is the optional diagnostic trace of the bus loop: every
// N iterations it writes one line with the tick count, the address seen and
// the byte presented.
package heartbeat

import (
	"io"

	"romemu-go/services/romemu"
	"romemu-go/x/conv"
)

// Tracer implements romemu.Observer. Lines are formatted into a fixed
// buffer, so tracing does not allocate.
type Tracer struct {
	w          io.Writer
	every      uint32
	left       uint32
	addrDigits int
	lines      uint32
	buf        [64]byte
}

var _ romemu.Observer = (*Tracer)(nil)

// NewTracer writes to w once every `every` ticks (the first tick included).
// addrBits sets the width of the printed address. every == 0 disables output.
func NewTracer(w io.Writer, every uint32, addrBits uint8) *Tracer {
	return &Tracer{w: w, every: every, addrDigits: conv.HexDigits(addrBits)}
}

// Observe counts down instead of taking tick%every; the loop target has no
// hardware divide.
func (t *Tracer) Observe(tick uint32, s romemu.Sample) {
	if t.every == 0 || t.w == nil {
		return
	}
	if t.left != 0 {
		t.left--
		return
	}
	t.left = t.every - 1
	t.lines++
	_, _ = t.w.Write(t.Format(tick, s))
}

// Lines is the number of lines written so far.
func (t *Tracer) Lines() uint32 { return t.lines }

// Format renders one trace line into the tracer's buffer. The result is
// only valid until the next call.
func (t *Tracer) Format(tick uint32, s romemu.Sample) []byte {
	b := t.buf[:0]
	b = append(b, "[trace] tick="...)
	b = conv.AppendUint(b, uint64(tick))
	b = append(b, " addr="...)
	b = conv.AppendHex(b, s.Addr, t.addrDigits)
	b = append(b, " data="...)
	b = conv.AppendHex(b, uint32(s.Value), 2)
	if s.Driving {
		b = append(b, " cs=1\n"...)
	} else {
		b = append(b, " cs=0\n"...)
	}
	return b
}

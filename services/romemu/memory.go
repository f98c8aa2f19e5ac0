package romemu

import (
	"romemu-go/errcode"
	"romemu-go/x/fmtx"
)

// MaxAddrBits bounds the array to 128 KiB, half of the RP2040's SRAM.
const MaxAddrBits = 17

// Memory is the ROM contents: 1<<bits bytes, read-only once built.
type Memory struct {
	data      []byte
	wrap      uint32 // len-1; len is a power of two so r&wrap == r%len
	loaded    int
	truncated bool
}

// NewMemory builds a 1<<addrBits array from image. A short image is padded
// with fill; a long one is cut to size.
func NewMemory(addrBits uint8, image []byte, fill byte) (*Memory, error) {
	if addrBits == 0 || addrBits > MaxAddrBits {
		return nil, errcode.New(errcode.InvalidGeometry, "memory", fmtx.Sprintf("address bits %d not in 1..%d", int(addrBits), MaxAddrBits))
	}
	n := 1 << addrBits
	m := &Memory{data: make([]byte, n), wrap: uint32(n - 1)}
	m.loaded = copy(m.data, image)
	m.truncated = len(image) > n
	if fill != 0 {
		for i := m.loaded; i < n; i++ {
			m.data[i] = fill
		}
	}
	return m, nil
}

func (m *Memory) Len() int { return len(m.data) }

// Loaded is the number of image bytes copied in.
func (m *Memory) Loaded() int { return m.loaded }

// Truncated reports whether the image was longer than the array.
func (m *Memory) Truncated() bool { return m.truncated }

// Index reduces a raw bus address to an in-bounds index (raw mod Len).
func (m *Memory) Index(raw uint32) uint32 { return raw & m.wrap }

// At returns the byte seen at raw bus address raw.
func (m *Memory) At(raw uint32) byte { return m.data[raw&m.wrap] }

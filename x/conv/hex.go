package conv

const hexd = "0123456789ABCDEF"

// AppendHex appends n as exactly digits uppercase hex digits (no 0x),
// zero-padded; higher digits of n are dropped. digits is clamped to 1..8.
func AppendHex(dst []byte, n uint32, digits int) []byte {
	if digits < 1 {
		digits = 1
	}
	if digits > 8 {
		digits = 8
	}
	var tmp [8]byte
	for i := digits - 1; i >= 0; i-- {
		tmp[i] = hexd[n&0xF]
		n >>= 4
	}
	return append(dst, tmp[:digits]...)
}

// HexDigits is the number of hex digits needed for a value of bits bits.
func HexDigits(bits uint8) int {
	if bits == 0 {
		return 1
	}
	return (int(bits) + 3) / 4
}

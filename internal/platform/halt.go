package platform

import "romemu-go/errcode"

// blinkCount maps a fatal error to its LED code: 2 flashes for an
// out-of-range pin, 3 for overlapping buses, 1 otherwise. GP25 is not on
// the header, so it cannot be wired into a bus.
func blinkCount(err error) int {
	switch errcode.Of(err) {
	case errcode.PinOutOfRange:
		return 2
	case errcode.BusOverlap:
		return 3
	}
	return 1
}

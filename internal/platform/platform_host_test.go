//go:build !rp2040

package platform

import (
	"errors"
	"testing"

	"romemu-go/errcode"
	"romemu-go/services/config"
)

func TestOpen_OnlyOnce(t *testing.T) {
	b := config.Default()
	b.TraceEvery = 1

	tg, err := Open(b)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if tg.Chip == nil || tg.Bank == nil {
		t.Fatalf("incomplete target: %+v", tg)
	}
	if tg.Console == nil {
		t.Fatalf("console missing with trace enabled")
	}

	if _, err := Open(b); !errors.Is(err, errcode.AlreadyClaimed) {
		t.Fatalf("second Open: want AlreadyClaimed, got %v", err)
	}
}

func TestBlinkCount(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errcode.New(errcode.PinOutOfRange, "pinbank", "pin 31 >= 30"), 2},
		{errcode.BusOverlap, 3},
		{errcode.AlreadyClaimed, 1},
		{errors.New("other"), 1},
	}
	for _, c := range cases {
		if got := blinkCount(c.err); got != c.want {
			t.Fatalf("blinkCount(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

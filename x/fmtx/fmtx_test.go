package fmtx

import (
	"bytes"
	"errors"
	"testing"
)

// Only the verbs the firmware formats with; the MCU build knows no others.
func TestSprintfVerbs(t *testing.T) {
	type C struct {
		fmt  string
		args []any
		want string
	}
	for _, c := range []C{
		{"hello %s", []any{"world"}, "hello world"},
		{"num %d hex %x", []any{255, 255}, "num 255 hex ff"},
		{"pin %d >= %d", []any{31, 30}, "pin 31 >= 30"},
		{"mask %x", []any{uint32(0x7FFF)}, "mask 7fff"},
		{"byte %x", []any{byte(0x43)}, "byte 43"},
		{"neg %d", []any{-7}, "neg -7"},
		{"%s bus %d..%d", []any{"data", 25, 32}, "data bus 25..32"},
		{"line %d: %s", []any{4, errors.New("boom")}, "line 4: boom"},
		{"literal %%", nil, "literal %"},
	} {
		got := Sprintf(c.fmt, c.args...)
		if got != c.want {
			t.Fatalf("Sprintf(%q, ...) = %q, want %q", c.fmt, got, c.want)
		}
	}
}

func TestFprintf(t *testing.T) {
	var buf bytes.Buffer
	_, err := Fprintf(&buf, "step addr=%x data=%x\n", uint32(1), byte(0x43))
	if err != nil {
		t.Fatalf("Fprintf error: %v", err)
	}
	if got, want := buf.String(), "step addr=1 data=43\n"; got != want {
		t.Fatalf("Fprintf wrote %q, want %q", got, want)
	}
}

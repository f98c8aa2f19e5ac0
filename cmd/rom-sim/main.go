// cmd/rom-sim drives the bus loop against a simulated RP2040 from a script.
//
//	rom-sim -rom image.bin < script.txt
//
// Script commands (one per line, shell-style quoting, # comments):
//
//	cs 0|1            drive chip-select
//	addr N            drive the address bus (decimal, 0x.., 0b..)
//	data N | release  drive the data bus from outside / stop driving it
//	step [N]          run N loop iterations (default 1)
//	read              show the data bus
//	expect N|float    fail unless the data bus shows N or floats
//	dump START COUNT  hex dump of the memory array
package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"romemu-go/drivers/pinbank"
	"romemu-go/drivers/pinbank/pinsim"
	"romemu-go/errcode"
	"romemu-go/services/config"
	"romemu-go/services/heartbeat"
	"romemu-go/services/romemu"
	"romemu-go/x/fmtx"
)

type session struct {
	chip *pinsim.Chip
	emu  *romemu.Emulator
	mem  *romemu.Memory
	lay  romemu.Layout
	out  io.Writer
}

func newSession(board config.Board, image []byte, out io.Writer) (*session, error) {
	mem, err := romemu.NewMemory(board.Geometry.AddrBits, image, board.FillByte)
	if err != nil {
		return nil, err
	}
	var opts []romemu.Option
	if board.TraceEvery != 0 {
		opts = append(opts, romemu.WithObserver(heartbeat.NewTracer(out, board.TraceEvery, board.Geometry.AddrBits)))
	}
	chip := pinsim.New()
	emu, err := romemu.New(pinbank.New(chip.Registers()), board.Geometry, mem, opts...)
	if err != nil {
		return nil, err
	}
	return &session{chip: chip, emu: emu, mem: mem, lay: emu.Layout(), out: out}, nil
}

func parseNum(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 0, 32)
	if err != nil {
		return 0, errcode.New(errcode.Error, "rom-sim", fmtx.Sprintf("bad number %q", s))
	}
	return uint32(v), nil
}

// dataBus returns the byte on the data pins and whether anyone drives them.
func (s *session) dataBus() (byte, bool) {
	if s.chip.Floating(s.lay.DataMask) == s.lay.DataMask {
		return 0, false
	}
	return byte((s.chip.In() & s.lay.DataMask) >> s.lay.DataStart), true
}

func (s *session) exec(args []string) error {
	if len(args) == 0 {
		return nil
	}
	arg := func(i int) (uint32, error) {
		if i >= len(args) {
			return 0, errcode.New(errcode.Error, args[0], "missing argument")
		}
		return parseNum(args[i])
	}

	switch args[0] {
	case "cs":
		v, err := arg(1)
		if err != nil {
			return err
		}
		s.chip.Drive(s.lay.CS, v != 0)
	case "addr":
		v, err := arg(1)
		if err != nil {
			return err
		}
		s.chip.DriveMasked(s.lay.AddrMask, v<<s.lay.AddrStart)
	case "data":
		v, err := arg(1)
		if err != nil {
			return err
		}
		s.chip.DriveMasked(s.lay.DataMask, v<<s.lay.DataStart)
	case "release":
		s.chip.Release(s.lay.DataMask)
	case "step":
		n := uint32(1)
		if len(args) > 1 {
			v, err := arg(1)
			if err != nil {
				return err
			}
			n = v
		}
		smp := s.emu.RunFor(int(n))
		fmtx.Fprintf(s.out, "step addr=%x data=%x cs=%t\n", smp.Addr, smp.Value, smp.Driving)
		if c := s.chip.Contention(); c != 0 {
			fmtx.Fprintf(s.out, "warning: contention on pins %x\n", c)
		}
	case "read":
		if v, ok := s.dataBus(); ok {
			fmtx.Fprintf(s.out, "data=%x\n", v)
		} else {
			fmtx.Fprintf(s.out, "data=float\n")
		}
	case "expect":
		if len(args) < 2 {
			return errcode.New(errcode.Error, "expect", "missing argument")
		}
		v, ok := s.dataBus()
		if args[1] == "float" {
			if ok {
				return errcode.New(errcode.Error, "expect", fmtx.Sprintf("data bus shows %x, want float", v))
			}
			return nil
		}
		want, err := parseNum(args[1])
		if err != nil {
			return err
		}
		if !ok || uint32(v) != want {
			return errcode.New(errcode.Error, "expect", fmtx.Sprintf("data bus shows %x (driven=%t), want %x", v, ok, want))
		}
	case "dump":
		start, err := arg(1)
		if err != nil {
			return err
		}
		count, err := arg(2)
		if err != nil {
			return err
		}
		s.dump(start, count)
	default:
		return errcode.New(errcode.Error, "rom-sim", fmtx.Sprintf("unknown command %q", args[0]))
	}
	return nil
}

func (s *session) dump(start, count uint32) {
	for i := uint32(0); i < count; i += 16 {
		line := fmtx.Sprintf("%x:", s.mem.Index(start+i))
		for j := i; j < count && j < i+16; j++ {
			line += fmtx.Sprintf(" %x", s.mem.At(start+j))
		}
		fmtx.Fprintf(s.out, "%s\n", line)
	}
}

// run executes a script; it stops at the first failing line.
func (s *session) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		args, err := shlex.Split(sc.Text())
		if err != nil {
			return errcode.New(errcode.Error, "rom-sim", fmtx.Sprintf("line %d: %s", n, err.Error()))
		}
		if err := s.exec(args); err != nil {
			return errcode.New(errcode.Of(err), "rom-sim", fmtx.Sprintf("line %d: %s", n, err.Error()))
		}
	}
	return sc.Err()
}

func main() {
	romPath := flag.String("rom", "", "ROM image (empty: filled array)")
	trace := flag.Uint("trace", 0, "print a trace line every N iterations (0: off)")
	flag.Parse()

	board := config.Default()
	board.TraceEvery = uint32(*trace)

	var image []byte
	if *romPath != "" {
		b, err := os.ReadFile(*romPath)
		if err != nil {
			println("[rom-sim]", err.Error())
			os.Exit(1)
		}
		image = b
	}

	s, err := newSession(board, image, os.Stdout)
	if err != nil {
		println("[rom-sim]", err.Error())
		os.Exit(1)
	}
	if s.mem.Truncated() {
		println("[rom-sim] image cut to", s.mem.Len(), "bytes")
	}
	if err := s.run(os.Stdin); err != nil {
		println("[rom-sim]", err.Error())
		os.Exit(1)
	}
}

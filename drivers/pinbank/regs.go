package pinbank

// PinCount is the number of user GPIOs in RP2040 bank 0 (GPIO0..GPIO29).
const PinCount = 30

// Pin is a bank 0 GPIO number.
type Pin uint8

// Mask returns the single-bit mask for p.
func (p Pin) Mask() uint32 { return 1 << p }

// SIO is the single-cycle I/O block: one word per operation, one bit per pin.
// The *Set/*Clr/*Xor writes are atomic alias registers; no read-modify-write.
type SIO interface {
	In() uint32
	Out() uint32
	OE() uint32
	OutSet(mask uint32)
	OutClr(mask uint32)
	OutXor(mask uint32)
	OESet(mask uint32)
	OEClr(mask uint32)
}

// Pads is the per-pin pad control block (PADS_BANK0).
type Pads interface {
	Pad(p Pin) uint32
	SetPad(p Pin, v uint32)
}

// IOCtrl is the per-pin function-select block (IO_BANK0 GPIOx_CTRL).
type IOCtrl interface {
	Ctrl(p Pin) uint32
	SetCtrl(p Pin, v uint32)
}

// Registers bundles the three register groups handed to New.
type Registers struct {
	SIO  SIO
	Pads Pads
	IO   IOCtrl
}

// PADS_BANK0 GPIOx bit layout.
const (
	padSlewFast  = 1 << 0
	padSchmitt   = 1 << 1
	padPDE       = 1 << 2
	padPUE       = 1 << 3
	padDrivePos  = 4
	padDriveMsk  = 3 << padDrivePos
	padIE        = 1 << 6
	padOD        = 1 << 7
	PadResetBits = 0x56 // IE, 4mA, PDE, schmitt
)

// Drive is the pad output drive strength.
type Drive uint8

const (
	Drive2mA Drive = iota
	Drive4mA
	Drive8mA
	Drive12mA
)

// PadConfig is the decoded form of a pad control word.
type PadConfig struct {
	PullUp        bool
	PullDown      bool
	OutputDisable bool
	InputEnable   bool
	SlewFast      bool
	Schmitt       bool
	Drive         Drive
}

// Encode packs c into a PADS_BANK0 GPIOx word.
func (c PadConfig) Encode() uint32 {
	v := uint32(c.Drive&3) << padDrivePos
	if c.SlewFast {
		v |= padSlewFast
	}
	if c.Schmitt {
		v |= padSchmitt
	}
	if c.PullDown {
		v |= padPDE
	}
	if c.PullUp {
		v |= padPUE
	}
	if c.InputEnable {
		v |= padIE
	}
	if c.OutputDisable {
		v |= padOD
	}
	return v
}

// DecodePad unpacks a PADS_BANK0 GPIOx word.
func DecodePad(v uint32) PadConfig {
	return PadConfig{
		PullUp:        v&padPUE != 0,
		PullDown:      v&padPDE != 0,
		OutputDisable: v&padOD != 0,
		InputEnable:   v&padIE != 0,
		SlewFast:      v&padSlewFast != 0,
		Schmitt:       v&padSchmitt != 0,
		Drive:         Drive((v & padDriveMsk) >> padDrivePos),
	}
}

// Func is an IO_BANK0 FUNCSEL value.
type Func uint8

const (
	FuncXIP  Func = 0
	FuncSPI  Func = 1
	FuncUART Func = 2
	FuncI2C  Func = 3
	FuncPWM  Func = 4
	FuncSIO  Func = 5
	FuncPIO0 Func = 6
	FuncPIO1 Func = 7
	FuncGPCK Func = 8
	FuncUSB  Func = 9
	FuncNull Func = 0x1f
)

const (
	ctrlFuncselMsk = 0x1f
	CtrlResetBits  = uint32(FuncNull)
)

// Default pad word written by Configure: pulls off, driver enabled, input
// enabled, fast slew. Schmitt and 4mA drive keep their reset values.
const padDefaultInput = padIE | padSchmitt | uint32(Drive4mA)<<padDrivePos | padSlewFast

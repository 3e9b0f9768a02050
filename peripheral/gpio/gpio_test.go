package gpio

import (
	"testing"

	"omibyte.io/leon/chip/leon3"
)

func newPort(t *testing.T) (*Port, *leon3.GRGPIO_Type) {
	t.Helper()
	regs := &leon3.GRGPIO_Type{}
	return &Port{Bus: regs}, regs
}

func TestSetDir(t *testing.T) {
	tests := []struct {
		name     string
		initial  uint32
		bits     uint32
		dir      Direction
		expected uint32
	}{
		{"outputFromZero", 0x0000_0000, 0x0000_0005, Output, 0x0000_0005},
		{"outputKeepsOthers", 0xF000_0000, 0x0000_0003, Output, 0xF000_0003},
		{"inputClearsOnlyMask", 0xFFFF_FFFF, 0x0000_FF00, Input, 0xFFFF_00FF},
		{"inputAlreadyClear", 0x0000_0001, 0x0000_0002, Input, 0x0000_0001},
		{"anyNonZeroIsOutput", 0x0000_0000, 0x8000_0000, Direction(7), 0x8000_0000},
		{"emptyMask", 0x1234_5678, 0, Output, 0x1234_5678},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			port, regs := newPort(t)
			regs.DIR.Set(tc.initial)
			regs.OUTPUT.Set(0xA5A5_A5A5)

			port.SetDir(tc.bits, tc.dir)

			if got := regs.DIR.Get(); got != tc.expected {
				t.Errorf("expected DIR %#08x, got %#08x", tc.expected, got)
			}
			if got := regs.OUTPUT.Get(); got != 0xA5A5_A5A5 {
				t.Errorf("OUTPUT modified: %#08x", got)
			}
		})
	}
}

func TestSetClearValue(t *testing.T) {
	port, regs := newPort(t)
	regs.OUTPUT.Set(0x0000_00F0)

	port.SetValue(0x0000_0F00)
	if got := regs.OUTPUT.Get(); got != 0x0000_0FF0 {
		t.Fatalf("expected %#08x, got %#08x", 0x0FF0, got)
	}

	// Idempotent
	port.SetValue(0x0000_0F00)
	if got := regs.OUTPUT.Get(); got != 0x0000_0FF0 {
		t.Fatalf("expected %#08x, got %#08x", 0x0FF0, got)
	}

	// Set then clear restores the previous state of the bits in the mask
	port.ClearValue(0x0000_0F00)
	if got := regs.OUTPUT.Get(); got != 0x0000_00F0 {
		t.Fatalf("expected %#08x, got %#08x", 0x00F0, got)
	}
	port.ClearValue(0x0000_0F00)
	if got := regs.OUTPUT.Get(); got != 0x0000_00F0 {
		t.Fatalf("expected %#08x, got %#08x", 0x00F0, got)
	}

	if regs.DIR.Get() != 0 || regs.DATA.Get() != 0 {
		t.Error("only OUTPUT may change")
	}
}

func TestOutputValue(t *testing.T) {
	tests := []struct {
		name  string
		mask  uint32
		value uint8
	}{
		{"zeroClears", 0x0000_00FF, 0},
		{"oneSets", 0x0000_00FF, 1},
		{"nonZeroSets", 0x00FF_0000, 0x80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			port, regs := newPort(t)
			ref, refRegs := newPort(t)
			regs.OUTPUT.Set(0x0F0F_0F0F)
			refRegs.OUTPUT.Set(0x0F0F_0F0F)

			port.OutputValue(tc.mask, tc.value)
			if tc.value == 0 {
				ref.ClearValue(tc.mask)
			} else {
				ref.SetValue(tc.mask)
			}

			if got, expected := regs.OUTPUT.Get(), refRegs.OUTPUT.Get(); got != expected {
				t.Errorf("expected %#08x, got %#08x", expected, got)
			}
		})
	}
}

func TestReadValue(t *testing.T) {
	port, regs := newPort(t)
	regs.DATA.Set(0xDEAD_BEEF)
	regs.DIR.Set(0x0000_FFFF)

	if got := port.ReadValue(); got != 0xDEAD_BEEF {
		t.Errorf("expected %#08x, got %#08x", 0xDEADBEEF, got)
	}
}

func TestNilPort(t *testing.T) {
	var nilPort *Port
	noBus := &Port{}

	for _, port := range []*Port{nilPort, noBus} {
		port.SetDir(0xFFFF_FFFF, Output)
		port.SetValue(0xFFFF_FFFF)
		port.ClearValue(0xFFFF_FFFF)
		port.OutputValue(0xFFFF_FFFF, 1)
		if got := port.ReadValue(); got != 0 {
			t.Errorf("expected 0 from a port without registers, got %#08x", got)
		}
	}
}

func TestInitDeinit(t *testing.T) {
	// Must not touch any port.
	port, regs := newPort(t)
	ports = []*Port{port}
	t.Cleanup(func() { ports = []*Port{GPIO0} })

	Init()
	Deinit()

	if *regs != (leon3.GRGPIO_Type{}) {
		t.Error("Init/Deinit modified registers")
	}
}

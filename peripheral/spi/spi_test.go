package spi

import (
	"testing"

	"omibyte.io/leon/chip/leon3"
)

func newSPI(t *testing.T) (*SPI, *leon3.SPICTRL_Type) {
	t.Helper()
	regs := &leon3.SPICTRL_Type{}
	return &SPI{Bus: regs, SystemClock: sysClock}, regs
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	expected := Config{
		DataBits:  DataBits8,
		Phase:     PhaseFirstEdge,
		Polarity:  PolarityHigh,
		Mode:      Master,
		ClockRate: 1_000_000,
	}
	if config != expected {
		t.Errorf("expected %+v, got %+v", expected, config)
	}
}

func TestDataBits(t *testing.T) {
	tests := []struct {
		bits     DataBits
		expected uint32
	}{
		{DataBits4, 0x3},
		{DataBits8, 0x7},
		{DataBits9, 0x8},
		{DataBits16, 0xF},
		{DataBits32, 0x0},
	}
	for _, tc := range tests {
		got := (uint32(tc.bits) & leon3.SPICTRL_MODE_LEN_Msk) >> leon3.SPICTRL_MODE_LEN_Pos
		if got != tc.expected || uint32(tc.bits)&^leon3.SPICTRL_MODE_LEN_Msk != 0 {
			t.Errorf("DataBits %#08x: expected LEN %#x, got %#x", uint32(tc.bits), tc.expected, got)
		}
	}
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name     string
		initial  uint32
		config   Config
		expected uint32
	}{
		{
			"default",
			0,
			DefaultConfig(),
			leon3.SPICTRL_MODE_REV | leon3.SPICTRL_MODE_MS | uint32(DataBits8) |
				1<<leon3.SPICTRL_MODE_PM_Pos | leon3.SPICTRL_MODE_FACT | leon3.SPICTRL_MODE_DIV16,
		},
		{
			"overwritesWholeRegister",
			0xFFFF_FFFF,
			DefaultConfig(),
			leon3.SPICTRL_MODE_REV | leon3.SPICTRL_MODE_MS | uint32(DataBits8) |
				1<<leon3.SPICTRL_MODE_PM_Pos | leon3.SPICTRL_MODE_FACT | leon3.SPICTRL_MODE_DIV16,
		},
		{
			"slaveSecondEdgeLow32",
			0,
			Config{
				DataBits:  DataBits32,
				Phase:     PhaseSecondEdge,
				Polarity:  PolarityLow,
				Mode:      Slave,
				ClockRate: 25_000_000,
			},
			leon3.SPICTRL_MODE_REV | leon3.SPICTRL_MODE_CPHA | leon3.SPICTRL_MODE_CPOL | leon3.SPICTRL_MODE_FACT,
		},
		{
			"noDividerLeavesClockBitsZero",
			leon3.SPICTRL_MODE_EN | leon3.SPICTRL_MODE_PM_Msk,
			Config{DataBits: DataBits16, Mode: Master, ClockRate: 1_000},
			leon3.SPICTRL_MODE_REV | leon3.SPICTRL_MODE_MS | uint32(DataBits16),
		},
		{
			"frameFormatIgnored",
			0,
			Config{DataBits: DataBits4, Mode: Master, FrameFormat: 0xFFFF_FFFF, ClockRate: 25_000_000},
			leon3.SPICTRL_MODE_REV | leon3.SPICTRL_MODE_MS | uint32(DataBits4) | leon3.SPICTRL_MODE_FACT,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, regs := newSPI(t)
			regs.MODE.Set(tc.initial)

			s.Configure(tc.config)

			if got := regs.MODE.Get(); got != tc.expected {
				t.Errorf("expected MODE %#08x, got %#08x", tc.expected, got)
			}
			if s.Enabled() {
				t.Error("Configure must leave the core disabled")
			}
		})
	}
}

func TestClockRate(t *testing.T) {
	s, _ := newSPI(t)

	s.Configure(DefaultConfig())
	if got := s.ClockRate(); got != 781_250 {
		t.Errorf("expected 781250 Hz, got %d", got)
	}

	// The silent failure is visible as the reset prescaler rate
	config := DefaultConfig()
	config.ClockRate = 10
	s.Configure(config)
	if got := s.ClockRate(); got != sysClock/4 {
		t.Errorf("expected %d Hz, got %d", sysClock/4, got)
	}
}

func TestSetEnabled(t *testing.T) {
	s, regs := newSPI(t)
	s.Configure(DefaultConfig())
	configured := regs.MODE.Get()

	s.SetEnabled(true)
	if got := regs.MODE.Get(); got != configured|leon3.SPICTRL_MODE_EN {
		t.Fatalf("expected MODE %#08x, got %#08x", configured|leon3.SPICTRL_MODE_EN, got)
	}
	if !s.Enabled() {
		t.Fatal("expected enabled")
	}

	// Enabling twice is harmless
	s.SetEnabled(true)
	if got := regs.MODE.Get(); got != configured|leon3.SPICTRL_MODE_EN {
		t.Fatalf("expected MODE %#08x, got %#08x", configured|leon3.SPICTRL_MODE_EN, got)
	}

	// Disabling clears EN only and keeps the configuration
	s.SetEnabled(false)
	if got := regs.MODE.Get(); got != configured {
		t.Fatalf("expected MODE %#08x, got %#08x", configured, got)
	}
	if s.Enabled() {
		t.Fatal("expected disabled")
	}
}

func TestEnabledAfterMultipleMasterError(t *testing.T) {
	s, regs := newSPI(t)
	s.SetEnabled(true)

	// The core clears EN and raises MME on its own
	regs.MODE.ClearBits(leon3.SPICTRL_MODE_EN)
	regs.EVENT.SetBits(leon3.SPICTRL_EVENT_MME)

	if s.Enabled() {
		t.Error("expected disabled")
	}
	if !s.Status(FlagMultipleMaster) {
		t.Error("expected MME flag")
	}
}

func TestSendReceive(t *testing.T) {
	s, regs := newSPI(t)

	for _, word := range []uint32{0, 0xA5, 0xFFFF, 0xDEAD_BEEF, 0xFFFF_FFFF} {
		s.Send(word)
		if got := regs.TX.Get(); got != word {
			t.Errorf("expected TX %#08x, got %#08x", word, got)
		}

		regs.RX.Set(^word)
		if got := s.Receive(); got != ^word {
			t.Errorf("expected RX %#08x, got %#08x", ^word, got)
		}
	}

	if regs.MODE.Get() != 0 || regs.EVENT.Get() != 0 {
		t.Error("Send/Receive touched other registers")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		event    uint32
		flags    uint32
		expected bool
	}{
		{"notFullSet", FlagNotFull | FlagNotEmpty, FlagNotFull, true},
		{"busyClear", FlagNotFull | FlagNotEmpty, FlagBusy, false},
		{"anyOf", FlagNotEmpty, FlagBusy | FlagNotEmpty, true},
		{"noneOf", FlagOverrun, FlagUnderrun | FlagLast, false},
		{"busy", FlagBusy, FlagBusy, true},
		{"emptyMask", 0xFFFF_FFFF, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, regs := newSPI(t)
			regs.EVENT.Set(tc.event)
			if got := s.Status(tc.flags); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
			if got := s.Status(tc.flags); got != (tc.event&tc.flags != 0) {
				t.Errorf("Status disagrees with EVENT & flags")
			}
		})
	}
}

func TestClearEvents(t *testing.T) {
	s, regs := newSPI(t)
	s.ClearEvents(FlagOverrun | FlagMultipleMaster | FlagNotFull | FlagBusy)

	// Only the write-one-to-clear flags are written
	if got := regs.EVENT.Get(); got != FlagOverrun|FlagMultipleMaster {
		t.Errorf("expected EVENT write %#08x, got %#08x", FlagOverrun|FlagMultipleMaster, got)
	}
}

func TestTransfer(t *testing.T) {
	s, regs := newSPI(t)
	regs.EVENT.Set(FlagNotFull | FlagNotEmpty)
	regs.RX.Set(0x5A)

	if got := s.Transfer(0xC3); got != 0x5A {
		t.Errorf("expected 0x5a, got %#x", got)
	}
	if got := regs.TX.Get(); got != 0xC3 {
		t.Errorf("expected TX 0xc3, got %#x", got)
	}
}

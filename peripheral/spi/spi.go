// Package spi drives the SPICTRL serial peripheral controller.
//
// The driver trusts its caller: register pointers must be valid, values must
// be in range, and the optional automatic slave select and automated transfer
// registers are only meaningful when the capability register says so.
package spi

import (
	"omibyte.io/leon/chip/leon3"
	"omibyte.io/leon/peripheral"
)

var SPI0 = &SPI{Bus: leon3.SPI0}

type Phase uint32

const (
	// PhaseFirstEdge samples data on the first SCK transition.
	PhaseFirstEdge Phase = 0
	// PhaseSecondEdge samples data on the second SCK transition.
	PhaseSecondEdge Phase = leon3.SPICTRL_MODE_CPHA
)

type Polarity uint32

const (
	// PolarityHigh keeps SCK low between frames, the active level is high.
	PolarityHigh Polarity = 0
	// PolarityLow keeps SCK high between frames, the active level is low.
	PolarityLow Polarity = leon3.SPICTRL_MODE_CPOL
)

type Mode uint32

const (
	Slave  Mode = 0
	Master Mode = leon3.SPICTRL_MODE_MS
)

// DataBits is the encoded word length field of the mode register.
type DataBits uint32

const (
	DataBits4  DataBits = (4 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits5  DataBits = (5 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits6  DataBits = (6 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits7  DataBits = (7 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits8  DataBits = (8 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits9  DataBits = (9 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits10 DataBits = (10 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits11 DataBits = (11 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits12 DataBits = (12 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits13 DataBits = (13 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits14 DataBits = (14 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits15 DataBits = (15 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	DataBits16 DataBits = (16 - 1) << leon3.SPICTRL_MODE_LEN_Pos
	// A LEN field of zero selects 32-bit words.
	DataBits32 DataBits = 0
)

// Event register flags accepted by Status and ClearEvents.
const (
	FlagBusy           = leon3.SPICTRL_EVENT_TIP
	FlagLast           = leon3.SPICTRL_EVENT_LT
	FlagOverrun        = leon3.SPICTRL_EVENT_OV
	FlagUnderrun       = leon3.SPICTRL_EVENT_UN
	FlagMultipleMaster = leon3.SPICTRL_EVENT_MME
	FlagNotEmpty       = leon3.SPICTRL_EVENT_NE
	FlagNotFull        = leon3.SPICTRL_EVENT_NF

	clearableFlags = FlagLast | FlagOverrun | FlagUnderrun | FlagMultipleMaster
)

type Config struct {
	DataBits DataBits
	Phase    Phase
	Polarity Polarity
	Mode     Mode

	// FrameFormat is carried for interface symmetry and is not used.
	FrameFormat uint32

	// ClockRate is the target SCK frequency in Hz.
	ClockRate uint32
}

// DefaultConfig returns an 8-bit, first edge, active high, 1 MHz master
// configuration.
func DefaultConfig() Config {
	return Config{
		DataBits:  DataBits8,
		Phase:     PhaseFirstEdge,
		Polarity:  PolarityHigh,
		Mode:      Master,
		ClockRate: 1_000_000,
	}
}

type SPI struct {
	Bus *leon3.SPICTRL_Type

	// SystemClock is the AMBA bus frequency in Hz that SCK is derived from.
	SystemClock uint32
}

var _ peripheral.SPI = (*SPI)(nil)

// Configure overwrites the mode register with MSB-first transmission and the
// phase, polarity, mode and word length of config. Every other mode bit,
// including EN, ends up cleared. It then ORs in the fastest prescaler setting
// that does not exceed config.ClockRate. If no setting is slow enough the
// prescaler fields stay zero; use ClockRate to check the result.
func (s *SPI) Configure(config Config) {
	mode := uint32(leon3.SPICTRL_MODE_REV)
	mode |= uint32(config.Phase) | uint32(config.Polarity) | uint32(config.Mode) | uint32(config.DataBits)
	s.Bus.MODE.Set(mode)

	s.setClock(config.ClockRate)
}

func (s *SPI) setClock(target uint32) {
	if bits, ok := ClockDivider(s.SystemClock, target); ok {
		s.Bus.MODE.SetBits(bits)
	}
}

// ClockRate returns the SCK frequency the mode register currently selects.
func (s *SPI) ClockRate() uint32 {
	return SCKFrequency(s.SystemClock, s.Bus.MODE.Get())
}

// SetEnabled sets or clears the core enable bit. Other mode bits are kept.
func (s *SPI) SetEnabled(enabled bool) {
	if enabled {
		s.Bus.MODE.SetBits(leon3.SPICTRL_MODE_EN)
	} else {
		s.Bus.MODE.ClearBits(leon3.SPICTRL_MODE_EN)
	}
}

// Enabled reports whether the core is enabled. The core disables itself on a
// multiple-master error.
func (s *SPI) Enabled() bool {
	return s.Bus.MODE.HasBits(leon3.SPICTRL_MODE_EN)
}

// Send writes data to the transmit register without checking FlagNotFull.
func (s *SPI) Send(data uint32) {
	s.Bus.TX.Set(data)
}

// Receive reads the receive register without checking FlagNotEmpty.
func (s *SPI) Receive() uint32 {
	return s.Bus.RX.Get()
}

// Status reports whether any of flags is set in the event register.
func (s *SPI) Status(flags uint32) bool {
	return s.Bus.EVENT.HasBits(flags)
}

// ClearEvents acknowledges the sticky event flags in flags. Flags the core
// clears by itself are ignored.
func (s *SPI) ClearEvents(flags uint32) {
	s.Bus.EVENT.Set(flags & clearableFlags)
}

// Transfer waits for room in the transmit queue, sends w, waits for a word in
// the receive queue and returns it.
func (s *SPI) Transfer(w uint32) uint32 {
	for !s.Status(FlagNotFull) {
	}
	s.Send(w)

	for !s.Status(FlagNotEmpty) {
	}
	return s.Receive()
}

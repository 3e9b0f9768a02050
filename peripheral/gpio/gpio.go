// Package gpio drives the GRGPIO general purpose I/O port.
//
// Every Port method is a no-op on a nil port or a port without a register
// block, and ReadValue returns 0 in that case. No other argument checking is
// done.
package gpio

import (
	"omibyte.io/leon/chip/leon3"
	"omibyte.io/leon/peripheral"
)

type Direction = peripheral.PinDirection

const (
	Input  = peripheral.PinInput
	Output = peripheral.PinOutput
)

// Port is one 32-bit GRGPIO port.
type Port struct {
	Bus *leon3.GRGPIO_Type
}

var GPIO0 = &Port{Bus: leon3.GPIO0}

// Init powers the port. GRGPIO has no clock gate on LEON, so it does nothing.
func Init() {}

// Deinit is the counterpart of Init and does nothing either.
func Deinit() {}

func (p *Port) absent() bool {
	return p == nil || p.Bus == nil
}

// SetDir makes the pins in bits outputs, or inputs when dir is Input. Pins
// outside bits are untouched.
func (p *Port) SetDir(bits uint32, dir Direction) {
	if p.absent() {
		return
	}

	if dir != Input {
		p.Bus.DIR.SetBits(bits)
	} else {
		p.Bus.DIR.ClearBits(bits)
	}
}

// SetValue drives the pins in bits high. Pins configured as input are not
// affected until they are switched to output.
func (p *Port) SetValue(bits uint32) {
	if p.absent() {
		return
	}
	p.Bus.OUTPUT.SetBits(bits)
}

// ClearValue drives the pins in bits low.
func (p *Port) ClearValue(bits uint32) {
	if p.absent() {
		return
	}
	p.Bus.OUTPUT.ClearBits(bits)
}

// OutputValue clears the pins in mask when value is 0 and sets them otherwise.
func (p *Port) OutputValue(mask uint32, value uint8) {
	if value == 0 {
		p.ClearValue(mask)
	} else {
		p.SetValue(mask)
	}
}

// ReadValue returns the data register, which reflects the level of every pin
// whatever its direction.
func (p *Port) ReadValue() uint32 {
	if p.absent() {
		return 0
	}
	return p.Bus.DATA.Get()
}

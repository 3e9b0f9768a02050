package gpio

import "omibyte.io/leon/peripheral"

// Pin packs a port index in bits 15:8 and a bit number in bits 7:0.
type Pin uint16

const NoPin Pin = 0xFFFF

// ports is indexed by the port number of a Pin.
var ports = []*Port{GPIO0}

// Port 0
const (
	IO0_00 Pin = 0x0000 + iota
	IO0_01
	IO0_02
	IO0_03
	IO0_04
	IO0_05
	IO0_06
	IO0_07
	IO0_08
	IO0_09
	IO0_10
	IO0_11
	IO0_12
	IO0_13
	IO0_14
	IO0_15
	IO0_16
	IO0_17
	IO0_18
	IO0_19
	IO0_20
	IO0_21
	IO0_22
	IO0_23
	IO0_24
	IO0_25
	IO0_26
	IO0_27
	IO0_28
	IO0_29
	IO0_30
	IO0_31
)

var _ peripheral.Pin = Pin(0)

// MakePin returns the pin for bit on port.
func MakePin(port, bit uint8) Pin {
	return Pin(port)<<8 | Pin(bit&0x1F)
}

func (p Pin) port() *Port {
	i := int(p >> 8)
	if p == NoPin || i >= len(ports) {
		return nil
	}
	return ports[i]
}

func (p Pin) mask() uint32 {
	return 1 << (p & 0x1F)
}

func (p Pin) High() {
	p.port().SetValue(p.mask())
}

func (p Pin) Low() {
	p.port().ClearValue(p.mask())
}

// Toggle inverts the driven level of the pin.
func (p Pin) Toggle() {
	port := p.port()
	if port.absent() {
		return
	}
	if port.Bus.OUTPUT.HasBits(p.mask()) {
		port.ClearValue(p.mask())
	} else {
		port.SetValue(p.mask())
	}
}

func (p Pin) Set(on bool) {
	if on {
		p.High()
	} else {
		p.Low()
	}
}

// Get returns the level of the pin as seen in the data register.
func (p Pin) Get() bool {
	return p.port().ReadValue()&p.mask() != 0
}

func (p Pin) SetDirection(dir Direction) {
	p.port().SetDir(p.mask(), dir)
}

func (p Pin) GetDirection() Direction {
	port := p.port()
	if port.absent() || !port.Bus.DIR.HasBits(p.mask()) {
		return Input
	}
	return Output
}

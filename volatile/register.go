package volatile

// Register32 is a 32-bit memory-mapped hardware register.
type Register32 struct {
	Reg uint32
}

// Get returns the value of the register.
func (r *Register32) Get() uint32 {
	return LoadUint32(&r.Reg)
}

// Set writes value to the register.
func (r *Register32) Set(value uint32) {
	StoreUint32(&r.Reg, value)
}

// SetBits reads the register, sets the bits in value and writes it back.
// The sequence is not atomic.
func (r *Register32) SetBits(value uint32) {
	StoreUint32(&r.Reg, LoadUint32(&r.Reg)|value)
}

// ClearBits reads the register, clears the bits in value and writes it back.
// The sequence is not atomic.
func (r *Register32) ClearBits(value uint32) {
	StoreUint32(&r.Reg, LoadUint32(&r.Reg)&^value)
}

// HasBits reports whether any bit of value is set in the register.
func (r *Register32) HasBits(value uint32) bool {
	return LoadUint32(&r.Reg)&value != 0
}

// ReplaceBits replaces the field selected by mask, shifted left by pos, with
// value.
//
//	r.ReplaceBits(0x5, 0xF, 16) // bits 19:16 = 0b0101
func (r *Register32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	StoreUint32(&r.Reg, LoadUint32(&r.Reg)&^(mask<<pos)|(value&mask)<<pos)
}

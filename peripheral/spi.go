package peripheral

// SPI is a word-oriented serial controller. Send and Receive never wait on
// the queue flags; Transfer does.
type SPI interface {
	SetEnabled(enabled bool)
	Enabled() bool

	Send(data uint32)
	Receive() uint32
	Transfer(w uint32) uint32

	Status(flags uint32) bool
}

// Package peripheral holds the driver-neutral interfaces implemented by the
// LEON peripheral drivers.
package peripheral

type PinDirection uint8

const (
	PinInput  PinDirection = 0
	PinOutput PinDirection = 1
)

type Pin interface {
	High()
	Low()
	Toggle()

	Set(on bool)
	Get() bool

	SetDirection(dir PinDirection)
	GetDirection() PinDirection
}

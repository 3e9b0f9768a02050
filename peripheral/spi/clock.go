package spi

import "omibyte.io/leon/chip/leon3"

const pmMax = leon3.SPICTRL_MODE_PM_Msk >> leon3.SPICTRL_MODE_PM_Pos

// Divider is one setting of the SCK prescaler.
//
//	SCK = system clock / (16 if Div16) / (2 if Fact else 4) / (PM+1)
type Divider struct {
	PM    uint8
	Fact  bool
	Div16 bool
}

// DividerFromMode extracts the prescaler fields of a MODE register value.
func DividerFromMode(mode uint32) Divider {
	return Divider{
		PM:    uint8((mode & leon3.SPICTRL_MODE_PM_Msk) >> leon3.SPICTRL_MODE_PM_Pos),
		Fact:  mode&leon3.SPICTRL_MODE_FACT != 0,
		Div16: mode&leon3.SPICTRL_MODE_DIV16 != 0,
	}
}

// Mode returns the MODE register bits selecting d.
func (d Divider) Mode() uint32 {
	mode := (uint32(d.PM) << leon3.SPICTRL_MODE_PM_Pos) & leon3.SPICTRL_MODE_PM_Msk
	if d.Fact {
		mode |= leon3.SPICTRL_MODE_FACT
	}
	if d.Div16 {
		mode |= leon3.SPICTRL_MODE_DIV16
	}
	return mode
}

// Frequency returns the SCK rate produced from sysClock, truncated at each
// division step the same way the search evaluates it.
func (d Divider) Frequency(sysClock uint32) uint32 {
	return sysClock / d.div16() / d.base() / (uint32(d.PM) + 1)
}

func (d Divider) div16() uint32 {
	if d.Div16 {
		return 16
	}
	return 1
}

func (d Divider) base() uint32 {
	if d.Fact {
		return 2
	}
	return 4
}

// SCKFrequency returns the SCK rate selected by the prescaler fields of mode.
func SCKFrequency(sysClock uint32, mode uint32) uint32 {
	return DividerFromMode(mode).Frequency(sysClock)
}

// FindDivider walks the prescaler settings from the fastest down and returns
// the first whose SCK does not exceed target. visit, if not nil, is called
// for every setting evaluated.
//
// The walk covers PM 0-14 with FACT set, then PM 0-14 with FACT and DIV16 set,
// then PM 7-15 with only DIV16 set. PM 15 is skipped in the first two tiers
// because it yields the same rate as the first step of the next tier. When
// the last setting is still faster than target, no divider is returned.
func FindDivider(sysClock, target uint32, visit func(d Divider, sck uint32)) (Divider, bool) {
	var (
		pm    uint32 = 0
		fact  uint32 = 1
		div16 uint32 = 1
	)

	for {
		sck := sysClock / div16 / (4 - 2*fact) / (pm + 1)
		d := Divider{PM: uint8(pm), Fact: fact == 1, Div16: div16 == 16}
		if visit != nil {
			visit(d, sck)
		}

		if sck <= target {
			return d, true
		}

		if pm == pmMax && div16 == 16 && fact == 0 {
			// No applicable divider
			return Divider{}, false
		}

		pm++
		if pm == pmMax {
			if div16 == 1 {
				pm = 0
				div16 = 16
			} else if fact == 1 {
				pm >>= 1
				fact = 0
			}
		}
	}
}

// ClockDivider returns the MODE bits of the divider FindDivider selects for
// target, and false when none exists.
func ClockDivider(sysClock, target uint32) (uint32, bool) {
	d, ok := FindDivider(sysClock, target, nil)
	if !ok {
		return 0, false
	}
	return d.Mode(), true
}

package generator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidDescription = errors.New("invalid chip description")
	ErrOverlap            = errors.New("registers overlap")
)

// registerWidth is the size in bytes of every register described here.
const registerWidth = 4

type Chip struct {
	Name        string       `yaml:"name"`
	Package     string       `yaml:"package"`
	Description string       `yaml:"description"`
	Cores       []Core       `yaml:"cores"`
	Peripherals []Peripheral `yaml:"peripherals"`
}

type Core struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Size        uint32     `yaml:"size"`
	Registers   []Register `yaml:"registers"`
}

type Register struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Offset      uint32  `yaml:"offset"`
	Count       uint32  `yaml:"count"`
	Fields      []Field `yaml:"fields"`
}

type Field struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Offset      uint8  `yaml:"offset"`
	Width       uint8  `yaml:"width"`
}

type Peripheral struct {
	Name        string `yaml:"name"`
	Core        string `yaml:"core"`
	Description string `yaml:"description"`
	Base        uint32 `yaml:"base"`
}

// Words returns the number of registers in the array, or 1 for a scalar
// register.
func (r Register) Words() uint32 {
	if r.Count == 0 {
		return 1
	}
	return r.Count
}

// End returns the offset of the first byte after the register.
func (r Register) End() uint32 {
	return r.Offset + r.Words()*registerWidth
}

// Mask returns the in-place mask of the field.
func (f Field) Mask() uint32 {
	return uint32((uint64(1)<<f.Width)-1) << f.Offset
}

// Load decodes a chip description and validates it.
func Load(r io.Reader) (*Chip, error) {
	var chip Chip
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&chip); err != nil {
		return nil, fmt.Errorf("yaml decode error: %w", err)
	}

	if err := chip.Validate(); err != nil {
		return nil, err
	}
	return &chip, nil
}

// LoadFile opens fname and decodes the chip description it contains.
func LoadFile(fname string) (*Chip, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("file io error: %w", err)
	}
	defer file.Close()

	chip, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return chip, nil
}

// Validate checks names, alignment, overlap and field bounds. Registers are
// sorted by offset as a side effect.
func (c *Chip) Validate() error {
	if len(c.Package) == 0 {
		c.Package = c.Name
	}
	if len(c.Package) == 0 {
		return fmt.Errorf("%w: missing chip name", ErrInvalidDescription)
	}

	var coreNames []string
	for i := range c.Cores {
		core := &c.Cores[i]
		if len(core.Name) == 0 {
			return fmt.Errorf("%w: core %d has no name", ErrInvalidDescription, i)
		}
		if slices.Contains(coreNames, core.Name) {
			return fmt.Errorf("%w: duplicate core %s", ErrInvalidDescription, core.Name)
		}
		coreNames = append(coreNames, core.Name)

		if err := core.validate(); err != nil {
			return err
		}
	}

	var peripheralNames []string
	for _, p := range c.Peripherals {
		if !slices.Contains(coreNames, p.Core) {
			return fmt.Errorf("%w: peripheral %s references unknown core %q", ErrInvalidDescription, p.Name, p.Core)
		}
		if slices.Contains(peripheralNames, p.Name) {
			return fmt.Errorf("%w: duplicate peripheral %s", ErrInvalidDescription, p.Name)
		}
		if p.Base%registerWidth != 0 {
			return fmt.Errorf("%w: peripheral %s base %#x is not word aligned", ErrInvalidDescription, p.Name, p.Base)
		}
		peripheralNames = append(peripheralNames, p.Name)
	}

	return nil
}

func (c *Core) validate() error {
	// Sort the registers
	slices.SortStableFunc(c.Registers, func(a, b Register) bool {
		return a.Offset < b.Offset
	})

	end := uint32(0)
	var names []string
	for _, reg := range c.Registers {
		if slices.Contains(names, reg.Name) {
			return fmt.Errorf("%w: duplicate register %s.%s", ErrInvalidDescription, c.Name, reg.Name)
		}
		names = append(names, reg.Name)

		if reg.Offset%registerWidth != 0 {
			return fmt.Errorf("%w: %s.%s offset %#x is not word aligned", ErrInvalidDescription, c.Name, reg.Name, reg.Offset)
		}
		if reg.Offset < end {
			return fmt.Errorf("%w: %s.%s at %#x", ErrOverlap, c.Name, reg.Name, reg.Offset)
		}
		end = reg.End()

		var used uint32
		for _, field := range reg.Fields {
			if field.Width == 0 || uint32(field.Offset)+uint32(field.Width) > 32 {
				return fmt.Errorf("%w: field %s.%s.%s out of range", ErrInvalidDescription, c.Name, reg.Name, field.Name)
			}
			if used&field.Mask() != 0 {
				return fmt.Errorf("%w: field %s.%s.%s", ErrOverlap, c.Name, reg.Name, field.Name)
			}
			used |= field.Mask()
		}
	}

	if c.Size == 0 {
		c.Size = end
	} else if c.Size%registerWidth != 0 {
		return fmt.Errorf("%w: %s size %#x is not word aligned", ErrInvalidDescription, c.Name, c.Size)
	} else if c.Size < end {
		return fmt.Errorf("%w: %s registers end at %#x past size %#x", ErrInvalidDescription, c.Name, end, c.Size)
	}
	return nil
}

// Core returns the core named name.
func (c *Chip) Core(name string) (Core, bool) {
	i := slices.IndexFunc(c.Cores, func(core Core) bool {
		return core.Name == name
	})
	if i < 0 {
		return Core{}, false
	}
	return c.Cores[i], true
}

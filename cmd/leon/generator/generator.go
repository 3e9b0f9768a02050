// Package generator turns a YAML chip description into a Go package of
// register blocks, bit-field constants and peripheral instances.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

// DefaultVolatilePackage is the import path of the register primitive the
// generated structs are built from.
const DefaultVolatilePackage = "omibyte.io/leon/volatile"

type Generator struct {
	chip   *Chip
	source string
	log    *zap.SugaredLogger

	// VolatilePackage overrides DefaultVolatilePackage.
	VolatilePackage string
}

func NewGenerator(chip *Chip, source string, log *zap.SugaredLogger) *Generator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{
		chip:            chip,
		source:          filepath.Base(source),
		log:             log,
		VolatilePackage: DefaultVolatilePackage,
	}
}

// Generate writes <out>/<package>.go.
func (g *Generator) Generate(out string) error {
	if err := os.MkdirAll(out, 0750); err != nil {
		return fmt.Errorf("file io error: %w", err)
	}

	buf, err := g.Source()
	if err != nil {
		return err
	}

	fname := filepath.Join(out, strings.ToLower(g.chip.Package)+".go")
	if err = os.WriteFile(fname, buf, 0640); err != nil {
		return fmt.Errorf("file io error: %w", err)
	}

	g.log.Infow("wrote register package", "file", fname, "cores", len(g.chip.Cores), "peripherals", len(g.chip.Peripherals))
	return nil
}

// Source returns the formatted Go source of the register package.
func (g *Generator) Source() ([]byte, error) {
	var w strings.Builder

	g.writePreamble(&w)

	// Write required imports
	fmt.Fprintln(&w, "import (")
	fmt.Fprintln(&w, `"unsafe"`)
	fmt.Fprintf(&w, "%q\n", g.VolatilePackage)
	fmt.Fprintln(&w, ")")
	fmt.Fprintln(&w)

	g.writePeripherals(&w)

	for _, core := range g.chip.Cores {
		g.log.Debugw("generating core", "core", core.Name, "registers", len(core.Registers), "size", core.Size)
		g.writeCoreStruct(&w, core)
		for _, reg := range core.Registers {
			g.writeFieldConstants(&w, core, reg)
		}
	}

	// Format the final output. Unused imports are dropped.
	fname := strings.ToLower(g.chip.Package) + ".go"
	buf, err := imports.Process(fname, []byte(w.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("error formatting %s: %w", fname, err)
	}
	return buf, nil
}

func (g *Generator) writePreamble(w io.Writer) {
	fmt.Fprintf(w, "// Code generated by leon gen from %s. DO NOT EDIT.\n\n", g.source)
	if len(g.chip.Description) > 0 {
		fmt.Fprintf(w, "// Package %s describes the peripherals of the %s.\n", g.chip.Package, g.chip.Description)
	}
	fmt.Fprintf(w, "package %s\n\n", g.chip.Package)
}

func (g *Generator) writePeripherals(w io.Writer) {
	if len(g.chip.Peripherals) == 0 {
		return
	}

	fmt.Fprintln(w, "var (")
	for _, p := range g.chip.Peripherals {
		description := p.Description
		if len(description) == 0 {
			if core, ok := g.chip.Core(p.Core); ok {
				description = core.Description
			}
		}
		if len(description) > 0 {
			fmt.Fprintf(w, "// %s %s\n", p.Name, description)
		}
		fmt.Fprintf(w, "%s = (*%s)(unsafe.Pointer(uintptr(%#x)))\n", p.Name, typeName(p.Core), p.Base)
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintln(w)
}

func (g *Generator) writeCoreStruct(w io.Writer, core Core) {
	if len(core.Description) > 0 {
		fmt.Fprintf(w, "// %s %s\n", typeName(core.Name), core.Description)
	}
	fmt.Fprintf(w, "type %s struct {\n", typeName(core.Name))

	offset := uint32(0)
	for _, reg := range core.Registers {
		if reg.Offset > offset {
			writePadding(w, (reg.Offset-offset)/registerWidth)
		}

		comment := fmt.Sprintf("0x%02x", reg.Offset)
		if len(reg.Description) > 0 {
			comment += " " + reg.Description
		}

		if reg.Count > 0 {
			fmt.Fprintf(w, "%s [%d]volatile.Register32 // %s\n", reg.Name, reg.Count, comment)
		} else {
			fmt.Fprintf(w, "%s volatile.Register32 // %s\n", reg.Name, comment)
		}
		offset = reg.End()
	}

	if core.Size > offset {
		writePadding(w, (core.Size-offset)/registerWidth)
	}

	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
}

func (g *Generator) writeFieldConstants(w io.Writer, core Core, reg Register) {
	if len(reg.Fields) == 0 {
		return
	}

	fmt.Fprintf(w, "// %s.%s", core.Name, reg.Name)
	if len(reg.Description) > 0 {
		fmt.Fprintf(w, ": %s", reg.Description)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "const (")
	for _, field := range reg.Fields {
		name := fmt.Sprintf("%s_%s_%s", core.Name, reg.Name, field.Name)
		if len(field.Description) > 0 {
			fmt.Fprintf(w, "// %s\n", field.Description)
		}
		fmt.Fprintf(w, "%s_Pos = %d\n", name, field.Offset)
		fmt.Fprintf(w, "%s_Msk = %#x\n", name, field.Mask())
		if field.Width == 1 {
			fmt.Fprintf(w, "%s = %#x\n", name, field.Mask())
		}
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintln(w)
}

func writePadding(w io.Writer, words uint32) {
	if words == 1 {
		fmt.Fprintln(w, "_ volatile.Register32")
	} else {
		fmt.Fprintf(w, "_ [%d]volatile.Register32\n", words)
	}
}

func typeName(core string) string {
	return core + "_Type"
}

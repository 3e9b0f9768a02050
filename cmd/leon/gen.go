package main

import (
	"github.com/spf13/cobra"

	"omibyte.io/leon/cmd/leon/generator"
)

var (
	genInput    string
	genOutput   string
	genVolatile string

	genCmd = &cobra.Command{
		Use:   "gen",
		Short: "Generate a register package from a chip description",
		Long: `gen reads a YAML chip description and writes a Go package containing one
struct per IP core, the bit-field constants of every register and a pointer
variable for every peripheral instance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(genInput, genOutput, genVolatile)
		},
	}
)

func init() {
	genCmd.Flags().StringVarP(&genInput, "in", "i", "", "chip description file")
	genCmd.Flags().StringVarP(&genOutput, "out", "o", ".", "output directory")
	genCmd.Flags().StringVar(&genVolatile, "volatile", generator.DefaultVolatilePackage, "import path of the volatile register package")
	_ = genCmd.MarkFlagRequired("in")
}

func generate(input, output, volatilePackage string) error {
	log.Debugw("loading chip description", "file", input)
	chip, err := generator.LoadFile(input)
	if err != nil {
		return err
	}

	g := generator.NewGenerator(chip, input, log)
	g.VolatilePackage = volatilePackage
	return g.Generate(output)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"omibyte.io/leon/peripheral/spi"
	"omibyte.io/leon/targets"
)

var ErrNoDivider = errors.New("no applicable clock divider")

var (
	clockBoard  string
	clockSystem uint32
	clockTarget uint32
	clockTable  bool

	clockCmd = &cobra.Command{
		Use:   "clock",
		Short: "Compute the SPICTRL prescaler for a target SCK rate",
		Long: `clock prints the MODE register prescaler bits (PM, FACT, DIV16) that the SPI
driver selects for the requested SCK rate. The system clock is taken from
--sysclk, or from the board table when --board is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sysClock, err := systemClock(clockBoard, clockSystem)
			if err != nil {
				return err
			}
			return printDivider(cmd.OutOrStdout(), sysClock, clockTarget, clockTable)
		},
	}
)

func init() {
	clockCmd.Flags().StringVarP(&clockBoard, "board", "b", "", "board name or alias")
	clockCmd.Flags().Uint32Var(&clockSystem, "sysclk", 0, "system clock in Hz, overrides the board")
	clockCmd.Flags().Uint32VarP(&clockTarget, "target", "t", 1_000_000, "target SCK rate in Hz")
	clockCmd.Flags().BoolVar(&clockTable, "table", false, "print every prescaler setting evaluated")
}

// systemClock resolves the system clock from an explicit rate or a board name.
func systemClock(board string, sysClock uint32) (uint32, error) {
	if sysClock != 0 {
		return sysClock, nil
	}
	if len(board) == 0 {
		return 0, errors.New("either --board or --sysclk is required")
	}

	target, err := targets.All().Find(board)
	if err != nil {
		return 0, err
	}
	log.Debugw("resolved board", "board", target.Board, "chip", target.Chip, "sysclk", target.SystemClock)
	return target.SystemClock, nil
}

func printDivider(w io.Writer, sysClock, target uint32, table bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	var visit func(spi.Divider, uint32)
	if table {
		fmt.Fprintln(tw, "PM\tFACT\tDIV16\tMODE\tSCK (Hz)")
		visit = func(d spi.Divider, sck uint32) {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%#08x\t%d\n", d.PM, b2i(d.Fact), b2i(d.Div16), d.Mode(), sck)
		}
	}

	d, ok := spi.FindDivider(sysClock, target, visit)
	if table {
		fmt.Fprintln(tw)
	}
	if !ok {
		tw.Flush()
		return fmt.Errorf("%w: %d Hz from a %d Hz system clock", ErrNoDivider, target, sysClock)
	}

	fmt.Fprintf(tw, "system clock:\t%d Hz\n", sysClock)
	fmt.Fprintf(tw, "target:\t%d Hz\n", target)
	fmt.Fprintf(tw, "prescaler:\tPM=%d FACT=%d DIV16=%d\n", d.PM, b2i(d.Fact), b2i(d.Div16))
	fmt.Fprintf(tw, "mode bits:\t%#08x\n", d.Mode())
	fmt.Fprintf(tw, "SCK:\t%d Hz\n", d.Frequency(sysClock))
	return tw.Flush()
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

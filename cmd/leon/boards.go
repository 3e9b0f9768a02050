package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"omibyte.io/leon/targets"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the known boards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printBoards(cmd.OutOrStdout(), targets.All())
	},
}

func printBoards(w io.Writer, all targets.Targets) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOARD\tALIASES\tCHIP\tSYSCLK (Hz)\tDESCRIPTION")
	for _, t := range all {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", t.Board, strings.Join(t.Aliases, ","), t.Chip, t.SystemClock, t.Description)
	}
	return tw.Flush()
}

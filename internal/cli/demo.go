package cli

import (
	"fmt"

	"github.com/cwbudde/algo-goertzel/dsp/goertzel"
	"github.com/spf13/cobra"
)

func (a *app) newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the 2 kHz / 8 kHz reference example",
		Long: `demo builds a 2000 Hz filter at 8000 Hz, prints it, processes the
samples 0, 1, 0, -1, and prints the filter again followed by the level.
The samples are one cycle of a full-scale 2 kHz tone, so the level is
close to 0 dBm.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := goertzel.New(2000, 8000)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, f)
			level := f.Process([]float64{0, 1, 0, -1})
			fmt.Fprintln(out, f)
			_, err = fmt.Fprintf(out, "%g\n", level)
			return err
		},
	}
}

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-goertzel/dsp/goertzel"
	"github.com/cwbudde/algo-goertzel/internal/samples"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func (a *app) newStreamCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stream [file]",
		Short: "Print one level per window of --window samples",
		Long: `stream feeds the input one sample at a time and prints the level of
the target frequency for every completed window of --window samples.
Windows do not overlap. Samples left over after the last complete
window are discarded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := stdinName
			if len(args) == 1 {
				src = args[0]
			}
			return a.runStream(cmd, src)
		},
	}
}

func (a *app) runStream(cmd *cobra.Command, src string) error {
	s, err := goertzel.NewStream(a.cfg.Frequency, a.cfg.SampleRate, a.cfg.Window)
	if err != nil {
		return err
	}

	in, err := openSource(src, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	ctx := cmd.Context()
	r := samples.NewReader(in)
	rep := StreamReport{
		Frequency:  s.Frequency(),
		SampleRate: s.SampleRate(),
		Window:     s.WindowSize(),
		Windows:    []WindowResult{},
	}

	for i := 0; ; i++ {
		x, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}

		level, ok := s.Step(x)
		if !ok {
			continue
		}

		rep.Windows = append(rep.Windows, WindowResult{
			Index:   len(rep.Windows),
			Offset:  i - s.WindowSize() + 1,
			Level:   level,
			Present: level >= a.cfg.Threshold,
		})

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	if s.Pending() > 0 {
		a.log.Info("discarding incomplete window",
			zap.String("source", src),
			zap.Int("samples", s.Pending()),
			zap.Int("window", s.WindowSize()),
		)
	}

	rep.Summary = summarize(rep.Windows, s.Pending())
	a.log.Debug("stream finished",
		zap.String("source", src),
		zap.Int("windows", rep.Summary.Windows),
		zap.Int("present", rep.Summary.Present),
	)

	return writeStreamReport(cmd.OutOrStdout(), a.cfg.Output, rep)
}

func summarize(windows []WindowResult, discarded int) Summary {
	sum := Summary{Windows: len(windows), Discarded: discarded}
	if len(windows) == 0 {
		return sum
	}

	levels := make([]float64, len(windows))
	for i, w := range windows {
		levels[i] = w.Level
		if w.Present {
			sum.Present++
		}
	}

	sum.Mean, sum.StdDev = stat.MeanStdDev(levels, nil)
	if len(levels) < 2 {
		sum.StdDev = 0
	}
	sum.Min = floats.Min(levels)
	sum.Max = floats.Max(levels)

	return sum
}

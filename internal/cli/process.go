package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/cwbudde/algo-goertzel/dsp/goertzel"
	"github.com/cwbudde/algo-goertzel/internal/samples"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

func (a *app) newProcessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "process [file ...]",
		Short: "Print the level of the target frequency over each whole input",
		Long: `process treats every input as one block and prints the level of the
target frequency over all of its samples. Inputs are analysed
concurrently, each with its own filter. With no file, or "-", the
samples are read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProcess(cmd, args)
		},
	}
}

func (a *app) runProcess(cmd *cobra.Command, args []string) error {
	// Fail on bad settings before any input is read.
	if _, err := goertzel.New(a.cfg.Frequency, a.cfg.SampleRate); err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	stdinCount := 0
	for _, src := range args {
		if src == stdinName {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return fmt.Errorf("standard input can only be read once")
	}

	results := make([]BlockResult, len(args))
	stdin := cmd.InOrStdin()

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			x, err := readSource(src, stdin)
			if err != nil {
				return err
			}

			f, err := goertzel.New(a.cfg.Frequency, a.cfg.SampleRate)
			if err != nil {
				return err
			}

			level := f.Process(x)
			results[i] = BlockResult{
				Source:     src,
				Frequency:  f.Frequency(),
				SampleRate: f.SampleRate(),
				Samples:    f.Count(),
				Level:      level,
				Present:    level >= a.cfg.Threshold,
			}

			if len(x) == 0 {
				a.log.Warn("input holds no samples", zap.String("source", src))
			}
			a.log.Debug("processed input",
				zap.String("source", src),
				zap.Int("samples", len(x)),
				zap.Float64("level_dbm", level),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return writeBlockResults(cmd.OutOrStdout(), a.cfg.Output, results)
}

func readSource(src string, stdin io.Reader) ([]float64, error) {
	if src == stdinName {
		x, err := samples.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return x, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	x, err := samples.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return x, nil
}

func openSource(src string, stdin io.Reader) (io.ReadCloser, error) {
	if src == stdinName {
		return io.NopCloser(stdin), nil
	}
	return os.Open(src)
}

package cli

import (
	"fmt"

	"github.com/cwbudde/algo-goertzel/dsp/core"
	"github.com/cwbudde/algo-goertzel/dsp/goertzel"
	"github.com/cwbudde/algo-goertzel/dsp/signal"
	"github.com/cwbudde/algo-goertzel/internal/samples"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newGenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a test tone at the target frequency as text samples",
		Long: `gen writes a sine at --frequency, sampled at --sample-rate, one
sample per line. --level sets the tone in dBm across 600 ohms and
overrides --amplitude. With --bursts the tone is keyed on for --on
samples and off for --off samples, --bursts times.`,
		Example: `  goertzel gen -f 1000 --level -10 --samples 800 | goertzel process -f 1000
  goertzel gen -f 697 --bursts 5 --on 205 --off 205 | goertzel stream -f 697 -n 205`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGen(cmd)
		},
	}

	fs := cmd.Flags()
	fs.Int("samples", 8000, "number of samples for a continuous tone")
	fs.Float64("amplitude", 1, "peak amplitude")
	fs.Float64("level", 0, "tone level in dBm across 600 ohms (overrides --amplitude)")
	fs.Float64("noise", 0, "peak amplitude of added white noise")
	fs.Int64("seed", 1, "noise seed")
	fs.Int("on", 205, "samples per burst")
	fs.Int("off", 205, "samples of silence after each burst")
	fs.Int("bursts", 0, "number of keyed bursts (0 for a continuous tone)")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command) error {
	// A tone the detector cannot be built for is not worth generating.
	if _, err := goertzel.New(a.cfg.Frequency, a.cfg.SampleRate); err != nil {
		return err
	}

	gc := a.cfg.Gen
	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(a.cfg.SampleRate)},
		signal.WithSeed(gc.Seed),
	)

	amp := gc.Amplitude
	if a.v.IsSet("gen.level") {
		amp = core.DBmToPeakAmplitude(gc.Level)
	}

	var (
		x   []float64
		err error
	)
	if gc.Bursts > 0 {
		x, err = g.Burst(a.cfg.Frequency, amp, gc.On, gc.Off, gc.Bursts)
	} else {
		x, err = g.Tone(a.cfg.Frequency, amp, gc.Samples)
	}
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if gc.Noise > 0 {
		noise, err := g.WhiteNoise(gc.Noise, len(x))
		if err != nil {
			return fmt.Errorf("generate noise: %w", err)
		}
		if x, err = signal.Mix(x, noise); err != nil {
			return err
		}
	}

	a.log.Debug("generated tone",
		zap.Float64("frequency_hz", a.cfg.Frequency),
		zap.Float64("amplitude", amp),
		zap.Float64("level_dbm", core.PeakAmplitudeToDBm(amp)),
		zap.Int("samples", len(x)),
	)

	return samples.Write(cmd.OutOrStdout(), x)
}

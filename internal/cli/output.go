package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var titleCaser = cases.Title(language.English)

// BlockResult is the level of the target frequency over one whole input.
type BlockResult struct {
	Source     string  `json:"source" yaml:"source"`
	Frequency  float64 `json:"frequency_hz" yaml:"frequency_hz"`
	SampleRate float64 `json:"sample_rate_hz" yaml:"sample_rate_hz"`
	Samples    int     `json:"samples" yaml:"samples"`
	Level      float64 `json:"level_dbm" yaml:"level_dbm"`
	Present    bool    `json:"present" yaml:"present"`
}

// WindowResult is the level over one completed streaming window.
type WindowResult struct {
	Index   int     `json:"index" yaml:"index"`
	Offset  int     `json:"offset" yaml:"offset"`
	Level   float64 `json:"level_dbm" yaml:"level_dbm"`
	Present bool    `json:"present" yaml:"present"`
}

// Summary aggregates the window levels of a stream.
type Summary struct {
	Windows   int     `json:"windows" yaml:"windows"`
	Present   int     `json:"present" yaml:"present"`
	Discarded int     `json:"discarded_samples" yaml:"discarded_samples"`
	Mean      float64 `json:"mean_dbm" yaml:"mean_dbm"`
	StdDev    float64 `json:"stddev_db" yaml:"stddev_db"`
	Min       float64 `json:"min_dbm" yaml:"min_dbm"`
	Max       float64 `json:"max_dbm" yaml:"max_dbm"`
}

// StreamReport is the full output of the stream command.
type StreamReport struct {
	Frequency  float64        `json:"frequency_hz" yaml:"frequency_hz"`
	SampleRate float64        `json:"sample_rate_hz" yaml:"sample_rate_hz"`
	Window     int            `json:"window" yaml:"window"`
	Windows    []WindowResult `json:"windows" yaml:"windows"`
	Summary    Summary        `json:"summary" yaml:"summary"`
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// header title-cases column names, leaving bracketed units untouched.
func header(cols ...string) string {
	for i, c := range cols {
		name, unit, ok := strings.Cut(c, " [")
		name = titleCaser.String(name)
		if ok {
			name += " [" + unit
		}
		cols[i] = name
	}
	return strings.Join(cols, "\t") + "\n"
}

func writeBlockResults(w io.Writer, format string, results []BlockResult) error {
	if format != formatTable {
		return writeStructured(w, format, results)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprint(tw, header("source", "frequency [Hz]", "sample rate [Hz]", "samples", "level [dBm]", "present")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(tw, "%s\t%g\t%g\t%d\t%.2f\t%t\n",
			r.Source, r.Frequency, r.SampleRate, r.Samples, r.Level, r.Present); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

func writeStreamReport(w io.Writer, format string, rep StreamReport) error {
	if format != formatTable {
		return writeStructured(w, format, rep)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprint(tw, header("window", "offset", "level [dBm]", "present")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rep.Windows {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.2f\t%t\n", r.Index, r.Offset, r.Level, r.Present); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := rep.Summary
	_, err := fmt.Fprintf(w, "\n%d windows, %d present, mean %.2f dBm, stddev %.2f dB, min %.2f dBm, max %.2f dBm, %d samples discarded\n",
		s.Windows, s.Present, s.Mean, s.StdDev, s.Min, s.Max, s.Discarded)
	return err
}

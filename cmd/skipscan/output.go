package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mhr3/skipscan"
	"github.com/mhr3/skipscan/search"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	}
	return "", fmt.Errorf("invalid output format %q", s)
}

// report is the per-input result written by every output format.
type report struct {
	Source    string           `json:"source" yaml:"source"`
	Pattern   string           `json:"pattern" yaml:"pattern"`
	Algorithm search.Algorithm `json:"algorithm" yaml:"algorithm"`
	Positions []int            `json:"positions" yaml:"positions"`
}

func newReport(src, pattern string, res skipscan.Result) report {
	positions := res.Positions
	if positions == nil {
		positions = []int{}
	}
	return report{
		Source:    src,
		Pattern:   pattern,
		Algorithm: res.Algorithm,
		Positions: positions,
	}
}

func writeReports(w io.Writer, format outputFormat, reports []report) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeText(w, reports)
}

func writeText(w io.Writer, reports []report) error {
	for _, r := range reports {
		if len(r.Positions) == 0 {
			if _, err := fmt.Fprintf(w, "%s: no matches\n", r.Source); err != nil {
				return err
			}
			continue
		}
		for _, pos := range r.Positions {
			if _, err := fmt.Fprintf(w, "%s:%d\n", r.Source, pos); err != nil {
				return err
			}
		}
	}
	return nil
}

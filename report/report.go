// Package report renders complexity results for the command line.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keypadchain/complexity"
	"github.com/katalvlaran/keypadchain/config"
)

// Document is the serialised form of a batch result.
type Document struct {
	Depth int    `yaml:"depth"`
	Total int64  `yaml:"total"`
	Codes []Line `yaml:"codes"`
}

// Line is one code in a Document.
type Line struct {
	Code       string `yaml:"code"`
	Value      uint64 `yaml:"value"`
	Sequence   string `yaml:"sequence"`
	Presses    int64  `yaml:"presses"`
	Complexity int64  `yaml:"complexity"`
}

// FromResult converts an evaluation result into a Document.
func FromResult(r *complexity.Result) Document {
	doc := Document{Depth: r.Depth, Total: r.Total, Codes: make([]Line, len(r.Codes))}
	for i, c := range r.Codes {
		doc.Codes[i] = Line{
			Code:       c.Code.Raw,
			Value:      c.Code.Value,
			Sequence:   c.Sequence,
			Presses:    c.Presses,
			Complexity: c.Complexity,
		}
	}

	return doc
}

// Write renders r to w in the given format (config.FormatText or config.FormatYAML).
func Write(w io.Writer, r *complexity.Result, format string) error {
	switch format {
	case config.FormatYAML:
		return WriteYAML(w, r)
	case config.FormatText, "":
		return WriteText(w, r)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

// WriteYAML encodes r as a YAML Document.
func WriteYAML(w io.Writer, r *complexity.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromResult(r)); err != nil {
		return err
	}

	return enc.Close()
}

// WriteText prints one aligned row per code followed by the total.
func WriteText(w io.Writer, r *complexity.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "code\tpresses\tvalue\tcomplexity\t\n")
	for _, c := range r.Codes {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t\n", c.Code.Raw, c.Presses, c.Code.Value, c.Complexity)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "depth %d total %d\n", r.Depth, r.Total)

	return err
}

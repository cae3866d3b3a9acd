// main.go wires the keypadchain command line: a cobra root command with
// solve, expand, table and verify subcommands. Settings come from
// config.Load; diagnostics go through the logging package.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keypadchain/complexity"
	"github.com/katalvlaran/keypadchain/config"
	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/logging"
	"github.com/katalvlaran/keypadchain/report"
	"github.com/katalvlaran/keypadchain/sequence"
	"github.com/katalvlaran/keypadchain/verify"
)

var version = "dev" // set by the linker

// maxLiteralDepth caps expand; literal strings grow about 2.5× per layer.
const maxLiteralDepth = 12

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

// newRootCmd builds a fresh command tree, so tests can run it in isolation.
func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:     "keypadchain",
		Short:   "Minimal button presses through chains of robot-operated keypads.",
		Version: version,
		Long: `keypadchain computes how many presses a human needs to type door codes
when every press is relayed through a chain of robots, each holding a
directional keypad operated by the one above it.

Depth is the number of robot-held directional keypads between the human
and the robot at the door keypad.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./keypadchain.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().Int("depth", 2, "robot-held directional keypads in the chain")

	load := func(c *cobra.Command) (config.Config, error) {
		cfg, err := config.Load(c, cfgFile)
		if err != nil {
			return cfg, err
		}
		logging.SetOutput(c.ErrOrStderr())
		if err := logging.SetLevel(cfg.LogLevel); err != nil {
			return cfg, err
		}
		logging.Debugf("config: depth=%d parallel=%d format=%s input=%q", cfg.Depth, cfg.Parallelism, cfg.Format, cfg.Input)

		return cfg, nil
	}

	cmd.AddCommand(newSolveCmd(load), newExpandCmd(load), newTableCmd(load), newVerifyCmd(load))

	return cmd
}

type loader func(*cobra.Command) (config.Config, error)

// newSolveCmd scores the codes of an input file.
func newSolveCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Sum the complexity of every code in a file (one code per line, '-' for stdin).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			codes, err := readCodes(cmd, cfg.Input)
			if err != nil {
				return err
			}

			e, err := complexity.New(
				complexity.WithContext(cmd.Context()),
				complexity.WithParallelism(cfg.Parallelism),
				complexity.WithOnCode(func(r complexity.CodeResult) {
					logging.Debugf("%s: %d * %d", r.Code.Raw, r.Presses, r.Code.Value)
				}),
			)
			if err != nil {
				return err
			}
			res, err := e.Evaluate(codes, cfg.Depth)
			if err != nil {
				return err
			}
			logging.Infof("scored %d codes at depth %d", len(res.Codes), res.Depth)

			return report.Write(cmd.OutOrStdout(), res, cfg.Format)
		},
	}
	cmd.Flags().StringP("input", "i", "", "file with one code per line")
	cmd.Flags().IntP("parallel", "p", 1, "codes evaluated concurrently")
	cmd.Flags().StringP("format", "f", config.FormatText, "output format: text or yaml")

	return cmd
}

// newExpandCmd prints the literal press string for one code.
func newExpandCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <code>",
		Short: "Print the literal sequence the human types for one code (small depths only).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			if cfg.Depth > maxLiteralDepth {
				return fmt.Errorf("expand: depth %d exceeds %d; use solve", cfg.Depth, maxLiteralDepth)
			}
			code, err := complexity.ParseCode(args[0])
			if err != nil {
				return err
			}
			s, err := sequence.Literal(code.Raw, cfg.Depth)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%d presses\n", s, len(s))

			return err
		},
	}
}

// newTableCmd prints the directional cost table at the configured depth.
func newTableCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the directional keypad cost table at a depth.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			t, err := cost.AtDepth(cfg.Depth)
			if err != nil {
				return err
			}

			return writeTable(cmd.OutOrStdout(), t)
		},
	}
}

// newVerifyCmd runs the brute-force check of the canonical orderings.
func newVerifyCmd(load loader) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare canonical orderings with brute-force enumeration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := load(cmd); err != nil {
				return err
			}
			rep, err := verify.Check(cmd.Context(), maxDepth)
			if rep != nil {
				for _, m := range rep.Mismatches {
					logging.Warnf("%s %q->%q depth %d: canonical %d > optimal %d via %q",
						m.Keypad, m.From, m.To, m.Depth, m.Canonical, m.Optimal, m.BestPath)
				}
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d comparisons up to depth %d\n", rep.Checked, rep.MaxDepth)

			return err
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 8, "deepest layer to check")

	return cmd
}

func readCodes(cmd *cobra.Command, path string) ([]complexity.Code, error) {
	var r io.Reader
	switch path {
	case "":
		return nil, fmt.Errorf("solve: no input file (pass an argument or --input)")
	case "-":
		r = cmd.InOrStdin()
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return complexity.ParseCodes(r)
}

func writeTable(w io.Writer, t *cost.Table) error {
	syms := t.Topology().Symbols()
	var b strings.Builder
	fmt.Fprintf(&b, "depth %d\nfrom\\to", t.Depth())
	for _, s := range syms {
		fmt.Fprintf(&b, "\t%c", s)
	}
	b.WriteByte('\n')
	for _, from := range syms {
		b.WriteByte(byte(from))
		for _, to := range syms {
			fmt.Fprintf(&b, "\t%d", t.Cost(from, to))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

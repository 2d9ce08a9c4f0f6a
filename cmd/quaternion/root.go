package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/quaternion"
)

type options struct {
	in      string
	lines   bool
	echo    bool
	strict  bool
	sum     bool
	norm    bool
	verbose bool
}

// app holds the state shared by all commands.
type app struct {
	opts   options
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:   "quaternion [expression...]",
		Short: "Multiply quaternions written like (9+i-j)(k-8.4j)",
		Long: `quaternion evaluates products of quaternions.

Each expression is a sequence of parenthesized groups such as (i+j+20)(j-9).
The groups are multiplied from left to right and the product is printed in
the same notation, e.g. -9i+11j+k-181.

Expressions are taken from the arguments. With no arguments, the first line
of standard input (or of the --in file) is evaluated, or every line with -n.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.opts.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.run,
	}

	cmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "log parsed groups and intermediate results")
	cmd.PersistentFlags().BoolVar(&a.opts.strict, "strict", false, "reject characters outside the expression grammar")
	cmd.PersistentFlags().BoolVar(&a.opts.sum, "sum-duplicates", false, "add repeated terms of one basis in a group instead of keeping the last")
	cmd.Flags().StringVar(&a.opts.in, "in", "", "input file (- for stdin; default stdin if no args given)")
	cmd.Flags().BoolVarP(&a.opts.lines, "lines", "n", false, "evaluate each input line as a separate expression")
	cmd.Flags().BoolVar(&a.opts.echo, "echo", false, "print the parsed groups before each result")
	cmd.Flags().BoolVar(&a.opts.norm, "norm", false, "print the norm of each result after it")

	cmd.AddCommand(newCheckCommand(a))
	return cmd
}

// newLogger creates a logger writing to w. Only warnings and errors are
// logged unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config.EncoderConfig),
		zapcore.AddSync(w),
		config.Level,
	)
	return zap.New(core)
}

// parseOptions converts flags to parse options.
func (a *app) parseOptions() []quaternion.ParseOption {
	var opts []quaternion.ParseOption
	if a.opts.strict {
		opts = append(opts, quaternion.Strict())
	}
	if a.opts.sum {
		opts = append(opts, quaternion.OnDuplicate(quaternion.Sum))
	}
	return opts
}

// eval parses and multiplies one expression.
func (a *app) eval(expr string, opts []quaternion.ParseOption) ([]quaternion.Quaternion, quaternion.Quaternion, error) {
	qs, err := quaternion.ParseString(expr, opts...)
	if err != nil {
		return nil, quaternion.Quaternion{}, err
	}
	for k, q := range qs {
		a.logger.Debug("parsed group", zap.Int("index", k), zap.Stringer("value", q))
	}
	r, err := quaternion.Product(qs...)
	if err != nil {
		return qs, r, err
	}
	a.logger.Debug("product", zap.String("expression", expr), zap.Int("groups", len(qs)), zap.Stringer("result", r))
	return qs, r, nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	exprs, err := a.inputs(cmd, args)
	if err != nil {
		return err
	}
	opts := a.parseOptions()
	out := cmd.OutOrStdout()
	for _, expr := range exprs {
		qs, r, err := a.eval(expr, opts)
		if err != nil {
			a.logger.Warn("evaluation failed", zap.String("expression", expr), zap.Error(err))
			return &ExitError{Code: ExitFailure, Message: "evaluating " + strconv.Quote(expr), Err: err}
		}
		if a.opts.echo {
			var b strings.Builder
			for _, q := range qs {
				b.WriteString("(" + q.String() + ")")
			}
			fmt.Fprintf(out, "%s : ", b.String())
		}
		if a.opts.norm {
			fmt.Fprintf(out, "%v\t%s\n", r, strconv.FormatFloat(quaternion.Abs(r), 'g', -1, 64))
			continue
		}
		fmt.Fprintln(out, r)
	}
	return nil
}

// inputs collects the expressions to evaluate: arguments first, then the
// input file, which is stdin if there are no arguments.
func (a *app) inputs(cmd *cobra.Command, args []string) ([]string, error) {
	exprs := append([]string(nil), args...)
	var src io.Reader
	switch {
	case a.opts.in != "" && a.opts.in != "-":
		f, err := os.Open(a.opts.in)
		if err != nil {
			return nil, &ExitError{Code: ExitCommandError, Message: "opening input", Err: err}
		}
		defer f.Close()
		src = f
	case a.opts.in == "-", len(args) == 0:
		src = cmd.InOrStdin()
	}
	if src == nil {
		return exprs, nil
	}
	scan := bufio.NewScanner(src)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if !a.opts.lines {
			exprs = append(exprs, line)
			break
		}
		if line != "" {
			exprs = append(exprs, line)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "reading input", Err: err}
	}
	if len(exprs) == 0 {
		return nil, &ExitError{Code: ExitCommandError, Message: "no expression given"}
	}
	return exprs, nil
}

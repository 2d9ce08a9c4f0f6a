package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/quaternion"
)

// CaseFile is a list of expressions with their expected results.
type CaseFile struct {
	Cases []Case `yaml:"cases"`
}

// Case is one expression to check.
type Case struct {
	// Name identifies the case in the report. Defaults to the input.
	Name string `yaml:"name,omitempty"`
	// Input is the expression to evaluate.
	Input string `yaml:"input"`
	// Want is the expected canonical result. Exactly one of Want and Error
	// must be set.
	Want string `yaml:"want,omitempty"`
	// Error is a substring of the expected error message.
	Error string `yaml:"error,omitempty"`
	// Strict parses the input in strict mode.
	Strict bool `yaml:"strict,omitempty"`
	// Duplicates is the duplicate term policy, "last" (default) or "sum".
	Duplicates string `yaml:"duplicates,omitempty"`
}

// LoadCases reads a case file.
func LoadCases(path string) (*CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	return ParseCases(data)
}

// ParseCases decodes and validates a case file. Unknown fields are errors.
func ParseCases(data []byte) (*CaseFile, error) {
	var f CaseFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse case file: %w", err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("case file has no cases")
	}
	for k := range f.Cases {
		c := &f.Cases[k]
		if c.Name == "" {
			c.Name = c.Input
		}
		if (c.Want == "") == (c.Error == "") {
			return nil, fmt.Errorf("case %d (%s): exactly one of want and error must be set", k+1, c.Name)
		}
		switch c.Duplicates {
		case "", "last", "sum":
		default:
			return nil, fmt.Errorf("case %d (%s): duplicates must be last or sum, not %q", k+1, c.Name, c.Duplicates)
		}
	}
	return &f, nil
}

// options returns the parse options for the case, on top of base.
func (c *Case) options(base []quaternion.ParseOption) []quaternion.ParseOption {
	opts := append([]quaternion.ParseOption(nil), base...)
	if c.Strict {
		opts = append(opts, quaternion.Strict())
	}
	switch c.Duplicates {
	case "last":
		opts = append(opts, quaternion.OnDuplicate(quaternion.LastWins))
	case "sum":
		opts = append(opts, quaternion.OnDuplicate(quaternion.Sum))
	}
	return opts
}

// Verdict is the outcome of checking one case. Detail is empty when the
// case passed.
type Verdict struct {
	Case   *Case
	Got    string
	Detail string
}

func (v Verdict) Passed() bool {
	return v.Detail == ""
}

// check evaluates a case.
func (a *app) check(c *Case, base []quaternion.ParseOption) Verdict {
	_, r, err := a.eval(c.Input, c.options(base))
	v := Verdict{Case: c}
	switch {
	case err != nil:
		v.Got = err.Error()
		if c.Error == "" {
			v.Detail = fmt.Sprintf("want %s, got error %q", c.Want, v.Got)
		} else if !strings.Contains(v.Got, c.Error) {
			v.Detail = fmt.Sprintf("want error containing %q, got %q", c.Error, v.Got)
		}
	default:
		v.Got = r.String()
		if c.Error != "" {
			v.Detail = fmt.Sprintf("want error containing %q, got %s", c.Error, v.Got)
		} else if v.Got != c.Want {
			v.Detail = fmt.Sprintf("want %s, got %s", c.Want, v.Got)
		}
	}
	return v
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <cases.yaml>...",
		Short: "Evaluate expressions from case files and compare with expected results",
		Long: `check reads YAML case files of the form

  cases:
    - name: product
      input: (i+j)(k)
      want: i-j
    - input: (1.2.3)
      error: invalid coefficient

and reports PASS or FAIL for each case. It exits with status 1 if any case
fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			base := a.parseOptions()
			var pass, fail int
			for _, path := range args {
				f, err := LoadCases(path)
				if err != nil {
					return &ExitError{Code: ExitCommandError, Message: path, Err: err}
				}
				for k := range f.Cases {
					v := a.check(&f.Cases[k], base)
					if v.Passed() {
						pass++
						fmt.Fprintf(out, "PASS %s\n", v.Case.Name)
						continue
					}
					fail++
					a.logger.Debug("case failed", zap.String("file", path), zap.String("case", v.Case.Name), zap.String("got", v.Got))
					fmt.Fprintf(out, "FAIL %s: %s\n", v.Case.Name, v.Detail)
				}
			}
			fmt.Fprintf(out, "%d passed, %d failed\n", pass, fail)
			if fail > 0 {
				return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d of %d cases failed", fail, pass+fail)}
			}
			return nil
		},
	}
}

// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/zfdash/internal/cli/config"
	"github.com/leapstack-labs/zfdash/internal/cli/output"
	"github.com/leapstack-labs/zfdash/internal/source"
	"github.com/leapstack-labs/zfdash/internal/testutil"
)

// SampleConfig returns a config pointing at a freshly written sample CSV,
// rendering in the given mode.
func SampleConfig(t *testing.T, mode output.Mode) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Source = source.Config{Path: testutil.WriteSampleCSV(t)}
	cfg.OutputFormat = string(mode)
	return cfg
}

// Result holds the captured streams of one command execution.
type Result struct {
	Out    string
	ErrOut string
}

// ExecuteCommand runs cmd with args, injecting cfg and a test logger the way
// the root command does.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (Result, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := context.WithValue(context.Background(), config.ConfigKey(), cfg)
	ctx = context.WithValue(ctx, config.LoggerKey(), testutil.NewTestLogger(t))
	err := cmd.ExecuteContext(ctx)

	return Result{Out: out.String(), ErrOut: errOut.String()}, err
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}

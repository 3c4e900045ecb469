// Package blast wraps the NCBI BLAST+ command line suite: finding the
// installed executables, building databases with makeblastdb and running
// the alignment searches. All alignment work happens in the external
// binaries; their tabular output is passed back untouched.
package blast

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"go.uber.org/multierr"

	"github.com/MrTomRod/ncbi-blast/config"
)

// tools are the BLAST+ executables that must be installed.
var tools = []string{"makeblastdb", "blastn", "blastp", "blastx", "tblastn", "tblastx"}

// Blast is a handle on an installed BLAST+ suite.
type Blast struct {
	// executables maps each tool name to its resolved path
	executables map[string]string

	// outFormat is the BLAST alignment view (the -outfmt flag, 0-18)
	outFormat int

	// columns are optional format specifiers for outfmt 6, 7 and 10
	columns []string

	// verbose errors include the full command and its stdout
	verbose bool
}

// New resolves the BLAST+ executables and returns a handle on the suite.
//
// If conf.BlastPath is set, each tool is expected inside that directory.
// Otherwise the tools are searched for in $PATH. Every missing tool is
// reported, not just the first.
func New(conf *config.Config) (*Blast, error) {
	if conf.OutFormat < 0 || conf.OutFormat > 18 {
		return nil, fmt.Errorf("outfmt must be between 0 and 18, is: %d", conf.OutFormat)
	}

	if len(conf.Columns) > 0 {
		if conf.OutFormat != 6 && conf.OutFormat != 7 && conf.OutFormat != 10 {
			return nil, fmt.Errorf("columns can only be specified with outfmt 6, 7 and 10, outfmt is: %d", conf.OutFormat)
		}
		for _, col := range conf.Columns {
			if !reValue.MatchString(col) {
				return nil, fmt.Errorf("invalid outfmt column: %s", col)
			}
		}
	}

	b := &Blast{
		executables: make(map[string]string, len(tools)),
		outFormat:   conf.OutFormat,
		columns:     conf.Columns,
		verbose:     conf.Verbose,
	}

	var errs error
	for _, tool := range tools {
		exe, err := findExecutable(tool, conf.BlastPath)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		b.executables[tool] = exe
	}
	if errs != nil {
		return nil, errs
	}

	return b, nil
}

// String describes the configured output format.
func (b *Blast) String() string {
	return fmt.Sprintf("Blast:outfmt=%d;columns=%s", b.outFormat, strings.Join(b.columns, ","))
}

// Version returns the version of the installed suite, eg "2.13.0+".
// It's read from the first line of "blastp -version".
func (b *Blast) Version() (string, error) {
	cmd := exec.Command(b.executables["blastp"], "-version")

	var stdout, stderrBuf bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return "", b.commandError("blastp", cmd, stdout.String(), stderrBuf.String(), err)
	}

	line, _, _ := strings.Cut(stdout.String(), "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", fmt.Errorf("unexpected blastp -version output: %q", line)
	}

	return fields[1], nil
}

// outfmt serializes the output format for the -outfmt flag.
func (b *Blast) outfmt() string {
	if len(b.columns) == 0 {
		return strconv.Itoa(b.outFormat)
	}

	return fmt.Sprintf("%d %s", b.outFormat, strings.Join(b.columns, " "))
}

// commandError wraps a failed (or complaining) BLAST+ invocation.
func (b *Blast) commandError(tool string, cmd *exec.Cmd, stdout, stderr string, err error) error {
	if !b.verbose {
		return fmt.Errorf("%s failed: %s", tool, strings.TrimSpace(stderr))
	}

	return fmt.Errorf(
		"%s command failed: %q: %v\nstdout: %s\nstderr: %s",
		tool, shellquote.Join(cmd.Args...), err, stdout, stderr,
	)
}

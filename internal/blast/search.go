package blast

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrSeqType flags a query whose alphabet doesn't fit the search program.
var ErrSeqType = errors.New("wrong sequence type")

// BlastN searches nucleotide databases with a nucleotide query.
func (b *Blast) BlastN(fasta string, dbs []string, extra []Arg) (string, error) {
	if !IsDNA(fasta) {
		return "", fmt.Errorf("%w: query is not a valid DNA sequence", ErrSeqType)
	}

	return b.search("blastn", fasta, dbs, extra)
}

// BlastP searches protein databases with a protein query.
func (b *Blast) BlastP(fasta string, dbs []string, extra []Arg) (string, error) {
	if !IsProtein(fasta) {
		return "", fmt.Errorf("%w: query is not a valid protein sequence", ErrSeqType)
	}

	return b.search("blastp", fasta, dbs, extra)
}

// BlastX searches protein databases with a translated nucleotide query.
func (b *Blast) BlastX(fasta string, dbs []string, extra []Arg) (string, error) {
	if !IsDNA(fasta) {
		return "", fmt.Errorf("%w: query is not a valid DNA sequence", ErrSeqType)
	}

	return b.search("blastx", fasta, dbs, extra)
}

// TBlastN searches translated nucleotide databases with a protein query.
func (b *Blast) TBlastN(fasta string, dbs []string, extra []Arg) (string, error) {
	if !IsProtein(fasta) {
		return "", fmt.Errorf("%w: query is not a valid protein sequence", ErrSeqType)
	}

	return b.search("tblastn", fasta, dbs, extra)
}

// Search runs the named search program against the databases and returns
// its tabular output. mode must be blastn, blastp, blastx or tblastn;
// the query alphabet is checked against the program's expectation.
func (b *Blast) Search(mode, fasta string, dbs []string, extra []Arg) (string, error) {
	switch mode {
	case "blastn":
		return b.BlastN(fasta, dbs, extra)
	case "blastp":
		return b.BlastP(fasta, dbs, extra)
	case "blastx":
		return b.BlastX(fasta, dbs, extra)
	case "tblastn":
		return b.TBlastN(fasta, dbs, extra)
	}

	return "", fmt.Errorf("mode must be blastn, blastp, blastx or tblastn, is: %s", mode)
}

// search stages the query in a temp file and executes the program.
func (b *Blast) search(mode, fasta string, dbs []string, extra []Arg) (string, error) {
	if len(dbs) == 0 {
		return "", errors.New("at least one database path is required")
	}
	for _, db := range dbs {
		if err := checkDBFile(db); err != nil {
			return "", err
		}
	}

	query, err := os.CreateTemp("", mode+"-query-*.fasta")
	if err != nil {
		return "", err
	}
	defer os.Remove(query.Name())

	if _, err := query.WriteString(fasta); err != nil {
		query.Close()
		return "", fmt.Errorf("failed to write query FASTA file at %s: %v", query.Name(), err)
	}
	if err := query.Close(); err != nil {
		return "", err
	}

	// multiple databases are one space-joined -db argument. the paths
	// were checked against blanks above, so the join is unambiguous
	args := []string{
		"-query", query.Name(),
		"-db", strings.Join(dbs, " "),
		"-outfmt", b.outfmt(),
	}
	args = append(args, argList(extra)...)

	cmd := exec.Command(b.executables[mode], args...)

	var stdout, stderrBuf bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return "", b.commandError(mode, cmd, stdout.String(), stderrBuf.String(), err)
	}

	return strings.TrimRight(stdout.String(), " \t\r\n"), nil
}

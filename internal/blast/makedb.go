package blast

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// dbExtensions are the index files makeblastdb writes next to the FASTA
// file, per database molecule type.
var dbExtensions = map[string][]string{
	"prot": {".pdb", ".phr", ".pin", ".pot", ".psq", ".ptf", ".pto"},
	"nucl": {".ndb", ".nhr", ".nin", ".not", ".nsq", ".ntf", ".nto"},
}

// DBOptions are the optional makeblastdb settings.
type DBOptions struct {
	// Title for the new database (-title)
	Title string

	// TaxID to assign to all sequences in the database (-taxid)
	TaxID int

	// Overwrite an existing database. If false and all the index files
	// are already on disk, makeblastdb isn't run at all.
	Overwrite bool
}

// MakeDB builds a BLAST database from the FASTA file via makeblastdb.
// dbtype must be "prot" or "nucl". The database is written next to the
// input file, which is also the path to search against afterwards.
func (b *Blast) MakeDB(file, dbtype string, opts DBOptions) error {
	exts, validType := dbExtensions[dbtype]
	if !validType {
		return fmt.Errorf("dbtype must be either prot or nucl, is: %s", dbtype)
	}

	if err := checkDBFile(file); err != nil {
		return err
	}

	if !opts.Overwrite && hasIndexFiles(file, exts) {
		return nil
	}

	args := []string{"-in", file, "-dbtype", dbtype}
	if opts.Title != "" {
		args = append(args, "-title", opts.Title)
	}
	if opts.TaxID != 0 {
		args = append(args, "-taxid", strconv.Itoa(opts.TaxID))
	}

	cmd := exec.Command(b.executables["makeblastdb"], args...)

	var stdout, stderrBuf bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	// makeblastdb reports bad input on stderr while still exiting 0,
	// eg protein residues under -dbtype nucl. Treat that as a failure.
	if err != nil || stderrBuf.Len() > 0 {
		return b.commandError("makeblastdb", cmd, stdout.String(), stderrBuf.String(), err)
	}

	return nil
}

// checkDBFile validates a FASTA/database path before handing it to BLAST.
func checkDBFile(file string) error {
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("file does not exist: %s", file)
	}
	if strings.ContainsRune(file, ' ') {
		return fmt.Errorf("file paths may not contain blanks: %s", file)
	}

	return nil
}

// hasIndexFiles reports whether every index file already exists.
func hasIndexFiles(file string, exts []string) bool {
	for _, ext := range exts {
		if _, err := os.Stat(file + ext); err != nil {
			return false
		}
	}

	return true
}

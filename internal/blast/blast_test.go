package blast

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrTomRod/ncbi-blast/config"
)

// testGene is a 240bp mock gene for building nucleotide test databases.
const testGene = "GGCCGCAATAAAATATCTTTATTTTCATTACATCTGTGTGTTGGTTTTTTGTGTGAATCG" +
	"ATAGTACTAACATGACCACCTTGATCTTCATGGTCTGGGTGCCCTCGTAGGGCTTGCCTT" +
	"CGCCCTCGGATGTGCACTTGAAGTGGTGGTTGTTCACGGTGCCCTCCATGTACAGCTTCA" +
	"TGTGCATGTTCTCCTTGATCAGCTCGCTCATAGGTCCAGGGTTCTCCTCCACGTCTCCAG"

// testProtein is a 60 residue mock protein for protein test databases.
const testProtein = "MKVLNNEFWDRTQWHEDSKYICQRPMGAMTSLVAGHEDSKYICQRPMGAWDRTQWMKVLN"

// testBlast returns a handle on a real BLAST+ install, skipping the
// test when the suite isn't installed.
func testBlast(t *testing.T) *Blast {
	t.Helper()

	b, err := New(&config.Config{OutFormat: 6, Verbose: true})
	if err != nil {
		t.Skipf("BLAST+ is not installed: %v", err)
	}

	return b
}

// writeTestFasta writes a FASTA file into a fresh temp dir.
func writeTestFasta(t *testing.T, name, contents string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	return file
}

func Test_New_validation(t *testing.T) {
	tests := []struct {
		name string
		conf *config.Config
	}{
		{
			"outfmt too small",
			&config.Config{OutFormat: -1},
		},
		{
			"outfmt too large",
			&config.Config{OutFormat: 19},
		},
		{
			"columns with pairwise outfmt",
			&config.Config{OutFormat: 5, Columns: []string{"qseqid"}},
		},
		{
			"column with a blank",
			&config.Config{OutFormat: 6, Columns: []string{"qseqid sseqid"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.conf); err == nil {
				t.Error("New() expected an error, got nil")
			}
		})
	}
}

func Test_New_missingTools(t *testing.T) {
	// an empty dir holds none of the executables. every missing tool
	// should show up in the one error
	_, err := New(&config.Config{BlastPath: t.TempDir(), OutFormat: 6})
	if err == nil {
		t.Fatal("New() expected an error, got nil")
	}

	for _, tool := range tools {
		if !strings.Contains(err.Error(), tool) {
			t.Errorf("New() error is missing tool %s: %v", tool, err)
		}
	}
}

func Test_String(t *testing.T) {
	b := &Blast{outFormat: 7, columns: []string{"qseqid", "evalue"}}

	if got, want := b.String(), "Blast:outfmt=7;columns=qseqid,evalue"; got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}

func Test_outfmt(t *testing.T) {
	tests := []struct {
		name  string
		blast *Blast
		want  string
	}{
		{
			"plain format",
			&Blast{outFormat: 6},
			"6",
		},
		{
			"format with columns",
			&Blast{outFormat: 7, columns: []string{"sseqid", "qstart", "qend"}},
			"7 sseqid qstart qend",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.blast.outfmt(); got != tt.want {
				t.Errorf("outfmt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Version(t *testing.T) {
	b := testBlast(t)

	version, err := b.Version()
	if err != nil {
		t.Fatalf("failed to read the BLAST+ version: %v", err)
	}
	if version == "" {
		t.Error("Version() returned an empty version")
	}
}

func Test_MakeDB(t *testing.T) {
	b := testBlast(t)

	file := writeTestFasta(t, "assembly.fna", ">gene1\n"+testGene+"\n")
	if err := b.MakeDB(file, "nucl", DBOptions{Overwrite: true}); err != nil {
		t.Fatalf("failed to build a nucleotide database: %v", err)
	}

	for _, ext := range dbExtensions["nucl"] {
		if _, err := os.Stat(file + ext); err != nil {
			t.Errorf("missing index file %s: %v", file+ext, err)
		}
	}

	// all index files exist now, a keep run shouldn't error
	if err := b.MakeDB(file, "nucl", DBOptions{Overwrite: false}); err != nil {
		t.Errorf("failed to keep an existing database: %v", err)
	}
}

func Test_MakeDB_protAsNucl(t *testing.T) {
	b := testBlast(t)

	// makeblastdb complains on stderr about protein residues under
	// -dbtype nucl. that must surface as an error
	file := writeTestFasta(t, "prot.faa", ">prot1\n"+testProtein+"\n")
	if err := b.MakeDB(file, "nucl", DBOptions{Overwrite: true}); err == nil {
		t.Error("MakeDB() expected an error for a protein file as nucl, got nil")
	}
}

func Test_MakeDB_validation(t *testing.T) {
	b := &Blast{}

	if err := b.MakeDB("x.fna", "rna", DBOptions{}); err == nil {
		t.Error("MakeDB() expected an error for dbtype rna, got nil")
	}

	if err := b.MakeDB(filepath.Join(t.TempDir(), "missing.fna"), "nucl", DBOptions{}); err == nil {
		t.Error("MakeDB() expected an error for a missing file, got nil")
	}

	blankFile := writeTestFasta(t, "two words.fna", ">gene1\nATGC\n")
	if err := b.MakeDB(blankFile, "nucl", DBOptions{}); err == nil {
		t.Error("MakeDB() expected an error for a path with a blank, got nil")
	}
}

func Test_BlastN(t *testing.T) {
	b := testBlast(t)

	file := writeTestFasta(t, "assembly.fna", ">gene1\n"+testGene+"\n")
	if err := b.MakeDB(file, "nucl", DBOptions{Overwrite: true}); err != nil {
		t.Fatalf("failed to build a nucleotide database: %v", err)
	}

	query := ">query1\n" + testGene[40:160] + "\n"
	out, err := b.BlastN(query, []string{file}, nil)
	if err != nil {
		t.Fatalf("failed to run blastn: %v", err)
	}

	line := strings.Split(out, "\n")[0]
	cols := strings.Split(line, "\t")
	if len(cols) < 3 {
		t.Fatalf("unexpected blastn output line: %q", line)
	}
	if !strings.Contains(cols[1], "gene1") {
		t.Errorf("first match = %s, want gene1", cols[1])
	}
	if cols[2] != "100.000" {
		t.Errorf("match identity = %s, want 100.000", cols[2])
	}
}

func Test_BlastP(t *testing.T) {
	b := testBlast(t)

	file := writeTestFasta(t, "proteome.faa", ">prot1\n"+testProtein+"\n")
	if err := b.MakeDB(file, "prot", DBOptions{Overwrite: true}); err != nil {
		t.Fatalf("failed to build a protein database: %v", err)
	}

	out, err := b.BlastP(">query1\n"+testProtein+"\n", []string{file}, nil)
	if err != nil {
		t.Fatalf("failed to run blastp: %v", err)
	}
	if !strings.Contains(out, "prot1") {
		t.Errorf("blastp output is missing the prot1 match: %q", out)
	}
}

func Test_BlastP_extraArgs(t *testing.T) {
	b := testBlast(t)

	file := writeTestFasta(t, "proteome.faa", ">prot1\n"+testProtein+"\n")
	if err := b.MakeDB(file, "prot", DBOptions{Overwrite: true}); err != nil {
		t.Fatalf("failed to build a protein database: %v", err)
	}

	extra, err := ParseArgString("-num_alignments 1")
	if err != nil {
		t.Fatal(err)
	}

	out, err := b.BlastP(">query1\n"+testProtein+"\n", []string{file}, extra)
	if err != nil {
		t.Fatalf("failed to run blastp with extra args: %v", err)
	}
	if len(strings.Split(strings.TrimSpace(out), "\n")) != 1 {
		t.Errorf("expected a single alignment, got: %q", out)
	}
}

func Test_multipleDBs(t *testing.T) {
	b := testBlast(t)

	dir := t.TempDir()
	db1 := filepath.Join(dir, "one.fna")
	db2 := filepath.Join(dir, "two.fna")
	if err := os.WriteFile(db1, []byte(">gene1\n"+testGene+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(db2, []byte(">gene2\n"+testGene+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, db := range []string{db1, db2} {
		if err := b.MakeDB(db, "nucl", DBOptions{Overwrite: true}); err != nil {
			t.Fatalf("failed to build %s: %v", db, err)
		}
	}

	// both databases are searched through one space-joined -db argument
	out, err := b.BlastN(">query1\n"+testGene+"\n", []string{db1, db2}, nil)
	if err != nil {
		t.Fatalf("failed to run blastn against two databases: %v", err)
	}

	if !strings.Contains(out, "gene1") || !strings.Contains(out, "gene2") {
		t.Errorf("expected matches in both databases, got: %q", out)
	}
}

func Test_Search_validation(t *testing.T) {
	b := &Blast{}
	dna := ">gene1\n" + testGene + "\n"

	// tblastx is installed but has no search wrapper
	if _, err := b.Search("tblastx", dna, []string{"db"}, nil); err == nil {
		t.Error("Search() expected an error for mode tblastx, got nil")
	}

	if _, err := b.BlastN(singleProtQuery, []string{"db"}, nil); !errors.Is(err, ErrSeqType) {
		t.Errorf("BlastN() with a protein query: error = %v, want ErrSeqType", err)
	}
	if _, err := b.BlastX(singleProtQuery, []string{"db"}, nil); !errors.Is(err, ErrSeqType) {
		t.Errorf("BlastX() with a protein query: error = %v, want ErrSeqType", err)
	}
	if _, err := b.BlastP(">abc\nATCATCXXXX\n", []string{"db"}, nil); !errors.Is(err, ErrSeqType) {
		t.Errorf("BlastP() with unknown residues: error = %v, want ErrSeqType", err)
	}
	if _, err := b.TBlastN(">abc\nATCATCXXXX\n", []string{"db"}, nil); !errors.Is(err, ErrSeqType) {
		t.Errorf("TBlastN() with unknown residues: error = %v, want ErrSeqType", err)
	}

	if _, err := b.BlastN(dna, nil, nil); err == nil {
		t.Error("BlastN() expected an error for no databases, got nil")
	}
	if _, err := b.BlastN(dna, []string{filepath.Join(t.TempDir(), "missing.fna")}, nil); err == nil {
		t.Error("BlastN() expected an error for a missing database, got nil")
	}
}

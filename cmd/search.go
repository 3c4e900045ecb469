package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrTomRod/ncbi-blast/internal/blast"
)

// blastnCmd searches a nucleotide database with a nucleotide query.
var blastnCmd = &cobra.Command{
	Use:                        "blastn",
	Short:                      "Search nucleotide databases with a nucleotide query",
	Run:                        searchRun("blastn"),
	SuggestionsMinimumDistance: 2,
	Example:                    "  ncbi-blast blastn --query gene.fasta --dbs assembly.fna",
}

// blastpCmd searches a protein database with a protein query.
var blastpCmd = &cobra.Command{
	Use:                        "blastp",
	Short:                      "Search protein databases with a protein query",
	Run:                        searchRun("blastp"),
	SuggestionsMinimumDistance: 2,
	Example:                    "  ncbi-blast blastp --query enzyme.faa --dbs proteome.faa",
}

// blastxCmd searches a protein database with a translated nucleotide query.
var blastxCmd = &cobra.Command{
	Use:                        "blastx",
	Short:                      "Search protein databases with a translated nucleotide query",
	Run:                        searchRun("blastx"),
	SuggestionsMinimumDistance: 2,
}

// tblastnCmd searches a translated nucleotide database with a protein query.
var tblastnCmd = &cobra.Command{
	Use:                        "tblastn",
	Short:                      "Search translated nucleotide databases with a protein query",
	Run:                        searchRun("tblastn"),
	SuggestionsMinimumDistance: 2,
}

// searchRun makes the cobra Run func for one of the search programs.
func searchRun(mode string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		queryPath, err := cmd.Flags().GetString("query")
		if err != nil {
			stderr.Fatalf("failed to parse query flag: %v", err)
		}

		query, err := os.ReadFile(queryPath)
		if err != nil {
			stderr.Fatalf("failed to read the query FASTA file at %s: %v", queryPath, err)
		}

		dbsFlag, err := cmd.Flags().GetString("dbs")
		if err != nil {
			stderr.Fatalf("failed to parse dbs flag: %v", err)
		}

		dbs := splitDBs(dbsFlag)
		if len(dbs) == 0 {
			stderr.Fatalln("must pass at least one BLAST database via --dbs")
		}

		argsFlag, err := cmd.Flags().GetString("args")
		if err != nil {
			stderr.Fatalf("failed to parse args flag: %v", err)
		}

		extra, err := blast.ParseArgString(argsFlag)
		if err != nil {
			stderr.Fatalf("failed to validate the extra BLAST arguments: %v", err)
		}

		b := newBlast()
		output, err := b.Search(mode, string(query), dbs, extra)
		if err != nil {
			stderr.Fatalf("failed to run %s: %v", mode, err)
		}

		outPath, err := cmd.Flags().GetString("out")
		if err != nil {
			stderr.Fatalf("failed to parse out flag: %v", err)
		}

		if outPath == "" {
			fmt.Println(output)
			return
		}
		if err := os.WriteFile(outPath, []byte(output+"\n"), 0644); err != nil {
			stderr.Fatalf("failed to write the results to %s: %v", outPath, err)
		}
	}
}

// splitDBs splits the dbs flag on commas. BLAST database paths can't
// contain blanks, so spaces separate too.
func splitDBs(dbsFlag string) []string {
	return strings.FieldsFunc(dbsFlag, func(c rune) bool {
		return c == ' ' || c == ','
	})
}

// set flags
func init() {
	for _, searchCmd := range []*cobra.Command{blastnCmd, blastpCmd, blastxCmd, tblastnCmd} {
		rootCmd.AddCommand(searchCmd)

		searchCmd.Flags().StringP("query", "q", "", "path to the query sequence <FASTA>")
		searchCmd.Flags().StringP("dbs", "d", "", "comma separated list of BLAST database paths")
		searchCmd.Flags().StringP("args", "a", "", "extra BLAST flags, eg: \"-evalue 1e-5 -max_target_seqs 5\"")
		searchCmd.Flags().StringP("out", "o", "", "output file for the results (default: stdout)")

		searchCmd.MarkFlagRequired("query")
		searchCmd.MarkFlagRequired("dbs")
	}
}

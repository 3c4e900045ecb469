package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MrTomRod/ncbi-blast/internal/blast"
)

// makedbCmd represents the makedb command
var makedbCmd = &cobra.Command{
	Use:   "makedb",
	Short: "Build a BLAST database from a FASTA file",
	Long: `Build a BLAST search database from a FASTA file using makeblastdb.

The index files are written next to the input file, whose path is also
the database path to search against afterwards. With --keep, an already
built database is left alone instead of being rebuilt.`,
	Run:                        runMakeDB,
	SuggestionsMinimumDistance: 2,
	Example:                    "  ncbi-blast makedb --in assembly.fna --dbtype nucl",
}

func runMakeDB(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if err != nil {
		stderr.Fatalf("failed to parse in flag: %v", err)
	}

	dbtype, err := cmd.Flags().GetString("dbtype")
	if err != nil {
		stderr.Fatalf("failed to parse dbtype flag: %v", err)
	}

	title, err := cmd.Flags().GetString("title")
	if err != nil {
		stderr.Fatalf("failed to parse title flag: %v", err)
	}

	taxid, err := cmd.Flags().GetInt("taxid")
	if err != nil {
		stderr.Fatalf("failed to parse taxid flag: %v", err)
	}

	keep, err := cmd.Flags().GetBool("keep")
	if err != nil {
		stderr.Fatalf("failed to parse keep flag: %v", err)
	}

	b := newBlast()
	opts := blast.DBOptions{
		Title:     title,
		TaxID:     taxid,
		Overwrite: !keep,
	}
	if err := b.MakeDB(in, dbtype, opts); err != nil {
		stderr.Fatalf("failed to build a BLAST database from %s: %v", in, err)
	}
}

// set flags
func init() {
	rootCmd.AddCommand(makedbCmd)

	makedbCmd.Flags().StringP("in", "i", "", "path to the FASTA file to index <FASTA>")
	makedbCmd.Flags().StringP("dbtype", "d", "", "molecule type of the database: prot or nucl")
	makedbCmd.Flags().StringP("title", "t", "", "title for the new database")
	makedbCmd.Flags().Int("taxid", 0, "taxonomy ID to assign to all sequences")
	makedbCmd.Flags().BoolP("keep", "k", false, "keep an existing database instead of rebuilding it")

	makedbCmd.MarkFlagRequired("in")
	makedbCmd.MarkFlagRequired("dbtype")
}

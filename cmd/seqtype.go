package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrTomRod/ncbi-blast/internal/blast"
)

// seqtypeCmd classifies a FASTA file as protein or nucleotide.
var seqtypeCmd = &cobra.Command{
	Use:   "seqtype",
	Short: "Classify a FASTA file as protein or nucleotide",
	Long: `Classify the sequences in a FASTA file by their alphabet.

Prints "nucl" if every sequence is made of nucleotide codes (IUPAC
ambiguity codes included), "prot" if every sequence is made of amino
acid codes, and "unknown" otherwise. A sequence that fits both alphabets
counts as nucleotide.`,
	Run:                        runSeqType,
	SuggestionsMinimumDistance: 2,
	Example:                    "  ncbi-blast seqtype --query unknown.fasta",
}

func runSeqType(cmd *cobra.Command, args []string) {
	queryPath, err := cmd.Flags().GetString("query")
	if err != nil {
		stderr.Fatalf("failed to parse query flag: %v", err)
	}

	query, err := os.ReadFile(queryPath)
	if err != nil {
		stderr.Fatalf("failed to read the query FASTA file at %s: %v", queryPath, err)
	}

	fmt.Println(blast.SeqType(string(query)))
}

// set flags
func init() {
	rootCmd.AddCommand(seqtypeCmd)

	seqtypeCmd.Flags().StringP("query", "q", "", "path to the FASTA file to classify")
	seqtypeCmd.MarkFlagRequired("query")
}

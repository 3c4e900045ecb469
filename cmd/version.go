package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// blastVersionCmd prints the version of the installed BLAST+ suite.
var blastVersionCmd = &cobra.Command{
	Use:                        "blast-version",
	Short:                      "Print the version of the installed BLAST+ suite",
	Run:                        runBlastVersion,
	SuggestionsMinimumDistance: 2,
}

func runBlastVersion(cmd *cobra.Command, args []string) {
	b := newBlast()

	version, err := b.Version()
	if err != nil {
		stderr.Fatalf("failed to read the BLAST+ version: %v", err)
	}

	fmt.Println(version)
}

func init() {
	rootCmd.AddCommand(blastVersionCmd)
}

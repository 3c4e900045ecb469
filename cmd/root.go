// Package cmd is for command line interactions with the ncbi-blast application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MrTomRod/ncbi-blast/config"
	"github.com/MrTomRod/ncbi-blast/internal/blast"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "ncbi-blast",
	Short: `Build and search BLAST databases using a local NCBI BLAST+ install.
All alignment work is delegated to the BLAST+ binaries`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// newBlast builds a BLAST+ handle from the viper settings, exiting if
// the executables can't be found.
func newBlast() *blast.Blast {
	b, err := blast.New(config.New())
	if err != nil {
		stderr.Fatalf("failed to find a BLAST+ install: %v", err)
	}

	return b
}

// set flags
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("blast-path", "p", "", "directory with the BLAST+ executables (default: search $PATH)")
	rootCmd.PersistentFlags().IntP("outfmt", "f", 6, "BLAST alignment view, 0-18 (see 'blastn -help')")
	rootCmd.PersistentFlags().StringSliceP("columns", "c", nil, "format specifiers for outfmt 6, 7 and 10")
	rootCmd.PersistentFlags().Bool("quiet", false, "only surface BLAST's stderr on failures")

	viper.BindPFlag("blast-path", rootCmd.PersistentFlags().Lookup("blast-path"))
	viper.BindPFlag("outfmt", rootCmd.PersistentFlags().Lookup("outfmt"))
	viper.BindPFlag("columns", rootCmd.PersistentFlags().Lookup("columns"))
}

// initConfig reads the settings file, if there is one, and environment
// variables prefixed with NCBI_BLAST.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigName(".ncbi-blast")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ncbi_blast")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		stderr.Printf("using settings file: %s", viper.ConfigFileUsed())
	}

	// --quiet is stored inverted as the "verbose" setting
	if quiet, err := rootCmd.PersistentFlags().GetBool("quiet"); err == nil && quiet {
		viper.Set("verbose", false)
	}
}

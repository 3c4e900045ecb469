// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in the settings file and those from the command line.
type Config struct {
	// directory holding the BLAST+ executables. empty means $PATH
	BlastPath string `mapstructure:"blast-path"`

	// the BLAST alignment view (-outfmt, 0 through 18)
	OutFormat int `mapstructure:"outfmt"`

	// format specifiers for outfmt 6, 7 and 10. eg: qseqid, evalue
	Columns []string `mapstructure:"columns"`

	// whether error messages include the full command and its stdout
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings file) and/or command line arguments.
func New() *Config {
	viper.SetDefault("outfmt", 6)
	viper.SetDefault("verbose", true)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}

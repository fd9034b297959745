package config

import (
	"fmt"
	"strings"

	"github.com/please-build/arindex"
)

// Config holds app configuration
type Config struct {
	// Variant is the member header variant to decode with (bsd, common)
	Variant string `mapstructure:"variant"`

	// StrictDuplicates rejects archives in which two members share a name,
	// instead of keeping the later member
	StrictDuplicates bool `mapstructure:"strict_duplicates"`

	// NoMmap reads archives into memory rather than mapping them
	NoMmap bool `mapstructure:"no_mmap"`

	OutputDir string `mapstructure:"output_dir"`
	Long      bool   `mapstructure:"long"`

	LogLevel     string `mapstructure:"log_level"`
	LogOutputDir string `mapstructure:"log_output_dir"`
}

// ArchiveOptions translates the configuration into options for arindex.New
func (c *Config) ArchiveOptions() ([]arindex.Option, error) {
	var opts []arindex.Option

	switch strings.ToLower(c.Variant) {
	case "", arindex.BSD.String():
		opts = append(opts, arindex.WithVariant(arindex.BSD))
	case arindex.Common.String():
		opts = append(opts, arindex.WithVariant(arindex.Common))
	default:
		return nil, fmt.Errorf("unknown variant %q (want %s or %s)", c.Variant, arindex.BSD, arindex.Common)
	}

	if c.StrictDuplicates {
		opts = append(opts, arindex.WithStrictDuplicates())
	}

	return opts, nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/please-build/arindex"
	"github.com/please-build/arindex/internal/config"
	"github.com/please-build/arindex/internal/logging"
	"github.com/please-build/arindex/internal/source"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// newRootCmd builds the arindex command tree
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:               "arindex",
		Short:             "Inspect and extract the members of ar archives",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "path to config file")

	// archive settings
	flags.String("variant", "bsd", "member header variant (bsd, common)")
	flags.Bool("strict-duplicates", false, "fail if two members share a name")
	flags.Bool("no-mmap", false, "read archives into memory instead of mapping them")

	// other opts
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-output-dir", "", "directory to write log files (if set, logs are written to both stderr and file)")

	a.v.BindPFlag("variant", flags.Lookup("variant"))
	a.v.BindPFlag("strict_duplicates", flags.Lookup("strict-duplicates"))
	a.v.BindPFlag("no_mmap", flags.Lookup("no-mmap"))
	a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	a.v.BindPFlag("log_output_dir", flags.Lookup("log-output-dir"))

	rootCmd.AddCommand(
		a.listCmd(),
		a.printCmd(),
		a.extractCmd(),
		a.infoCmd(),
	)

	return rootCmd
}

// initConfig reads in config file and environment variables if set
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "arindex"))
		}
		a.v.AddConfigPath("/etc/arindex")
		a.v.SetConfigName("config")
		a.v.SetConfigType("toml")
	}

	a.v.SetEnvPrefix("ARINDEX")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		// An explicitly requested config file must exist; the default locations are optional.
		if a.cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", a.v.ConfigFileUsed())

	return nil
}

// setup loads configuration and logging before any subcommand runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.initConfig(cmd); err != nil {
		return err
	}

	a.cfg = &config.Config{}
	if err := a.v.Unmarshal(a.cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.Setup(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogOutputDir)
	if err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}
	a.logger = logger

	return nil
}

// withArchive loads and indexes the archive at path, then calls fn with it.
// The archive is only valid until fn returns.
func (a *app) withArchive(path string, fn func(*arindex.Archive) error) error {
	opts, err := a.cfg.ArchiveOptions()
	if err != nil {
		return err
	}
	opts = append(opts, arindex.WithLogger(a.logger.With("archive", path)))

	buf, err := source.Open(path, !a.cfg.NoMmap)
	if err != nil {
		return err
	}
	defer buf.Close()

	a.logger.Debug("loaded archive", "archive", path, "bytes", len(buf.Bytes()), "mapped", buf.Mapped())

	archive, err := arindex.New(buf.Bytes(), opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return fn(archive)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/cmd/tgfix/commands"
	"github.com/walteh/tgfix/cmd/tgfix/opts"
	"github.com/walteh/tgfix/pkg/config"
	"github.com/walteh/tgfix/pkg/log"
)

// newRootCmd builds the command tree writing notices to stdout and
// structured logs to stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &opts.RootOpts{
		Stdout: stdout,
		Stderr: stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "tgfix",
		Short: "Batch-edit the text fields of Praat TextGrid files",
		Long: `tgfix rewrites the text = "..." fields of every TextGrid file in a directory.

Each editing command writes a .bak copy of a file before changing it, touches
only files where a field actually changes, and prints a summary of what it did.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, o)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewCaseCmd(o),
		commands.NewSpacingCmd(o),
		commands.NewWordsCmd(o),
		commands.NewRestoreCmd(o),
		commands.NewCleanCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.ConfigFile, "config", "c", "", "config file (.yaml, .hcl, .json or .toml)")
	flags.BoolVarP(&o.Debug, "debug", "d", false, "dump fields and diffs, enable debug logging")
	flags.BoolVarP(&o.Recursive, "recursive", "r", false, "search subdirectories too")
	flags.BoolVar(&o.NoBackup, "no-backup", false, "do not write .bak files")
	flags.StringVar(&o.BackupPolicy, "backup-policy", "", "keep, overwrite or none (default depends on the command)")
	flags.StringVar(&o.Pattern, "pattern", "", "file name glob (default \"*.TextGrid\")")
	flags.StringSliceVar(&o.Ignore, "ignore", nil, "globs of relative paths to skip")
}

// setup loads the config file, lets it fill in flags that were not given, and
// puts both loggers in the command context
func setup(cmd *cobra.Command, o *opts.RootOpts) error {
	zlog := setupLogging(o.Stderr, o.Debug)
	ctx := zlog.WithContext(cmd.Context())

	o.Config = &config.Config{}
	if o.ConfigFile != "" {
		cfg, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		o.Config = cfg
	}

	flags := cmd.Flags()
	if !flags.Changed("recursive") {
		o.Recursive = o.Config.Recursive
	}
	if !flags.Changed("pattern") {
		o.Pattern = o.Config.Pattern
	}
	if !flags.Changed("ignore") {
		o.Ignore = o.Config.Ignore
	}

	ctx = log.NewContext(ctx, log.New(o.Stdout, zlog))
	cmd.SetContext(ctx)
	return nil
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

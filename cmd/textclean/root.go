package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textclean/cmd/textclean/commands"
	"github.com/walteh/textclean/cmd/textclean/opts"
	"github.com/walteh/textclean/pkg/config"
	"github.com/walteh/textclean/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree. Running the root command without a
// subcommand cleans, so a bare `textclean` runs the built-in job.
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textclean [paths...]",
		Short: "Remove duplicated code blocks with ordered regex rules",
		Long: `textclean rewrites source files with an ordered list of regex rules and
folds runs of blank lines.

Without a config file it runs the built-in job: the duplicated getHeroName
methods in ` + config.DefaultTargetPath + ` are replaced with a pointer
to HeroService.shared.getHeroName().`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunClean(cmd, o, args)
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewCleanCmd(o),
		commands.NewStatusCmd(o),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "job file (.json, .yaml, .toml, .hcl); defaults to the built-in job")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&o.Atomic, "atomic", false, "write through a temp file and rename")
	cmd.PersistentFlags().BoolVar(&o.Backup, "backup", false, "keep the original as <file>.bak")
	cmd.PersistentFlags().BoolVar(&o.KeepBlankLines, "keep-blank-lines", false, "do not fold runs of blank lines")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false, "report every file")
}

// setup configures logging and loads the job
func setup(cmd *cobra.Command, o *opts.RootOpts) error {
	level := zerolog.InfoLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}

	o.Logger = log.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), level)
	ctx := log.NewContext(cmd.Context(), o.Logger)
	cmd.SetContext(ctx)

	if o.ConfigFile == "" {
		o.Config = config.Default()
		return nil
	}

	cfg, err := config.LoadConfig(ctx, o.ConfigFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	o.Config = cfg
	return nil
}

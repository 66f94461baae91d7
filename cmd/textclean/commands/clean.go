package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/textclean/cmd/textclean/opts"
	"github.com/walteh/textclean/pkg/log"
	"github.com/walteh/textclean/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCleanCmd creates a new clean command
func NewCleanCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [paths...]",
		Short: "Rewrite target files with the job's rules",
		Long: `Clean rewrites every target in place.
It will:
1. Apply each rule in order, replacing every match with its literal replacement
2. Fold runs of two or more blank lines into one
3. Write the result back and print the job's status lines

With no paths the configured targets are used.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunClean(cmd, o, args)
		},
	}

	return cmd
}

// RunClean runs the clean operation for the given paths
func RunClean(cmd *cobra.Command, o *opts.RootOpts, paths []string) error {
	op, err := operation.New(operation.Options{
		Config:   o.Job(paths),
		Reporter: log.FromContext(cmd.Context()),
		Verbose:  o.Verbose,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	if _, err := op.Clean(cmd.Context()); err != nil {
		return err
	}
	return nil
}

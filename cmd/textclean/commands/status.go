package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/textclean/cmd/textclean/opts"
	"github.com/walteh/textclean/pkg/log"
	"github.com/walteh/textclean/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [paths...]",
		Short: "Show what clean would change",
		Long: `Status runs every rule without writing anything.
It prints each target, a table of matches per rule and a patch for
every file that would change.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			op, err := operation.New(operation.Options{
				Config:   o.Job(args),
				Reporter: logger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			logger.Header("dry run")
			report, err := op.Status(cmd.Context())
			if err != nil {
				return err
			}

			logger.LogNewline()
			if n := len(report.Modified()); n > 0 {
				logger.Warningf("%d of %d file(s) would change", n, len(report.Files))
			} else {
				logger.Success("nothing to clean")
			}
			return nil
		},
	}

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/cmd/tgfix/opts"
	"github.com/walteh/tgfix/pkg/operation"
	"github.com/walteh/tgfix/pkg/status"
)

// NewRestoreCmd creates the restore command
func NewRestoreCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <directory>",
		Short: "Put .bak files back in place",
		Long: `Restore copies the .bak file of every TextGrid file over it and removes the
backup. Files without a backup are left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			options, err := o.Options(ctx, args[0], status.BackupKeep)
			if err != nil {
				return err
			}

			op, err := operation.NewRestoreOperation(options)
			if err != nil {
				return errors.Errorf("creating restore: %w", err)
			}
			return o.Run(ctx, op)
		},
	}

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/walteh/tgfix/cmd/tgfix/opts"
	"github.com/walteh/tgfix/pkg/status"
	"github.com/walteh/tgfix/pkg/text"
)

// NewSpacingCmd creates the final period spacing command
func NewSpacingCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spacing <directory>",
		Short: "Insert the missing space before a final period",
		Long: `Spacing rewrites field values ending in "word." or "word. " to "word .".

Counts are reported per case:
  attached        "word."  -> "word ."
  trailing space  "word. " -> "word ."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			options, err := o.Options(ctx, args[0], status.BackupKeep)
			if err != nil {
				return err
			}

			return o.RunEdit(ctx, options, "spacing correction", text.NewSpacingTransformer())
		},
	}

	return cmd
}

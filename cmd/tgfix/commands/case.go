package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/cmd/tgfix/opts"
	"github.com/walteh/tgfix/pkg/status"
	"github.com/walteh/tgfix/pkg/text"
)

// NewCaseCmd creates the case conversion command
func NewCaseCmd(o *opts.RootOpts) *cobra.Command {
	var (
		toUpper  bool
		language string
	)

	cmd := &cobra.Command{
		Use:   "case <directory>",
		Short: "Convert text fields to lowercase or uppercase",
		Long: `Case converts the content of every text = "..." field to lowercase, or to
uppercase with --to-uppercase. Only fields whose value changes are counted.

Use --language to apply language specific rules, e.g. "tr" for the dotted
and dotless i.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !cmd.Flags().Changed("language") && o.Config.Language != "" {
				language = o.Config.Language
			}

			options, err := o.Options(ctx, args[0], status.BackupKeep)
			if err != nil {
				return err
			}

			direction := text.ToLower
			if toUpper {
				direction = text.ToUpper
			}
			caser, err := text.NewCaseTransformer(direction, language)
			if err != nil {
				return errors.Errorf("creating case converter: %w", err)
			}

			return o.RunEdit(ctx, options, direction.String()+" conversion", caser)
		},
	}

	cmd.Flags().BoolVar(&toUpper, "to-uppercase", false, "convert to uppercase instead of lowercase")
	cmd.Flags().StringVar(&language, "language", "", "BCP 47 language tag for case rules (default language neutral)")

	return cmd
}

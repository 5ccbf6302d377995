package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/cmd/tgfix/opts"
	"github.com/walteh/tgfix/pkg/log"
	"github.com/walteh/tgfix/pkg/status"
	"github.com/walteh/tgfix/pkg/text"
	"github.com/walteh/tgfix/pkg/wordmap"
)

type wordsFlags struct {
	wrongWords        string
	correctWords      string
	removeParentheses bool
	replaceHyphens    bool
	normalize         bool
}

// NewWordsCmd creates the word replacement command
func NewWordsCmd(o *opts.RootOpts) *cobra.Command {
	f := &wordsFlags{}

	cmd := &cobra.Command{
		Use:   "words <directory>",
		Short: "Replace wrong words, strip parentheses, fold hyphens",
		Long: `Words corrects text fields using two line aligned lists: line N of
--wrong-words is replaced by line N of --correct-words when a field value is
exactly that word.

--remove-parentheses deletes every "(...)" inside a value and
--replace-hyphens turns every "-" and "_" into a space. The steps run in that
order on each file, which is backed up and written once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f.mergeConfig(cmd, o)

			options, err := o.Options(ctx, args[0], status.BackupOverwrite)
			if err != nil {
				return err
			}

			if err := f.validate(); err != nil {
				return err
			}

			logger := log.FromContext(ctx)
			var steps []text.Transformer

			if f.wrongWords != "" {
				words, err := wordmap.Load(ctx, f.wrongWords, f.correctWords, wordmap.Options{Normalize: f.normalize})
				if err != nil {
					return errors.Errorf("loading word lists: %w", err)
				}

				switch {
				case words.Len() > 0:
					logger.Info("Word corrections:")
					for _, e := range words.Entries() {
						logger.Line(fmt.Sprintf("  - '%s' → '%s'", e.Wrong, e.Correct))
					}
					steps = append(steps, text.NewWordTransformer(words))
				case !f.removeParentheses && !f.replaceHyphens:
					return errors.Errorf("word lists are empty and no other action was requested")
				default:
					logger.Warning("Word lists are empty, skipping word replacement")
				}
			}

			if f.removeParentheses {
				steps = append(steps, text.NewParenTransformer())
			}
			if f.replaceHyphens {
				steps = append(steps, text.NewHyphenTransformer())
			}

			return o.RunEdit(ctx, options, "word replacement", steps...)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.wrongWords, "wrong-words", "", "file with one wrong word per line")
	flags.StringVar(&f.correctWords, "correct-words", "", "file with the matching correct word per line")
	flags.BoolVar(&f.removeParentheses, "remove-parentheses", false, "remove (...) spans inside values")
	flags.BoolVar(&f.replaceHyphens, "replace-hyphens", false, "replace - and _ inside values with spaces")
	flags.BoolVar(&f.normalize, "normalize", false, "compare words and values in Unicode NFC form")

	return cmd
}

// mergeConfig fills flags that were not given from the config file
func (f *wordsFlags) mergeConfig(cmd *cobra.Command, o *opts.RootOpts) {
	flags := cmd.Flags()
	if !flags.Changed("normalize") && o.Config.Normalize {
		f.normalize = true
	}

	w := o.Config.Words
	if w == nil {
		return
	}
	if !flags.Changed("wrong-words") && !flags.Changed("correct-words") && w.WrongWords != "" {
		f.wrongWords = w.WrongWords
		f.correctWords = w.CorrectWords
	}
	if !flags.Changed("remove-parentheses") && w.RemoveParentheses {
		f.removeParentheses = true
	}
	if !flags.Changed("replace-hyphens") && w.ReplaceHyphens {
		f.replaceHyphens = true
	}
}

func (f *wordsFlags) validate() error {
	if (f.wrongWords == "") != (f.correctWords == "") {
		return errors.Errorf("--wrong-words and --correct-words must be given together")
	}

	for _, path := range []string{f.wrongWords, f.correctWords} {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return errors.Errorf("%s is not a valid file", path)
		}
	}

	if f.wrongWords == "" && !f.removeParentheses && !f.replaceHyphens {
		return errors.Errorf("at least one action is required: --wrong-words/--correct-words, --remove-parentheses or --replace-hyphens")
	}

	return nil
}

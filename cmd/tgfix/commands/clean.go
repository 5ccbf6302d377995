// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/cmd/tgfix/opts"
	"github.com/walteh/tgfix/pkg/operation"
	"github.com/walteh/tgfix/pkg/status"
)

// NewCleanCmd creates the clean command
func NewCleanCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <directory>",
		Short: "Remove .bak files",
		Long: `Clean removes the .bak file of every TextGrid file in the directory.
The TextGrid files themselves are not touched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			options, err := o.Options(ctx, args[0], status.BackupKeep)
			if err != nil {
				return err
			}

			op, err := operation.NewCleanOperation(options)
			if err != nil {
				return errors.Errorf("creating clean: %w", err)
			}
			return o.Run(ctx, op)
		},
	}

	return cmd
}

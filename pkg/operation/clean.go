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

package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/pkg/log"
	"github.com/walteh/tgfix/pkg/report"
	"github.com/walteh/tgfix/pkg/status"
)

// 🧹 NewCleanOperation creates a new clean operation
func NewCleanOperation(opts Options) (*CleanOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &CleanOperation{
		BaseOperation: NewBaseOperation(opts, report.New("Summary")),
	}, nil
}

// 🧹 CleanOperation removes the backups of candidate files
type CleanOperation struct {
	BaseOperation
}

var _ Operation = (*CleanOperation)(nil)

// 🏃 Execute runs the clean operation
func (op *CleanOperation) Execute(ctx context.Context) error {
	files, err := op.listFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	op.Logger.Header("removing backups")

	return eachFile(ctx, files, func(ctx context.Context, path string) {
		removed, err := op.cleanFile(ctx, path)
		if err != nil {
			op.recordFailure(ctx, path, errors.Errorf("cleaning %s: %w", path, err))
			return
		}
		if !removed {
			op.summary.AddFile(0, status.StatusSkipped)
			return
		}
		op.summary.AddFile(0, status.StatusRemoved)
		op.Logger.LogFileOperation(ctx, log.FileOperation{Path: path + status.BackupSuffix, Status: status.StatusRemoved})
	})
}

// 🗑️ cleanFile removes the backup of a file if there is one
func (op *CleanOperation) cleanFile(ctx context.Context, path string) (bool, error) {
	exists, err := op.StatusMgr.BackupExists(ctx, path)
	if err != nil || !exists {
		return false, err
	}

	if err := op.StatusMgr.RemoveBackup(ctx, path); err != nil {
		return false, errors.Errorf("deleting backup: %w", err)
	}
	return true, nil
}

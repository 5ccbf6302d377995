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

	"github.com/walteh/tgfix/pkg/log"
	"github.com/walteh/tgfix/pkg/provider"
	"github.com/walteh/tgfix/pkg/report"
	"github.com/walteh/tgfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one batch run over the files of a provider
type Operation interface {
	// Execute processes every candidate file
	Execute(ctx context.Context) error

	// Summary returns the totals gathered by Execute
	Summary() *report.Summary
}

// 🔧 Options contains what every operation needs
type Options struct {
	// Provider lists the candidate files
	Provider provider.Provider
	// StatusMgr reads, writes and backs up files below the provider root
	StatusMgr *status.Manager
	// Backup decides when backups are written
	Backup status.BackupPolicy
	// Logger prints per-file notices
	Logger *log.Logger
}

func (o Options) validate() error {
	if o.Provider == nil {
		return errors.Errorf("provider is required")
	}
	if o.StatusMgr == nil {
		return errors.Errorf("status manager is required")
	}
	if o.Logger == nil {
		return errors.Errorf("logger is required")
	}
	return nil
}

// 🧱 BaseOperation holds the shared options and summary
type BaseOperation struct {
	Options
	summary *report.Summary
}

// NewBaseOperation creates a BaseOperation reporting into summary.
func NewBaseOperation(opts Options, summary *report.Summary) BaseOperation {
	return BaseOperation{Options: opts, summary: summary}
}

// Summary implements Operation.Summary
func (b *BaseOperation) Summary() *report.Summary {
	return b.summary
}

// 📂 listFiles asks the provider for candidates. An empty result is warned
// about and reported as no files.
func (b *BaseOperation) listFiles(ctx context.Context) ([]string, error) {
	files, err := b.Provider.ListFiles(ctx)
	if err != nil {
		return nil, errors.Errorf("listing files: %w", err)
	}
	if len(files) == 0 {
		b.Logger.Warningf("No TextGrid files found in %s", b.Provider.Root())
		return nil, nil
	}
	return files, nil
}

// recordFailure logs a per-file error and counts the file as failed.
func (b *BaseOperation) recordFailure(ctx context.Context, path string, err error) {
	b.summary.AddFile(0, status.StatusFailed)
	b.Logger.LogFileOperation(ctx, log.FileOperation{
		Path:   path,
		Status: status.StatusFailed,
		Err:    err,
	})
}

package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/pkg/log"
	"github.com/walteh/tgfix/pkg/report"
	"github.com/walteh/tgfix/pkg/status"
)

// ♻️ NewRestoreOperation creates an operation putting backups back in place
func NewRestoreOperation(opts Options) (*RestoreOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &RestoreOperation{
		BaseOperation: NewBaseOperation(opts, report.New("Summary")),
	}, nil
}

// ♻️ RestoreOperation copies each file's backup over it and removes the backup
type RestoreOperation struct {
	BaseOperation
}

var _ Operation = (*RestoreOperation)(nil)

// 🏃 Execute runs the restore operation
func (op *RestoreOperation) Execute(ctx context.Context) error {
	files, err := op.listFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	op.Logger.Header("restoring backups")

	return eachFile(ctx, files, func(ctx context.Context, path string) {
		restored, err := op.restoreFile(ctx, path)
		if err != nil {
			op.recordFailure(ctx, path, errors.Errorf("restoring %s: %w", path, err))
			return
		}
		if !restored {
			op.summary.AddFile(0, status.StatusSkipped)
			return
		}
		op.summary.AddFile(0, status.StatusRestored)
		op.Logger.LogFileOperation(ctx, log.FileOperation{Path: path, Status: status.StatusRestored})
	})
}

func (op *RestoreOperation) restoreFile(ctx context.Context, path string) (bool, error) {
	exists, err := op.StatusMgr.BackupExists(ctx, path)
	if err != nil || !exists {
		return false, err
	}

	unlock, err := op.StatusMgr.Lock(ctx, path)
	if err != nil {
		return false, err
	}
	defer unlock()

	if err := op.StatusMgr.RestoreFile(ctx, path); err != nil {
		return false, err
	}
	return true, nil
}

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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/pkg/log"
	"github.com/walteh/tgfix/pkg/report"
	"github.com/walteh/tgfix/pkg/status"
	"github.com/walteh/tgfix/pkg/text"
	"github.com/walteh/tgfix/pkg/textgrid"
)

// ✏️ NewEditOperation creates an operation running pipeline over every file
func NewEditOperation(opts Options, title string, pipeline *text.Pipeline) (*EditOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if pipeline == nil || len(pipeline.Steps()) == 0 {
		return nil, errors.Errorf("at least one transformation is required")
	}
	return &EditOperation{
		BaseOperation: NewBaseOperation(opts, report.New("Summary", pipeline.Steps()...)),
		title:         title,
		pipeline:      pipeline,
	}, nil
}

// ✏️ EditOperation rewrites the text fields of every candidate file
type EditOperation struct {
	BaseOperation
	title    string
	pipeline *text.Pipeline
}

var _ Operation = (*EditOperation)(nil)

// 🏃 Execute runs the edit operation. Per-file errors are reported and the
// batch continues; only listing failures and cancellation are returned.
func (op *EditOperation) Execute(ctx context.Context) error {
	files, err := op.listFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	op.Logger.Header(op.title)
	op.Logger.Infof("Processing %d TextGrid files...", len(files))

	return eachFile(ctx, files, func(ctx context.Context, path string) {
		size, res, err := op.processFile(ctx, path)
		if err != nil {
			op.recordFailure(ctx, path, errors.Errorf("processing %s: %w", path, err))
			return
		}

		if !res.WasModified() {
			op.summary.AddFile(size, status.StatusUnchanged)
			if op.Logger.Debug() {
				op.Logger.LogFileOperation(ctx, log.FileOperation{Path: path, Status: status.StatusUnchanged})
			}
			return
		}

		op.summary.AddFile(size, status.StatusModified)
		op.summary.AddResult(res)

		var details []text.Detail
		for _, step := range res.Steps {
			details = append(details, step.Details...)
		}
		op.Logger.LogFileOperation(ctx, log.FileOperation{
			Path:         path,
			Status:       status.StatusModified,
			Replacements: res.ReplacementCount(),
			Details:      details,
		})
	})
}

// 📄 processFile transforms a single file and writes it back when a field
// changed. The backup holds the bytes as they were read.
func (op *EditOperation) processFile(ctx context.Context, path string) (int64, *text.PipelineResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	ctx = logger.WithContext(ctx)

	unlock, err := op.StatusMgr.Lock(ctx, path)
	if err != nil {
		return 0, nil, err
	}
	defer unlock()

	raw, err := op.StatusMgr.ReadFile(ctx, path)
	if err != nil {
		return 0, nil, err
	}
	size := int64(len(raw))

	doc, err := textgrid.Decode(raw)
	if err != nil {
		return size, nil, errors.Errorf("decoding file: %w", err)
	}
	logger.Debug().Str("encoding", doc.Encoding.String()).Int("bytes", len(raw)).Msg("decoded file")

	op.Logger.DumpFields("fields before", doc.Content)

	res, err := op.pipeline.Transform(ctx, doc.Content)
	if err != nil {
		return size, nil, err
	}
	if !res.WasModified() {
		return size, res, nil
	}

	out, err := doc.Encode(res.ModifiedContent)
	if err != nil {
		return size, nil, errors.Errorf("encoding file: %w", err)
	}

	if _, err := op.StatusMgr.BackupContent(ctx, path, raw, op.Backup); err != nil {
		return size, nil, err
	}

	if err := op.StatusMgr.WriteFileAtomic(ctx, path, out); err != nil {
		return size, nil, err
	}

	op.Logger.DumpFields("fields after", res.ModifiedContent)
	op.Logger.LogFieldDiffs(res.OriginalContent, res.ModifiedContent)

	return size, res, nil
}

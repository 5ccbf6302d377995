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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/tgfix/pkg/status"
	"github.com/walteh/tgfix/pkg/text"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "a.TextGrid",
					Status:       status.StatusModified,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				"✓ a.TextGrid                          modified   2 replacements",
			},
		},
		{
			name: "log_file_operation_with_details",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "a.TextGrid",
					Status:       status.StatusModified,
					Replacements: 3,
					Details: []text.Detail{
						{Key: "chien", Replacement: "chat", Count: 2},
						{Key: "attached", Count: 1},
					},
				})
			},
			wantLogs: []string{
				"✓ a.TextGrid                          modified   3 replacements",
				"- 'chien' → 'chat': 2",
				"- attached: 1",
			},
		},
		{
			name: "log_failed_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:   "b.TextGrid",
					Status: status.StatusFailed,
					Err:    errors.New("reading file: permission denied"),
				})
			},
			wantLogs: []string{
				"✗ b.TextGrid                          failed",
				"reading file: permission denied",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("case conversion")
			},
			wantLogs: []string{
				"tgfix • case conversion",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.Nop())

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestDebugOutput(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	before := "text = \"arbre.\"\ntext = \"ok\"\n"
	after := "text = \"arbre .\"\ntext = \"ok\"\n"

	t.Run("silent_without_debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(buf, zerolog.New(io.Discard).Level(zerolog.WarnLevel))
		assert.False(t, logger.Debug())

		logger.DumpFields("before", before)
		logger.LogFieldDiffs(before, after)
		assert.Empty(t, buf.String())
	})

	t.Run("dump_and_diff_with_debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel))
		assert.True(t, logger.Debug())

		logger.DumpFields("before", before)
		out := buf.String()
		assert.Contains(t, out, "before (2 fields)")
		assert.Contains(t, out, `"arbre."`)
		assert.Contains(t, out, `"ok"`)

		buf.Reset()
		logger.LogFieldDiffs(before, after)
		out = buf.String()
		assert.Contains(t, out, "arbre{+ +}.")
		assert.NotContains(t, out, "ok", "unchanged fields should not be diffed")
	})
}

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
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/walteh/tgfix/pkg/status"
	"github.com/walteh/tgfix/pkg/text"
	"github.com/walteh/tgfix/pkg/textgrid"
)

// 🎯 FileOperation represents a per-file outcome for logging
type FileOperation struct {
	Path         string            // File path relative to the scanned directory
	Status       status.FileStatus // What happened to the file
	Replacements int               // Number of replacements made
	Details      []text.Detail     // Optional breakdown printed below the file line
	Err          error             // Set when Status is StatusFailed
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	debug   bool
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Debug output is enabled when zlog is at debug
// level or lower.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		debug:   zlog.GetLevel() <= zerolog.DebugLevel,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// Debug reports whether debug dumps are printed.
func (l *Logger) Debug() bool {
	return l.debug
}

// 📝 LogFileOperation logs a per-file outcome
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.FormatFileLine(op.Path, op.Status, op.Replacements))
	if op.Err != nil {
		fmt.Fprintf(l.console, "%s%s\n", strings.Repeat(" ", 6), color.RedString(op.Err.Error()))
	}
	for _, d := range op.Details {
		fmt.Fprintln(l.console, status.FormatDetailLine(d.Key, d.Replacement, d.Count))
	}

	evt := l.zlog.Info()
	if op.Err != nil {
		evt = l.zlog.Error().Err(op.Err)
	}
	evt.Str("file", op.Path).
		Str("status", op.Status.String()).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 🔍 DumpFields prints every field value of content under a title. Only
// active in debug mode.
func (l *Logger) DumpFields(title, content string) {
	if !l.debug {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	printer := pterm.PrefixPrinter{
		Prefix:       pterm.Prefix{Text: "FIELD", Style: pterm.NewStyle(pterm.BgGray, pterm.FgLightWhite)},
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
	}
	p := printer.WithWriter(l.console)

	values := textgrid.Values(content)
	fmt.Fprintf(l.console, "%s %s\n", color.New(color.Faint).Sprint("•"), fmt.Sprintf("%s (%d fields)", title, len(values)))
	for i, v := range values {
		p.Printfln("%4d  %q", i, v)
	}
}

// 🔍 LogFieldDiffs prints a diff for each field whose value changed between
// before and after. Only active in debug mode.
func (l *Logger) LogFieldDiffs(before, after string) {
	if !l.debug {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	old := textgrid.Values(before)
	cur := textgrid.Values(after)
	n := min(len(old), len(cur))

	dmp := diffmatchpatch.New()
	for i := 0; i < n; i++ {
		if old[i] == cur[i] {
			continue
		}
		diffs := dmp.DiffMain(old[i], cur[i], false)
		fmt.Fprintf(l.console, "%s%4d  %s\n", strings.Repeat(" ", 6), i, renderDiff(dmp, diffs))
	}
}

func renderDiff(dmp *diffmatchpatch.DiffMatchPatch, diffs []diffmatchpatch.Diff) string {
	if !color.NoColor {
		return dmp.DiffPrettyText(diffs)
	}

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("tgfix")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Line prints msg as is, without a symbol
func (l *Logger) Line(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

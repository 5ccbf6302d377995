package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	ptext "github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/walteh/tgfix/pkg/status"
	"github.com/walteh/tgfix/pkg/text"
)

// StepTotal accumulates the counts of one transformer across files.
type StepTotal struct {
	Name    string
	Label   string
	Count   int
	Details []text.Detail
}

// Summary aggregates per-file outcomes of one run.
type Summary struct {
	Title        string
	FilesScanned int
	BytesScanned int64
	Steps        []*StepTotal

	counts map[status.FileStatus]int
	steps  map[string]*StepTotal
}

// New creates a summary with one total per transformer, in pipeline order.
func New(title string, steps ...text.Transformer) *Summary {
	s := &Summary{
		Title:  title,
		counts: make(map[status.FileStatus]int),
		steps:  make(map[string]*StepTotal),
	}
	for _, t := range steps {
		st := &StepTotal{Name: t.Name(), Label: t.Label()}
		s.Steps = append(s.Steps, st)
		s.steps[st.Name] = st
	}
	return s
}

// AddFile records one scanned file and what happened to it.
func (s *Summary) AddFile(size int64, st status.FileStatus) {
	s.FilesScanned++
	s.BytesScanned += size
	s.counts[st]++
}

// AddResult folds the step results of one modified file into the totals.
func (s *Summary) AddResult(res *text.PipelineResult) {
	if res == nil {
		return
	}
	for _, r := range res.Steps {
		st, ok := s.steps[r.Name]
		if !ok {
			st = &StepTotal{Name: r.Name, Label: r.Label}
			s.Steps = append(s.Steps, st)
			s.steps[r.Name] = st
		}
		st.Count += r.ReplacementCount
		st.Details = mergeDetails(st.Details, r.Details)
	}
}

// Count returns the number of files that ended with st.
func (s *Summary) Count(st status.FileStatus) int {
	return s.counts[st]
}

// FilesModified returns the number of rewritten files.
func (s *Summary) FilesModified() int {
	return s.counts[status.StatusModified]
}

// FilesFailed returns the number of files that could not be processed.
func (s *Summary) FilesFailed() int {
	return s.counts[status.StatusFailed]
}

// TotalReplacements sums every step total.
func (s *Summary) TotalReplacements() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Count
	}
	return n
}

// mergeDetails adds src into dst by key, keeping dst ordered by Index.
func mergeDetails(dst, src []text.Detail) []text.Detail {
	for _, d := range src {
		found := false
		for i := range dst {
			if dst[i].Key == d.Key {
				dst[i].Count += d.Count
				found = true
				break
			}
		}
		if found {
			continue
		}
		pos := len(dst)
		for i := range dst {
			if d.Index < dst[i].Index {
				pos = i
				break
			}
		}
		dst = append(dst, text.Detail{})
		copy(dst[pos+1:], dst[pos:])
		dst[pos] = d
	}
	return dst
}

const labelWidth = 16

// Render writes the summary to w. Word breakdowns are drawn as a table.
func (s *Summary) Render(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", s.Title)

	line := func(label string, value any) {
		fmt.Fprintf(w, "  %-*s %v\n", labelWidth, label+":", value)
	}

	if s.BytesScanned > 0 {
		line("Files scanned", fmt.Sprintf("%d (%s)", s.FilesScanned, humanize.Bytes(uint64(s.BytesScanned))))
	} else {
		line("Files scanned", s.FilesScanned)
	}
	for _, st := range []status.FileStatus{status.StatusModified, status.StatusRestored, status.StatusRemoved, status.StatusSkipped} {
		if n := s.counts[st]; n > 0 || (st == status.StatusModified && len(s.Steps) > 0) {
			line("Files "+st.String(), n)
		}
	}
	line("Files failed", s.counts[status.StatusFailed])

	for _, st := range s.Steps {
		fmt.Fprintf(w, "  Total %s: %d\n", st.Label, st.Count)

		var words, cases []text.Detail
		for _, d := range st.Details {
			if d.Replacement != "" {
				words = append(words, d)
			} else {
				cases = append(cases, d)
			}
		}
		for _, d := range cases {
			fmt.Fprintf(w, "    - %s: %d\n", d.Key, d.Count)
		}
		if len(words) > 0 {
			fmt.Fprintln(w, renderWordTable(words, isTerminal(w)))
		}
	}
}

func renderWordTable(details []text.Detail, rounded bool) string {
	tw := table.NewWriter()
	if rounded {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"wrong", "correct", "count"})
	for _, d := range details {
		tw.AppendRow(table.Row{d.Key, d.Replacement, d.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: ptext.AlignRight, AlignHeader: ptext.AlignLeft},
	})

	return indent(tw.Render(), "  ")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/tgfix/pkg/status"
	"github.com/walteh/tgfix/pkg/text"
	"github.com/walteh/tgfix/pkg/wordmap"
)

func wordSteps(t *testing.T) []text.Transformer {
	t.Helper()
	m := wordmap.New([]wordmap.Entry{
		{Wrong: "chien", Correct: "chat"},
		{Wrong: "souris", Correct: "rat"},
	}, wordmap.Options{})
	return []text.Transformer{text.NewWordTransformer(m), text.NewHyphenTransformer()}
}

func TestSummaryTotals(t *testing.T) {
	steps := wordSteps(t)
	s := New("Summary", steps...)

	s.AddFile(100, status.StatusModified)
	s.AddResult(&text.PipelineResult{Steps: []*text.Result{
		{Name: "words", Label: "word replacements", ReplacementCount: 2, Details: []text.Detail{
			{Key: "souris", Replacement: "rat", Index: 1, Count: 1},
			{Key: "chien", Replacement: "chat", Index: 0, Count: 1},
		}},
		{Name: "hyphens", Label: "hyphens/underscores replaced", ReplacementCount: 3},
	}})

	s.AddFile(50, status.StatusModified)
	s.AddResult(&text.PipelineResult{Steps: []*text.Result{
		{Name: "words", Label: "word replacements", ReplacementCount: 2, Details: []text.Detail{
			{Key: "chien", Replacement: "chat", Index: 0, Count: 2},
		}},
	}})

	s.AddFile(10, status.StatusUnchanged)
	s.AddFile(0, status.StatusFailed)

	assert.Equal(t, 4, s.FilesScanned)
	assert.Equal(t, int64(160), s.BytesScanned)
	assert.Equal(t, 2, s.FilesModified())
	assert.Equal(t, 1, s.FilesFailed())
	assert.Equal(t, 1, s.Count(status.StatusUnchanged))
	assert.Equal(t, 7, s.TotalReplacements())

	require.Len(t, s.Steps, 2)
	assert.Equal(t, "words", s.Steps[0].Name)
	assert.Equal(t, 4, s.Steps[0].Count)
	assert.Equal(t, []text.Detail{
		{Key: "chien", Replacement: "chat", Index: 0, Count: 3},
		{Key: "souris", Replacement: "rat", Index: 1, Count: 1},
	}, s.Steps[0].Details, "details should be merged by key and ordered by mapping position")
	assert.Equal(t, 3, s.Steps[1].Count)
}

func TestSummaryRender(t *testing.T) {
	s := New("Summary", wordSteps(t)...)
	s.AddFile(2048, status.StatusModified)
	s.AddResult(&text.PipelineResult{Steps: []*text.Result{
		{Name: "words", Label: "word replacements", ReplacementCount: 2, Details: []text.Detail{
			{Key: "chien", Replacement: "chat", Index: 0, Count: 2},
		}},
		{Name: "hyphens", Label: "hyphens/underscores replaced", ReplacementCount: 0},
	}})

	buf := &bytes.Buffer{}
	s.Render(buf)
	out := buf.String()

	assert.Contains(t, out, "Files scanned:   1 (2.0 kB)")
	assert.Contains(t, out, "Files modified:  1")
	assert.Contains(t, out, "Files failed:     0")
	assert.Contains(t, out, "Total word replacements: 2")
	assert.Contains(t, out, "Total hyphens/underscores replaced: 0")

	var row string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "chien") {
			row = l
		}
	}
	require.NotEmpty(t, row, "word table should list chien")
	assert.Contains(t, row, "chat")
	assert.Contains(t, row, "2")
}

func TestSummaryRenderSubCases(t *testing.T) {
	s := New("Summary", text.NewSpacingTransformer())
	s.AddFile(10, status.StatusModified)
	s.AddResult(&text.PipelineResult{Steps: []*text.Result{
		{Name: "spacing", Label: "spacing corrections before final period", ReplacementCount: 2, Details: []text.Detail{
			{Key: text.SpacingAttached, Index: 0, Count: 1},
			{Key: text.SpacingTrailingSpace, Index: 1, Count: 1},
		}},
	}})

	buf := &bytes.Buffer{}
	s.Render(buf)
	out := buf.String()

	assert.Contains(t, out, "Total spacing corrections before final period: 2")
	assert.Contains(t, out, "    - attached: 1")
	assert.Contains(t, out, "    - trailing space: 1")
}

func TestSummaryRenderRestore(t *testing.T) {
	s := New("Summary")
	s.AddFile(10, status.StatusRestored)
	s.AddFile(10, status.StatusSkipped)

	buf := &bytes.Buffer{}
	s.Render(buf)
	out := buf.String()

	assert.Contains(t, out, "Files restored:  1")
	assert.Contains(t, out, "Files skipped:   1")
	assert.NotContains(t, out, "Files modified", "restore runs have no edit steps")
}

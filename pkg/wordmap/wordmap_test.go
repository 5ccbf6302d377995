package wordmap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		wrong     string
		correct   string
		opts      Options
		want      []Entry
		wantError string
	}{
		{
			name:    "aligned_lists",
			wrong:   "chien\nchat\n",
			correct: "dog\ncat\n",
			want:    []Entry{{Wrong: "chien", Correct: "dog"}, {Wrong: "chat", Correct: "cat"}},
		},
		{
			name:    "blank_lines_and_spaces_skipped",
			wrong:   "\n  chien \n\n\tchat\n",
			correct: "dog\n\ncat  \n",
			want:    []Entry{{Wrong: "chien", Correct: "dog"}, {Wrong: "chat", Correct: "cat"}},
		},
		{
			name:    "bom_stripped",
			wrong:   "\ufeffchien\n",
			correct: "\ufeffdog\n",
			want:    []Entry{{Wrong: "chien", Correct: "dog"}},
		},
		{
			name:    "duplicate_keeps_first_position_last_value",
			wrong:   "a\nb\na\n",
			correct: "1\n2\n3\n",
			want:    []Entry{{Wrong: "a", Correct: "3"}, {Wrong: "b", Correct: "2"}},
		},
		{
			name:      "length_mismatch",
			wrong:     "a\nb\n",
			correct:   "1\n",
			wantError: "same number of lines",
		},
		{
			name:    "empty_lists",
			wrong:   "",
			correct: "\n\n",
			want:    []Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(strings.NewReader(tt.wrong), strings.NewReader(tt.correct), tt.opts)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, append([]Entry{}, m.Entries()...))
			assert.Equal(t, len(tt.want), m.Len())
		})
	}
}

func TestLookup(t *testing.T) {
	// "é" precomposed vs "e" + combining acute
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	t.Run("exact", func(t *testing.T) {
		m := New([]Entry{{Wrong: composed, Correct: "coffee"}}, Options{})

		e, idx, ok := m.Lookup(composed)
		require.True(t, ok)
		assert.Equal(t, "coffee", e.Correct)
		assert.Equal(t, 0, idx)

		_, _, ok = m.Lookup(decomposed)
		assert.False(t, ok, "without normalization the decomposed form is a different word")
	})

	t.Run("normalized", func(t *testing.T) {
		m := New([]Entry{{Wrong: decomposed, Correct: "coffee"}}, Options{Normalize: true})

		e, _, ok := m.Lookup(composed)
		require.True(t, ok)
		assert.Equal(t, composed, e.Wrong)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	wrong := filepath.Join(dir, "wrong.txt")
	correct := filepath.Join(dir, "correct.txt")
	require.NoError(t, os.WriteFile(wrong, []byte("chien\n"), 0644))
	require.NoError(t, os.WriteFile(correct, []byte("chat\n"), 0644))

	m, err := Load(context.Background(), wrong, correct, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Wrong: "chien", Correct: "chat"}}, m.Entries())

	_, err = Load(context.Background(), filepath.Join(dir, "missing.txt"), correct, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening wrong words file")
}

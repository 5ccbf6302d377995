package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tgfix/pkg/wordmap"
)

func field(values ...string) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString("            text = \"" + v + "\"\n")
	}
	return b.String()
}

func mustCase(t *testing.T, d CaseDirection, lang string) *CaseTransformer {
	t.Helper()
	c, err := NewCaseTransformer(d, lang)
	require.NoError(t, err)
	return c
}

func TestTransformers(t *testing.T) {
	words := wordmap.New([]wordmap.Entry{
		{Wrong: "chien", Correct: "chat"},
		{Wrong: "same", Correct: "same"},
		{Wrong: "chat", Correct: "tigre"},
	}, wordmap.Options{})

	tests := []struct {
		name         string
		transformer  Transformer
		content      string
		want         string
		wantCount    int
		wantModified bool
		wantDetails  []Detail
	}{
		{
			name:         "lowercase",
			transformer:  mustCase(t, ToLower, ""),
			content:      field("Bonjour", "ÉTÉ", "déjà"),
			want:         field("bonjour", "été", "déjà"),
			wantCount:    2,
			wantModified: true,
		},
		{
			name:         "lowercase_is_idempotent",
			transformer:  mustCase(t, ToLower, ""),
			content:      field("bonjour", "été"),
			want:         field("bonjour", "été"),
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "uppercase",
			transformer:  mustCase(t, ToUpper, ""),
			content:      field("straße", "OK"),
			want:         field("STRASSE", "OK"),
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "uppercase_turkish",
			transformer:  mustCase(t, ToUpper, "tr"),
			content:      field("istanbul"),
			want:         field("İSTANBUL"),
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "spacing_attached",
			transformer:  NewSpacingTransformer(),
			content:      field("arbre."),
			want:         field("arbre ."),
			wantCount:    1,
			wantModified: true,
			wantDetails:  []Detail{{Key: SpacingAttached, Index: 0, Count: 1}},
		},
		{
			name:         "spacing_trailing_space",
			transformer:  NewSpacingTransformer(),
			content:      field("arbre. "),
			want:         field("arbre ."),
			wantCount:    1,
			wantModified: true,
			wantDetails:  []Detail{{Key: SpacingTrailingSpace, Index: 1, Count: 1}},
		},
		{
			name:         "spacing_both_cases_and_accents",
			transformer:  NewSpacingTransformer(),
			content:      field("le chat dort.", "arbré. ", "déjà ."),
			want:         field("le chat dort .", "arbré .", "déjà ."),
			wantCount:    2,
			wantModified: true,
			wantDetails: []Detail{
				{Key: SpacingAttached, Index: 0, Count: 1},
				{Key: SpacingTrailingSpace, Index: 1, Count: 1},
			},
		},
		{
			name:         "spacing_ignores_non_word_before_dot",
			transformer:  NewSpacingTransformer(),
			content:      field("...", "?.", ""),
			want:         field("...", "?.", ""),
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "words_exact_match_only",
			transformer:  NewWordTransformer(words),
			content:      field("chien", "chiens", "le chien", "chien"),
			want:         field("chat", "chiens", "le chien", "chat"),
			wantCount:    2,
			wantModified: true,
			wantDetails:  []Detail{{Key: "chien", Replacement: "chat", Index: 0, Count: 2}},
		},
		{
			name:         "words_no_chaining",
			transformer:  NewWordTransformer(words),
			content:      field("chien", "chat"),
			want:         field("chat", "tigre"),
			wantCount:    2,
			wantModified: true,
			wantDetails: []Detail{
				{Key: "chien", Replacement: "chat", Index: 0, Count: 1},
				{Key: "chat", Replacement: "tigre", Index: 2, Count: 1},
			},
		},
		{
			name:         "words_identity_mapping_not_counted",
			transformer:  NewWordTransformer(words),
			content:      field("same"),
			want:         field("same"),
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "parentheses",
			transformer:  NewParenTransformer(),
			content:      field("id(le)", "a(b)c(d)", "sans", "ouvert(e"),
			want:         field("id", "ac", "sans", "ouvert(e"),
			wantCount:    3,
			wantModified: true,
		},
		{
			name:         "hyphens_and_underscores",
			transformer:  NewHyphenTransformer(),
			content:      field("est_ce_que", "peut-être", "rien"),
			want:         field("est ce que", "peut être", "rien"),
			wantCount:    3,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.transformer.Transform(context.Background(), tt.content)
			require.NoError(t, err)
			require.NotNil(t, res)

			assert.Equal(t, tt.content, res.OriginalContent)
			assert.Equal(t, tt.want, res.ModifiedContent)
			assert.Equal(t, tt.wantCount, res.ReplacementCount)
			assert.Equal(t, tt.wantModified, res.WasModified)
			assert.Equal(t, tt.transformer.Name(), res.Name)
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, res.Details)
			}
		})
	}
}

func TestHyphenTransformerLeavesNoHyphens(t *testing.T) {
	content := field("a-b_c--d__e", "-_-", "x")
	res, err := NewHyphenTransformer().Transform(context.Background(), content)
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(res.ModifiedContent), "\n") {
		value := strings.TrimSuffix(strings.SplitN(line, `"`, 2)[1], `"`)
		assert.NotContains(t, value, "-")
		assert.NotContains(t, value, "_")
	}
	assert.Equal(t, 9, res.ReplacementCount)
}

func TestWordTransformerEscapedQuotes(t *testing.T) {
	words := wordmap.New([]wordmap.Entry{{Wrong: `"euh"`, Correct: "euh"}}, wordmap.Options{})

	res, err := NewWordTransformer(words).Transform(context.Background(), `text = """euh"""`)
	require.NoError(t, err)
	assert.Equal(t, `text = "euh"`, res.ModifiedContent)
	assert.Equal(t, 1, res.ReplacementCount)
}

func TestNewCaseTransformerInvalidLanguage(t *testing.T) {
	_, err := NewCaseTransformer(ToLower, "not a tag!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing language")
}

func TestCaseTransformerLabel(t *testing.T) {
	assert.Equal(t, "lowercase conversions", mustCase(t, ToLower, "").Label())
	assert.Equal(t, "uppercase conversions", mustCase(t, ToUpper, "").Label())
}

package textgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		raw       []byte
		want      string
		wantEnc   Encoding
		wantError string
	}{
		{
			name:    "plain_utf8",
			raw:     []byte(`text = "été"`),
			want:    `text = "été"`,
			wantEnc: EncodingUTF8,
		},
		{
			name:    "utf8_bom",
			raw:     append([]byte{0xEF, 0xBB, 0xBF}, []byte(`text = "a"`)...),
			want:    `text = "a"`,
			wantEnc: EncodingUTF8BOM,
		},
		{
			name:    "utf16_le",
			raw:     []byte{0xFF, 0xFE, 'h', 0, 0xE9, 0},
			want:    "hé",
			wantEnc: EncodingUTF16LE,
		},
		{
			name:    "utf16_be",
			raw:     []byte{0xFE, 0xFF, 0, 'h', 0, 0xE9},
			want:    "hé",
			wantEnc: EncodingUTF16BE,
		},
		{
			name:      "invalid_utf8",
			raw:       []byte{'a', 0xC3, 0x28},
			wantError: "not valid utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(tt.raw)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Content)
			assert.Equal(t, tt.wantEnc, doc.Encoding)
			assert.Equal(t, tt.raw, doc.Raw)
		})
	}
}

func TestDocumentEncodeKeepsEncoding(t *testing.T) {
	raws := map[string][]byte{
		"utf8":     []byte(`text = "Été"`),
		"utf8_bom": append([]byte{0xEF, 0xBB, 0xBF}, []byte(`text = "Été"`)...),
		"utf16_le": {0xFF, 0xFE, 'E', 0, 0xE9, 0},
		"utf16_be": {0xFE, 0xFF, 0, 'E', 0, 0xE9},
	}

	for name, raw := range raws {
		t.Run(name, func(t *testing.T) {
			doc, err := Decode(raw)
			require.NoError(t, err)

			out, err := doc.Encode(doc.Content)
			require.NoError(t, err)
			assert.Equal(t, raw, out, "re-encoding unchanged content should give the original bytes")
		})
	}
}

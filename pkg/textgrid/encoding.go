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

package textgrid

import (
	"bytes"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// 🔤 Encoding is the on-disk encoding of a TextGrid file
type Encoding int

const (
	EncodingUTF8    Encoding = iota // Plain UTF-8, no byte order mark
	EncodingUTF8BOM                 // UTF-8 with a leading byte order mark
	EncodingUTF16LE                 // UTF-16 little endian with byte order mark
	EncodingUTF16BE                 // UTF-16 big endian with byte order mark
)

// String returns a string representation of Encoding
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "unknown"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// 📄 Document is a decoded TextGrid file
type Document struct {
	Raw      []byte   // Bytes exactly as read from disk
	Content  string   // Decoded text
	Encoding Encoding // Encoding detected from the byte order mark
}

// DetectEncoding inspects the byte order mark of raw.
func DetectEncoding(raw []byte) Encoding {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(raw, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(raw, bomUTF16BE):
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

func (e Encoding) codec() encoding.Encoding {
	switch e {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	default:
		return unicode.UTF8
	}
}

// 📥 Decode decodes raw file bytes into a Document
func Decode(raw []byte) (*Document, error) {
	enc := DetectEncoding(raw)

	switch enc {
	case EncodingUTF8, EncodingUTF8BOM:
		// the utf-8 decoder would silently substitute invalid bytes
		if !utf8.Valid(raw) {
			return nil, errors.Errorf("content is not valid %s", enc)
		}
	}

	decoded, err := enc.codec().NewDecoder().Bytes(raw)
	if err != nil {
		return nil, errors.Errorf("decoding %s content: %w", enc, err)
	}

	return &Document{
		Raw:      raw,
		Content:  string(decoded),
		Encoding: enc,
	}, nil
}

// 📤 Encode encodes content using the document's original encoding
func (d *Document) Encode(content string) ([]byte, error) {
	if d.Encoding == EncodingUTF8 {
		return []byte(content), nil
	}

	// the bom-aware encoders write the byte order mark back
	out, err := d.Encoding.codec().NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, errors.Errorf("encoding %s content: %w", d.Encoding, err)
	}
	return out, nil
}

/*
Package textgrid locates and rewrites the text fields of Praat TextGrid files.

No tier or interval model is built. A TextGrid is treated as an opaque
buffer and the only structure recognized is the literal field

	text = "value"

with any whitespace around the equals sign. Everything outside of field values
is preserved byte for byte.

🔤 Encodings:
Praat writes UTF-8 or, for non-ASCII labels, UTF-16 with a byte order mark.
Decode detects the encoding from the byte order mark and Document.Encode
writes content back in the same encoding.

🔍 Example:

	doc, err := textgrid.Decode(raw)
	if err != nil {
		return err
	}
	content, changed := textgrid.RewriteFields(doc.Content, strings.ToLower)
	if changed > 0 {
		out, err := doc.Encode(content)
		...
	}
*/
package textgrid

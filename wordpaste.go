// Package wordpaste converts the HTML Microsoft Word places on the clipboard
// into a clean, editor-agnostic fragment. Word encodes list nesting as
// proprietary mso-list style declarations on flat paragraphs; this package
// rebuilds real ul/ol/li structure from them and strips the vendor residue.
//
// Basic usage:
//
//	if wordpaste.IsActive(clipboardHTML) {
//	    fragment := wordpaste.Normalize(clipboardHTML)
//	    // insert fragment into the editor
//	}
package wordpaste

import (
	"github.com/tsawler/wordpaste/msword"
)

// IsActive reports whether the markup looks like it came from Microsoft
// Word: a generator meta tag naming Word, or a VML/Office XML namespace
// declaration. Pure predicate, never fails.
func IsActive(html string) bool {
	return msword.IsWordHTML(html)
}

// Normalize runs the full pipeline on a Word clipboard payload and returns a
// body-fragment HTML string with lists reconstructed and vendor markup
// removed. It is total over any input string: non-Word HTML passes through
// with at most whitespace-level changes, since no mso-list annotations will
// be found.
func Normalize(html string) string {
	return NormalizeWithOptions(html, Options{})
}

// NormalizeBytes decodes a raw clipboard payload using the charset named by
// its meta tags (Word commonly hands out windows-1252) and normalizes the
// result.
func NormalizeBytes(b []byte) string {
	return Normalize(DecodeClipboard(b))
}

// DecodeClipboard converts a raw clipboard payload to UTF-8 using the
// charset named by its meta tags. Payloads that are already UTF-8, or whose
// charset is missing or unknown, come back unchanged.
func DecodeClipboard(b []byte) string {
	return msword.DecodeClipboard(b)
}

// NormalizeWithOptions is Normalize with explicit configuration.
func NormalizeWithOptions(html string, opts Options) string {
	doc, err := msword.Parse(html)
	if err != nil {
		// html.Parse only fails on reader errors, which a string input
		// cannot produce; hand the input back untouched rather than fail.
		return html
	}

	doc.RebuildLists(opts.MultiLevelLists)
	doc.CleanAttributes()

	out := doc.HTML()
	if opts.Sanitize {
		out = sanitizePolicy().Sanitize(out)
	}
	return out
}

// Package msword recovers clean HTML from the markup Microsoft Word places
// on the clipboard. Word encodes list membership as mso-list style
// declarations on flat paragraphs instead of real ul/ol/li nesting, and
// litters the payload with vendor namespaces and whitespace tricks; this
// package repairs the raw string, rebuilds nested lists from the mso-list
// annotations, and strips the vendor residue.
package msword

import "golang.org/x/net/html"

// listItemCandidate is a block element whose inline style declares mso-list.
// Paragraphs, headings, existing list items, and divs are treated uniformly
// once annotated; only the metadata matters.
type listItemCandidate struct {
	element *html.Node
	listID  string // Word's lN list identifier
	order   string // lfoM list-format-override identifier
	indent  int    // 1-based indent level; defaults to 1 when the value is unparseable
}

// listStyle describes how a reconstructed list container should be rendered.
type listStyle struct {
	kind       string // "ol" or "ul"
	style      string // list-style-type keyword, empty for the UA default
	startIndex int    // explicit start ordinal, 0 when the style sets none
	isLegal    bool   // outline numbering such as "1.1.2"
}

// listLevelFrame is one open level of the reconstruction stack. The frame at
// stack position i always represents indent depth i; the stack is truncated,
// never sparse.
type listLevelFrame struct {
	listID string
	order  string
	indent int        // 1-based level carried from the candidate that opened it
	list   *html.Node // the ul/ol container
	items  []*html.Node
}

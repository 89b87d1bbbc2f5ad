package msword

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Document is the parsed, repaired form of a Word clipboard payload.
//
// BodyFragment is the body's innerHTML captured right after parsing, before
// list reconstruction mutates the tree. Styles is the concatenated text of
// every style element in the original head that contained at least one
// parseable rule; the list style interpreter reads it via pattern lookup.
type Document struct {
	root  *html.Node
	body  *html.Node
	query *goquery.Document

	BodyFragment string
	Styles       string
}

var (
	// Conditional-comment openers that would hide VML content from a generic
	// parser. Their closers are left behind for the parser to treat as comments.
	vmlCommentOpenerRx = regexp.MustCompile(`(?i)<!--\[if gte vml 1\]>`)

	// Vendor tags carrying nothing but namespace type declarations, with any
	// attributes, self-closed or not.
	namespaceTagRx = regexp.MustCompile(`(?i)<\?xml:namespace[^>]*>|<o:SmartTagType(?:\s[^>]*)?/?>`)

	// A style block counts only if it holds at least one rule.
	cssRuleRx = regexp.MustCompile(`[^{}]+\{[^{}]*\}`)

	charsetRx = regexp.MustCompile(`(?i)charset\s*=\s*["']?([-\w]+)`)
)

// Parse repairs a raw Word HTML string and parses it into a Document. The
// string-level transforms run in a fixed order before the structural parse:
// conditional-comment openers, vendor namespace tags, and everything wedged
// between the closing body and html tags are dropped, then whitespace is
// normalized so the parser cannot destroy spacing Word meant to preserve.
func Parse(raw string) (*Document, error) {
	s := vmlCommentOpenerRx.ReplaceAllString(raw, "")
	s = namespaceTagRx.ReplaceAllString(s, "")
	s = cleanContentAfterBody(s)
	s = normalizeSpacing(s)

	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, fmt.Errorf("parsing repaired markup: %w", err)
	}

	doc := &Document{
		root:  root,
		query: goquery.NewDocumentFromNode(root),
	}

	expandSpacerunSpans(doc.query)

	doc.body = findElement(root, "body")
	if doc.body == nil {
		doc.body = root
	}

	// Everything after this point mutates the tree destructively.
	doc.BodyFragment = renderChildren(doc.body)
	doc.Styles = extractStyles(doc.query)

	return doc, nil
}

// HTML serializes the body's children back to an HTML fragment string.
func (d *Document) HTML() string {
	return renderChildren(d.body)
}

// Body returns the body element of the parsed tree.
func (d *Document) Body() *html.Node {
	return d.body
}

// cleanContentAfterBody discards vendor junk some Word exports append between
// the closing body tag and the closing html tag.
func cleanContentAfterBody(s string) string {
	const bodyClose, htmlClose = "</body>", "</html>"

	i := strings.Index(s, bodyClose)
	if i < 0 {
		return s
	}
	rest := i + len(bodyClose)

	j := strings.Index(s[rest:], htmlClose)
	if j < 0 {
		return s[:rest]
	}
	return s[:rest] + s[rest+j:]
}

// extractStyles concatenates the text of every style element that contains at
// least one parseable rule.
func extractStyles(doc *goquery.Document) string {
	var b strings.Builder
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if !cssRuleRx.MatchString(text) {
			return
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(text)
	})
	return b.String()
}

// DecodeClipboard converts a raw clipboard payload to UTF-8 using the charset
// named in its meta tags. Word commonly hands out windows-1252. Payloads with
// no recognizable charset, an unknown encoding, or one that is already UTF-8
// are returned unchanged.
func DecodeClipboard(b []byte) string {
	m := charsetRx.FindSubmatch(b)
	if m == nil {
		return string(b)
	}
	name := strings.ToLower(string(m[1]))
	if name == "utf-8" || name == "utf8" {
		return string(b)
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return string(b)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}

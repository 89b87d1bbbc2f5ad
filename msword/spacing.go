package msword

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// Safari wraps runs of preserved spaces in bare (or Apple-classed) spans.
	safariSpaceSpanRx = regexp.MustCompile(`<span(?: class="Apple-converted-space")?>(\s+)</span>`)

	// Newlines inside Word's spacerun spans; the trailing inter-tag collapse
	// would otherwise eat the spaces they stand for.
	spacerunNewlineRx = regexp.MustCompile(`(<span\s+style=['"]mso-spacerun:yes['"]>[ \t]*)[\r\n]+(\s*</span>)`)

	// Spacerun spans that carry no spaces at all.
	emptySpacerunRx = regexp.MustCompile(`<span\s+style=['"]mso-spacerun:yes['"]></span>`)

	// Newlines inside letter-spacing spans; same collapse hazard.
	letterSpacingNewlineRx = regexp.MustCompile(`(<span\s+style=['"]letter-spacing:[^'"]+?['"]>)[\r\n]+(</span>)`)

	// Word marks an empty paragraph by filling its o:p with a no-break space.
	emptyParagraphFillerRx = regexp.MustCompile(`<o:p>(?:&nbsp;|\x{00A0})</o:p>`)

	// Whitespace runs containing a line break between two tags are pure
	// formatting from Word's line-wrapped export.
	interTagWhitespaceRx = regexp.MustCompile(`>([^\S\r\n]*[\r\n]\s*)<`)
)

// normalizeSpacing repairs the whitespace tricks in a raw Word HTML string
// before it is parsed. The transforms are ordered and idempotent.
func normalizeSpacing(s string) string {
	// Two passes over the Safari space spans cover spans nested one level deep.
	s = collapseSafariSpaceSpans(collapseSafariSpaceSpans(s))
	s = spacerunNewlineRx.ReplaceAllString(s, "$1$2")
	s = emptySpacerunRx.ReplaceAllString(s, "")
	s = letterSpacingNewlineRx.ReplaceAllString(s, "$1 $2")
	// A single trailing space before a closing tag is meaningful; protect it
	// from whitespace collapse.
	s = strings.ReplaceAll(s, " </", "\u00a0</")
	s = strings.ReplaceAll(s, " <o:p></o:p>", "\u00a0<o:p></o:p>")
	s = emptyParagraphFillerRx.ReplaceAllString(s, "")
	s = interTagWhitespaceRx.ReplaceAllString(s, "><")
	return s
}

// collapseSafariSpaceSpans replaces whitespace-only space spans with the
// space sequence they represent: a single space stays a space, longer runs
// become alternating no-break and regular spaces of the same length.
func collapseSafariSpaceSpans(s string) string {
	return safariSpaceSpanRx.ReplaceAllStringFunc(s, func(match string) string {
		spaces := safariSpaceSpanRx.FindStringSubmatch(match)[1]
		if len(spaces) == 1 {
			return " "
		}
		var b strings.Builder
		for i := 0; i < len(spaces); i++ {
			if i%2 == 0 {
				b.WriteString("&nbsp;")
			} else {
				b.WriteByte(' ')
			}
		}
		return b.String()
	})
}

// expandSpacerunSpans rewrites the text of every span marked mso-spacerun so
// a run of N preserved spaces becomes alternating no-break/regular spaces of
// length N. Runs on the parsed tree, after string-level repairs.
func expandSpacerunSpans(doc *goquery.Document) {
	doc.Find("span").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		if !strings.Contains(strings.ToLower(style), "spacerun") {
			return
		}
		length := len([]rune(s.Text()))
		if length == 0 {
			return
		}
		s.SetText(alternatingSpaces(length))
	})
}

// alternatingSpaces returns a string of n characters alternating no-break
// space and regular space, starting with a no-break space.
func alternatingSpaces(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			b.WriteRune('\u00a0')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

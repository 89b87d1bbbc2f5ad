package msword

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

var (
	numberFormatRx = regexp.MustCompile(`(?i)mso-level-number-format:\s*([^;}"]+)`)
	startAtRx      = regexp.MustCompile(`(?i)mso-level-start-at:\s*(\d+)`)
)

// detectListStyle resolves the rendering of the list a candidate opens by
// reading the @list l<id>:level<indent> rule out of the embedded style-sheet
// text. A candidate with no id or no matching rule gets the default
// descriptor: an ordered list with UA-default numbering and no explicit
// start.
func detectListStyle(item listItemCandidate, styles string) listStyle {
	ls := listStyle{kind: "ol"}

	block := listLevelBlock(item.listID, item.indent, styles)

	format := ""
	if m := numberFormatRx.FindStringSubmatch(block); m != nil {
		format = strings.ToLower(strings.TrimSpace(m[1]))
	}

	// Outline numbering such as "1.1.2" renders as an ordered container no
	// matter what the per-level hints say.
	if isLegalOutline(item.listID, styles) {
		ls.isLegal = true
	}

	switch format {
	case "bullet", "image":
		if !ls.isLegal {
			ls.kind = "ul"
			// Word's CSS bullet hint is unreliable; the glyph Word actually
			// rendered inside the item decides the bullet style.
			ls.style = sniffBulletGlyph(item.element)
		}
	default:
		ls.style = mapNumberFormat(format)
		if m := startAtRx.FindStringSubmatch(block); m != nil {
			ls.startIndex, _ = strconv.Atoi(m[1])
		}
	}

	return ls
}

// listLevelBlock returns the declaration block of the @list rule for the
// given list id and level, or empty string when absent.
func listLevelBlock(id string, level int, styles string) string {
	if id == "" || styles == "" {
		return ""
	}
	rx := regexp.MustCompile(`(?i)@list l` + regexp.QuoteMeta(id) + `:level` + strconv.Itoa(level) + `\s*\{([^}]*)`)
	if m := rx.FindStringSubmatch(styles); m != nil {
		return m[1]
	}
	return ""
}

// isLegalOutline reports whether the list uses legal/outline numbering: a
// level-text template of digits and literal separators at some level, with no
// explicit numbering format declared anywhere for the list.
func isLegalOutline(id string, styles string) bool {
	if id == "" || styles == "" {
		return false
	}
	formatAnywhereRx := regexp.MustCompile(`(?i)@list l` + regexp.QuoteMeta(id) + `:level\d+\s*\{[^{]*mso-level-number-format:`)
	if formatAnywhereRx.MatchString(styles) {
		return false
	}
	legalTextRx := regexp.MustCompile(`(?i)@list\s+l` + regexp.QuoteMeta(id) + `:level\d+\s*\{[^{]*mso-level-text:"%\d+\\\.`)
	return legalTextRx.MatchString(styles)
}

// mapNumberFormat maps Word's numbering-format keywords onto the standard
// list-style-type vocabulary. Unrecognized keywords (decimal included) map to
// empty, the UA default.
func mapNumberFormat(format string) string {
	switch format {
	case "arabic-leading-zero":
		return "decimal-leading-zero"
	case "alpha-upper":
		return "upper-alpha"
	case "alpha-lower":
		return "lower-alpha"
	case "roman-upper":
		return "upper-roman"
	case "roman-lower":
		return "lower-roman"
	}
	return ""
}

// sniffBulletGlyph maps the marker glyph Word rendered inside the item to a
// bullet style. An unrecognized or absent glyph yields empty, falling back to
// the UA default disc.
func sniffBulletGlyph(elem *html.Node) string {
	glyph := strings.TrimFunc(findListMarker(elem), unicode.IsSpace)
	if glyph == "" {
		return ""
	}
	switch {
	case strings.ContainsRune(glyph, '·'):
		return "disc"
	case glyph == "o":
		return "circle"
	case strings.Contains(glyph, "§"):
		return "square"
	}
	return ""
}

// findListMarker returns the text of the rendered marker span inside a list
// item candidate, the span whose style declares mso-list:Ignore. A leading
// bare text child means the element has no marker at all; non-span children
// such as anchors and ordinary content spans are skipped.
func findListMarker(elem *html.Node) string {
	first := elem.FirstChild
	if first == nil || first.Type == html.TextNode {
		return ""
	}
	for c := elem.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "span" {
			continue
		}
		if !strings.EqualFold(styleProperty(c, "mso-list"), "ignore") {
			continue
		}
		inner := c.FirstChild
		if inner == nil {
			continue
		}
		if inner.Type == html.TextNode {
			return inner.Data
		}
		// Marker text wrapped one span deeper.
		if inner.Type == html.ElementNode && inner.FirstChild != nil && inner.FirstChild.Type == html.TextNode {
			return inner.FirstChild.Data
		}
	}
	return ""
}

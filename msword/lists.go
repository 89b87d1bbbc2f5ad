package msword

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	candidateIDRx    = regexp.MustCompile(`(?i)(?:^|\s)l(\d+)`)
	candidateOrderRx = regexp.MustCompile(`(?i)(?:^|\s)lfo(\d+)`)
	candidateLevelRx = regexp.MustCompile(`(?i)(?:^|\s)level(\d+)`)
)

// listRebuilder rebuilds nested ul/ol structure from the flat sequence of
// mso-list annotated blocks. The stack and counters live for one rebuild
// call; there is no state shared across calls.
type listRebuilder struct {
	styles     string
	multiLevel bool

	stack      []listLevelFrame
	counters   map[string]int       // listId:indent -> running ordinal, depth-0 lists only
	styleCache map[string]listStyle // listId:indent -> resolved descriptor
}

// RebuildLists walks the parsed tree, finds every block element annotated
// with mso-list, and rebuilds proper nested list markup in place. multiLevel
// marks legal-outline lists with a class for hosts that support them.
func (d *Document) RebuildLists(multiLevel bool) {
	r := &listRebuilder{
		styles:     d.Styles,
		multiLevel: multiLevel,
		counters:   make(map[string]int),
		styleCache: make(map[string]listStyle),
	}

	// The candidate list is a snapshot: discovery finishes before the first
	// structural edit.
	for _, item := range findListItemCandidates(d.query) {
		r.process(item)
	}
}

// findListItemCandidates returns, in document order, every block element
// whose inline style declares mso-list and whose parent is not already a
// list container. Word sometimes nests items correctly on its own; those are
// left alone.
func findListItemCandidates(doc *goquery.Document) []listItemCandidate {
	var out []listItemCandidate
	doc.Find("p, h1, h2, h3, h4, h5, h6, li, div").Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if isListContainer(node.Parent) {
			return
		}
		value := styleProperty(node, "mso-list")
		if value == "" {
			return
		}
		out = append(out, parseCandidate(node, value))
	})
	return out
}

// parseCandidate extracts the id/order/level triple from an mso-list value.
// A value that does not match the expected shape degrades to an unattributed
// single-level item rather than being dropped.
func parseCandidate(node *html.Node, msoList string) listItemCandidate {
	c := listItemCandidate{element: node, indent: 1}

	id := candidateIDRx.FindStringSubmatch(msoList)
	order := candidateOrderRx.FindStringSubmatch(msoList)
	level := candidateLevelRx.FindStringSubmatch(msoList)
	if id != nil && order != nil && level != nil {
		c.listID = id[1]
		c.order = order[1]
		c.indent, _ = strconv.Atoi(level[1])
	}

	return c
}

func (r *listRebuilder) process(item listItemCandidate) {
	if item.indent < 1 {
		return
	}

	// A paragraph or table between two annotated blocks is a real visual
	// break; the open lists end there.
	if !continuesList(item.element) {
		r.stack = r.stack[:0]
	}

	// Normalize the 1-based indent to a 0-based stack depth, clamping
	// over-indented items to one level deeper than currently open.
	depth := item.indent - 1
	if depth > len(r.stack) {
		depth = len(r.stack)
	}

	// A different list id at this depth ends the old nested lists.
	if depth < len(r.stack) && r.stack[depth].listID != item.listID {
		r.stack = r.stack[:depth]
	}

	if depth < len(r.stack)-1 {
		// The item closes several open levels at once.
		r.stack = r.stack[:depth+1]
	} else {
		style := r.resolveStyle(item)
		if depth < len(r.stack) && r.stack[depth].list.Data != style.kind {
			r.stack = r.stack[:depth]
		}
		if depth >= len(r.stack) {
			r.openList(item, style)
		}
	}

	frame := &r.stack[depth]

	li := item.element
	if li.Data != "li" {
		li = newElement("li")
	}
	detachNode(li)
	frame.list.AppendChild(li)
	frame.items = append(frame.items, li)

	if depth == 0 && item.listID != "" {
		r.counters[counterKey(item)]++
	}

	if li != item.element {
		detachNode(item.element)
		li.AppendChild(item.element)
	}

	removeBulletMarkers(item.element)
}

// openList creates a new empty list container per the resolved style,
// attaches it to the tree, and pushes its frame. Called only when the
// candidate's depth is one past the open stack.
func (r *listRebuilder) openList(item listItemCandidate, style listStyle) {
	key := counterKey(item)

	// A reopened top-level numbered list resumes after its interruption
	// instead of restarting at one. The counter was seeded from the style's
	// explicit start index, so that start still wins.
	if len(r.stack) == 0 && style.kind == "ol" && item.listID != "" {
		if n, ok := r.counters[key]; ok {
			style.startIndex = n
		}
	}

	list := newElement(style.kind)
	if style.style != "" {
		setAttr(list, "style", "list-style-type:"+style.style)
	}
	if style.startIndex > 1 {
		setAttr(list, "start", strconv.Itoa(style.startIndex))
	}
	if style.isLegal && r.multiLevel {
		setAttr(list, "class", "legal-list")
	}

	if len(r.stack) == 0 {
		if item.element.Parent != nil {
			item.element.Parent.InsertBefore(list, item.element)
		}
	} else {
		parentItems := r.stack[len(r.stack)-1].items
		parentItems[len(parentItems)-1].AppendChild(list)
	}

	r.stack = append(r.stack, listLevelFrame{
		listID: item.listID,
		order:  item.order,
		indent: item.indent,
		list:   list,
	})

	if len(r.stack) == 1 && style.kind == "ol" && item.listID != "" {
		if style.startIndex > 0 {
			r.counters[key] = style.startIndex
		} else {
			r.counters[key] = 1
		}
	}
}

// resolveStyle resolves a candidate's list style, caching per listId:level;
// every candidate of the pair shares one descriptor.
func (r *listRebuilder) resolveStyle(item listItemCandidate) listStyle {
	if item.listID == "" {
		return detectListStyle(item, r.styles)
	}
	key := counterKey(item)
	if ls, ok := r.styleCache[key]; ok {
		return ls
	}
	ls := detectListStyle(item, r.styles)
	r.styleCache[key] = ls
	return ls
}

func counterKey(item listItemCandidate) string {
	return item.listID + ":" + strconv.Itoa(item.indent)
}

// continuesList reports whether the element visually continues the list run
// being built. Only the immediately preceding sibling is inspected, or the
// parent when there is none.
func continuesList(elem *html.Node) bool {
	if prev := elem.PrevSibling; prev != nil {
		return isListContainer(prev)
	}
	return isListContainer(elem.Parent)
}

// removeBulletMarkers drops the redundant rendered marker spans Word leaves
// inside an item (style mso-list:Ignore) so the glyph does not leak into the
// final content.
func removeBulletMarkers(elem *html.Node) {
	var markers []*html.Node
	walk(elem, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "span" &&
			strings.EqualFold(styleProperty(n, "mso-list"), "ignore") {
			markers = append(markers, n)
		}
	})
	for _, m := range markers {
		detachNode(m)
	}
}

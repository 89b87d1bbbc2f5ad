package msword

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// getAttr returns the value of an attribute on a node, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// setAttr sets an attribute on a node, replacing any existing value.
func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// removeAttr deletes an attribute from a node if present.
func removeAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// styleProperty returns the value of a single property from a node's inline
// style, or empty string when the property is absent or the style attribute
// cannot be parsed.
func styleProperty(n *html.Node, name string) string {
	style := getAttr(n, "style")
	if style == "" {
		return ""
	}
	decls, err := parser.ParseDeclarations(terminateStyle(style))
	if err != nil {
		return ""
	}
	for _, d := range decls {
		if strings.EqualFold(strings.TrimSpace(d.Property), name) {
			return strings.TrimSpace(d.Value)
		}
	}
	return ""
}

// terminateStyle ensures a style string ends with a semicolon. The CSS
// declaration parser loses the value of a final declaration that has no
// trailing semicolon, and Word emits inline styles without one.
func terminateStyle(style string) string {
	if strings.HasSuffix(strings.TrimSpace(style), ";") {
		return style
	}
	return style + ";"
}

// newElement creates a detached element node with the given tag name.
func newElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// detachNode removes a node from its parent. Safe to call on detached nodes.
func detachNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// isListContainer reports whether the node is a ul or ol element.
func isListContainer(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode &&
		(n.DataAtom == atom.Ul || n.DataAtom == atom.Ol)
}

// hasContent reports whether the node has any non-whitespace text or any
// element among its children.
func hasContent(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return true
			}
		case html.ElementNode:
			return true
		}
	}
	return false
}

// walk calls fn for n and every descendant in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// renderChildren serializes the children of a node back to an HTML string,
// the equivalent of reading the node's innerHTML.
func renderChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		// Render only fails on writer errors; strings.Builder has none.
		html.Render(&b, c)
	}
	return b.String()
}

package msword

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// CleanAttributes strips vendor residue from the tree: classes whose name
// contains the mso prefix, inline style properties whose name contains it,
// and vendor-namespaced elements. Must run after list reconstruction, which
// still needs the mso-list annotations and marker spans.
func (d *Document) CleanAttributes() {
	var vendor []*html.Node

	d.query.Find("*").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		cleanClasses(n)
		cleanStyleProperties(n)
		if isVendorElement(n) {
			vendor = append(vendor, n)
		}
	})

	for _, n := range vendor {
		detachNode(n)
	}
}

// cleanClasses removes every class containing the vendor prefix, keeping the
// rest of the class list intact.
func cleanClasses(n *html.Node) {
	class := getAttr(n, "class")
	if class == "" {
		return
	}

	fields := strings.Fields(class)
	kept := fields[:0]
	for _, f := range fields {
		if !strings.Contains(strings.ToLower(f), "mso") {
			kept = append(kept, f)
		}
	}

	if len(kept) == len(fields) {
		return
	}
	if len(kept) == 0 {
		removeAttr(n, "class")
		return
	}
	setAttr(n, "class", strings.Join(kept, " "))
}

// cleanStyleProperties drops every inline style property whose name contains
// the vendor prefix, leaving other properties untouched.
func cleanStyleProperties(n *html.Node) {
	style := getAttr(n, "style")
	if style == "" {
		return
	}

	decls, err := parser.ParseDeclarations(terminateStyle(style))
	if err != nil {
		return
	}

	var kept []string
	changed := false
	for _, d := range decls {
		if strings.Contains(strings.ToLower(d.Property), "mso") {
			changed = true
			continue
		}
		value := d.Value
		if d.Important {
			value += " !important"
		}
		kept = append(kept, d.Property+":"+value)
	}

	if !changed {
		return
	}
	if len(kept) == 0 {
		removeAttr(n, "style")
		return
	}
	setAttr(n, "style", strings.Join(kept, ";"))
}

// isVendorElement classifies vendor-namespaced tags. Structural and property
// elements (VML shapes, Word markup) go outright; o-namespaced paragraph
// properties only when they carry no text and no markup content.
func isVendorElement(n *html.Node) bool {
	tag := n.Data
	i := strings.IndexByte(tag, ':')
	if i <= 0 {
		return false
	}
	switch tag[:i] {
	case "v", "w", "m", "wx", "st1":
		return true
	case "o":
		return !hasContent(n)
	}
	return false
}

package wordpaste

import "github.com/microcosm-cc/bluemonday"

// Options holds configuration for normalization.
type Options struct {
	// MultiLevelLists marks legal-outline lists (numbering such as "1.1.2")
	// with a "legal-list" class. Enable it when the host editor understands
	// multi-level list markup; otherwise such lists render as plain ordered
	// lists.
	MultiLevelLists bool

	// Sanitize runs the normalized fragment through an HTML sanitizer policy
	// tuned to keep the list attributes the pipeline emits. Use it when the
	// payload comes from an untrusted clipboard.
	Sanitize bool
}

// sanitizePolicy builds a user-generated-content policy that keeps the
// attributes list reconstruction relies on: start and numbering style on
// ordered lists, and the legal-list class marker.
func sanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("start", "type").OnElements("ol")
	p.AllowAttrs("class").OnElements("ol", "ul")
	p.AllowAttrs("style").OnElements("ol", "ul")
	p.AllowStyles("list-style-type").OnElements("ol", "ul")
	return p
}

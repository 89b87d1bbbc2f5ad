package msword

import "regexp"

var (
	metaTagRx = regexp.MustCompile(`(?i)<meta\s[^>]*>`)

	// The two generator-meta attributes, matched independently so their
	// order inside the tag does not matter.
	generatorAttrRx = regexp.MustCompile(`(?i)name\s*=\s*["']?generator`)
	wordContentRx   = regexp.MustCompile(`(?i)content\s*=\s*["']?microsoft\s*word`)

	// VML/Office XML namespace declarations on the root element.
	officeNamespaceRx = regexp.MustCompile(`(?i)xmlns:[ov]\s*=\s*["']?urn:schemas-microsoft-com`)
)

// IsWordHTML reports whether the raw markup looks like it was produced by
// Microsoft Word: a meta tag naming Word as the generator, or an Office
// namespace declaration. It never fails; markup that matches neither
// signature is simply not Word HTML.
func IsWordHTML(htmlText string) bool {
	for _, tag := range metaTagRx.FindAllString(htmlText, -1) {
		if generatorAttrRx.MatchString(tag) && wordContentRx.MatchString(tag) {
			return true
		}
	}
	return officeNamespaceRx.MatchString(htmlText)
}

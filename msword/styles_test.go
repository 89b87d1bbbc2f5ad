package msword

import (
	"testing"

	"golang.org/x/net/html"
)

// firstParagraph parses a body fragment and returns its first p element.
func firstParagraph(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := Parse("<html><body>" + fragment + "</body></html>")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	p := findElement(doc.Body(), "p")
	if p == nil {
		t.Fatal("no p element in fixture")
	}
	return p
}

func TestDetectListStyle(t *testing.T) {
	styles := `@list l0:level1 {mso-level-number-format:bullet;}
@list l1:level1 {mso-level-start-at:5;}
@list l1:level2 {mso-level-number-format:roman-lower;}
@list l2:level1 {mso-level-number-format:alpha-upper;}`

	bullet := firstParagraph(t, `<p><span style='mso-list:Ignore'>·</span>item</p>`)
	plain := firstParagraph(t, `<p>item</p>`)

	tests := []struct {
		name string
		item listItemCandidate
		want listStyle
	}{
		{
			name: "bullet format with disc glyph",
			item: listItemCandidate{element: bullet, listID: "0", indent: 1},
			want: listStyle{kind: "ul", style: "disc"},
		},
		{
			name: "explicit start without format",
			item: listItemCandidate{element: plain, listID: "1", indent: 1},
			want: listStyle{kind: "ol", startIndex: 5},
		},
		{
			name: "roman numbering at second level",
			item: listItemCandidate{element: plain, listID: "1", indent: 2},
			want: listStyle{kind: "ol", style: "lower-roman"},
		},
		{
			name: "alpha numbering",
			item: listItemCandidate{element: plain, listID: "2", indent: 1},
			want: listStyle{kind: "ol", style: "upper-alpha"},
		},
		{
			name: "no matching rule defaults to ordered",
			item: listItemCandidate{element: plain, listID: "9", indent: 1},
			want: listStyle{kind: "ol"},
		},
		{
			name: "no list id defaults to ordered",
			item: listItemCandidate{element: plain, indent: 1},
			want: listStyle{kind: "ol"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectListStyle(tt.item, styles); got != tt.want {
				t.Errorf("detectListStyle() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDetectListStyle_LegalOutline(t *testing.T) {
	legal := `@list l3:level1 {mso-level-text:"%1\.";}
@list l3:level2 {mso-level-text:"%1\.%2\.";}`

	plain := firstParagraph(t, `<p>item</p>`)

	for _, indent := range []int{1, 2} {
		item := listItemCandidate{element: plain, listID: "3", indent: indent}
		got := detectListStyle(item, legal)
		if got.kind != "ol" || !got.isLegal {
			t.Errorf("indent %d: got %+v, want ordered legal list", indent, got)
		}
	}

	// An explicit numbering format anywhere in the list disqualifies it.
	notLegal := legal + `
@list l3:level3 {mso-level-number-format:bullet;}`
	item := listItemCandidate{element: plain, listID: "3", indent: 1}
	if got := detectListStyle(item, notLegal); got.isLegal {
		t.Errorf("list with explicit format should not be legal, got %+v", got)
	}
}

func TestMapNumberFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"arabic-leading-zero", "decimal-leading-zero"},
		{"alpha-upper", "upper-alpha"},
		{"alpha-lower", "lower-alpha"},
		{"roman-upper", "upper-roman"},
		{"roman-lower", "lower-roman"},
		{"", ""},
		{"decimal", ""},
		{"chicago", ""},
	}

	for _, tt := range tests {
		if got := mapNumberFormat(tt.in); got != tt.want {
			t.Errorf("mapNumberFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSniffBulletGlyph(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "middle dot means disc",
			fragment: `<p><span style='mso-list:Ignore'>·</span>item</p>`,
			want:     "disc",
		},
		{
			name:     "letter o means circle",
			fragment: `<p><span style='mso-list:Ignore'>o</span>item</p>`,
			want:     "circle",
		},
		{
			name:     "glyph with trailing spaces trimmed",
			fragment: `<p><span style='mso-list:Ignore'>o&nbsp;</span>item</p>`,
			want:     "circle",
		},
		{
			name:     "section sign means square",
			fragment: `<p><span style='mso-list:Ignore'>§</span>item</p>`,
			want:     "square",
		},
		{
			name:     "unknown glyph falls back to default",
			fragment: `<p><span style='mso-list:Ignore'>-</span>item</p>`,
			want:     "",
		},
		{
			name:     "marker wrapped in nested span",
			fragment: `<p><span style='mso-list:Ignore'><span>·</span></span>item</p>`,
			want:     "disc",
		},
		{
			name:     "non-span children skipped",
			fragment: `<p><a href="#">x</a><span style='mso-list:Ignore'>·</span>item</p>`,
			want:     "disc",
		},
		{
			name:     "content span without marker style ignored",
			fragment: `<p><span style='font-family:Calibri'>Two words</span> rest</p>`,
			want:     "",
		},
		{
			name:     "leading bare text means no marker",
			fragment: `<p>text first<span style='mso-list:Ignore'>·</span></p>`,
			want:     "",
		},
		{
			name:     "empty paragraph",
			fragment: `<p></p>`,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := firstParagraph(t, tt.fragment)
			if got := sniffBulletGlyph(p); got != tt.want {
				t.Errorf("sniffBulletGlyph() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListLevelBlock(t *testing.T) {
	styles := `@list l0:level1 {mso-level-start-at:3; mso-level-number-format:roman-lower;}`

	if got := listLevelBlock("0", 1, styles); got == "" {
		t.Error("expected a declaration block for l0:level1")
	}
	if got := listLevelBlock("0", 2, styles); got != "" {
		t.Errorf("unexpected block for missing level: %q", got)
	}
	if got := listLevelBlock("", 1, styles); got != "" {
		t.Errorf("unexpected block for empty id: %q", got)
	}
}

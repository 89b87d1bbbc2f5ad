package wordpaste

import (
	"strings"
	"testing"
)

const wordListDoc = `<html xmlns:o="urn:schemas-microsoft-com:office:office"><head>` +
	`<meta name=Generator content="Microsoft Word 15">` +
	`<style>@list l0:level1 {mso-level-number-format:bullet;}</style>` +
	`</head><body>` +
	`<p class=MsoListParagraph style='mso-list:l0 level1 lfo1'><span style='mso-list:Ignore'>·</span>First</p>` +
	`<p class=MsoListParagraph style='mso-list:l0 level1 lfo1'><span style='mso-list:Ignore'>·</span>Second</p>` +
	`</body></html>`

func TestIsActive(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"word document", wordListDoc, true},
		{"plain html", `<html><body><p>x</p></body></html>`, false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActive(tt.html); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize_WordList(t *testing.T) {
	got := Normalize(wordListDoc)
	want := `<ul style="list-style-type:disc"><li><p>First</p></li><li><p>Second</p></li></ul>`
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalize_NonWordPassthrough(t *testing.T) {
	in := `<p>hello <b>world</b></p>`
	got := Normalize(in)
	if got != in {
		t.Errorf("Normalize() = %q, want input unchanged", got)
	}
	if strings.Contains(got, "<ol") || strings.Contains(got, "<ul") {
		t.Errorf("no lists should be introduced: %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize(wordListDoc)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize not stable: %q != %q", once, twice)
	}
}

func TestNormalizeBytes(t *testing.T) {
	payload := []byte(`<html><head><meta charset="windows-1252"></head><body><p>it`)
	payload = append(payload, 0x92)
	payload = append(payload, []byte(`s</p></body></html>`)...)

	got := NormalizeBytes(payload)
	if !strings.Contains(got, "it’s") {
		t.Errorf("charset not decoded, got: %q", got)
	}
}

func TestNormalizeWithOptions_Sanitize(t *testing.T) {
	in := `<html><head><meta name=Generator content="Microsoft Word 15"></head><body>` +
		`<script>alert(1)</script>` +
		`<p onclick="steal()" style='mso-list:l0 level1 lfo1'>Item</p>` +
		`</body></html>`

	got := NormalizeWithOptions(in, Options{Sanitize: true})

	if strings.Contains(got, "<script") || strings.Contains(got, "alert") {
		t.Errorf("script survived sanitization: %q", got)
	}
	if strings.Contains(got, "onclick") {
		t.Errorf("event handler survived sanitization: %q", got)
	}
	if !strings.Contains(got, "<ol") || !strings.Contains(got, "Item") {
		t.Errorf("list content lost: %q", got)
	}
}

func TestNormalizeWithOptions_MultiLevelLists(t *testing.T) {
	doc := `<html><head><meta name=Generator content="Microsoft Word 15">` +
		`<style>@list l3:level1 {mso-level-text:"%1\.";}</style>` +
		`</head><body>` +
		`<p style='mso-list:l3 level1 lfo1'>Clause</p>` +
		`</body></html>`

	got := NormalizeWithOptions(doc, Options{MultiLevelLists: true})
	if !strings.Contains(got, `class="legal-list"`) {
		t.Errorf("legal list not marked: %q", got)
	}

	got = Normalize(doc)
	if strings.Contains(got, "legal-list") {
		t.Errorf("legal marker should require the option: %q", got)
	}
}

package extract

import (
	"reflect"
	"testing"
)

func TestCollectPage_MailtoStripsScheme(t *testing.T) {
	page := collectPage(`<a href="MAILTO:info@acme.io?subject=hi">mail</a>`)

	if len(page.attrs) != 1 {
		t.Fatalf("attrs = %v, want one entry", page.attrs)
	}
	if page.attrs[0] != "info@acme.io?subject=hi" {
		t.Errorf("attrs[0] = %q, want scheme stripped", page.attrs[0])
	}
}

func TestCollectPage_MailAttributeNeedsAtSign(t *testing.T) {
	page := collectPage(`<div data-email="not-an-address" data-mail="ops@acme.io">x</div>`)

	want := []string{"ops@acme.io"}
	if !reflect.DeepEqual(page.attrs, want) {
		t.Errorf("attrs = %v, want %v", page.attrs, want)
	}
}

func TestCollectPage_TextExcludesScriptAndStyle(t *testing.T) {
	page := collectPage(`<html><head><script>x="s@a.io"</script><style>.c{}</style></head>` +
		`<body><p>visible</p></body></html>`)

	if page.text != "visible\n" {
		t.Errorf("text = %q, want only visible content", page.text)
	}
}

func TestCollectPage_SeparatesTextNodes(t *testing.T) {
	page := collectPage(`<p><span>left</span><span>right</span></p>`)

	if page.text != "left\nright\n" {
		t.Errorf("text = %q, want newline-separated nodes", page.text)
	}
}

func TestCollectPage_EmptyAndWhitespace(t *testing.T) {
	for _, markup := range []string{"", "   \n\t"} {
		page := collectPage(markup)
		if page.text != "" || len(page.attrs) != 0 {
			t.Errorf("collectPage(%q) = %+v, want empty", markup, page)
		}
	}
}

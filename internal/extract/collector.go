package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// collected holds the two independent scan sources produced from a page:
// the visible text and any attribute values likely to carry an address.
type collected struct {
	text  string
	attrs []string
}

// collectPage parses markup leniently and gathers visible text plus
// address-bearing attribute values. Parse failures degrade to whatever the
// parser salvaged; a nil document yields an empty result, never an error.
func collectPage(markup string) collected {
	var out collected
	if strings.TrimSpace(markup) == "" {
		return out
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return out
	}

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			for _, attr := range node.Attr {
				name := strings.ToLower(attr.Key)
				val := attr.Val

				if name == "href" && strings.HasPrefix(strings.ToLower(val), "mailto:") {
					out.attrs = append(out.attrs, strings.TrimSpace(val[len("mailto:"):]))
					continue
				}
				if strings.Contains(name, "mail") && strings.Contains(val, "@") {
					out.attrs = append(out.attrs, val)
				}
			}
		}
	})

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	for _, node := range doc.Nodes {
		appendTextNodes(&sb, node)
	}
	out.text = sb.String()

	return out
}

// appendTextNodes walks the node tree and writes each text node on its own
// line, so address tokens can never span a tag boundary.
func appendTextNodes(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			sb.WriteString(text)
			sb.WriteByte('\n')
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendTextNodes(sb, c)
	}
}

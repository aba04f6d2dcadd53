package csvconv

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultClassName is the class attribute RenderTable puts on the table
// when the caller supplies none.
const DefaultClassName = "table-csv-data"

// RenderTable returns an HTML table fragment with one tr per row and one td
// per field. Field text is escaped, never parsed as markup. Fields are
// emitted in the source's own encoding; no conversion is applied, but C0
// control characters other than tab, LF and CR become U+FFFD.
func RenderTable(src Source, className string) (string, error) {
	if className == "" {
		className = DefaultClassName
	}
	table := element(atom.Table)
	table.Attr = []html.Attribute{{Key: "class", Val: className}}
	for row, err := range All(src) {
		if err != nil {
			return "", err
		}
		tr := element(atom.Tr)
		for _, v := range row {
			td := element(atom.Td)
			td.AppendChild(&html.Node{Type: html.TextNode, Data: stripControls(v)})
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}

	var sb strings.Builder
	if err := html.Render(&sb, table); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// stripControls replaces C0 controls other than tab, LF and CR with
// U+FFFD. Other bytes, including non-UTF-8 ones, are kept as they are.
func stripControls(s string) string {
	if strings.IndexFunc(s, isDisallowedControl) < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for j := 0; j < len(s); j++ {
		if isDisallowedControl(rune(s[j])) {
			sb.WriteRune(utf8.RuneError)
			continue
		}
		sb.WriteByte(s[j])
	}
	return sb.String()
}

func isDisallowedControl(r rune) bool {
	return r < 0x20 && r != '\t' && r != '\n' && r != '\r'
}

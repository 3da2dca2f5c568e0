package moneyfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document exposes read access to rendered page elements.
type Document interface {
	// QuerySelectorText returns the trimmed text of the first element matching selector.
	QuerySelectorText(selector string) (string, bool)
}

// HTMLDocument is a Document backed by a parsed HTML tree, queried with CSS
// selectors.
type HTMLDocument struct {
	root *html.Node
}

var _ Document = &HTMLDocument{}

// ParseHTMLDocument parses a full HTML page.
func ParseHTMLDocument(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("moneyfmt: parse document: %w", err)
	}
	return &HTMLDocument{root: root}, nil
}

// QuerySelectorText implements Document. Invalid selectors match nothing.
func (d *HTMLDocument) QuerySelectorText(selector string) (string, bool) {
	if d == nil || d.root == nil {
		return "", false
	}

	selector = strings.TrimSpace(selector)
	if selector == "" {
		return "", false
	}

	sel, err := cascadia.Compile(selector)
	if err != nil {
		return "", false
	}

	node := sel.MatchFirst(d.root)
	if node == nil {
		return "", false
	}
	return strings.TrimSpace(textContent(node)), true
}

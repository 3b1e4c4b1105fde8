/*
Package html builds groves from the element structure of HTML documents.

Element nodes become interior grove nodes, text nodes become leaves. Since
groves are built children-before-parent, the DOM is walked depth-first with
an Open call on entering an element and a Close call carrying the tag name
on leaving it — a direct use of the grove construction protocol.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/grove"
	"golang.org/x/net/html"
)

// FromReader parses an HTML fragment and returns the grove of its element
// structure. The fragment is parsed in a generic context, so the usual
// html/head/body scaffolding inserted by the parser appears in the grove.
func FromReader(input io.Reader) (*grove.GroveBuf[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	buf := grove.NewGroveBuf[string]()
	b := buf.Builder()
	for _, n := range nodes {
		collect(n, b)
	}
	return b.Build(), nil
}

// FromElement builds the grove for the DOM subtree rooted at n. The
// resulting grove holds one tree whose root carries n's tag name, unless n
// is a pure text node, which yields a single leaf.
func FromElement(n *html.Node) (*grove.GroveBuf[string], error) {
	if n == nil {
		return nil, grove.ErrIllegalArguments
	}
	buf := grove.NewGroveBuf[string]()
	b := buf.Builder()
	collect(n, b)
	return b.Build(), nil
}

// collect appends the DOM subtree of n to the builder session. Whitespace-
// only text nodes are dropped, matching what a structural view of a
// document cares about.
func collect(n *html.Node, b *grove.Builder[string]) {
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			b.Push(text)
		}
	case html.ElementNode:
		b.Open()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c, b)
		}
		b.Close(n.Data)
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c, b)
		}
	}
}

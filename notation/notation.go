/*
Package notation parses and formats the bracket notation for groves.

A grove literal lists trees left to right, separated by commas. A leaf is
written as a bare value, an interior node as the bracketed list of its
children followed by an arrow and the node's value:

	[[1, 2] => 3, 4] => 5, 6

denotes a grove of two trees: the first rooted in 5 over the subtree
[1, 2] => 3 and the leaf 4, the second the single leaf 6. The notation
mirrors the children-before-root storage layout: desugaring a literal is a
single left-to-right pass emitting Push/Open/Close calls on a grove builder.

Formatting is the exact inverse; see grove.Grove.String.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/grove"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'grove'
func tracer() tracing.Trace {
	return tracing.Select("grove")
}

// ErrSyntax signals malformed grove notation.
var ErrSyntax = errors.New("notation: syntax error")

// Parse desugars a grove literal into builder calls and returns the
// resulting store. Values are the raw text between delimiters, with
// surrounding white space trimmed. An input of only white space yields an
// empty grove.
func Parse(input string) (*grove.GroveBuf[string], error) {
	buf := grove.NewGroveBuf[string]()
	p := &parser{input: input, b: buf.Builder()}
	p.skipSpace()
	if !p.eof() {
		if err := p.parseForest(); err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.eof() {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, p.input[p.pos], p.pos)
		}
	}
	g := p.b.Build()
	tracer().Debugf("notation: parsed grove with %d record(s)", g.Len())
	return g, nil
}

// MustParse is like Parse but panics on malformed input. It is a
// convenience for literals in tests and examples.
func MustParse(input string) *grove.GroveBuf[string] {
	g, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return g
}

// Format renders a grove back into notation. Format and Parse round-trip
// for values free of the delimiter characters.
func Format(g grove.Grove[string]) string {
	return g.String()
}

type parser struct {
	input string
	pos   int
	b     *grove.Builder[string]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' ||
		p.input[p.pos] == '\n' || p.input[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

// parseForest parses one or more comma-separated trees.
func (p *parser) parseForest() error {
	for {
		if err := p.parseTree(); err != nil {
			return err
		}
		p.skipSpace()
		if p.peek() != ',' {
			return nil
		}
		p.pos++
	}
}

// parseTree parses a leaf value or a bracketed subtree. Open is emitted on
// '[', Close when the matching "] => value" has been read, so the builder
// session stays balanced for every well-formed literal.
func (p *parser) parseTree() error {
	p.skipSpace()
	if p.peek() != '[' {
		value, err := p.parseValue()
		if err != nil {
			return err
		}
		p.b.Push(value)
		return nil
	}
	p.pos++
	p.b.Open()
	p.skipSpace()
	if p.peek() != ']' {
		if err := p.parseForest(); err != nil {
			return err
		}
		p.skipSpace()
	}
	if p.peek() != ']' {
		return fmt.Errorf("%w: expected ']' at offset %d", ErrSyntax, p.pos)
	}
	p.pos++
	p.skipSpace()
	if !strings.HasPrefix(p.input[p.pos:], "=>") {
		return fmt.Errorf("%w: expected \"=>\" at offset %d", ErrSyntax, p.pos)
	}
	p.pos += 2
	value, err := p.parseValue()
	if err != nil {
		return err
	}
	p.b.Close(value)
	return nil
}

// parseValue reads text up to the next delimiter and trims it.
func (p *parser) parseValue() (string, error) {
	p.skipSpace()
	start := p.pos
	for !p.eof() {
		c := p.input[p.pos]
		if c == '[' || c == ']' || c == ',' {
			break
		}
		p.pos++
	}
	value := strings.TrimSpace(p.input[start:p.pos])
	if value == "" {
		return "", fmt.Errorf("%w: missing value at offset %d", ErrSyntax, start)
	}
	return value, nil
}

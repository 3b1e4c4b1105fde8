/*
Package text builds groves from plain text.

Text is segmented into line-wrap fragments according to Unicode Annex #14
and the fragments are filled greedily into lines of a given width. The
result is a grove with one tree per line: the leaves hold the fragments the
line was assembled from, the root holds the assembled line. Line filling
and grove construction happen in one left-to-right pass over the
segmenter's output, with the builder's Open/Close calls delimiting lines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package text

import (
	"bufio"
	"strings"

	"github.com/npillmayer/grove"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// tracer writes to trace with key 'grove'
func tracer() tracing.Trace {
	return tracing.Select("grove")
}

// LineGrove breaks text into lines of at most linewidth character cells and
// returns a grove with one tree per line. Fragment widths are measured in
// terminal cells according to Unicode Annex #11; context carries the
// regional conventions for resolving ambiguous widths and may be nil, in
// which case it is derived from the user's environment.
//
// A fragment wider than linewidth is put on a line of its own rather than
// broken apart; UAX#14 forbids breaks inside it.
func LineGrove(text string, linewidth int, context *uax11.Context) (*grove.GroveBuf[string], error) {
	if linewidth <= 0 {
		return nil, grove.ErrIllegalArguments
	}
	if context == nil {
		context = uax11.ContextFromEnvironment()
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	//
	buf := grove.NewGroveBuf[string]()
	b := buf.Builder()
	var line strings.Builder
	open := false
	spaceleft := linewidth
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		tracer().Debugf("text: next fragment %q (len=%d|%d)", frag, fraglen, spaceleft)
		if open && fraglen > spaceleft {
			b.Close(strings.TrimRight(line.String(), " "))
			open = false
		}
		if !open {
			b.Open()
			open = true
			line.Reset()
			spaceleft = linewidth
		}
		b.Push(frag)
		line.WriteString(frag)
		spaceleft -= fraglen
	}
	if open {
		b.Close(strings.TrimRight(line.String(), " "))
	}
	return b.Build(), nil
}

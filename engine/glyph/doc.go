/*
Package glyph turns a Unicode codepoint into a normalized glyph outline.

Resolution walks an ordered cascade of fonts and picks the first one that
maps the codepoint to a real glyph. The glyph's outline is then scaled
uniformly to a target size, flipped from the font's y-up design space into
the y-down SVG space, and emitted as an SVG path expression. Glyphs
without a usable outline (e.g. a space) degrade to an empty path with a
neutral transform instead of failing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'unisvg.render'.
func tracer() tracing.Trace {
	return tracing.Select("unisvg.render")
}

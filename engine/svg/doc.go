/*
Package svg assembles rendered glyphs into SVG documents.

The assembler produces either a complete standalone document, a bare path
fragment for embedding, a comparison grid across fonts, or a deterministic
error placeholder. Placeholders are a first-class output: a conversion
never fails without emitting something renderable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package svg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'unisvg.render'.
func tracer() tracing.Trace {
	return tracing.Select("unisvg.render")
}

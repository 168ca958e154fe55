/*
Package resources materializes font assets on the local disk.

An asset is resolved in tiers: an already cached file is used as is; next
the font is searched among the fonts installed on the system; finally, if
auto-fetching is enabled, the asset is downloaded from its configured
source (a plain font file or a member of a ZIP archive) into the user's
cache directory. All functions receive the application configuration
explicitly; this package keeps no global state.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'unisvg.resources'.
func tracer() tracing.Trace {
	return tracing.Select("unisvg.resources")
}

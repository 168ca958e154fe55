package resources

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/unisvg/core"
	"github.com/npillmayer/unisvg/core/font"
)

// Resolver loads fonts on demand, memoizing them in a registry for the
// duration of a run. It satisfies the loader interface of the rendering
// engine.
type Resolver struct {
	conf      schuko.Configuration
	registry  *font.Registry
	autoFetch bool
}

// NewResolver creates a resolver on top of a configuration. With autoFetch
// set, missing assets are downloaded on first use.
func NewResolver(conf schuko.Configuration, autoFetch bool) *Resolver {
	return &Resolver{
		conf:      conf,
		registry:  font.NewRegistry(),
		autoFetch: autoFetch,
	}
}

// Font materializes, parses and indexes the font for an identifier.
func (rs *Resolver) Font(id font.ID) (*font.LoadedFont, error) {
	if f, ok := rs.registry.Font(id); ok {
		return f, nil
	}
	asset, ok := font.Descriptor(id)
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown font identifier %d", id)
	}
	if asset.Kind == font.SourceBuiltin {
		f := font.Builtin()
		rs.registry.Store(f)
		return f, nil
	}
	fontpath, err := EnsureLocal(rs.conf, asset, rs.autoFetch)
	if err != nil {
		return nil, err
	}
	f, err := font.LoadFont(fontpath, asset)
	if err != nil {
		return nil, err
	}
	rs.registry.Store(f)
	return f, nil
}

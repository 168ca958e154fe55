package glyph

import (
	otf "github.com/go-text/typesetting/font"
	"github.com/npillmayer/unisvg/core"
	"github.com/npillmayer/unisvg/core/font"
)

// Loader materializes fonts for the cascade. It is implemented by
// resources.Resolver; tests substitute their own.
type Loader interface {
	Font(id font.ID) (*font.LoadedFont, error)
}

// Match is the result of resolving a codepoint against a font cascade.
type Match struct {
	Codepoint rune
	Font      *font.LoadedFont
	GID       otf.GID
}

// Resolve walks the font cascade in order and returns the first font that
// maps the codepoint to a glyph. Fonts that fail to load are skipped, the
// cascade continues with the next one. If no font supports the codepoint,
// an EUNSUPPORTED error is returned.
func Resolve(ld Loader, r rune, order []font.ID) (Match, error) {
	for _, id := range order {
		f, err := ld.Font(id)
		if err != nil {
			tracer().Infof("cascade skips font %d: %v", id, err)
			continue
		}
		if gid, ok := f.Glyph(r); ok {
			tracer().Debugf("U+%04X resolved by font %s", r, f.Asset.Key)
			return Match{Codepoint: r, Font: f, GID: gid}, nil
		}
	}
	return Match{}, core.Error(core.EUNSUPPORTED,
		"character U+%04X not supported by any configured font", r)
}

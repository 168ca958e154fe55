package svg

import (
	"github.com/npillmayer/unisvg/core"
	"github.com/npillmayer/unisvg/core/font"
	"github.com/npillmayer/unisvg/engine/glyph"
)

// Converter drives the conversion pipeline for single characters: cascade
// resolution, geometric normalization, document assembly. A zero Target or
// ViewBox falls back to the defaults 432 and 1024.
type Converter struct {
	Loader   glyph.Loader
	Cascade  []font.ID // fallback order; defaults to font.DefaultCascade()
	ViewBox  float64
	Target   float64
	Style    Style
	Minimal  bool // suppress diagnostic comments
	PathOnly bool // emit a bare path fragment instead of a document
}

// NewConverter creates a converter with default geometry and styling.
func NewConverter(ld glyph.Loader) *Converter {
	return &Converter{
		Loader:  ld,
		Cascade: font.DefaultCascade(),
		ViewBox: 1024,
		Target:  432,
		Style:   DefaultStyle(),
	}
}

// Result is the outcome of converting one character. Document is always a
// renderable SVG: the real glyph document on success, the deterministic
// error placeholder otherwise.
type Result struct {
	Document    string
	Requested   font.ID
	Used        font.ID // font that actually resolved the character
	UsedKey     string
	Substituted bool // a fallback font was substituted for the requested one
	Rendering   glyph.Rendering
	Err         error
}

func (cv *Converter) viewbox() float64 {
	if cv.ViewBox <= 0 {
		return 1024
	}
	return cv.ViewBox
}

func (cv *Converter) target() float64 {
	if cv.Target <= 0 {
		return 432
	}
	return cv.Target
}

func (cv *Converter) cascade() []font.ID {
	if len(cv.Cascade) == 0 {
		return font.DefaultCascade()
	}
	return cv.Cascade
}

// Convert converts one character to an SVG document. With auto set, the
// fallback cascade selects the font; otherwise the preferred font is used,
// with cascade substitution if it does not support the character. Convert
// never panics; unexpected failures during outline drawing are caught and
// reported as an error placeholder.
func (cv *Converter) Convert(ch rune, preferred font.ID, auto bool) (res Result) {
	res.Requested = preferred
	defer func() {
		if p := recover(); p != nil {
			res.Err = core.Error(core.EINTERNAL, "glyph rendering failed: %v", p)
			res.Document = cv.failure(res.Err)
		}
	}()
	match, err := cv.resolve(ch, preferred, auto)
	if err != nil {
		res.Err = err
		res.Document = cv.failure(err)
		return res
	}
	res.Used = match.Font.Asset.ID
	res.UsedKey = match.Font.Asset.Key
	res.Substituted = !auto && match.Font.Asset.ID != preferred
	res.Rendering = glyph.Render(match, cv.target(), cv.viewbox())
	if cv.PathOnly {
		res.Document = PathFragment(res.Rendering, cv.Style)
	} else {
		res.Document = Document(res.Rendering, cv.viewbox(), cv.Style, cv.Minimal)
	}
	return res
}

// resolve finds the (font, glyph) pair for a character. An explicitly
// requested font that lacks the character triggers cascade substitution
// with a warning.
func (cv *Converter) resolve(ch rune, preferred font.ID, auto bool) (glyph.Match, error) {
	if auto {
		return glyph.Resolve(cv.Loader, ch, cv.cascade())
	}
	f, err := cv.Loader.Font(preferred)
	if err != nil {
		return glyph.Match{}, err
	}
	if gid, ok := f.Glyph(ch); ok {
		return glyph.Match{Codepoint: ch, Font: f, GID: gid}, nil
	}
	match, err := glyph.Resolve(cv.Loader, ch, cv.cascade())
	if err != nil {
		return glyph.Match{}, err
	}
	tracer().Infof("'%c' not in %s, using %s instead", ch, f.Asset.Key, match.Font.Asset.Key)
	return match, nil
}

func (cv *Converter) failure(err error) string {
	if cv.PathOnly {
		return "<!-- Error: " + escapeText(core.UserMessage(err)) + " -->"
	}
	return ErrorDocument(cv.viewbox(), core.UserMessage(err))
}

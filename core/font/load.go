package font

import (
	"bytes"
	"os"
	"sync"

	otf "github.com/go-text/typesetting/font"
	"github.com/npillmayer/unisvg/core"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadedFont owns a parsed font together with its glyph index.
// It is created from an asset on first use and kept for the duration of a
// conversion run; it is never persisted.
type LoadedFont struct {
	Asset    Asset
	Filepath string    // file path; "builtin" for the embedded font
	Face     *otf.Face // the parsed font
	index    map[rune]otf.GID
}

// LoadFont reads and parses a font file and builds its glyph index.
func LoadFont(fontfile string, asset Asset) (*LoadedFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseFont(bytez, asset)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseFont parses binary font data and builds its glyph index.
func ParseFont(bytez []byte, asset Asset) (*LoadedFont, error) {
	face, err := otf.ParseTTF(bytes.NewReader(bytez))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font %s", asset.FileName)
	}
	f := &LoadedFont{
		Asset:    asset,
		Filepath: "memory",
		Face:     face,
		index:    buildIndex(face),
	}
	tracer().Infof("loaded font %s: %d unicode characters", asset.FileName, len(f.index))
	return f, nil
}

// buildIndex walks the font's character map and retains a codepoint→glyph
// pair only if the glyph is actually present in the font's glyph set.
// Subsetted fonts may carry cmap entries for stripped glyphs.
func buildIndex(face *otf.Face) map[rune]otf.GID {
	index := make(map[rune]otf.GID)
	present := make(map[otf.GID]bool)
	iter := face.Cmap.Iter()
	for iter.Next() {
		r, gid := iter.Char()
		if gid == 0 {
			continue
		}
		if _, dup := index[r]; dup {
			continue
		}
		ok, checked := present[gid]
		if !checked {
			ok = face.GlyphData(gid) != nil
			present[gid] = ok
		}
		if ok {
			index[r] = gid
		}
	}
	return index
}

// Glyph looks up the glyph identifier for a codepoint. Absence is a normal
// outcome, consumed by the fallback cascade.
func (f *LoadedFont) Glyph(r rune) (otf.GID, bool) {
	gid, ok := f.index[r]
	return gid, ok
}

// NumChars returns the number of codepoints the font maps to glyphs.
func (f *LoadedFont) NumChars() int {
	return len(f.index)
}

// UnitsPerEm returns the font's design-unit scale.
func (f *LoadedFont) UnitsPerEm() uint16 {
	return f.Face.Upem()
}

// --- Builtin font ----------------------------------------------------------

var builtinLoading sync.Once

// builtinFont is used if no other font is available. Currently Go Regular.
var builtinFont *LoadedFont

// Builtin returns the embedded fallback font. It is always present.
func Builtin() *LoadedFont {
	builtinLoading.Do(func() {
		asset, _ := Descriptor(GoSans)
		f, err := ParseFont(goregular.TTF, asset)
		if err != nil {
			panic("cannot parse embedded font") // this cannot happen
		}
		f.Filepath = "builtin"
		builtinFont = f
	})
	return builtinFont
}

// --- Font Registry ---------------------------------------------------------

// Registry memoizes loaded fonts per identifier within a run. Loading is
// idempotent, so memoization is a performance optimization only.
type Registry struct {
	sync.Mutex
	fonts map[ID]*LoadedFont
}

func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[ID]*LoadedFont),
	}
}

// Store pushes a loaded font into the registry, unless its identifier is
// already present.
func (fr *Registry) Store(f *LoadedFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[f.Asset.ID]; !ok {
		tracer().Debugf("registry stores font %s", f.Asset.Key)
		fr.fonts[f.Asset.ID] = f
	}
}

// Font returns a previously stored font for an identifier.
func (fr *Registry) Font(id ID) (*LoadedFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[id]
	return f, ok
}

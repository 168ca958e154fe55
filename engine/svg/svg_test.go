package svg

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unisvg/core"
	"github.com/npillmayer/unisvg/core/font"
	"github.com/stretchr/testify/assert"
)

// stubLoader serves the builtin font as notosans and an index-less font as
// notomath; every other identifier fails to load.
type stubLoader struct{}

func (ld stubLoader) Font(id font.ID) (*font.LoadedFont, error) {
	switch id {
	case font.NotoSans:
		return font.Builtin(), nil
	case font.NotoMath:
		asset, _ := font.Descriptor(font.NotoMath)
		return &font.LoadedFont{Asset: asset}, nil // maps no characters
	}
	return nil, core.Error(core.EMISSING, "font %d not available", id)
}

func newTestConverter() *Converter {
	return NewConverter(stubLoader{})
}

func wellformed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("document is not well-formed XML: %v", err)
		}
	}
}

func TestDocumentStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	res := cv.Convert('A', font.Unknown, true)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	assert.Contains(t, res.Document, `viewBox="0 0 1024 1024"`)
	assert.Contains(t, res.Document, "<!-- Font: gosans -->")
	assert.Contains(t, res.Document, "<!-- Character: A (U+0041) -->")
	assert.Contains(t, res.Document, `<g transform="translate(`)
	assert.Contains(t, res.Document, `<path d="M `)
	wellformed(t, res.Document)
}

func TestMinimalDocumentOmitsComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	cv.Minimal = true
	res := cv.Convert('A', font.Unknown, true)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if strings.Contains(res.Document, "<!--") {
		t.Error("minimal document must not contain comments")
	}
}

func TestPathOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	cv.PathOnly = true
	cv.Style.Fill = "red"
	res := cv.Convert('A', font.Unknown, true)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	assert.True(t, strings.HasPrefix(res.Document, `<path d="`))
	assert.Contains(t, res.Document, `fill="red"`)
	assert.Contains(t, res.Document, `transform="translate(`)
}

func TestStrokeAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	cv.Style = Style{Fill: "black", Stroke: "blue", StrokeWidth: 2}
	res := cv.Convert('A', font.Unknown, true)
	assert.Contains(t, res.Document, `stroke="blue" stroke-width="2"`)
}

func TestSubstitutionRecorded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	res := cv.Convert('A', font.NotoMath, false) // notomath maps nothing
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if !res.Substituted {
		t.Error("expected substitution to be flagged")
	}
	assert.Equal(t, font.GoSans, res.Used)
	assert.Contains(t, res.Document, "<!-- Font: gosans -->",
		"document must record the font actually used")
}

func TestUnsupportedYieldsPlaceholder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	res := cv.Convert('⨳', font.Unknown, true)
	if res.Err == nil {
		t.Fatal("expected an error for an unsupported character")
	}
	assert.Equal(t, core.EUNSUPPORTED, core.Code(res.Err))
	assert.Contains(t, res.Document, "#fff3cd")
	wellformed(t, res.Document)
}

func TestErrorDocumentEscapesAndTruncates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	msg := "bad input <tag> " + strings.Repeat("x", 100)
	doc := ErrorDocument(1024, msg)
	assert.Contains(t, doc, "&lt;tag&gt;")
	assert.NotContains(t, doc, strings.Repeat("x", 60))
	assert.Contains(t, doc, "⚠ Error")
	wellformed(t, doc)
}

func TestBatchTwoCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	dir := t.TempDir()
	items, err := cv.Batch("ab", dir, font.Unknown, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 batch items, got %d", len(items))
	}
	assert.Equal(t, "000_U0061_gosans.svg", items[0].Filename)
	assert.Equal(t, "001_U0062_gosans.svg", items[1].Filename)
	for _, item := range items {
		if item.Err != nil {
			t.Errorf("item %d failed: %v", item.Index, item.Err)
		}
		if _, err := os.Stat(filepath.Join(dir, item.Filename)); err != nil {
			t.Errorf("missing batch output %s", item.Filename)
		}
	}
}

func TestBatchContinuesOnFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	dir := t.TempDir()
	items, err := cv.Batch("a⨳b", dir, font.Unknown, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 batch items, got %d", len(items))
	}
	if items[1].Err == nil {
		t.Error("expected the unsupported character to fail")
	}
	// the failed character still gets a placeholder file
	bytez, err := os.ReadFile(filepath.Join(dir, items[1].Filename))
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, string(bytez), "#fff3cd")
}

func TestComparisonGrid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	doc, err := cv.Comparison('A', []font.ID{font.NotoMath, font.Symbola, font.NotoSans})
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, doc, "A (U+0041)")
	assert.Contains(t, doc, "gosans ✓", "supporting font gets a checkmark")
	assert.Contains(t, doc, "✗", "non-supporting font gets a cross")
	assert.NotContains(t, doc, "symbola", "unavailable font is left out")
}

func TestComparisonNoFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	_, err := cv.Comparison('A', []font.ID{font.Symbola})
	if err == nil {
		t.Fatal("expected an error with no fonts available")
	}
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestRasterizePreview(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.render")
	defer teardown()
	//
	cv := newTestConverter()
	res := cv.Convert('A', font.Unknown, true)
	img, err := Rasterize(res.Document, 128)
	if err != nil {
		t.Fatal(err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 128 {
		t.Errorf("expected a 128x128 preview, got %v", bounds)
	}
}

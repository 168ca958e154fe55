package svg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/unisvg/engine/glyph"
)

// Style carries the visual attributes of an emitted glyph path.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// DefaultStyle is a plain black fill without stroke.
func DefaultStyle() Style {
	return Style{Fill: "black", Stroke: "none"}
}

func (s Style) attrs() string {
	fill := s.Fill
	if fill == "" {
		fill = "black"
	}
	a := fmt.Sprintf(` fill="%s"`, fill)
	if s.StrokeWidth > 0 {
		a += fmt.Sprintf(` stroke="%s" stroke-width="%g"`, s.Stroke, s.StrokeWidth)
	}
	return a
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// Document wraps a rendered glyph into a complete SVG document with a
// square canvas. The glyph is positioned by a translation group carrying
// the centering offset. Unless minimal is set, diagnostic comments identify
// the source font and codepoint.
func Document(r glyph.Rendering, viewbox float64, style Style, minimal bool) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" \n")
	fmt.Fprintf(&b, "     viewBox=\"0 0 %g %g\"\n", viewbox, viewbox)
	fmt.Fprintf(&b, "     width=\"%g\" \n", viewbox)
	fmt.Fprintf(&b, "     height=\"%g\">\n", viewbox)
	if !minimal {
		fmt.Fprintf(&b, "  <!-- Font: %s -->\n", r.FontKey)
		fmt.Fprintf(&b, "  <!-- Character: %c (U+%04X) -->\n", r.Codepoint, r.Codepoint)
	}
	fmt.Fprintf(&b, "  <g transform=\"translate(%.2f %.2f)\">\n", r.DX, r.DY)
	fmt.Fprintf(&b, "    <path d=\"%s\"%s/>\n", r.Path, style.attrs())
	b.WriteString("  </g>\n")
	b.WriteString("</svg>")
	return b.String()
}

// PathFragment emits just the centered path element, for embedding into a
// larger document. Outline-less glyphs yield a comment instead.
func PathFragment(r glyph.Rendering, style Style) string {
	if strings.TrimSpace(r.Path) == "" {
		return "<!-- Empty glyph -->"
	}
	fill := style.Fill
	if fill == "" {
		fill = "black"
	}
	return fmt.Sprintf(`<path d="%s" transform="translate(%.2f %.2f)" fill="%s"/>`,
		r.Path, r.DX, r.DY, fill)
}

// ErrorDocument builds the deterministic placeholder emitted when a
// conversion fails. It is always well-formed; the message is escaped and
// truncated to 50 characters.
func ErrorDocument(viewbox float64, msg string) string {
	if runes := []rune(msg); len(runes) > 50 {
		msg = string(runes[:50])
	}
	msg = escapeText(msg)
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %g %g\">\n", viewbox, viewbox)
	b.WriteString("  <rect width=\"100%\" height=\"100%\" fill=\"#fff3cd\"/>\n")
	b.WriteString("  <text x=\"50%\" y=\"50%\" text-anchor=\"middle\" dy=\"0\" font-size=\"60\" fill=\"#856404\">\n")
	b.WriteString("    <tspan x=\"50%\" dy=\"-30\">⚠ Error</tspan>\n")
	fmt.Fprintf(&b, "    <tspan x=\"50%%\" dy=\"40\" font-size=\"40\">%s</tspan>\n", msg)
	b.WriteString("  </text>\n")
	b.WriteString("</svg>")
	return b.String()
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

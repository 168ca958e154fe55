package svg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/unisvg/core"
	"github.com/npillmayer/unisvg/core/font"
	"github.com/npillmayer/unisvg/engine/glyph"
)

// Comparison renders a character side by side in every available font of a
// list, arranged in a grid of at most 3 columns. Fonts that fail to load
// are left out; fonts lacking the character get a crossed-out cell. With
// no font available at all, an EMISSING error is returned.
func (cv *Converter) Comparison(ch rune, ids []font.ID) (string, error) {
	var cells []*font.LoadedFont
	for _, id := range ids {
		f, err := cv.Loader.Font(id)
		if err != nil {
			tracer().Infof("comparison skips font %d: %v", id, err)
			continue
		}
		cells = append(cells, f)
	}
	if len(cells) == 0 {
		return "", core.Error(core.EMISSING, "no fonts available, download fonts first")
	}
	viewbox := cv.viewbox()
	columns := len(cells)
	if columns > 3 {
		columns = 3
	}
	rows := (len(cells) + columns - 1) / columns
	grid := rows
	if columns > rows {
		grid = columns
	}
	cellSize := viewbox / float64(grid)
	//
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" \n")
	fmt.Fprintf(&b, "     viewBox=\"0 0 %g %g\"\n", viewbox, viewbox)
	fmt.Fprintf(&b, "     width=\"%g\" \n", viewbox)
	fmt.Fprintf(&b, "     height=\"%g\">\n", viewbox)
	fmt.Fprintf(&b, "  <text x=\"50%%\" y=\"5%%\" text-anchor=\"middle\" font-size=\"60\">\n")
	fmt.Fprintf(&b, "    %c (U+%04X)\n", ch, ch)
	b.WriteString("  </text>\n")
	for i, f := range cells {
		col := i % columns
		row := i / columns
		centerX := (float64(col) + 0.5) * cellSize
		centerY := (float64(row)+0.5)*cellSize + 100
		if gid, ok := f.Glyph(ch); ok {
			m := glyph.Match{Codepoint: ch, Font: f, GID: gid}
			r := glyph.Render(m, cellSize*0.6, viewbox)
			pathX := centerX - r.Box.Width()*r.Scale/2
			pathY := centerY - r.Box.Height()*r.Scale/2
			fmt.Fprintf(&b, "  <g transform=\"translate(%.1f %.1f)\">\n", pathX, pathY)
			fmt.Fprintf(&b, "    <path d=\"%s\" fill=\"black\"/>\n", r.Path)
			b.WriteString("  </g>\n")
			fmt.Fprintf(&b, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-size=\"30\">\n",
				centerX, centerY+cellSize*0.4)
			fmt.Fprintf(&b, "    %s ✓\n", f.Asset.Key)
			b.WriteString("  </text>\n")
		} else {
			fmt.Fprintf(&b, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-size=\"60\" fill=\"#ccc\">\n",
				centerX, centerY)
			b.WriteString("    ✗\n")
			b.WriteString("  </text>\n")
			fmt.Fprintf(&b, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-size=\"30\" fill=\"#999\">\n",
				centerX, centerY+cellSize*0.4)
			fmt.Fprintf(&b, "    %s\n", f.Asset.Key)
			b.WriteString("  </text>\n")
		}
	}
	b.WriteString("</svg>")
	return b.String(), nil
}

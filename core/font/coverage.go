package font

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Block is a named Unicode codepoint range.
type Block struct {
	Name string
	Lo   rune
	Hi   rune
}

// symbolBlocks lists the Unicode blocks most relevant for symbol conversion.
var symbolBlocks = []Block{
	{"Basic Latin", 0x0000, 0x007F},
	{"Latin-1 Supplement", 0x0080, 0x00FF},
	{"Currency Symbols", 0x20A0, 0x20CF},
	{"Letterlike Symbols", 0x2100, 0x214F},
	{"Number Forms", 0x2150, 0x218F},
	{"Superscripts and Subscripts", 0x2070, 0x209F},
	{"Arrows", 0x2190, 0x21FF},
	{"Mathematical Operators", 0x2200, 0x22FF},
	{"Geometric Shapes", 0x25A0, 0x25FF},
	{"Misc Symbols", 0x2600, 0x26FF},
	{"Dingbats", 0x2700, 0x27BF},
	{"Misc Math Symbols-A", 0x27C0, 0x27EF},
	{"Misc Math Symbols-B", 0x2980, 0x29FF},
	{"Supplemental Math Operators", 0x2A00, 0x2AFF},
	{"Misc Symbols and Arrows", 0x2B00, 0x2BFF},
}

// BlockCoverage reports how many codepoints of a block a font maps.
type BlockCoverage struct {
	Block
	Mapped int
}

// Size returns the total number of codepoints in the block.
func (bc BlockCoverage) Size() int {
	return int(bc.Hi-bc.Lo) + 1
}

// Coverage reports the font's coverage of the symbol blocks, ordered by
// block start, omitting blocks without any mapped codepoint.
func (f *LoadedFont) Coverage() []BlockCoverage {
	blocks := treemap.NewWithIntComparator()
	for _, b := range symbolBlocks {
		blocks.Put(int(b.Lo), &BlockCoverage{Block: b})
	}
	for r := range f.index {
		_, v := blocks.Floor(int(r))
		if v == nil {
			continue
		}
		bc := v.(*BlockCoverage)
		if r <= bc.Hi {
			bc.Mapped++
		}
	}
	var out []BlockCoverage
	blocks.Each(func(key interface{}, value interface{}) {
		bc := value.(*BlockCoverage)
		if bc.Mapped > 0 {
			out = append(out, *bc)
		}
	})
	return out
}

package svg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/unisvg/core"
	"github.com/npillmayer/unisvg/core/font"
)

// BatchItem reports the outcome for one character of a batch run.
type BatchItem struct {
	Index    int
	Char     rune
	Filename string
	FontKey  string
	Err      error
}

// Batch converts every character of input into its own SVG file in dir,
// creating the directory if necessary. Input is segmented into grapheme
// clusters; the cluster's leading codepoint is converted. Failures do not
// abort the run: a failed character still gets its file, containing the
// error placeholder, and the failure is recorded in its item.
func (cv *Converter) Batch(input string, dir string, preferred font.ID, auto bool) ([]BatchItem, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create batch directory %s", dir)
	}
	var items []BatchItem
	onGraphemes := grapheme.NewBreaker(1)
	seg := segment.NewSegmenter(onGraphemes)
	grapheme.SetupGraphemeClasses()
	seg.Init(strings.NewReader(input))
	i := 0
	for seg.Next() {
		runes := []rune(seg.Text())
		if len(runes) == 0 {
			continue
		}
		ch := runes[0]
		res := cv.Convert(ch, preferred, auto)
		item := BatchItem{
			Index:   i,
			Char:    ch,
			FontKey: res.UsedKey,
			Err:     res.Err,
		}
		suffix := ""
		if auto && res.Err == nil {
			suffix = "_" + res.UsedKey
		}
		item.Filename = fmt.Sprintf("%03d_U%04X%s.svg", i, ch, suffix)
		err := os.WriteFile(filepath.Join(dir, item.Filename), []byte(res.Document), 0644)
		if err != nil && item.Err == nil {
			item.Err = core.WrapError(err, core.EINVALID, "cannot write %s", item.Filename)
		}
		items = append(items, item)
		i++
	}
	tracer().Infof("batch converted %d characters into %s", len(items), dir)
	return items, nil
}

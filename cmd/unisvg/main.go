package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/unisvg/core"
	"github.com/npillmayer/unisvg/core/font"
	"github.com/npillmayer/unisvg/core/locate/resources"
	"github.com/npillmayer/unisvg/engine/svg"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

// tracer traces with key 'unisvg.render'
func tracer() tracing.Trace {
	return tracing.Select("unisvg.render")
}

// command is the closed set of modes the tool can run in. Exactly one is
// selected per invocation; conversion is the default.
type command int

const (
	cmdConvert command = iota
	cmdDownload
	cmdListFonts
	cmdFontInfo
	cmdCheck
	cmdCompare
	cmdBatch
)

type options struct {
	cmd         command
	arg         string // command argument: font key, character, or batch string
	fontKey     string
	auto        bool
	output      string
	target      float64
	viewbox     float64
	fill        string
	stroke      string
	strokeWidth float64
	pathOnly    bool
	minimal     bool
	batchDir    string
	fontsDir    string
	noDownload  bool
	png         bool
}

func main() {
	initDisplay()
	//
	download := flag.String("download", "", "Download font asset (key or 'all')")
	listFonts := flag.Bool("list-fonts", false, "List available fonts")
	fontInfo := flag.String("font-info", "", "Show information about a font")
	check := flag.String("check", "", "Check character support in all fonts")
	compare := flag.String("compare", "", "Compare character across all fonts")
	batch := flag.String("batch", "", "Convert all characters of a string")
	batchDir := flag.String("batch-dir", "glyphs", "Output directory for batch mode")
	fontKey := flag.String("font", "symbola", "Font to use")
	auto := flag.Bool("auto", false, "Auto-select font (notomath, then symbola, then notosans)")
	output := flag.String("o", "", "Output SVG file (default: stdout)")
	size := flag.Float64("s", 432, "Glyph size within viewBox")
	viewbox := flag.Float64("v", 1024, "SVG viewBox size")
	color := flag.String("c", "black", "Fill color")
	stroke := flag.String("stroke", "none", "Stroke color")
	strokeWidth := flag.Float64("stroke-width", 0, "Stroke width")
	pathOnly := flag.Bool("p", false, "Output only the path element")
	minimal := flag.Bool("m", false, "Minimal SVG without comments")
	fontsDir := flag.String("fonts-dir", "", "Directory for cached font files")
	noDownload := flag.Bool("no-download", false, "Never download missing fonts")
	png := flag.Bool("png", false, "Additionally write a PNG preview")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	//
	setupTracing(*tlevel)
	opts := options{
		fontKey:     *fontKey,
		auto:        *auto,
		output:      *output,
		target:      *size,
		viewbox:     *viewbox,
		fill:        *color,
		stroke:      *stroke,
		strokeWidth: *strokeWidth,
		pathOnly:    *pathOnly,
		minimal:     *minimal,
		batchDir:    *batchDir,
		fontsDir:    *fontsDir,
		noDownload:  *noDownload,
		png:         *png,
	}
	switch {
	case *download != "":
		opts.cmd, opts.arg = cmdDownload, *download
	case *listFonts:
		opts.cmd = cmdListFonts
	case *fontInfo != "":
		opts.cmd, opts.arg = cmdFontInfo, *fontInfo
	case *check != "":
		opts.cmd, opts.arg = cmdCheck, *check
	case *compare != "":
		opts.cmd, opts.arg = cmdCompare, *compare
	case *batch != "":
		opts.cmd, opts.arg = cmdBatch, *batch
	default:
		if flag.NArg() == 0 {
			flag.Usage()
			return
		}
		opts.cmd, opts.arg = cmdConvert, flag.Arg(0)
	}
	run(opts)
}

// run dispatches a parsed command. Failures are reported as printed
// messages; conversion modes additionally emit an error placeholder, so
// the tool always produces something renderable.
func run(opts options) {
	conf := configuration(opts)
	tracer().Debugf("command mode %d, argument %q", opts.cmd, opts.arg)
	switch opts.cmd {
	case cmdDownload:
		runDownload(conf, opts.arg)
	case cmdListFonts:
		runListFonts(conf)
	case cmdFontInfo:
		runFontInfo(conf, opts)
	case cmdCheck:
		runCheck(conf, opts)
	case cmdCompare:
		runCompare(conf, opts)
	case cmdBatch:
		runBatch(conf, opts)
	case cmdConvert:
		runConvert(conf, opts)
	}
}

func configuration(opts options) testconfig.Conf {
	conf := testconfig.Conf{"app-key": "unisvg"}
	if opts.fontsDir != "" {
		conf["fonts-dir"] = opts.fontsDir
	}
	return conf
}

func converter(conf testconfig.Conf, opts options) *svg.Converter {
	cv := svg.NewConverter(resources.NewResolver(conf, !opts.noDownload))
	cv.ViewBox = opts.viewbox
	cv.Target = opts.target
	cv.Style = svg.Style{Fill: opts.fill, Stroke: opts.stroke, StrokeWidth: opts.strokeWidth}
	cv.Minimal = opts.minimal
	cv.PathOnly = opts.pathOnly
	return cv
}

func runDownload(conf testconfig.Conf, key string) {
	var assets []font.Asset
	if key == "all" {
		for _, a := range font.All() {
			if a.Kind != font.SourceBuiltin {
				assets = append(assets, a)
			}
		}
	} else {
		asset, err := font.ResolveKey(key)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			return
		}
		assets = append(assets, asset)
	}
	for _, asset := range assets {
		pterm.Info.Printfln("Downloading %s ...", asset.Key)
		path, err := resources.EnsureLocal(conf, asset, true)
		if err != nil {
			pterm.Error.Printfln("%s: %s", asset.Key, core.UserMessage(err))
			continue
		}
		pterm.Printfln("✓ %s downloaded to %s", asset.Key, path)
	}
}

func runListFonts(conf testconfig.Conf) {
	pterm.Info.Println("Available fonts:")
	for _, st := range resources.Status(conf) {
		mark := "✗"
		if st.Present {
			mark = "✓"
		}
		pterm.Printfln("  %-10s %s %s", st.Asset.Key, mark, st.Asset.Description)
	}
}

func runFontInfo(conf testconfig.Conf, opts options) {
	asset, err := font.ResolveKey(opts.arg)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	rs := resources.NewResolver(conf, !opts.noDownload)
	f, err := rs.Font(asset.ID)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	pterm.Info.Printfln("Font %s", asset.Key)
	pterm.Printfln("  File:               %s", f.Filepath)
	pterm.Printfln("  Unicode characters: %d", f.NumChars())
	pterm.Printfln("  Units per em:       %d", f.UnitsPerEm())
	pterm.Println("  Supported symbol ranges:")
	for _, cov := range f.Coverage() {
		pct := 100 * float64(cov.Mapped) / float64(cov.Size())
		pterm.Printfln("    %-30s %4d / %4d (%5.1f%%)", cov.Name, cov.Mapped, cov.Size(), pct)
	}
}

func runCheck(conf testconfig.Conf, opts options) {
	ch := firstRune(opts.arg)
	pterm.Info.Printfln("Checking '%c' (U+%04X %s):", ch, ch, runenames.Name(ch))
	rs := resources.NewResolver(conf, false)
	for _, asset := range font.All() {
		f, err := rs.Font(asset.ID)
		if err != nil {
			pterm.Printfln("  %-10s ✗ not available", asset.Key)
			continue
		}
		if gid, ok := f.Glyph(ch); ok {
			pterm.Printfln("  %-10s ✓ glyph %d", asset.Key, gid)
		} else {
			pterm.Printfln("  %-10s ✗ not supported", asset.Key)
		}
	}
}

func runCompare(conf testconfig.Conf, opts options) {
	ch := firstRune(opts.arg)
	cv := converter(conf, opts)
	var ids []font.ID
	for _, asset := range font.All() {
		ids = append(ids, asset.ID)
	}
	doc, err := cv.Comparison(ch, ids)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	filename := fmt.Sprintf("compare_%c.svg", ch)
	if err = os.WriteFile(filename, []byte(doc), 0644); err != nil {
		pterm.Error.Printfln("cannot write %s: %v", filename, err)
		return
	}
	pterm.Printfln("Comparison saved to: %s", filename)
}

func runBatch(conf testconfig.Conf, opts options) {
	cv := converter(conf, opts)
	preferred, err := font.ResolveKey(opts.fontKey)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	pterm.Info.Printfln("Batch converting: %s", opts.arg)
	items, err := cv.Batch(opts.arg, opts.batchDir, preferred.ID, opts.auto)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	for _, item := range items {
		if item.Err != nil {
			pterm.Printfln("  %3d. %c: ERROR - %s", item.Index+1, item.Char, core.UserMessage(item.Err))
		} else {
			pterm.Printfln("  %3d. %c → %s", item.Index+1, item.Char, item.Filename)
		}
	}
	pterm.Printfln("Batch complete. Files in: %s/", opts.batchDir)
}

func runConvert(conf testconfig.Conf, opts options) {
	ch := firstRune(opts.arg)
	preferred, err := font.ResolveKey(opts.fontKey)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return
	}
	cv := converter(conf, opts)
	res := cv.Convert(ch, preferred.ID, opts.auto)
	if res.Err != nil {
		pterm.Error.Println(core.UserMessage(res.Err))
	} else {
		if res.Substituted {
			pterm.Info.Printfln("⚠ '%c' not in %s, using %s instead", ch, preferred.Key, res.UsedKey)
		}
		r := res.Rendering
		pterm.Printfln("✓ Conversion successful")
		pterm.Printfln("  Character: %c (U+%04X %s)", ch, ch, runenames.Name(ch))
		pterm.Printfln("  Font:      %s", res.UsedKey)
		pterm.Printfln("  Size:      %.1f × %.1f", r.Box.Width()*r.Scale, r.Box.Height()*r.Scale)
		pterm.Printfln("  Position:  (%.1f, %.1f)", r.DX, r.DY)
	}
	if opts.output == "" {
		fmt.Println(res.Document)
	} else if err := os.WriteFile(opts.output, []byte(res.Document), 0644); err != nil {
		pterm.Error.Printfln("cannot write %s: %v", opts.output, err)
		return
	} else {
		pterm.Printfln("Saved to: %s", opts.output)
	}
	if opts.png && !opts.pathOnly {
		pngfile := strings.TrimSuffix(opts.output, ".svg") + ".png"
		if opts.output == "" {
			pngfile = fmt.Sprintf("U%04X.png", ch)
		}
		if err := svg.WritePNG(pngfile, res.Document, int(opts.viewbox)); err != nil {
			pterm.Error.Println(core.UserMessage(err))
			return
		}
		pterm.Printfln("Preview:   %s", pngfile)
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '⨳'
}

func setupTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.unisvg.fonts":     level,
		"trace.unisvg.resources": level,
		"trace.unisvg.render":    level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// We use pterm for moderately fancy output. Informational output goes to
// stderr, keeping stdout clean for piped SVG documents.
func initDisplay() {
	pterm.SetDefaultOutput(os.Stderr)
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

/*
Package font manages the font assets known to unisvg.

Fonts are identified by a small closed set of identifiers. Each identifier
carries a static descriptor: the font's file name, where to acquire it
(a plain TTF download or a member of a ZIP archive), and a short
human-readable description. Descriptors are immutable; the corresponding
font file is materialized lazily by package core/locate/resources.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unisvg/core"
)

// tracer traces with key 'unisvg.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("unisvg.fonts")
}

// ID identifies one of the fonts unisvg knows about.
type ID int

const (
	Unknown ID = iota
	NotoMath   // clean modern math font
	Symbola    // broad historical symbol font
	NotoSans   // general purpose sans-serif
	GoSans     // embedded Go Regular, always available
)

// SourceKind tells how a font asset is acquired.
type SourceKind int8

const (
	SourceTTF     SourceKind = iota // plain font file download
	SourceZip                       // font file inside a ZIP archive
	SourceBuiltin                   // compiled into the binary
)

// Asset is the static descriptor for a font identifier.
type Asset struct {
	ID          ID
	Key         string     // stable identifier used on the command line
	FileName    string     // file name in the fonts directory
	URL         string     // download location; empty for builtin assets
	Kind        SourceKind
	ArchivePath string // member path within a ZIP archive, if Kind == SourceZip
	Description string
}

var assets = []Asset{
	{
		ID:          Symbola,
		Key:         "symbola",
		FileName:    "Symbola.ttf",
		URL:         "https://archive.org/download/Symbola/Symbola613.ttf",
		Kind:        SourceTTF,
		Description: "Historical Unicode symbol font (broad coverage)",
	},
	{
		ID:          NotoMath,
		Key:         "notomath",
		FileName:    "NotoSansMath-Regular.ttf",
		URL:         "https://github.com/notofonts/math/releases/download/NotoSansMath-v3.000/NotoSansMath-v3.000.zip",
		Kind:        SourceZip,
		ArchivePath: "NotoSansMath-v3.000/NotoSansMath-Regular.ttf",
		Description: "Modern Noto Sans Math font (clean design)",
	},
	{
		ID:          NotoSans,
		Key:         "notosans",
		FileName:    "NotoSans-Regular.ttf",
		URL:         "https://github.com/notofonts/noto-fonts/raw/main/hinted/ttf/NotoSans/NotoSans-Regular.ttf",
		Kind:        SourceTTF,
		Description: "General purpose sans-serif font",
	},
	{
		ID:          GoSans,
		Key:         "gosans",
		FileName:    "GoRegular.ttf",
		Kind:        SourceBuiltin,
		Description: "Go Regular, embedded fallback font",
	},
}

// All returns the descriptors of every known font, in a stable order.
func All() []Asset {
	out := make([]Asset, len(assets))
	copy(out, assets)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Descriptor returns the asset descriptor for a font identifier.
func Descriptor(id ID) (Asset, bool) {
	for _, a := range assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// DefaultCascade is the fallback order used when no font is requested
// explicitly: modern math first, then the broad symbol font, then the
// general sans-serif.
func DefaultCascade() []ID {
	return []ID{NotoMath, Symbola, NotoSans}
}

// --- Key resolution --------------------------------------------------------

var keyTrieCreation sync.Once
var keyTrie *trie.Trie

func keys() *trie.Trie {
	keyTrieCreation.Do(func() {
		keyTrie = trie.New()
		for _, a := range assets {
			keyTrie.Add(a.Key, a)
		}
	})
	return keyTrie
}

// ResolveKey maps a user-provided font key to an asset descriptor.
// Unique prefixes are accepted ("sym" resolves to symbola); ambiguous or
// unknown keys produce an error listing the candidates.
func ResolveKey(key string) (Asset, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return Asset{}, core.Error(core.EINVALID, "empty font identifier")
	}
	if node, ok := keys().Find(key); ok {
		return node.Meta().(Asset), nil
	}
	matches := keys().PrefixSearch(key)
	switch len(matches) {
	case 1:
		node, _ := keys().Find(matches[0])
		tracer().Debugf("font key %q resolved to %q", key, matches[0])
		return node.Meta().(Asset), nil
	case 0:
		return Asset{}, core.Error(core.EINVALID, "unknown font: %s (choose from: %s)",
			key, strings.Join(allKeys(), ", "))
	}
	sort.Strings(matches)
	return Asset{}, core.Error(core.EINVALID, "ambiguous font identifier %s: matches %s",
		key, strings.Join(matches, ", "))
}

func allKeys() []string {
	ks := make([]string, 0, len(assets))
	for _, a := range assets {
		ks = append(ks, a.Key)
	}
	sort.Strings(ks)
	return ks
}

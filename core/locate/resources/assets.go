package resources

import (
	"os"
	"path"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/unisvg/core"
	"github.com/npillmayer/unisvg/core/font"
)

// FontsDir returns the directory where font assets are cached. An explicit
// `fonts-dir` configuration entry wins; otherwise a "fonts" folder in the
// user's cache directory is used. The directory is created if necessary.
func FontsDir(conf schuko.Configuration) (string, error) {
	if dir := conf.GetString("fonts-dir"); dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err = os.MkdirAll(dir, 0755); err != nil {
				return "", core.WrapError(err, core.EINVALID, "cannot create fonts directory: %s", dir)
			}
		}
		return dir, nil
	}
	return CacheDirPath(conf, "fonts")
}

// EnsureLocal materializes a font asset and returns its local path.
// Resolution tiers: cached file, installed system font, download (only with
// autoFetch). Without autoFetch a missing asset yields an EMISSING error;
// download problems yield ECONNECTION.
func EnsureLocal(conf schuko.Configuration, asset font.Asset, autoFetch bool) (string, error) {
	if asset.Kind == font.SourceBuiltin {
		return "", core.Error(core.EINVALID, "builtin font %s has no file to materialize", asset.Key)
	}
	dir, err := FontsDir(conf)
	if err != nil {
		return "", err
	}
	fontpath := path.Join(dir, asset.FileName)
	if _, err := os.Stat(fontpath); err == nil {
		return fontpath, nil
	}
	if syspath, err := findfont.Find(asset.FileName); err == nil && syspath != "" {
		tracer().Debugf("%s is a system font: %s", asset.Key, syspath)
		return syspath, nil
	}
	if !autoFetch {
		return "", core.Error(core.EMISSING,
			"font %s not found at %s; run: unisvg download %s", asset.Key, fontpath, asset.Key)
	}
	if err := fetch(asset, fontpath); err != nil {
		return "", err
	}
	return fontpath, nil
}

func fetch(asset font.Asset, fontpath string) error {
	switch asset.Kind {
	case font.SourceZip:
		tmp, err := os.CreateTemp("", "unisvg-*.zip")
		if err != nil {
			return core.WrapError(err, core.EINVALID, "cannot create temporary file")
		}
		tmpname := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpname)
		if err = DownloadCachedFile(tmpname, asset.URL); err != nil {
			return err
		}
		return ExtractZipMember(tmpname, asset.ArchivePath, asset.FileName, fontpath)
	default:
		return DownloadCachedFile(fontpath, asset.URL)
	}
}

// AssetStatus describes the local availability of one font asset.
type AssetStatus struct {
	Asset   font.Asset
	Present bool
	Path    string
}

// Status reports the local availability of every known font asset.
func Status(conf schuko.Configuration) []AssetStatus {
	var out []AssetStatus
	for _, asset := range font.All() {
		st := AssetStatus{Asset: asset}
		if asset.Kind == font.SourceBuiltin {
			st.Present = true
			st.Path = "builtin"
		} else if dir, err := FontsDir(conf); err == nil {
			fontpath := path.Join(dir, asset.FileName)
			if _, err := os.Stat(fontpath); err == nil {
				st.Present = true
				st.Path = fontpath
			} else if syspath, err := findfont.Find(asset.FileName); err == nil && syspath != "" {
				st.Present = true
				st.Path = syspath
			}
		}
		out = append(out, st)
	}
	return out
}

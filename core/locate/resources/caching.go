package resources

import (
	"archive/zip"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/unisvg/core"
)

// DownloadCachedFile will download a url to a local file (usually located in
// the user's cache directory). A partially written file is removed on
// failure.
func DownloadCachedFile(filepath string, url string) error {
	tracer().Infof("downloading %s", url)
	resp, err := http.Get(url)
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "download failed: %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return core.Error(core.ECONNECTION, "download failed: %s: %s", url, resp.Status)
	}
	out, err := os.Create(filepath)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create file: %s", filepath)
	}
	defer out.Close()
	if _, err = io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(filepath)
		return core.WrapError(err, core.ECONNECTION, "download interrupted: %s", url)
	}
	return nil
}

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(conf schuko.Configuration, subfolders ...string) (string, error) {
	appkey := conf.GetString("app-key")
	if appkey == "" {
		tracer().Errorf("application key is not set")
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	subs := path.Join(subfolders...)
	cachedir = path.Join(cachedir, appkey, subs)
	tracer().Debugf("caching in %s", cachedir)
	_, err = os.Stat(cachedir)
	if os.IsNotExist(err) {
		err = os.MkdirAll(cachedir, 0755)
		if err != nil {
			return "", err
		}
	}
	return cachedir, nil
}

// ExtractZipMember copies one member out of a ZIP archive into dest.
// The member is matched by its full archive path or, failing that, by its
// base file name, as release archives tend to move fonts between folders.
func ExtractZipMember(zipfile string, memberpath string, filename string, dest string) error {
	archive, err := zip.OpenReader(zipfile)
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "cannot open archive: %s", zipfile)
	}
	defer archive.Close()
	var member *zip.File
	for _, f := range archive.File {
		if f.Name == memberpath || strings.HasSuffix(f.Name, "/"+filename) || f.Name == filename {
			member = f
			break
		}
	}
	if member == nil {
		return core.Error(core.ECONNECTION, "font file %s not found in archive %s", filename, zipfile)
	}
	in, err := member.Open()
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "cannot read archive member %s", member.Name)
	}
	defer in.Close()
	out, err := os.Create(dest)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create file: %s", dest)
	}
	defer out.Close()
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return core.WrapError(err, core.ECONNECTION, "extraction interrupted: %s", member.Name)
	}
	tracer().Infof("extracted %s", member.Name)
	return nil
}

package resources

import (
	"archive/zip"
	"os"
	"path"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unisvg/core"
	"github.com/npillmayer/unisvg/core/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontsDirExplicit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.resources")
	defer teardown()
	//
	dir := path.Join(t.TempDir(), "fonts")
	conf := testconfig.Conf{"fonts-dir": dir}
	got, err := FontsDir(conf)
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("expected fonts dir %s, got %s", dir, got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected fonts dir to be created: %v", err)
	}
}

func TestEnsureLocalMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.resources")
	defer teardown()
	//
	conf := testconfig.Conf{"fonts-dir": t.TempDir()}
	asset, _ := font.Descriptor(font.Symbola)
	_, err := EnsureLocal(conf, asset, false)
	if err == nil {
		t.Skip("symbola found as a system font")
	}
	if core.Code(err) != core.EMISSING {
		t.Errorf("expected EMISSING for absent asset, got code %d", core.Code(err))
	}
}

func TestEnsureLocalCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.resources")
	defer teardown()
	//
	dir := t.TempDir()
	conf := testconfig.Conf{"fonts-dir": dir}
	asset, _ := font.Descriptor(font.Symbola)
	fontpath := path.Join(dir, asset.FileName)
	if err := os.WriteFile(fontpath, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := EnsureLocal(conf, asset, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != fontpath {
		t.Errorf("expected cached path %s, got %s", fontpath, got)
	}
}

func TestExtractZipMember(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.resources")
	defer teardown()
	//
	dir := t.TempDir()
	zipname := path.Join(dir, "release.zip")
	zf, err := os.Create(zipname)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(zf)
	member, err := w.Create("NotoSansMath-v3.000/NotoSansMath-Regular.ttf")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = member.Write(goregular.TTF); err != nil {
		t.Fatal(err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}
	zf.Close()
	//
	asset, _ := font.Descriptor(font.NotoMath)
	dest := path.Join(dir, asset.FileName)
	if err = ExtractZipMember(zipname, asset.ArchivePath, asset.FileName, dest); err != nil {
		t.Fatal(err)
	}
	if _, err = font.LoadFont(dest, asset); err != nil {
		t.Errorf("extracted font does not parse: %v", err)
	}
}

func TestResolverBuiltin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.resources")
	defer teardown()
	//
	rs := NewResolver(testconfig.Conf{"fonts-dir": t.TempDir()}, false)
	f, err := rs.Font(font.GoSans)
	if err != nil {
		t.Fatal(err)
	}
	if f.Asset.ID != font.GoSans {
		t.Errorf("expected builtin font, got %s", f.Asset.Key)
	}
}

func TestResolverMemoizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.resources")
	defer teardown()
	//
	dir := t.TempDir()
	conf := testconfig.Conf{"fonts-dir": dir}
	asset, _ := font.Descriptor(font.NotoSans)
	if err := os.WriteFile(path.Join(dir, asset.FileName), goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	rs := NewResolver(conf, false)
	f1, err := rs.Font(font.NotoSans)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := rs.Font(font.NotoSans)
	if err != nil {
		t.Fatal(err)
	}
	if f1 != f2 {
		t.Error("expected second load to be served from the registry")
	}
}

func TestStatusListsAllAssets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.resources")
	defer teardown()
	//
	st := Status(testconfig.Conf{"fonts-dir": t.TempDir()})
	if len(st) != len(font.All()) {
		t.Fatalf("expected %d status entries, got %d", len(font.All()), len(st))
	}
	for _, s := range st {
		if s.Asset.ID == font.GoSans && !s.Present {
			t.Error("builtin font must always be present")
		}
	}
}

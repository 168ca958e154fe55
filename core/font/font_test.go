package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unisvg/core"
)

func TestResolveKeyExact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.fonts")
	defer teardown()
	//
	a, err := ResolveKey("symbola")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != Symbola {
		t.Errorf("expected key 'symbola' to resolve to Symbola, got %v", a.ID)
	}
}

func TestResolveKeyPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.fonts")
	defer teardown()
	//
	a, err := ResolveKey("sym")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != Symbola {
		t.Errorf("expected prefix 'sym' to resolve to Symbola, got %v", a.ID)
	}
}

func TestResolveKeyAmbiguous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.fonts")
	defer teardown()
	//
	_, err := ResolveKey("noto")
	if err == nil {
		t.Fatal("expected prefix 'noto' to be ambiguous, wasn't")
	}
	if core.Code(err) != core.EINVALID {
		t.Errorf("expected EINVALID for ambiguous key, got code %d", core.Code(err))
	}
	t.Logf("message = %s", core.UserMessage(err))
}

func TestResolveKeyUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.fonts")
	defer teardown()
	//
	if _, err := ResolveKey("wingdings"); err == nil {
		t.Error("expected unknown font key to produce an error, didn't")
	}
}

func TestBuiltinIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.fonts")
	defer teardown()
	//
	f := Builtin()
	gid, ok := f.Glyph('A')
	if !ok || gid == 0 {
		t.Fatalf("expected builtin font to map 'A', got (%d, %v)", gid, ok)
	}
	gid2, ok2 := f.Glyph('A')
	if !ok2 || gid2 != gid {
		t.Errorf("glyph lookup not stable: first %d, then (%d, %v)", gid, gid2, ok2)
	}
	if _, ok := f.Glyph('⨳'); ok {
		t.Error("did not expect builtin font to map U+2A33")
	}
	if f.NumChars() == 0 {
		t.Error("expected builtin font to map some characters")
	}
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	if _, ok := reg.Font(GoSans); ok {
		t.Fatal("empty registry should not contain a font")
	}
	reg.Store(Builtin())
	f, ok := reg.Font(GoSans)
	if !ok || f == nil {
		t.Fatal("expected registry to return stored builtin font")
	}
	if f.Asset.Key != "gosans" {
		t.Errorf("expected asset key 'gosans', got %q", f.Asset.Key)
	}
}

func TestCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unisvg.fonts")
	defer teardown()
	//
	cov := Builtin().Coverage()
	if len(cov) == 0 {
		t.Fatal("expected builtin font to cover at least one block")
	}
	if cov[0].Name != "Basic Latin" {
		t.Errorf("expected first covered block to be Basic Latin, got %s", cov[0].Name)
	}
	if cov[0].Mapped < 90 || cov[0].Mapped > cov[0].Size() {
		t.Errorf("implausible Basic Latin coverage: %d of %d", cov[0].Mapped, cov[0].Size())
	}
	for i := 1; i < len(cov); i++ {
		if cov[i].Lo <= cov[i-1].Lo {
			t.Errorf("coverage not ordered by block start at %d", i)
		}
	}
}

func TestDefaultCascade(t *testing.T) {
	order := DefaultCascade()
	expect := []ID{NotoMath, Symbola, NotoSans}
	if len(order) != len(expect) {
		t.Fatalf("expected cascade of %d fonts, got %d", len(expect), len(order))
	}
	for i, id := range expect {
		if order[i] != id {
			t.Errorf("cascade position %d: expected %v, got %v", i, id, order[i])
		}
	}
}

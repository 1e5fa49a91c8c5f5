package imagetest

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestCompareIdentical(t *testing.T) {
	img := imaging.New(16, 16, color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xff})
	rms, _ := Compare(img, imaging.Clone(img))
	if rms != 0 {
		t.Fatalf("identical images: rms = %v, want 0", rms)
	}
}

func TestCompareDifferent(t *testing.T) {
	a := imaging.New(16, 16, color.White)
	b := imaging.New(16, 16, color.Black)
	rms, diff := Compare(a, b)
	if rms < 100 {
		t.Fatalf("white vs black: rms = %v, want large", rms)
	}
	px := diff.At(0, 0).(color.NRGBA)
	if px.R != 0xff || px.G != 0xff || px.B != 0xff {
		t.Fatalf("diff pixel = %+v, want full difference", px)
	}
}

func TestAssertCreatesBaseline(t *testing.T) {
	t.Chdir(t.TempDir())

	img := imaging.New(8, 8, color.NRGBA{R: 0xaa, A: 0xff})
	Assert(t, img, "created")

	if _, err := os.Stat(filepath.Join("testdata", "created.png")); err != nil {
		t.Fatalf("baseline not created: %v", err)
	}

	// second run compares against the new baseline and passes
	Assert(t, img, "created")
}

func TestAssertWithinTolerance(t *testing.T) {
	t.Chdir(t.TempDir())

	img := imaging.New(8, 8, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	Assert(t, img, "tol")

	near := imaging.New(8, 8, color.NRGBA{R: 0x82, G: 0x80, B: 0x7e, A: 0xff})
	Assert(t, near, "tol")
}

func TestAssertFailureArtifacts(t *testing.T) {
	t.Chdir(t.TempDir())

	base := imaging.New(8, 8, color.White)
	Assert(t, base, "mismatch")

	var rec recorder
	AssertTolerance(&rec, imaging.New(8, 8, color.Black), "mismatch", DefaultTolerance)
	if !rec.failed {
		t.Fatal("mismatching image did not fail the comparison")
	}
	if _, err := os.Stat(filepath.Join("testdata", "mismatch.fail.png")); err != nil {
		t.Fatalf("failure rendering not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join("testdata", "mismatch.diff.png")); err != nil {
		t.Fatalf("difference image not written: %v", err)
	}

	// passing again clears the stale artifacts
	Assert(t, base, "mismatch")
	if _, err := os.Stat(filepath.Join("testdata", "mismatch.fail.png")); err == nil {
		t.Fatal("stale failure rendering left behind after pass")
	}
}

// recorder captures failures without failing the enclosing test.
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper()                      {}
func (r *recorder) Logf(string, ...any)          {}
func (r *recorder) Errorf(string, ...any)        { r.failed = true }
func (r *recorder) Fatalf(f string, args ...any) { panic("unexpected fatal: " + f) }

// Package imagetest compares rendered images against checked-in baseline
// PNGs. A missing baseline is created on first run; set UPDATE_TEST_IMAGES
// to regenerate all baselines after an intentional rendering change.
package imagetest

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// DefaultTolerance is the root-mean-square difference over 8-bit channel
// values below which two images count as equal. Rendering is deterministic
// on a given platform, but rasterizers round differently across
// architectures, so small drift is allowed.
const DefaultTolerance = 10

// UpdateEnv names the environment variable that forces baselines to be
// rewritten from the current rendering.
const UpdateEnv = "UPDATE_TEST_IMAGES"

// Assert compares img against testdata/<name>.png with [DefaultTolerance].
// If no baseline exists it is created from img and the test passes. On
// mismatch the test fails and the rendering is written next to the
// baseline as <name>.fail.png, with a channel-difference image as
// <name>.diff.png.
func Assert(t testing.TB, img image.Image, name string) {
	t.Helper()
	AssertTolerance(t, img, name, DefaultTolerance)
}

// AssertTolerance is [Assert] with an explicit RMS tolerance.
func AssertTolerance(t testing.TB, img image.Image, name string, tol float64) {
	t.Helper()

	path := filepath.Join("testdata", name+".png")
	failPath := filepath.Join("testdata", name+".fail.png")
	diffPath := filepath.Join("testdata", name+".diff.png")

	if os.Getenv(UpdateEnv) != "" {
		if err := save(path, img); err != nil {
			t.Fatalf("update baseline %s: %v", path, err)
		}
		t.Logf("updated baseline %s", path)
		return
	}

	want, err := imaging.Open(path)
	if os.IsNotExist(err) {
		if err := save(path, img); err != nil {
			t.Fatalf("create baseline %s: %v", path, err)
		}
		t.Logf("created baseline %s", path)
		return
	}
	if err != nil {
		t.Fatalf("open baseline %s: %v", path, err)
	}

	if !want.Bounds().Size().Eq(img.Bounds().Size()) {
		save(failPath, img)
		t.Errorf("image size %v does not match baseline %s size %v; rendering saved as %s",
			img.Bounds().Size(), path, want.Bounds().Size(), failPath)
		return
	}

	rms, diff := Compare(img, want)
	if rms > tol {
		save(failPath, img)
		save(diffPath, diff)
		t.Errorf("image differs from baseline %s: rms %.2f > %.2f; rendering saved as %s, difference as %s",
			path, rms, tol, failPath, diffPath)
		return
	}

	// a stale failure artifact would be misleading next to a passing test
	os.Remove(failPath)
	os.Remove(diffPath)
}

// Compare returns the root-mean-square difference of the two images over
// 8-bit RGBA channel values, together with a per-pixel absolute-difference
// image. The images must have equal sizes.
func Compare(a, b image.Image) (float64, image.Image) {
	ra := imaging.Clone(a)
	rb := imaging.Clone(b)
	bounds := ra.Bounds()

	diff := imaging.New(bounds.Dx(), bounds.Dy(), color.Black)
	var sum float64
	var n int
	for i := 0; i < len(ra.Pix); i += 4 {
		for c := 0; c < 4; c++ {
			d := int(ra.Pix[i+c]) - int(rb.Pix[i+c])
			sum += float64(d * d)
			n++
			if c < 3 { // visualize color channels only
				if d < 0 {
					d = -d
				}
				diff.Pix[i+c] = uint8(d)
			}
		}
		diff.Pix[i+3] = 0xff
	}
	if n == 0 {
		return 0, diff
	}
	return math.Sqrt(sum / float64(n)), diff
}

func save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	return imaging.Save(img, path)
}

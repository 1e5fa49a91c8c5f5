package style

import (
	"image/color"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBroadcast(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		n    int
		def  float64
		want []float64
	}{
		{"empty uses default", nil, 3, 7, []float64{7, 7, 7}},
		{"exact length", []float64{1, 2, 3}, 3, 0, []float64{1, 2, 3}},
		{"fewer entries cycle", []float64{1, 3}, 4, 0, []float64{1, 3, 1, 3}},
		{"more entries truncate", []float64{1, 2, 3, 4}, 1, 0, []float64{1}},
		{"zero elements", []float64{1}, 0, 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Broadcast(tt.xs, tt.n, tt.def)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBroadcastProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("result always has n entries", prop.ForAll(
		func(xs []float64, n int) bool {
			return len(Broadcast(xs, n, 0)) == n
		},
		gen.SliceOf(gen.Float64Range(-100, 100)),
		gen.IntRange(0, 50),
	))

	properties.Property("entries cycle the input", prop.ForAll(
		func(xs []float64, n int) bool {
			if len(xs) == 0 {
				return true
			}
			out := Broadcast(xs, n, 0)
			for i, v := range out {
				if v != xs[i%len(xs)] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(-100, 100)),
		gen.IntRange(0, 50),
	))

	properties.Property("empty input yields the default everywhere", prop.ForAll(
		func(def float64, n int) bool {
			for _, v := range Broadcast(nil, n, def) {
				if v != def {
					return false
				}
			}
			return true
		},
		gen.Float64Range(-100, 100),
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}

func TestSpecResolve(t *testing.T) {
	red := color.NRGBA{0xff, 0, 0, 0xff}
	blue := color.NRGBA{0, 0, 0xff, 0xff}
	def := color.NRGBA{0x11, 0x22, 0x33, 0xff}

	t.Run("zero spec uses default", func(t *testing.T) {
		got := Spec{}.Resolve(3, def, Viridis, AutoNorm, nil)
		for i, c := range got {
			if c != def {
				t.Errorf("got[%d] = %v, want default", i, c)
			}
		}
	})

	t.Run("single color repeats", func(t *testing.T) {
		got := One(red).Resolve(3, def, Viridis, AutoNorm, nil)
		for i, c := range got {
			if c != red {
				t.Errorf("got[%d] = %v, want red", i, c)
			}
		}
	})

	t.Run("short list cycles", func(t *testing.T) {
		got := List(red, blue).Resolve(4, def, Viridis, AutoNorm, nil)
		want := []color.NRGBA{red, blue, red, blue}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("long list truncates", func(t *testing.T) {
		got := List(red, blue, red, blue).Resolve(1, def, Viridis, AutoNorm, nil)
		if len(got) != 1 || got[0] != red {
			t.Errorf("got = %v, want [red]", got)
		}
	})

	t.Run("numeric values map through colormap", func(t *testing.T) {
		got := Values(0, 1, 2).Resolve(3, def, Blues, AutoNorm, nil)
		if got[0] != Blues.At(0) {
			t.Errorf("got[0] = %v, want cmap start", got[0])
		}
		if got[2] != Blues.At(1) {
			t.Errorf("got[2] = %v, want cmap end", got[2])
		}
	})

	t.Run("explicit vmin vmax clamp", func(t *testing.T) {
		norm := Normalize{Vmin: 0.1, Vmax: 0.6}
		got := Values(0.2, 0.5).Resolve(2, def, Blues, norm, nil)
		if got[0] != Blues.At(0.2) { // (0.2-0.1)/0.5
			t.Errorf("got[0] = %v, want Blues.At(0.2)", got[0])
		}
		if got[1] != Blues.At(0.8) { // (0.5-0.1)/0.5
			t.Errorf("got[1] = %v, want Blues.At(0.8)", got[1])
		}
	})

	t.Run("alpha list broadcast over colors", func(t *testing.T) {
		got := One(red).Resolve(4, def, Viridis, AutoNorm, []float64{0.25, 0.5})
		wantA := []uint8{0x40, 0x80, 0x40, 0x80}
		for i := range wantA {
			if got[i].A != wantA[i] {
				t.Errorf("got[%d].A = %#x, want %#x", i, got[i].A, wantA[i])
			}
		}
	})
}

package style

import (
	"errors"
	"image/color"
	"testing"
)

func TestNamed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr error
	}{
		{"single letter red", "r", color.NRGBA{0xd6, 0x27, 0x28, 0xff}, nil},
		{"single letter black", "k", color.NRGBA{0, 0, 0, 0xff}, nil},
		{"css name", "purple", color.NRGBA{0x80, 0, 0x80, 0xff}, nil},
		{"case insensitive", "RED", color.NRGBA{0xff, 0, 0, 0xff}, nil},
		{"grey alias", "grey", color.NRGBA{0x80, 0x80, 0x80, 0xff}, nil},
		{"unknown", "vermilion", color.NRGBA{}, ErrUnknownColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Named(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Named(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr error
	}{
		{"rgb", "#1f78b4", color.NRGBA{0x1f, 0x78, 0xb4, 0xff}, nil},
		{"rgba alpha suffix", "#1f78b4f0", color.NRGBA{0x1f, 0x78, 0xb4, 0xf0}, nil},
		{"white", "#ffffff", color.NRGBA{0xff, 0xff, 0xff, 0xff}, nil},
		{"no hash", "1f78b4", color.NRGBA{}, ErrInvalidHex},
		{"too short", "#f0f", color.NRGBA{}, ErrInvalidHex},
		{"bad digits", "#zzzzzz", color.NRGBA{}, ErrInvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		want       color.NRGBA
	}{
		{"opaque yellow-ish", 1.0, 1.0, 0.2, 0.5, color.NRGBA{0xff, 0xff, 0x33, 0x80}},
		{"clamped above", 2, 0, 0, 1, color.NRGBA{0xff, 0, 0, 0xff}},
		{"clamped below", -1, 0.5, 0, 1, color.NRGBA{0, 0x80, 0, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBA(tt.r, tt.g, tt.b, tt.a); got != tt.want {
				t.Errorf("RGBA = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{0x80, 0, 0x80, 0xff}
	got := WithAlpha(c, 0.5)
	if got.A != 0x80 {
		t.Errorf("alpha = %#x, want 0x80", got.A)
	}
	// alpha compounds with existing transparency
	got = WithAlpha(color.NRGBA{0, 0, 0, 0x80}, 0.5)
	if got.A != 0x40 {
		t.Errorf("compounded alpha = %#x, want 0x40", got.A)
	}
}

func TestParseDispatch(t *testing.T) {
	if _, err := Parse("#1f78b4"); err != nil {
		t.Errorf("hex via Parse: %v", err)
	}
	if _, err := Parse("b"); err != nil {
		t.Errorf("name via Parse: %v", err)
	}
	if _, err := Parse("nope"); err == nil {
		t.Error("expected error for unknown name")
	}
}

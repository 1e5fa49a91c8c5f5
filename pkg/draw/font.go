package draw

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Label text uses the embedded Go Regular face so rendering is identical
// across machines - a requirement for baseline image comparison.

var (
	fontMu    sync.Mutex
	parsed    *sfnt.Font
	faceCache = map[float64]font.Face{}
)

// fontFace returns a Go Regular face at the given pixel size, cached.
func fontFace(sizePx float64) (font.Face, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	if face, ok := faceCache[sizePx]; ok {
		return face, nil
	}
	if parsed == nil {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, err
		}
		parsed = f
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72, // size already in pixels; keep the 1:1 mapping
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faceCache[sizePx] = face
	return face, nil
}

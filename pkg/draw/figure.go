package draw

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/graphplot/graphplot/pkg/layout"
)

// Figure default geometry, in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultDPI    = 96
)

// Figure is a rasterized drawing surface holding one or more axes.
// Figures are transient: build, draw, snapshot via [Figure.Image] or
// [Figure.WritePNG], discard.
type Figure struct {
	width  int
	height int
	dpi    float64
	axes   []*Axes
}

// NewFigure creates a figure of the given pixel size at [DefaultDPI].
func NewFigure(width, height int) *Figure {
	return &Figure{width: width, height: height, dpi: DefaultDPI}
}

// New creates a figure with the default 640x480 geometry.
func New() *Figure { return NewFigure(DefaultWidth, DefaultHeight) }

// SetDPI overrides the resolution used to convert point-based sizes
// (node areas, font and line sizes) to pixels.
func (f *Figure) SetDPI(dpi float64) { f.dpi = dpi }

// DPI returns the figure resolution.
func (f *Figure) DPI() float64 { return f.dpi }

// Axes returns the figure's single full-area axes, creating it on first
// call. Figures subdivided with [Figure.Subplot] should not also use Axes.
func (f *Figure) Axes() *Axes {
	if len(f.axes) == 0 {
		f.addAxes(image.Rect(0, 0, f.width, f.height))
	}
	return f.axes[0]
}

// Subplot returns the axes for cell index (1-based, row-major) of a
// rows x cols grid, creating it on first call. Subplot(1, 3, 2) is the
// middle cell of a one-row, three-column grid.
func (f *Figure) Subplot(rows, cols, index int) *Axes {
	cw := f.width / cols
	ch := f.height / rows
	r := (index - 1) / cols
	c := (index - 1) % cols
	rect := image.Rect(c*cw, r*ch, (c+1)*cw, (r+1)*ch)
	for _, ax := range f.axes {
		if ax.rect == rect {
			return ax
		}
	}
	return f.addAxes(rect)
}

func (f *Figure) addAxes(rect image.Rectangle) *Axes {
	ax := &Axes{
		fig:  f,
		rect: rect,
		dc:   gg.NewContext(rect.Dx(), rect.Dy()),
	}
	ax.dc.SetColor(color.White)
	ax.dc.Clear()
	f.axes = append(f.axes, ax)
	return ax
}

// Image composites all axes onto a white background and returns the result.
func (f *Figure) Image() image.Image {
	out := imaging.New(f.width, f.height, color.White)
	for _, ax := range f.axes {
		out = imaging.Paste(out, ax.dc.Image(), ax.rect.Min)
	}
	return out
}

// EncodePNG writes the composited figure as PNG.
func (f *Figure) EncodePNG(w io.Writer) error {
	return imaging.Encode(w, f.Image(), imaging.PNG)
}

// WritePNG writes the composited figure to a PNG file.
func (f *Figure) WritePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return f.EncodePNG(out)
}

// Axes is a drawing region with a data-to-pixel coordinate transform.
// Data limits are fixed the first time a drawing call supplies positions:
// they cover all supplied positions plus a 5% margin, so successive calls
// against the same position map line up exactly.
type Axes struct {
	fig  *Figure
	rect image.Rectangle
	dc   *gg.Context

	limSet                 bool
	xmin, xmax, ymin, ymax float64
}

// SetLimits fixes the data coordinate range explicitly.
func (a *Axes) SetLimits(xmin, xmax, ymin, ymax float64) {
	a.xmin, a.xmax, a.ymin, a.ymax = xmin, xmax, ymin, ymax
	a.limSet = true
}

// ensureLimits autoscales from the full position map on first use.
func (a *Axes) ensureLimits(pos layout.Positions) {
	if a.limSet {
		return
	}
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, p := range pos {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	if len(pos) == 0 {
		xmin, xmax, ymin, ymax = -1, 1, -1, 1
	}
	// degenerate spans get a unit of breathing room
	if xmax-xmin < 1e-9 {
		xmin, xmax = xmin-1, xmax+1
	}
	if ymax-ymin < 1e-9 {
		ymin, ymax = ymin-1, ymax+1
	}
	mx := (xmax - xmin) * 0.05
	my := (ymax - ymin) * 0.05
	xmin, xmax = xmin-mx, xmax+mx
	ymin, ymax = ymin-my, ymax+my

	// equal aspect: widen the smaller span so a unit of data distance maps
	// to the same number of pixels on both axes
	w := float64(a.rect.Dx())
	h := float64(a.rect.Dy())
	if w > 0 && h > 0 {
		xpp := (xmax - xmin) / w
		ypp := (ymax - ymin) / h
		if xpp > ypp {
			grow := (xpp*h - (ymax - ymin)) / 2
			ymin, ymax = ymin-grow, ymax+grow
		} else if ypp > xpp {
			grow := (ypp*w - (xmax - xmin)) / 2
			xmin, xmax = xmin-grow, xmax+grow
		}
	}
	a.SetLimits(xmin, xmax, ymin, ymax)
}

// toPixel maps a data point to pixel coordinates within the axes.
// Pixel y grows downward, data y upward.
func (a *Axes) toPixel(p layout.Point) (float64, float64) {
	w := float64(a.rect.Dx())
	h := float64(a.rect.Dy())
	x := (p.X - a.xmin) / (a.xmax - a.xmin) * w
	y := h - (p.Y-a.ymin)/(a.ymax-a.ymin)*h
	return x, y
}

// ptToPx converts a size in typographic points to pixels at the figure DPI.
func (a *Axes) ptToPx(pt float64) float64 {
	return pt * a.fig.dpi / 72
}

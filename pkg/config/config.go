// Package config loads rendering defaults from a graphplot.toml file.
// Command-line flags override file values; the file overrides built-in
// defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/graphplot/graphplot/pkg/draw"
	"github.com/graphplot/graphplot/pkg/style"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "graphplot.toml"

// Config holds rendering defaults.
type Config struct {
	Layout string `toml:"layout"`
	Seed   uint64 `toml:"seed"`

	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	DPI    float64 `toml:"dpi"`

	NodeColor string  `toml:"node_color"`
	NodeSize  float64 `toml:"node_size"`
	EdgeColor string  `toml:"edge_color"`
	EdgeWidth float64 `toml:"edge_width"`
	FontSize  float64 `toml:"font_size"`
	Labels    bool    `toml:"labels"`
}

// Default returns the built-in rendering defaults.
func Default() Config {
	return Config{
		Layout:    "spring",
		Seed:      42,
		Width:     draw.DefaultWidth,
		Height:    draw.DefaultHeight,
		DPI:       draw.DefaultDPI,
		NodeSize:  draw.DefaultNodeSize,
		EdgeWidth: draw.DefaultEdgeWidth,
		FontSize:  draw.DefaultFontSize,
	}
}

// Load reads a TOML config file over the built-in defaults. A missing file
// is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that color names parse and geometry is positive.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("figure size %dx%d must be positive", c.Width, c.Height)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi %v must be positive", c.DPI)
	}
	if c.NodeColor != "" {
		if _, err := style.Parse(c.NodeColor); err != nil {
			return fmt.Errorf("node_color: %w", err)
		}
	}
	if c.EdgeColor != "" {
		if _, err := style.Parse(c.EdgeColor); err != nil {
			return fmt.Errorf("edge_color: %w", err)
		}
	}
	return nil
}

// Options converts the config to composite drawing options.
func (c Config) Options() (draw.Options, error) {
	opts := draw.Options{
		NodeSize:   []float64{c.NodeSize},
		Width:      []float64{c.EdgeWidth},
		WithLabels: c.Labels,
		FontSize:   c.FontSize,
	}
	if c.NodeColor != "" {
		col, err := style.Parse(c.NodeColor)
		if err != nil {
			return draw.Options{}, fmt.Errorf("node_color: %w", err)
		}
		opts.NodeColor = style.One(col)
	}
	if c.EdgeColor != "" {
		col, err := style.Parse(c.EdgeColor)
		if err != nil {
			return draw.Options{}, fmt.Errorf("edge_color: %w", err)
		}
		opts.EdgeColor = style.One(col)
	}
	return opts, nil
}

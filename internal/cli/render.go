package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphplot/graphplot/pkg/config"
	"github.com/graphplot/graphplot/pkg/dot"
	"github.com/graphplot/graphplot/pkg/draw"
	"github.com/graphplot/graphplot/pkg/errors"
	"github.com/graphplot/graphplot/pkg/graph"
	"github.com/graphplot/graphplot/pkg/layout"
)

// renderOpts holds the command-line flags for the render command.
// Flags that were not set on the command line fall back to the config file,
// which falls back to built-in defaults.
type renderOpts struct {
	output     string // output file path
	configFile string // graphplot.toml path
	layoutName string // layout algorithm name
	format     string // output format: png, svg, dot
	seed       uint64 // seed for randomized layouts
	width      int    // figure width in pixels
	height     int    // figure height in pixels
	dpi        float64
	labels     bool // draw node labels
}

// newRenderCmd creates the render command for laying out and rendering a
// graph file.
//
// Default settings come from graphplot.toml when present:
//   - layout: spring, seed 42
//   - format: png, 640x480 at 96 DPI
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph file to PNG, SVG, or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config")
			}
			applyConfig(cmd, &opts, cfg)

			if err := errors.ValidateLayout(opts.layoutName); err != nil {
				return err
			}
			if err := errors.ValidateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVar(&opts.configFile, "config", config.DefaultFile, "config file with rendering defaults")
	cmd.Flags().StringVarP(&opts.layoutName, "layout", "l", "", "layout algorithm: "+strings.Join(errors.LayoutNames(), ", "))
	cmd.Flags().StringVarP(&opts.format, "format", "f", "png", "output format: png, svg, dot")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for spring and random layouts")
	cmd.Flags().IntVar(&opts.width, "width", 0, "figure width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "figure height in pixels")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", 0, "figure resolution")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw node labels")

	return cmd
}

// applyConfig fills options the user did not set on the command line from
// the config file.
func applyConfig(cmd *cobra.Command, opts *renderOpts, cfg config.Config) {
	if !cmd.Flags().Changed("layout") {
		opts.layoutName = cfg.Layout
	}
	if !cmd.Flags().Changed("seed") {
		opts.seed = cfg.Seed
	}
	if !cmd.Flags().Changed("width") {
		opts.width = cfg.Width
	}
	if !cmd.Flags().Changed("height") {
		opts.height = cfg.Height
	}
	if !cmd.Flags().Changed("dpi") {
		opts.dpi = cfg.DPI
	}
	if !cmd.Flags().Changed("labels") {
		opts.labels = cfg.Labels
	}
}

// computeLayout runs the named layout algorithm on g.
func computeLayout(name string, g *graph.Graph, seed uint64) (layout.Positions, error) {
	switch strings.ToLower(name) {
	case "circular":
		return layout.Circular(g), nil
	case "kamadakawai":
		return layout.KamadaKawai(g, layout.KamadaKawaiOptions{}), nil
	case "planar":
		return layout.Planar(g), nil
	case "random":
		return layout.Random(g, seed), nil
	case "shell":
		return layout.Shell(g, nil), nil
	case "spectral":
		return layout.Spectral(g), nil
	case "spring":
		return layout.Spring(g, layout.SpringOptions{Seed: seed}), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidLayout, "unknown layout %q", name)
	}
}

// runRender loads the graph, computes positions, and writes the rendering.
func runRender(ctx context.Context, input string, cfg config.Config, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	g, err := graph.ReadFile(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGraph, err, "read %s", input)
	}
	logger.Debugf("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	prog := newProgress(logger)
	spin := newSpinner(ctx, fmt.Sprintf("Computing %s layout...", opts.layoutName))
	spin.Start()
	pos, err := computeLayout(opts.layoutName, g, opts.seed)
	spin.Stop()
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := errors.ValidatePath(output); err != nil {
		return err
	}

	data, err := renderBytes(ctx, g, pos, cfg, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}

	prog.done(fmt.Sprintf("Rendered %d nodes", g.NodeCount()))
	printSuccess("Wrote %s", opts.format)
	printFile(output)
	printStats(g.NodeCount(), g.EdgeCount(), opts.layoutName)
	return nil
}

// renderBytes produces the output bytes for the requested format. PNG goes
// through the raster pipeline in pkg/draw; SVG and DOT go through the
// Graphviz backend in pkg/dot.
func renderBytes(ctx context.Context, g *graph.Graph, pos layout.Positions, cfg config.Config, opts *renderOpts) ([]byte, error) {
	switch strings.ToLower(opts.format) {
	case "png":
		drawOpts, err := cfg.Options()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "style options")
		}
		drawOpts.WithLabels = opts.labels

		fig := draw.NewFigure(opts.width, opts.height)
		fig.SetDPI(opts.dpi)
		if err := draw.Graph(fig.Axes(), g, pos, drawOpts); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := fig.EncodePNG(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "svg":
		return dot.RenderSVG(ctx, dot.ToDOT(g, dot.Options{}))
	case "dot":
		return []byte(dot.ToDOT(g, dot.Options{})), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", opts.format)
	}
}

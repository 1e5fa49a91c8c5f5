package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/graphplot/graphplot/pkg/config"
	gperrors "github.com/graphplot/graphplot/pkg/errors"
	"github.com/graphplot/graphplot/pkg/graph"
)

// newServeCmd creates the serve command: an HTTP preview server that
// re-renders the graph on every request so layout and format can be
// switched from the browser via query parameters.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve graph renderings over HTTP",
		Long: `Serve graph renderings over HTTP.

The server renders the graph on each request. Select the layout and format
with query parameters:

    GET /render?layout=spring&format=png&seed=42

The index page links every layout for quick comparison.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return gperrors.Wrap(gperrors.ErrCodeInvalidConfig, err, "load config")
			}
			return runServe(cmd.Context(), args[0], addr, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&configFile, "config", config.DefaultFile, "config file with rendering defaults")

	return cmd
}

func runServe(ctx context.Context, input, addr string, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	g, err := graph.ReadFile(input)
	if err != nil {
		return gperrors.Wrap(gperrors.ErrCodeInvalidGraph, err, "read %s", input)
	}
	logger.Infof("Serving %s: %d nodes, %d edges", input, g.NodeCount(), g.EdgeCount())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", handleIndex(g))
	r.Get("/render", handleRender(g, cfg))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	printInfo("Listening on %s", StyleLink.Render("http://"+addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleIndex serves a minimal page linking each layout rendering.
func handleIndex(g *graph.Graph) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<h1>graphplot: %d nodes, %d edges</h1>\n<ul>\n", g.NodeCount(), g.EdgeCount())
		for _, name := range gperrors.LayoutNames() {
			fmt.Fprintf(w, `<li><a href="/render?layout=%s">%s</a> (<a href="/render?layout=%s&format=svg">svg</a>)</li>`+"\n",
				name, name, name)
		}
		fmt.Fprint(w, "</ul>\n")
	}
}

// handleRender renders the graph with the requested layout and format.
func handleRender(g *graph.Graph, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		layoutName := q.Get("layout")
		if layoutName == "" {
			layoutName = cfg.Layout
		}
		if err := gperrors.ValidateLayout(layoutName); err != nil {
			http.Error(w, gperrors.UserMessage(err), http.StatusBadRequest)
			return
		}

		format := q.Get("format")
		if format == "" {
			format = "png"
		}
		if err := gperrors.ValidateFormat(format); err != nil {
			http.Error(w, gperrors.UserMessage(err), http.StatusBadRequest)
			return
		}

		seed := cfg.Seed
		if s := q.Get("seed"); s != "" {
			if _, err := fmt.Sscanf(s, "%d", &seed); err != nil {
				http.Error(w, "malformed seed", http.StatusBadRequest)
				return
			}
		}

		pos, err := computeLayout(layoutName, g, seed)
		if err != nil {
			http.Error(w, gperrors.UserMessage(err), http.StatusBadRequest)
			return
		}

		opts := renderOpts{
			layoutName: layoutName,
			format:     format,
			seed:       seed,
			width:      cfg.Width,
			height:     cfg.Height,
			dpi:        cfg.DPI,
			labels:     cfg.Labels,
		}
		data, err := renderBytes(r.Context(), g, pos, cfg, &opts)
		if err != nil {
			http.Error(w, gperrors.UserMessage(err), http.StatusInternalServerError)
			return
		}

		switch format {
		case "png":
			w.Header().Set("Content-Type", "image/png")
		case "svg":
			w.Header().Set("Content-Type", "image/svg+xml")
		case "dot":
			w.Header().Set("Content-Type", "text/vnd.graphviz")
		}
		w.Write(data)
	}
}

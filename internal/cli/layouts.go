package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphplot/graphplot/pkg/errors"
)

// layoutDescriptions explains each algorithm in one line for the listing.
var layoutDescriptions = map[string]string{
	"circular":    "nodes evenly spaced on a circle",
	"kamadakawai": "stress minimization over graph distances",
	"planar":      "crossing-free embedding for planar graphs",
	"random":      "seeded uniform random positions",
	"shell":       "concentric circles, one per node shell",
	"spectral":    "Laplacian eigenvector embedding",
	"spring":      "force-directed (Fruchterman-Reingold)",
}

// newLayoutsCmd creates the layouts command listing available algorithms.
func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List available layout algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(StyleTitle.Render("Available layouts"))
			for _, name := range errors.LayoutNames() {
				fmt.Printf("  %s  %s\n",
					StyleHighlight.Render(fmt.Sprintf("%-12s", name)),
					StyleDim.Render(layoutDescriptions[name]))
			}
		},
	}
}

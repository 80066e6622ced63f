package sim

import (
	"fmt"
	"io"
	"os"
	"time"

	"turbsim/grid"
)

// Summarizer is anything contributing a labeled block to the run-summary
// report; both model families satisfy it.
type Summarizer interface {
	Summary() string
}

// WriteSummary writes the run-summary report: header, grid block, then one
// block per model in the order given.
func WriteSummary(w io.Writer, g *grid.Grid, models ...Summarizer) error {
	if _, err := fmt.Fprintf(w, "Turbulence-profile run summary\nGenerated: %s\n\n",
		time.Now().Format(time.RFC1123)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Grid:\n"+
		"  Levels (NZ)       = %-12d\n"+
		"  Spacing (dz)      = %-12.4g [m]\n"+
		"  Height            = %-12.4g [m]\n"+
		"  Lateral points    = %-12d\n\n",
		g.NZ(), g.Dz(), g.Height(), g.NY()); err != nil {
		return err
	}
	for _, m := range models {
		if _, err := fmt.Fprintf(w, "%s\n", m.Summary()); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummaryFile writes the report for a run to path.
func WriteSummaryFile(path string, r *Run) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSummary(f, r.Grid, r.Prof, r.Stress)
}

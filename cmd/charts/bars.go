package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// The favorite-movies walkthrough dataset: Academy Award counts.
var (
	movies    = []string{"Annie Hall", "Ben Hur", "Casablanca", "Gandhi", "West Side Story"}
	numOscars = plotter.Values{5, 11, 3, 8, 10}
)

var barsCmd = &cobra.Command{
	Use:   "bars",
	Short: "Bar chart of Academy Awards per favorite movie",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := plot.New()
		p.Title.Text = "My Favorite Movies"
		p.Y.Label.Text = "# of Academy Awards"

		bars, err := plotter.NewBarChart(numOscars, vg.Points(30))
		if err != nil {
			return err
		}
		p.Add(bars)
		p.NominalX(movies...)

		path := filepath.Join(outDir, "movies.png")
		if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			return err
		}
		logger.Info("chart written", "chart", "bars", "path", path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(barsCmd)
}

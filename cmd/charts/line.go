package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// The nominal-GDP walkthrough dataset: decades against billions of dollars.
var (
	gdpYears = []float64{1950, 1960, 1970, 1980, 1990, 2000, 2010}
	gdp      = []float64{300.2, 543.3, 1075.9, 2862.5, 5979.6, 10289.7, 14958.3}
)

var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Dot-and-line chart of nominal GDP by decade",
	RunE: func(cmd *cobra.Command, args []string) error {
		pts := make(plotter.XYs, len(gdpYears))
		for i := range gdpYears {
			pts[i].X = gdpYears[i]
			pts[i].Y = gdp[i]
		}

		p := plot.New()
		p.Title.Text = "Nominal GDP"
		p.Y.Label.Text = "Billions of $"

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		p.Add(line, points)

		path := filepath.Join(outDir, "gdp.png")
		if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			return err
		}
		logger.Info("chart written", "chart", "line", "path", path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(lineCmd)
}

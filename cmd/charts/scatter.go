package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// The friends-vs-minutes walkthrough dataset with per-user labels.
var (
	friendCounts = []float64{70, 65, 72, 63, 71, 64, 60, 64, 67}
	dailyMinutes = []float64{175, 170, 205, 120, 220, 130, 105, 145, 190}
	userLabels   = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
)

var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Scatter of daily minutes against friend count, labeled per user",
	RunE: func(cmd *cobra.Command, args []string) error {
		pts := make(plotter.XYs, len(friendCounts))
		for i := range friendCounts {
			pts[i].X = friendCounts[i]
			pts[i].Y = dailyMinutes[i]
		}

		p := plot.New()
		p.Title.Text = "Daily Minutes vs. Number of Friends"
		p.X.Label.Text = "# of friends"
		p.Y.Label.Text = "daily minutes spent on the site"

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		p.Add(scatter)

		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: userLabels})
		if err != nil {
			return err
		}
		p.Add(labels)

		path := filepath.Join(outDir, "friends.png")
		if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			return err
		}
		logger.Info("chart written", "chart", "scatter", "path", path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scatterCmd)
}

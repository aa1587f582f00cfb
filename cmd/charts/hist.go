package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// The exam-grades walkthrough dataset, bucketed by decile.
var examGrades = []int{83, 95, 91, 87, 70, 0, 85, 82, 100, 67, 73, 77, 0}

var histCmd = &cobra.Command{
	Use:   "hist",
	Short: "Histogram of exam grades bucketed by decile",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bucket each grade into its decile; 100 shares the top bucket.
		counts := map[int]int{}
		for _, g := range examGrades {
			counts[g/10*10]++
		}

		deciles := make([]int, 0, len(counts))
		for d := range counts {
			deciles = append(deciles, d)
		}
		sort.Ints(deciles)

		values := make(plotter.Values, len(deciles))
		labels := make([]string, len(deciles))
		for i, d := range deciles {
			values[i] = float64(counts[d])
			labels[i] = fmt.Sprintf("%d", d)
		}

		p := plot.New()
		p.Title.Text = "Distribution of Exam 1 Grades"
		p.X.Label.Text = "Decile"
		p.Y.Label.Text = "# of students"

		bars, err := plotter.NewBarChart(values, vg.Points(25))
		if err != nil {
			return err
		}
		p.Add(bars)
		p.NominalX(labels...)

		path := filepath.Join(outDir, "grades.png")
		if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			return err
		}
		logger.Info("chart written", "chart", "hist", "path", path, "buckets", len(deciles))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(histCmd)
}

package main

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/numkit/dist"
)

var (
	binomialN     int
	binomialP     float64
	binomialDraws int
	binomialSeed  int64
)

var binomialCmd = &cobra.Command{
	Use:   "binomial",
	Short: "Sampled Binomial(n, p) frequencies against the normal approximation",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := rand.New(rand.NewSource(binomialSeed))

		// Sample and count outcomes.
		counts := map[int]int{}
		lo, hi := binomialN, 0
		for i := 0; i < binomialDraws; i++ {
			k := dist.Binomial(rng, binomialN, binomialP)
			counts[k]++
			if k < lo {
				lo = k
			}
			if k > hi {
				hi = k
			}
		}

		// Empirical frequencies as bars, one per outcome in [lo, hi].
		values := make(plotter.Values, hi-lo+1)
		labels := make([]string, hi-lo+1)
		for k := lo; k <= hi; k++ {
			values[k-lo] = float64(counts[k]) / float64(binomialDraws)
			labels[k-lo] = fmt.Sprintf("%d", k)
		}

		// The normal approximation, integrated over each unit bucket.
		// Bars sit at nominal positions 0..len-1, so the curve uses the
		// same index coordinates.
		mu, sigma := dist.NormalApproximationToBinomial(binomialN, binomialP)
		curve := make(plotter.XYs, hi-lo+1)
		for k := lo; k <= hi; k++ {
			curve[k-lo].X = float64(k - lo)
			curve[k-lo].Y = dist.NormalCDF(float64(k)+0.5, mu, sigma) - dist.NormalCDF(float64(k)-0.5, mu, sigma)
		}

		p := plot.New()
		p.Title.Text = "Binomial Distribution vs Normal Approximation"

		bars, err := plotter.NewBarChart(values, vg.Points(12))
		if err != nil {
			return err
		}
		p.Add(bars)
		p.NominalX(labels...)

		line, err := plotter.NewLine(curve)
		if err != nil {
			return err
		}
		p.Add(line)

		path := filepath.Join(outDir, "binomial.png")
		if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			return err
		}
		logger.Info("chart written", "chart", "binomial",
			"path", path, "n", binomialN, "p", binomialP, "draws", binomialDraws, "mu", mu, "sigma", sigma)

		return nil
	},
}

func init() {
	binomialCmd.Flags().IntVar(&binomialN, "n", 100, "Trials per draw")
	binomialCmd.Flags().Float64Var(&binomialP, "p", 0.75, "Success probability")
	binomialCmd.Flags().IntVar(&binomialDraws, "draws", 10000, "Number of draws to sample")
	binomialCmd.Flags().Int64Var(&binomialSeed, "seed", 0, "Random seed for sampling")
	rootCmd.AddCommand(binomialCmd)
}

package main

import (
	"math/rand"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/numkit/descent"
	"github.com/katalvlaran/numkit/vector"
)

var (
	regressSeed      int64
	regressIntercept float64
	regressSlope     float64
	regressNoise     float64
	regressPoints    int
)

var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Fit a noisy line by stochastic gradient descent and plot the fit",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := rand.New(rand.NewSource(regressSeed))

		// Synthetic dataset y = intercept + slope·x + noise, inputs
		// encoded as [1, x] so the intercept rides along as a coefficient.
		xs := make([]vector.Vector, regressPoints)
		ys := make([]float64, regressPoints)
		raw := make([]float64, regressPoints)
		for i := 0; i < regressPoints; i++ {
			x := -2 + 4*float64(i)/float64(regressPoints-1)
			raw[i] = x
			xs[i] = vector.Vector{1, x}
			ys[i] = regressIntercept + regressSlope*x + regressNoise*rng.NormFloat64()
		}

		loss := func(x vector.Vector, y float64, theta vector.Vector) float64 {
			pred, _ := vector.Dot(x, theta)

			return (pred - y) * (pred - y)
		}
		grad := func(x vector.Vector, y float64, theta vector.Vector) vector.Vector {
			pred, _ := vector.Dot(x, theta)

			return vector.Scale(x, 2*(pred-y))
		}

		theta, err := descent.MinimizeStochastic(loss, grad, xs, ys, vector.Vector{0, 0},
			descent.WithRand(rng))
		if err != nil {
			return err
		}

		// Closed-form reference fit for the log: the two should agree.
		alpha, beta := stat.LinearRegression(raw, ys, nil, false)
		logger.Info("fit complete",
			"sgd_intercept", theta[0], "sgd_slope", theta[1],
			"ols_intercept", alpha, "ols_slope", beta)

		pts := make(plotter.XYs, regressPoints)
		for i := range raw {
			pts[i].X = raw[i]
			pts[i].Y = ys[i]
		}
		fit := plotter.XYs{
			{X: raw[0], Y: theta[0] + theta[1]*raw[0]},
			{X: raw[len(raw)-1], Y: theta[0] + theta[1]*raw[len(raw)-1]},
		}

		p := plot.New()
		p.Title.Text = "Stochastic Gradient Descent Fit"
		p.X.Label.Text = "x"
		p.Y.Label.Text = "y"

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		line, err := plotter.NewLine(fit)
		if err != nil {
			return err
		}
		p.Add(scatter, line)

		path := filepath.Join(outDir, "regress.png")
		if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			return err
		}
		logger.Info("chart written", "chart", "regress", "path", path)

		return nil
	},
}

func init() {
	regressCmd.Flags().Int64Var(&regressSeed, "seed", 1, "Random seed for noise and shuffling")
	regressCmd.Flags().Float64Var(&regressIntercept, "intercept", 4, "Generating intercept")
	regressCmd.Flags().Float64Var(&regressSlope, "slope", 3, "Generating slope")
	regressCmd.Flags().Float64Var(&regressNoise, "noise", 0.5, "Gaussian noise scale")
	regressCmd.Flags().IntVar(&regressPoints, "points", 60, "Number of synthetic points")
	rootCmd.AddCommand(regressCmd)
}

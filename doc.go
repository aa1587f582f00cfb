// Package numkit is your in-memory playground for learning data science
// from first principles — small, independent numeric packages that build
// every formula from scratch and check themselves against reference
// libraries.
//
// 🚀 What is numkit?
//
//	A modern, beginner-friendly collection of teaching modules:
//		• vector     — elementwise ops, dot product, norms & distances
//		• matrix     — row-major teaching matrices (shape, rows, cols, builders)
//		• stats      — mean/median/quantile, dispersion, covariance & correlation
//		• dist       — uniform/normal/binomial/beta pdfs, cdfs & quantiles
//		• hypothesis — p-value helpers for normal-approximation testing
//		• descent    — batch & stochastic gradient descent, gradient estimation
//
// ✨ Why choose numkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - From scratch – every formula spelled out, nothing hidden in a black box
//   - Honest about errors – shape violations fail fast with sentinel errors
//   - Reproducible – randomness always flows through an explicit source
//
// Each package is independent: import just what the chapter you are on
// needs. The cmd/charts CLI renders the course figures as PNG files.
//
// Quick taste:
//
//	theta, err := descent.MinimizeBatch(sumOfSquares, gradient, []float64{10, 10})
//	// theta ≈ [0 0] — the bottom of the bowl.
//
// Dive into each package's doc.go for the full walkthrough.
//
//	go get github.com/katalvlaran/numkit
package numkit

package descent

import (
	"math"

	"github.com/katalvlaran/numkit/vector"
)

// Safe wraps f so that any evaluation failure yields +Inf instead of
// aborting the search: panics are recovered and NaN results (Go's
// spelling of a domain error — math.Sqrt(-1) returns NaN rather than
// failing) are converted. Successful finite evaluations pass through
// unchanged.
//
// The +Inf sentinel keeps candidate ranking a total order: invalid or
// unreachable Points always lose a minimum comparison without being
// special-cased. The price is that genuine bugs in f are masked as
// "infinitely bad" scores.
func Safe(f Objective) Objective {
	return func(v vector.Vector) (result float64) {
		defer func() {
			if recover() != nil {
				result = math.Inf(1)
			}
		}()

		result = f(v)
		if math.IsNaN(result) {
			result = math.Inf(1)
		}

		return result
	}
}

// SafeFunc adapts an error-returning objective to the same contract as
// Safe: an error ranks the Point last via +Inf, a nil error passes the
// value through (including NaN screening, as in Safe).
func SafeFunc(f func(v vector.Vector) (float64, error)) Objective {
	return Safe(func(v vector.Vector) float64 {
		value, err := f(v)
		if err != nil {
			return math.Inf(1)
		}

		return value
	})
}

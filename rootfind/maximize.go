package rootfind

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/notargets/gasdyn/types"
)

// MaximizeBounded finds the maximum of a unimodal f on [lo, hi].
// The search runs Nelder-Mead in the unconstrained variable y with
// x = lo + (hi-lo)*(1+tanh(y))/2, so every trial point lies inside the interval.
func MaximizeBounded(f func(x float64) float64, lo, hi float64, s Settings) (xMax, fMax float64, err error) {
	if !(hi > lo) {
		if hi == lo {
			return lo, f(lo), nil
		}
		err = types.NewNumericalError("maximize", 0, math.NaN(),
			fmt.Sprintf("empty interval [%g, %g]", lo, hi))
		return
	}
	var (
		toX = func(y float64) float64 {
			return lo + 0.5*(hi-lo)*(1+math.Tanh(y))
		}
		problem = optimize.Problem{
			Func: func(y []float64) float64 {
				return -f(toX(y[0]))
			},
		}
		settings = optimize.Settings{
			MajorIterations: 10 * s.MaxIterations,
			FuncEvaluations: 40 * s.MaxIterations,
			Converger: &optimize.FunctionConverge{
				Absolute:   s.Tol,
				Iterations: 25,
			},
		}
		result *optimize.Result
	)
	if result, err = optimize.Minimize(problem, []float64{0}, &settings, &optimize.NelderMead{}); err != nil {
		err = types.NewNumericalError("maximize", 0, math.NaN(), err.Error())
		return
	}
	if result.Status.Early() {
		err = types.NewNumericalError("maximize", result.MajorIterations, -result.F,
			fmt.Sprintf("optimizer stopped early: %s", result.Status))
		return
	}
	xMax, fMax = toX(result.X[0]), -result.F
	// The tanh map never reaches the ends, so they are checked directly
	for _, x := range []float64{lo, hi} {
		if fx := f(x); fx > fMax {
			xMax, fMax = x, fx
		}
	}
	return
}

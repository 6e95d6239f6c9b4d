/*
Package rootfind holds the bracketing and Newton root finders and the bounded
1-D maximiser used to invert the gas dynamic relations.

Every solver runs a bounded loop and returns a types.NumericalError when it
cannot deliver a root, it never hands back a partially converged value.
*/
package rootfind

import (
	"fmt"
	"math"

	"github.com/notargets/gasdyn/types"
	"github.com/notargets/gasdyn/utils"
)

// Residual is f(x) - target for some forward relation f
type Residual func(x float64) float64

// Implicit turns the forward relation f into the residual f(x) - target, so that
// the root of the residual is the x giving target
func Implicit(f func(x float64) float64, target float64) Residual {
	return func(x float64) float64 {
		return f(x) - target
	}
}

// Settings bounds a solver. Tol is the bracket half width for Bisect and the
// relative step size for Newton. FTol lets Newton stop once |f(x)| is at the
// rounding level of the residual, zero means only an exact zero stops it.
type Settings struct {
	Tol           float64
	FTol          float64
	MaxIterations int
}

func DefaultBisect() Settings {
	return Settings{Tol: utils.BisectTol, MaxIterations: utils.MaxIterations}
}

func DefaultNewton() Settings {
	return Settings{Tol: utils.NewtonTol, MaxIterations: utils.MaxIterations}
}

// Bisect finds the root of f inside [a, b]. The endpoints must bracket a sign
// change, or one of them must be an exact root.
func Bisect(f Residual, a, b float64, s Settings) (x float64, err error) {
	var (
		fa, fb = f(a), f(b)
	)
	switch {
	case math.IsNaN(fa) || math.IsNaN(fb):
		err = types.NewNumericalError("bisect", 0, math.NaN(),
			fmt.Sprintf("residual is NaN at bracket [%g, %g]", a, b))
		return
	case fa == 0:
		return a, nil
	case fb == 0:
		return b, nil
	case utils.SameSign(fa, fb):
		err = types.NewNumericalError("bisect", 0, math.Min(math.Abs(fa), math.Abs(fb)),
			fmt.Sprintf("root not bracketed by [%g, %g]", a, b))
		return
	}
	for iter := 1; iter <= s.MaxIterations; iter++ {
		x = a + 0.5*(b-a)
		fx := f(x)
		if fx == 0 || 0.5*math.Abs(b-a) <= s.Tol {
			return
		}
		if utils.SameSign(fa, fx) {
			a, fa = x, fx
		} else {
			b = x
		}
	}
	err = types.NewNumericalError("bisect", s.MaxIterations, f(x),
		fmt.Sprintf("bracket width %g still above tolerance %g", math.Abs(b-a), s.Tol))
	return
}

// Newton iterates from x0 using the analytic derivative df. Lower is an exclusive
// floor on the iterate: a step that would cross it is halved toward it instead,
// which keeps the relations on their valid branch.
func Newton(f, df Residual, x0, lower float64, s Settings) (x float64, err error) {
	var (
		fx, dfx float64
	)
	x = x0
	for iter := 1; iter <= s.MaxIterations; iter++ {
		fx = f(x)
		if math.Abs(fx) <= s.FTol {
			return
		}
		dfx = df(x)
		if dfx == 0 || math.IsNaN(dfx) || math.IsNaN(fx) {
			err = types.NewNumericalError("newton", iter, fx,
				fmt.Sprintf("zero or undefined derivative at x = %g", x))
			return
		}
		xNew := x - fx/dfx
		if xNew <= lower {
			xNew = 0.5 * (x + lower)
		}
		step := math.Abs(xNew - x)
		x = xNew
		if step <= s.Tol*math.Max(1, math.Abs(x)) {
			return
		}
	}
	err = types.NewNumericalError("newton", s.MaxIterations, f(x), "iteration budget exhausted")
	return
}

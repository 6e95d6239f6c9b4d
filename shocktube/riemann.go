/*
Package shocktube is the exact solution of the shock tube Riemann problem for a
left state at higher pressure than the right state: a rarefaction fan runs into
the left gas, a contact surface follows the flow and a normal shock runs into
the right gas.
*/
package shocktube

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gasdyn/rootfind"
	"github.com/notargets/gasdyn/shocks"
	"github.com/notargets/gasdyn/types"
	"github.com/notargets/gasdyn/utils"
)

// State is a uniform gas state: density, pressure and velocity
type State struct {
	Rho, P, U float64
}

func (st State) SoundSpeed(gamma float64) float64 {
	return math.Sqrt(gamma * st.P / st.Rho)
}

func (st State) check(side string) error {
	switch {
	case !(st.Rho > 0) || math.IsInf(st.Rho, 1):
		return types.NewDomainError(side+".Rho", st.Rho, 0, "density must be positive and finite")
	case !(st.P > 0) || math.IsInf(st.P, 1):
		return types.NewDomainError(side+".P", st.P, 0, "pressure must be positive and finite")
	case math.IsNaN(st.U) || math.IsInf(st.U, 0):
		return types.NewDomainError(side+".U", st.U, 0, "velocity must be finite")
	}
	return nil
}

type Riemann struct {
	types.GasModel
	Left, Right           State
	PStar, UStar          float64
	RhoStarL, RhoStarR    float64 // Densities either side of the contact
	CL, CStarL            float64 // Sound speeds ahead of and behind the fan
	ShockSpeed, ShockMach float64
}

func NewRiemann(left, right State, gamma float64) (rp *Riemann, err error) {
	var (
		gm types.GasModel
		ns shocks.Shock
	)
	if gm, err = types.NewGasModel(gamma); err != nil {
		return
	}
	if err = left.check("left"); err != nil {
		return
	}
	if err = right.check("right"); err != nil {
		return
	}
	if !(left.P > right.P) {
		err = types.NewDomainError("left.P", left.P, right.P,
			"left pressure must exceed right pressure")
		return
	}
	rp = &Riemann{Left: left, Right: right, GasModel: gm}
	rp.CL = left.SoundSpeed(gamma)
	var (
		gLo, gHi = rp.fanVelocity(right.P) - right.U, rp.fanVelocity(left.P) - rp.shockVelocity(left.P)
	)
	// The star pressure must fall between the two initial pressures for the
	// wave pattern to be a left fan and a right shock
	if !(gLo > 0 && gHi < 0) {
		return nil, types.NewDomainError("right.U-left.U", right.U-left.U, 0,
			"initial velocities do not produce a left rarefaction and a right shock")
	}
	if rp.PStar, err = rootfind.Bisect(func(p float64) float64 {
		return rp.fanVelocity(p) - rp.shockVelocity(p)
	}, right.P, left.P, rootfind.Settings{Tol: utils.BisectTol * left.P, MaxIterations: utils.MaxIterations}); err != nil {
		return nil, err
	}
	if ns, err = shocks.NormalShockFromPressureRatio(rp.PStar/right.P, gamma); err != nil {
		return nil, err
	}
	var (
		cR = right.SoundSpeed(gamma)
	)
	rp.ShockMach = ns.M1
	rp.ShockSpeed = right.U + ns.M1*cR
	rp.RhoStarR = right.Rho * ns.Rho2Rho1
	// Mass conservation across the moving shock
	rp.UStar = rp.ShockSpeed - (rp.ShockSpeed-right.U)/ns.Rho2Rho1
	rp.RhoStarL = left.Rho * math.Pow(rp.PStar/left.P, 1/gamma)
	rp.CStarL = rp.CL * math.Pow(rp.PStar/left.P, 0.5*rp.GM1()/gamma)
	return
}

// fanVelocity is the gas velocity behind a left rarefaction dropping the pressure to p
func (rp *Riemann) fanVelocity(p float64) float64 {
	var (
		g = rp.Gamma
	)
	return rp.Left.U + 2*rp.CL/rp.GM1()*(1-math.Pow(p/rp.Left.P, 0.5*rp.GM1()/g))
}

// shockVelocity is the gas velocity behind a right running shock raising the pressure to p
func (rp *Riemann) shockVelocity(p float64) float64 {
	var (
		rt = rp.Right
		A  = 2 / (rp.GP1() * rt.Rho)
		B  = rp.GM1() / rp.GP1() * rt.P
	)
	return rt.U + (p-rt.P)*math.Sqrt(A/(p+B))
}

// Positions returns the fan head, fan tail, contact and shock locations at time t
// for a diaphragm initially at x0
func (rp *Riemann) Positions(x0, t float64) (x1, x2, x3, x4 float64) {
	x1 = x0 + (rp.Left.U-rp.CL)*t
	x2 = x0 + (rp.UStar-rp.CStarL)*t
	x3 = x0 + rp.UStar*t
	x4 = x0 + rp.ShockSpeed*t
	return
}

// Sample evaluates the solution at time t on the points X. E is the specific internal energy.
func (rp *Riemann) Sample(x0, t float64, X []float64) (Rho, P, U, E []float64, err error) {
	if !(t >= 0) {
		err = types.NewDomainError("t", t, 0, "sample time must be non-negative")
		return
	}
	var (
		x1, x2, x3, x4 = rp.Positions(x0, t)
		g              = rp.Gamma
		lt, rt         = rp.Left, rp.Right
	)
	Rho = make([]float64, len(X))
	P = make([]float64, len(X))
	U = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		switch {
		case t == 0:
			if x < x0 {
				Rho[i], P[i], U[i] = lt.Rho, lt.P, lt.U
			} else {
				Rho[i], P[i], U[i] = rt.Rho, rt.P, rt.U
			}
		case x < x1:
			Rho[i], P[i], U[i] = lt.Rho, lt.P, lt.U
		case x <= x2:
			xi := (x - x0) / t
			c := 2 / rp.GP1() * (rp.CL + 0.5*rp.GM1()*(lt.U-xi))
			Rho[i] = lt.Rho * math.Pow(c/rp.CL, 2/rp.GM1())
			P[i] = lt.P * math.Pow(Rho[i]/lt.Rho, g)
			U[i] = 2 / rp.GP1() * (rp.CL + 0.5*rp.GM1()*lt.U + xi)
		case x <= x3:
			Rho[i], P[i], U[i] = rp.RhoStarL, rp.PStar, rp.UStar
		case x <= x4:
			Rho[i], P[i], U[i] = rp.RhoStarR, rp.PStar, rp.UStar
		default:
			Rho[i], P[i], U[i] = rt.Rho, rt.P, rt.U
		}
		E[i] = P[i] / (rp.GM1() * Rho[i])
	}
	return
}

// SodPoints is the number of interior samples across the rarefaction fan
const SodPoints = 9

// Sod is the classic shock tube on [0, 1] with the diaphragm at 0.5, sampled at both
// sides of every wave and across the fan
func Sod(t float64) (X, Rho, P, U, E []float64, err error) {
	var (
		xMin, xMax = 0., 1.
		x0         = 0.5 * (xMin + xMax)
		tol        = 1.e-4
		rp         *Riemann
	)
	if !(t > 0) {
		err = fmt.Errorf("sod solution needs t > 0, have %g", t)
		return
	}
	if rp, err = NewRiemann(State{Rho: 1, P: 1}, State{Rho: 0.125, P: 0.1}, types.DefaultGamma); err != nil {
		return
	}
	x1, x2, x3, x4 := rp.Positions(x0, t)
	fan := make([]float64, SodPoints+2)
	floats.Span(fan, x1, x2)
	X = append(X, xMin, x1-tol, x1+tol)
	X = append(X, fan[1:SodPoints+1]...)
	X = append(X, x2-tol, x2+tol, x3-tol, x3+tol, x4-tol, x4+tol, xMax)
	Rho, P, U, E, err = rp.Sample(x0, t, X)
	return
}

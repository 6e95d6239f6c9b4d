/*
Package nozzle solves the quasi one dimensional flow through a converging-diverging
nozzle fed from a reservoir at p0, T0 and exhausting against a back pressure pB.
*/
package nozzle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gasdyn/isentropic"
	"github.com/notargets/gasdyn/rootfind"
	"github.com/notargets/gasdyn/shocks"
	"github.com/notargets/gasdyn/types"
	"github.com/notargets/gasdyn/utils"
)

// DesignTol is the pressure ratio band around the design point reported as Design
const DesignTol = 1.e-9

// Nozzle is a tabulated area distribution A(X). The throat is the station of minimum area.
type Nozzle struct {
	X, A    []float64
	IThroat int
	AThroat float64
}

func NewNozzle(X, A []float64) (nz *Nozzle, err error) {
	if len(X) != len(A) {
		err = fmt.Errorf("nozzle has %d stations but %d areas", len(X), len(A))
		return
	}
	if len(X) < 2 {
		err = fmt.Errorf("nozzle needs at least two stations, have %d", len(X))
		return
	}
	for i, a := range A {
		if !(a > 0) || math.IsInf(a, 1) {
			err = types.NewDomainError(fmt.Sprintf("A[%d]", i), a, 0, "nozzle area must be positive and finite")
			return
		}
		if i > 0 && !(X[i] > X[i-1]) {
			err = types.NewDomainError(fmt.Sprintf("X[%d]", i), X[i], X[i-1], "station coordinates must increase")
			return
		}
	}
	nz = &Nozzle{
		X:       X,
		A:       A,
		IThroat: floats.MinIdx(A),
	}
	nz.AThroat = A[nz.IThroat]
	return
}

func (nz *Nozzle) ExitAreaRatio() float64 {
	return nz.A[len(nz.A)-1] / nz.AThroat
}

// CriticalPressureRatios are the exit pB/p0 values bounding the flow regimes: the choked
// subsonic exit, the shock free supersonic exit, and a normal shock standing at the exit
func (nz *Nozzle) CriticalPressureRatios(fl isentropic.Flow) (pe1, pe2, pe3 float64, err error) {
	var (
		Msub, Msup float64
		ns         shocks.Shock
		ar         = nz.ExitAreaRatio()
	)
	if Msub, Msup, err = fl.MachFromAreaRatio(ar); err != nil {
		return
	}
	if pe1, err = fl.PressureRatio(Msub); err != nil {
		return
	}
	if pe2, err = fl.PressureRatio(Msup); err != nil {
		return
	}
	if ns, err = shocks.NewNormalShock(Msup, fl.Gamma); err != nil {
		return
	}
	pe3 = pe2 * ns.P2P1
	return
}

type Solution struct {
	Regime     types.Regime
	M, P, T    []float64
	ShockX     float64 // Interpolated shock position, NaN when there is no shock
	ShockIndex int     // First station downstream of the shock, -1 when there is no shock
	ShockMach  float64
}

// SolveFlow finds the regime for pB/p0 and the station distributions of M, p and T
func (nz *Nozzle) SolveFlow(fl isentropic.Flow, p0, T0, pB float64) (sol *Solution, err error) {
	switch {
	case !(p0 > 0):
		return nil, types.NewDomainError("p0", p0, 0, "reservoir pressure must be positive")
	case !(T0 > 0):
		return nil, types.NewDomainError("T0", T0, 0, "reservoir temperature must be positive")
	case !(pB >= 0):
		return nil, types.NewDomainError("pB", pB, 0, "back pressure must be non-negative")
	}
	var (
		pr            = pB / p0
		pe1, pe2, pe3 float64
	)
	if pr > 1 {
		return nil, types.NewDomainError("pB/p0", pr, 1, "back pressure must be lower than reservoir pressure")
	}
	if pe1, pe2, pe3, err = nz.CriticalPressureRatios(fl); err != nil {
		return
	}
	sol = &Solution{
		M:          make([]float64, len(nz.A)),
		P:          make([]float64, len(nz.A)),
		T:          make([]float64, len(nz.A)),
		ShockX:     math.NaN(),
		ShockIndex: -1,
	}
	switch {
	case pr >= pe1:
		sol.Regime = types.Subsonic
		err = nz.subsonic(fl, p0, pr, sol)
	case pr >= pe3:
		sol.Regime = types.ShockInNozzle
		err = nz.shockInNozzle(fl, p0, pr, sol)
	default:
		switch {
		case math.Abs(pr-pe2) <= DesignTol:
			sol.Regime = types.Design
		case pr > pe2:
			sol.Regime = types.OverExpanded
		default:
			sol.Regime = types.UnderExpanded
		}
		err = nz.choked(fl, p0, sol)
	}
	if err != nil {
		return nil, err
	}
	for i, M := range sol.M {
		var tT0 float64
		if tT0, err = fl.TemperatureRatio(M); err != nil {
			return nil, err
		}
		sol.T[i] = T0 * tT0
	}
	return
}

// subsonic is the unchoked case: the exit Mach number follows from pB, and the sonic
// area of that flow is a virtual throat smaller than the real one
func (nz *Nozzle) subsonic(fl isentropic.Flow, p0, pr float64, sol *Solution) (err error) {
	if pr == 1 {
		// No flow
		sol.P = utils.ConstArray(len(nz.A), p0)
		return
	}
	var (
		Me, aeAstar float64
	)
	if Me, err = fl.MachFromPressureRatio(pr); err != nil {
		return
	}
	if aeAstar, err = fl.AreaRatio(Me); err != nil {
		return
	}
	aStar := nz.A[len(nz.A)-1] / aeAstar
	for i, a := range nz.A {
		if sol.M[i], err = fl.MachSubsonic(math.Max(1, a/aStar)); err != nil {
			return
		}
	}
	return nz.pressures(fl, p0, sol.M, sol.P)
}

// choked covers the shock free supersonic exit: subsonic up to the throat, supersonic after
func (nz *Nozzle) choked(fl isentropic.Flow, p0 float64, sol *Solution) (err error) {
	for i, a := range nz.A {
		if sol.M[i], err = nz.isentropicMach(fl, i, a/nz.AThroat); err != nil {
			return
		}
	}
	return nz.pressures(fl, p0, sol.M, sol.P)
}

func (nz *Nozzle) isentropicMach(fl isentropic.Flow, i int, aAstar float64) (float64, error) {
	aAstar = math.Max(1, aAstar)
	if i <= nz.IThroat {
		return fl.MachSubsonic(aAstar)
	}
	return fl.MachSupersonic(aAstar)
}

func (nz *Nozzle) pressures(fl isentropic.Flow, p0 float64, M, P []float64) (err error) {
	var pP0 []float64
	if pP0, err = fl.Eval(isentropic.Pressure, M); err != nil {
		return
	}
	floats.ScaleTo(P, p0, pP0)
	return
}

// postShock is the flow behind a normal shock standing at area aShock: the stagnation
// pressure drops by P02P01 and the sonic area of the downstream flow grows by 1/P02P01
type postShock struct {
	ns     shocks.Shock
	aStar2 float64
	exitPR float64 // Exit static pressure over the reservoir pressure
}

func (nz *Nozzle) postShockAt(fl isentropic.Flow, aShock float64) (ps postShock, err error) {
	var (
		Ms, Me, pP0 float64
	)
	if Ms, err = fl.MachSupersonic(math.Max(1, aShock/nz.AThroat)); err != nil {
		return
	}
	if ps.ns, err = shocks.NewNormalShock(Ms, fl.Gamma); err != nil {
		return
	}
	ps.aStar2 = nz.AThroat / ps.ns.P02P01
	if Me, err = fl.MachSubsonic(math.Max(1, nz.A[len(nz.A)-1]/ps.aStar2)); err != nil {
		return
	}
	if pP0, err = fl.PressureRatio(Me); err != nil {
		return
	}
	ps.exitPR = ps.ns.P02P01 * pP0
	return
}

// shockInNozzle bisects on the shock area until the subsonic flow behind the shock
// meets the back pressure at the exit. The exit pressure falls monotonically as
// the shock moves downstream, from pe1 at the throat to pe3 at the exit.
func (nz *Nozzle) shockInNozzle(fl isentropic.Flow, p0, pr float64, sol *Solution) (err error) {
	var (
		ae       = nz.A[len(nz.A)-1]
		solveErr error
		residual = func(aShock float64) float64 {
			ps, e := nz.postShockAt(fl, aShock)
			if e != nil {
				if solveErr == nil {
					solveErr = e
				}
				return math.NaN()
			}
			return ps.exitPR - pr
		}
		aShock float64
		ps     postShock
	)
	aShock, err = rootfind.Bisect(residual, nz.AThroat, ae,
		rootfind.Settings{Tol: 1.e-13 * ae, MaxIterations: 200})
	if solveErr != nil {
		return solveErr
	}
	if err != nil {
		return
	}
	if ps, err = nz.postShockAt(fl, aShock); err != nil {
		return
	}
	sol.ShockMach = ps.ns.M1
	sol.ShockIndex = len(nz.A) - 1
	for i := nz.IThroat + 1; i < len(nz.A); i++ {
		if nz.A[i] >= aShock {
			sol.ShockIndex = i
			break
		}
	}
	i := sol.ShockIndex
	sol.ShockX = nz.X[i]
	if da := nz.A[i] - nz.A[i-1]; da > 0 {
		sol.ShockX = nz.X[i-1] + (aShock-nz.A[i-1])/da*(nz.X[i]-nz.X[i-1])
	}
	var (
		p02 = p0 * ps.ns.P02P01
	)
	for i, a := range nz.A {
		var pP0 float64
		if i < sol.ShockIndex {
			if sol.M[i], err = nz.isentropicMach(fl, i, a/nz.AThroat); err != nil {
				return
			}
			pP0, _ = fl.PressureRatio(sol.M[i])
			sol.P[i] = p0 * pP0
			continue
		}
		if sol.M[i], err = fl.MachSubsonic(math.Max(1, a/ps.aStar2)); err != nil {
			return
		}
		pP0, _ = fl.PressureRatio(sol.M[i])
		sol.P[i] = p02 * pP0
	}
	return
}

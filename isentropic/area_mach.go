package isentropic

import (
	"math"

	"github.com/notargets/gasdyn/rootfind"
	"github.com/notargets/gasdyn/types"
)

// MachFromAreaRatio returns the subsonic and supersonic Mach numbers having area ratio A/A*.
// A/A* falls monotonically on (0, 1) and rises monotonically on (1, Inf), so each
// branch has exactly one root: the subsonic one is bisected, the supersonic one
// comes from Newton iterations seeded at M = 2. Both work on ln(A/A*) against ln M.
func MachFromAreaRatio(aAstar, gamma float64) (Msub, Msup float64, err error) {
	var (
		fl Flow
	)
	if fl, err = NewFlow(gamma); err != nil {
		return
	}
	return fl.MachFromAreaRatio(aAstar)
}

func (fl Flow) MachFromAreaRatio(aAstar float64) (Msub, Msup float64, err error) {
	if Msub, err = fl.MachSubsonic(aAstar); err != nil {
		return
	}
	if Msup, err = fl.MachSupersonic(aAstar); err != nil {
		return
	}
	return
}

func (fl Flow) checkAreaRatio(aAstar float64) error {
	if err := types.CheckGamma(fl.Gamma); err != nil {
		return err
	}
	if math.IsNaN(aAstar) || aAstar < 1 {
		return types.NewDomainError("A_Astar", aAstar, 1, "area ratio cannot be below one, the critical area is the minimum")
	}
	return nil
}

// MachSubsonic is the subsonic branch of the area-Mach inversion. It is bisected
// in ln M on ln(A/A*), which keeps relative accuracy for very large area ratios.
// A/A* >= c/M, with c the limit of M*A/A* as M goes to 0, so the root lies above
// ln(c/(2A)).
func (fl Flow) MachSubsonic(aAstar float64) (M float64, err error) {
	if err = fl.checkAreaRatio(aAstar); err != nil {
		return
	}
	switch {
	case aAstar == 1:
		return 1, nil
	case math.IsInf(aAstar, 1):
		return 0, nil
	}
	var (
		target = math.Log(aAstar)
		c      = math.Pow(2/fl.GP1(), 0.5*fl.GP1()/fl.GM1())
		f      = func(y float64) float64 { return fl.lnAreaRatio(math.Exp(y)) - target }
		y      float64
	)
	if y, err = rootfind.Bisect(f, math.Log(0.5*c)-target, 0, rootfind.DefaultBisect()); err != nil {
		return
	}
	return math.Exp(y), nil
}

// MachSupersonic is the supersonic branch. Newton runs in ln M on ln(A/A*), which
// tends to a straight line for large M, seeded at M = 2 and kept above M = 1.
func (fl Flow) MachSupersonic(aAstar float64) (M float64, err error) {
	if err = fl.checkAreaRatio(aAstar); err != nil {
		return
	}
	switch {
	case aAstar == 1:
		return 1, nil
	case math.IsInf(aAstar, 1):
		return aAstar, nil
	}
	var (
		target = math.Log(aAstar)
		f      = func(y float64) float64 { return fl.lnAreaRatio(math.Exp(y)) - target }
		df     = func(y float64) float64 { return fl.dLnAreaRatio(math.Exp(y)) }
		s      = newtonSettings
		y      float64
	)
	s.FTol = residualFloor * target
	if y, err = rootfind.Newton(f, df, math.Ln2, 0, s); err != nil {
		return
	}
	return math.Exp(y), nil
}

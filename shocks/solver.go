package shocks

import (
	"math"

	"github.com/notargets/gasdyn/isentropic"
	"github.com/notargets/gasdyn/rootfind"
	"github.com/notargets/gasdyn/types"
)

// MaxDeflection returns the largest deflection an attached shock can produce at M1 and
// the wave angle where it occurs. That wave angle splits the weak and strong branches.
func MaxDeflection(M1, gamma float64) (thetaMax, betaMax float64, err error) {
	var (
		mu float64
	)
	if err = types.CheckGamma(gamma); err != nil {
		return
	}
	if mu, err = isentropic.MachAngle(M1); err != nil {
		return
	}
	if mu == math.Pi/2 {
		// Sonic upstream flow only supports the normal shock
		return 0, math.Pi / 2, nil
	}
	betaMax, thetaMax, err = rootfind.MaximizeBounded(
		func(beta float64) float64 {
			return deflection(beta, M1, gamma, mu)
		},
		mu, math.Pi/2,
		rootfind.Settings{Tol: 1.e-14, MaxIterations: 100})
	return
}

// FromDeflectionAngle returns the attached shock that turns the flow at M1 by theta.
//
// theta == thetaMax returns the shock at the maximum deflection wave angle for
// either branch. theta == 0 returns the Mach wave on the weak branch and the
// normal shock on the strong branch.
func FromDeflectionAngle(M1, theta float64, branch types.Branch, gamma float64) (s Shock, err error) {
	var (
		thetaMax, betaMax, mu, beta float64
	)
	if thetaMax, betaMax, err = MaxDeflection(M1, gamma); err != nil {
		return
	}
	if mu, err = isentropic.MachAngle(M1); err != nil {
		return
	}
	switch {
	case math.IsNaN(theta) || theta < 0:
		err = types.NewDomainError("theta", theta, 0, "deflection angle must be non-negative")
		return
	case theta > thetaMax:
		err = types.NewDomainError("theta", theta, thetaMax, "no attached shock solution, the shock detaches")
		return
	case theta == thetaMax:
		beta = betaMax
	case theta == 0 && branch == types.Weak:
		beta = mu
	case theta == 0:
		beta = math.Pi / 2
	default:
		var (
			f      = rootfind.Implicit(func(b float64) float64 { return deflection(b, M1, gamma, mu) }, theta)
			lo, hi = mu, betaMax
		)
		if branch == types.Strong {
			lo, hi = betaMax, math.Pi/2
		}
		if beta, err = rootfind.Bisect(f, lo, hi, rootfind.DefaultBisect()); err != nil {
			return
		}
	}
	return NewShock(M1, beta, gamma)
}

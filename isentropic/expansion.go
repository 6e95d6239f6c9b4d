package isentropic

import (
	"math"

	"github.com/notargets/gasdyn/types"
)

// Expansion is a centred Prandtl-Meyer fan turning a supersonic stream by Theta.
// All fields are fixed at construction.
type Expansion struct {
	M1, Theta, Gamma float64
	Nu1, Nu2         float64 // Upstream and downstream Prandtl-Meyer angles
	M2               float64
	Mu1, Mu2         float64 // Forward and rearward Mach lines bounding the fan
	P2P1, T2T1       float64
	Rho2Rho1         float64
}

func NewExpansion(M1, theta, gamma float64) (ex Expansion, err error) {
	var (
		fl Flow
	)
	if fl, err = NewFlow(gamma); err != nil {
		return
	}
	if math.IsInf(M1, 0) {
		// Already at nuMax, there is nothing left to expand into
		err = types.NewDomainError("M1", M1, math.MaxFloat64, "upstream Mach number must be finite")
		return
	}
	ex = Expansion{M1: M1, Theta: theta, Gamma: gamma}
	if ex.Nu1, err = PrandtlMeyer(M1, gamma); err != nil {
		return
	}
	thetaMax := nuMax(gamma) - ex.Nu1
	switch {
	case !(theta >= 0):
		err = types.NewDomainError("theta", theta, 0, "expansion turning angle must be non-negative")
		return
	case theta > thetaMax:
		err = types.NewDomainError("theta", theta, thetaMax, "turning angle exceeds the maximum expansion of the upstream flow")
		return
	}
	ex.Nu2 = ex.Nu1 + theta
	switch {
	case theta == 0:
		ex.M2 = M1
	case theta == thetaMax:
		// Full expansion to vacuum
		ex.M2 = math.Inf(1)
	default:
		if ex.M2, err = MachFromNu(ex.Nu2, gamma); err != nil {
			return
		}
	}
	if ex.Mu1, err = MachAngle(M1); err != nil {
		return
	}
	if ex.Mu2, err = MachAngle(ex.M2); err != nil {
		return
	}
	ex.P2P1 = fl.pP0(ex.M2) / fl.pP0(M1)
	ex.T2T1 = fl.tT0(ex.M2) / fl.tT0(M1)
	if ex.T2T1 > 0 {
		ex.Rho2Rho1 = ex.P2P1 / ex.T2T1
	}
	return
}

// FanAngle is the angular width of the fan between its bounding Mach lines, measured
// in the frame of the incoming flow
func (ex Expansion) FanAngle() float64 {
	return ex.Theta + ex.Mu1 - ex.Mu2
}

// MaxTurning is the largest expansion available to a stream at M1
func MaxTurning(M1, gamma float64) (theta float64, err error) {
	var nu1 float64
	if nu1, err = PrandtlMeyer(M1, gamma); err != nil {
		return
	}
	theta = math.Max(0, nuMax(gamma)-nu1)
	return
}

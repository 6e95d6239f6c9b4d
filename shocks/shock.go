/*
Package shocks computes the jump conditions across oblique and normal shock
waves of a calorically perfect gas, and solves for the wave angle produced by a
given flow deflection.
*/
package shocks

import (
	"math"

	"github.com/notargets/gasdyn/isentropic"
	"github.com/notargets/gasdyn/types"
	"github.com/notargets/gasdyn/utils"
)

// Shock is a straight shock wave at angle Beta to an upstream stream at M1.
// A normal shock is the Beta = pi/2 case and shares the same layout.
type Shock struct {
	Kind            types.ShockKind
	M1, Beta, Gamma float64
	M1n             float64 // Upstream Mach number normal to the wave
	Theta           float64 // Flow deflection
	M2n, M2         float64
	P2P1, Rho2Rho1  float64
	T2T1            float64
	P02P01          float64 // Stagnation ratios, the total pressure loss is 1-P02P01
	Rho02Rho01      float64
	T02T01          float64
}

// NewShock builds the shock at wave angle beta, which must lie between the Mach
// angle of M1 and pi/2
func NewShock(M1, beta, gamma float64) (s Shock, err error) {
	var (
		fl isentropic.Flow
		mu float64
	)
	if fl, err = isentropic.NewFlow(gamma); err != nil {
		return
	}
	if math.IsInf(M1, 0) {
		// The jump ratios grow with M1n^2 and have no finite value here
		err = types.NewDomainError("M1", M1, math.MaxFloat64, "upstream Mach number must be finite")
		return
	}
	if mu, err = isentropic.MachAngle(M1); err != nil {
		return
	}
	switch {
	case math.IsNaN(beta) || beta < mu:
		err = types.NewDomainError("beta", beta, mu, "shock angle below the Mach angle is unphysical")
		return
	case beta > math.Pi/2:
		err = types.NewDomainError("beta", beta, math.Pi/2, "shock angle cannot exceed a normal shock")
		return
	}
	s = Shock{
		Kind:  types.Oblique,
		M1:    M1,
		Beta:  beta,
		Gamma: gamma,
	}
	if beta == math.Pi/2 {
		s.Kind = types.Normal
	}
	if beta != 0 {
		s.M1n = M1 * math.Sin(beta)
	}
	if !(s.M1n > 0) {
		err = types.NewDomainError("M1n", s.M1n, 0, "normal Mach number must be positive")
		return
	}
	s.Theta = deflection(beta, M1, gamma, mu)
	var (
		M1n2 = utils.POW(s.M1n, 2)
		gm1  = gamma - 1
	)
	s.M2n = math.Sqrt((1/M1n2 + 0.5*gm1) / (gamma - 0.5*gm1/M1n2))
	s.M2 = s.M2n / math.Sin(beta-s.Theta)
	s.P2P1 = 1 + 2*gamma*(M1n2-1)/(gamma+1)
	s.Rho2Rho1 = (gamma + 1) / (2/M1n2 + gm1)
	s.T2T1 = s.P2P1 / s.Rho2Rho1
	var (
		p1, p2, r1, r2 float64
	)
	if p1, err = fl.PressureRatio(M1); err != nil {
		return
	}
	if p2, err = fl.PressureRatio(s.M2); err != nil {
		return
	}
	if r1, err = fl.DensityRatio(M1); err != nil {
		return
	}
	if r2, err = fl.DensityRatio(s.M2); err != nil {
		return
	}
	s.P02P01 = p1 / p2 * s.P2P1
	s.Rho02Rho01 = r1 / r2 * s.Rho2Rho1
	s.T02T01 = s.P02P01 / s.Rho02Rho01
	return
}

// NewNormalShock is the shock with its wave normal to the upstream flow
func NewNormalShock(M1, gamma float64) (Shock, error) {
	return NewShock(M1, math.Pi/2, gamma)
}

// DeflectionAngle is the theta-beta-M relation: the flow turning produced by a wave at beta
func DeflectionAngle(beta, M1, gamma float64) (theta float64, err error) {
	var (
		mu float64
	)
	if err = types.CheckGamma(gamma); err != nil {
		return
	}
	if mu, err = isentropic.MachAngle(M1); err != nil {
		return
	}
	if math.IsNaN(beta) || beta < mu || beta > math.Pi/2 {
		err = types.NewDomainError("beta", beta, mu, "shock angle must lie between the Mach angle and pi/2")
		return
	}
	theta = deflection(beta, M1, gamma, mu)
	return
}

func deflection(beta, M1, gamma, mu float64) float64 {
	// Zero deflection at the Mach wave and the normal shock, where the formula is 0/0 or rounds off
	if beta == 0 || beta == math.Pi/2 || beta == mu {
		return 0
	}
	var (
		sb  = math.Sin(beta)
		iM2 = utils.POW(M1, -2)
	)
	return math.Atan(2 / math.Tan(beta) * (sb*sb - iM2) / (gamma + math.Cos(2*beta) + 2*iM2))
}

// NormalShockFromPressureRatio finds the normal shock with static pressure jump p2p1
func NormalShockFromPressureRatio(p2p1, gamma float64) (s Shock, err error) {
	if err = types.CheckGamma(gamma); err != nil {
		return
	}
	if math.IsNaN(p2p1) || p2p1 < 1 {
		err = types.NewDomainError("p2_p1", p2p1, 1, "a compression shock cannot lower the static pressure")
		return
	}
	M1 := math.Sqrt(1 + 0.5*(gamma+1)/gamma*(p2p1-1))
	return NewNormalShock(M1, gamma)
}

// NormalShockFromDownstreamMach finds the normal shock leaving the flow at M2. M2 is bounded
// below by sqrt((gamma-1)/(2*gamma)), the limit of an infinitely strong shock.
func NormalShockFromDownstreamMach(M2, gamma float64) (s Shock, err error) {
	if err = types.CheckGamma(gamma); err != nil {
		return
	}
	var (
		M2min = math.Sqrt(0.5 * (gamma - 1) / gamma)
	)
	switch {
	case math.IsNaN(M2) || M2 > 1:
		err = types.NewDomainError("M2", M2, 1, "flow behind a normal shock must be subsonic")
		return
	case M2 <= M2min:
		err = types.NewDomainError("M2", M2, M2min, "downstream Mach number is below the infinite strength limit")
		return
	}
	M22 := M2 * M2
	M1 := math.Sqrt(((gamma-1)*M22 + 2) / (2*gamma*M22 - (gamma - 1)))
	if M2 == 1 {
		M1 = 1
	}
	return NewNormalShock(M1, gamma)
}

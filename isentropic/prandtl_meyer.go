package isentropic

import (
	"math"

	"github.com/notargets/gasdyn/rootfind"
	"github.com/notargets/gasdyn/types"
	"github.com/notargets/gasdyn/utils"
)

// newtonSettings bounds the Newton inversions in this package
var newtonSettings = rootfind.DefaultNewton()

// residualFloor is the relative rounding level of the inverted residuals
const residualFloor = 1.e-15

// MachAngle is asin(1/M), the half angle of the Mach cone, defined for M >= 1
func MachAngle(M float64) (mu float64, err error) {
	if !(M >= 1) {
		err = types.NewDomainError("M", M, 1, "Mach number must be supersonic")
		return
	}
	mu = math.Asin(1 / M)
	return
}

func MachAngles(M []float64) ([]float64, error) {
	return utils.Map(M, MachAngle)
}

// PrandtlMeyer is the angle nu through which a sonic flow must turn to reach M
func PrandtlMeyer(M, gamma float64) (nu float64, err error) {
	if err = types.CheckGamma(gamma); err != nil {
		return
	}
	if !(M >= 1) {
		err = types.NewDomainError("M", M, 1, "Mach number must be supersonic")
		return
	}
	nu = prandtlMeyer(M, gamma)
	return
}

func prandtlMeyer(M, gamma float64) float64 {
	var (
		sgpgm = math.Sqrt((gamma + 1) / (gamma - 1))
	)
	if math.IsInf(M, 1) {
		return nuMax(gamma)
	}
	m2m1 := math.Sqrt((M - 1) * (M + 1))
	return sgpgm*math.Atan(m2m1/sgpgm) - math.Atan(m2m1)
}

// nuDeficit is nuMax - nu(M), written with the complementary arctangents so that
// it keeps its relative accuracy as M grows and nu closes in on nuMax
func nuDeficit(M, gamma float64) float64 {
	var (
		sgpgm = math.Sqrt((gamma + 1) / (gamma - 1))
		m2m1  = math.Sqrt((M - 1) * (M + 1))
	)
	return sgpgm*math.Atan(sgpgm/m2m1) - math.Atan(1/m2m1)
}

func dPrandtlMeyer(M, gamma float64) float64 {
	return math.Sqrt(M*M-1) / (M * (1 + 0.5*(gamma-1)*M*M))
}

// NuMax is the Prandtl-Meyer angle of an infinite Mach number
func NuMax(gamma float64) (float64, error) {
	if err := types.CheckGamma(gamma); err != nil {
		return 0, err
	}
	return nuMax(gamma), nil
}

func nuMax(gamma float64) float64 {
	return 0.5 * math.Pi * (math.Sqrt((gamma+1)/(gamma-1)) - 1)
}

// MachFromNu inverts the Prandtl-Meyer function with Newton iterations seeded at M = 2.
// Above nuMax/2 the residual is taken on the deficit nuMax - nu, which stays well
// conditioned as the Mach number runs away toward the limit.
func MachFromNu(nu, gamma float64) (M float64, err error) {
	if err = types.CheckGamma(gamma); err != nil {
		return
	}
	var (
		nm = nuMax(gamma)
	)
	switch {
	case !(nu > 0):
		err = types.NewDomainError("nu", nu, 0, "Prandtl-Meyer angle must be positive")
		return
	case nu >= nm:
		err = types.NewDomainError("nu", nu, nm, "Prandtl-Meyer angle must be below its limit for infinite Mach number")
		return
	}
	var (
		f  = rootfind.Implicit(func(M float64) float64 { return prandtlMeyer(M, gamma) }, nu)
		df = func(M float64) float64 { return dPrandtlMeyer(M, gamma) }
		s  = newtonSettings
	)
	s.FTol = residualFloor * nu
	if nu > 0.5*nm {
		deficit := nm - nu
		f = func(M float64) float64 { return deficit - nuDeficit(M, gamma) }
		s.FTol = residualFloor * deficit
	}
	return rootfind.Newton(f, df, 2, 1, s)
}

/*
Package isentropic holds the isentropic flow relations for a calorically
perfect gas, the Prandtl-Meyer function and the Mach number inversions built
on them.

Naming follows the usual gas dynamics notation: X_0 is the stagnation value of
X, X_star the critical (sonic) value, and a ratio X2/X1 compares the state
downstream of a wave to the state upstream of it.
*/
package isentropic

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gasdyn/types"
	"github.com/notargets/gasdyn/utils"
)

// Flow maps a Mach number to the isentropic ratios of its gas
type Flow struct {
	types.GasModel
}

func NewFlow(gamma float64) (fl Flow, err error) {
	var gm types.GasModel
	if gm, err = types.NewGasModel(gamma); err != nil {
		return
	}
	fl = Flow{GasModel: gm}
	return
}

// checkMach also validates the gas, a zero Flow has no usable gamma
func (fl Flow) checkMach(M float64) error {
	if err := types.CheckGamma(fl.Gamma); err != nil {
		return err
	}
	if !(M >= 0) {
		return types.NewDomainError("M", M, 0, "Mach number must be non-negative")
	}
	return nil
}

// T/T0
func (fl Flow) TemperatureRatio(M float64) (float64, error) {
	if err := fl.checkMach(M); err != nil {
		return 0, err
	}
	return fl.tT0(M), nil
}

// p/p0
func (fl Flow) PressureRatio(M float64) (float64, error) {
	if err := fl.checkMach(M); err != nil {
		return 0, err
	}
	return fl.pP0(M), nil
}

// rho/rho0
func (fl Flow) DensityRatio(M float64) (float64, error) {
	if err := fl.checkMach(M); err != nil {
		return 0, err
	}
	return fl.rhoRho0(M), nil
}

// a/a0
func (fl Flow) SoundSpeedRatio(M float64) (float64, error) {
	if err := fl.checkMach(M); err != nil {
		return 0, err
	}
	return math.Sqrt(fl.tT0(M)), nil
}

// AreaRatio is A/A*, the duct area over the sonic area carrying the same mass flow.
// M = 0 gives +Inf, the stagnant limit.
func (fl Flow) AreaRatio(M float64) (float64, error) {
	if err := fl.checkMach(M); err != nil {
		return 0, err
	}
	return fl.aAstar(M), nil
}

func (fl Flow) tT0(M float64) float64 {
	return 1 / (1 + fl.GM1Half()*M*M)
}

func (fl Flow) pP0(M float64) float64 {
	return math.Pow(fl.tT0(M), fl.Gamma/fl.GM1())
}

func (fl Flow) rhoRho0(M float64) float64 {
	return math.Pow(fl.tT0(M), 1/fl.GM1())
}

func (fl Flow) aAstar(M float64) float64 {
	if math.IsInf(M, 1) {
		return M
	}
	return math.Pow(2/fl.GP1()/fl.tT0(M), 0.5*fl.GP1()/fl.GM1()) / M
}

// Above largeMach the area ratio is taken in its asymptotic form, M*M would overflow
const largeMach = 1.e100

// lnAreaRatio is ln(A/A*). The log1p form keeps the O((M-1)^2) value accurate
// close to M = 1, where the direct power loses it to cancellation.
func (fl Flow) lnAreaRatio(M float64) float64 {
	var (
		e = 0.5 * fl.GP1() / fl.GM1()
	)
	switch {
	case M == 0 || math.IsInf(M, 1):
		return math.Inf(1)
	case M > largeMach:
		return e*(math.Log(2/fl.GP1())+2*math.Log(M)+math.Log(fl.GM1Half()+1/(M*M))) - math.Log(M)
	}
	return e*math.Log1p(fl.GM1()*(M-1)*(M+1)/fl.GP1()) - math.Log(M)
}

// dLnAreaRatio is d(ln A/A*)/d(ln M)
func (fl Flow) dLnAreaRatio(M float64) float64 {
	if M > largeMach {
		iM2 := 1 / (M * M)
		return (1 - iM2) / (fl.GM1Half() + iM2)
	}
	return (M - 1) * (M + 1) / (1 + fl.GM1Half()*M*M)
}

type Ratio uint8

const (
	Temperature Ratio = iota
	Pressure
	Density
	Area
	SoundSpeed
)

var RatioNameMap = map[string]Ratio{
	"t_t0":        Temperature,
	"temperature": Temperature,
	"p_p0":        Pressure,
	"pressure":    Pressure,
	"rho_rho0":    Density,
	"density":     Density,
	"a_astar":     Area,
	"area":        Area,
	"a_a0":        SoundSpeed,
	"soundspeed":  SoundSpeed,
}

var ratioLabels = []string{"T_T0", "p_p0", "rho_rho0", "A_Astar", "a_a0"}

func ParseRatio(label string) (r Ratio, err error) {
	var ok bool
	if r, ok = RatioNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown isentropic ratio %q, expected one of %v", label, ratioLabels)
	}
	return
}

func (r Ratio) String() string {
	if int(r) < len(ratioLabels) {
		return ratioLabels[r]
	}
	return fmt.Sprintf("Ratio(%d)", uint8(r))
}

// Func returns the scalar relation for r
func (fl Flow) Func(r Ratio) utils.ScalarFunc {
	switch r {
	case Temperature:
		return fl.TemperatureRatio
	case Pressure:
		return fl.PressureRatio
	case Density:
		return fl.DensityRatio
	case Area:
		return fl.AreaRatio
	case SoundSpeed:
		return fl.SoundSpeedRatio
	}
	return func(float64) (float64, error) {
		return 0, fmt.Errorf("unknown isentropic ratio %d", r)
	}
}

// Eval applies ratio r element-wise to M. The first invalid element, in index
// order, fails the whole evaluation.
func (fl Flow) Eval(r Ratio, M []float64) ([]float64, error) {
	return utils.Map(M, fl.Func(r))
}

// MachFromTemperatureRatio inverts T/T0, which is single valued in M
func (fl Flow) MachFromTemperatureRatio(tT0 float64) (M float64, err error) {
	if err = fl.checkUnitRatio("T_T0", tT0); err != nil {
		return
	}
	M = math.Sqrt((1/tT0 - 1) / fl.GM1Half())
	return
}

func (fl Flow) MachFromPressureRatio(pP0 float64) (M float64, err error) {
	if err = fl.checkUnitRatio("p_p0", pP0); err != nil {
		return
	}
	return fl.MachFromTemperatureRatio(math.Pow(pP0, fl.GM1()/fl.Gamma))
}

func (fl Flow) MachFromDensityRatio(rhoRho0 float64) (M float64, err error) {
	if err = fl.checkUnitRatio("rho_rho0", rhoRho0); err != nil {
		return
	}
	return fl.MachFromTemperatureRatio(math.Pow(rhoRho0, fl.GM1()))
}

func (fl Flow) checkUnitRatio(name string, ratio float64) error {
	if err := types.CheckGamma(fl.Gamma); err != nil {
		return err
	}
	switch {
	case !(ratio > 0):
		return types.NewDomainError(name, ratio, 0, "static to stagnation ratio must be positive")
	case ratio > 1:
		return types.NewDomainError(name, ratio, 1, "static to stagnation ratio cannot exceed one")
	}
	return nil
}

// MachFromRatio inverts ratio r. Only the area ratio has distinct subsonic and
// supersonic solutions, the other ratios return the same Mach number twice.
func (fl Flow) MachFromRatio(r Ratio, value float64) (Msub, Msup float64, err error) {
	var M float64
	switch r {
	case Area:
		return fl.MachFromAreaRatio(value)
	case Temperature:
		M, err = fl.MachFromTemperatureRatio(value)
	case Pressure:
		M, err = fl.MachFromPressureRatio(value)
	case Density:
		M, err = fl.MachFromDensityRatio(value)
	case SoundSpeed:
		if err = fl.checkUnitRatio("a_a0", value); err != nil {
			return
		}
		M, err = fl.MachFromTemperatureRatio(value * value)
	default:
		err = fmt.Errorf("unknown isentropic ratio %d", r)
	}
	return M, M, err
}

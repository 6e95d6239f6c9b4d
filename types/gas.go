package types

import (
	"math"
)

const DefaultGamma = 1.4

// GasModel is a calorically perfect gas, fully described by its specific heat ratio
type GasModel struct {
	Gamma float64
}

var Air = GasModel{Gamma: DefaultGamma}

func NewGasModel(gamma float64) (gm GasModel, err error) {
	if err = CheckGamma(gamma); err != nil {
		return
	}
	gm = GasModel{Gamma: gamma}
	return
}

// CheckGamma validates 1 < gamma < Inf
func CheckGamma(gamma float64) error {
	if !(gamma > 1) || math.IsInf(gamma, 1) {
		return NewDomainError("gamma", gamma, 1, "specific heat ratio must be greater than one and finite")
	}
	return nil
}

// GM1 and the helpers below are the common gamma groupings used by the flow relations
func (gm GasModel) GM1() float64 { return gm.Gamma - 1 }

func (gm GasModel) GP1() float64 { return gm.Gamma + 1 }

// GM1Half is (gamma-1)/2
func (gm GasModel) GM1Half() float64 { return 0.5 * (gm.Gamma - 1) }

package server

import (
	"github.com/notargets/gasdyn/isentropic"
	"github.com/notargets/gasdyn/shocks"
	"github.com/notargets/gasdyn/types"
)

type IsentropicResult struct {
	Mach         Number  `json:"mach"`
	Gamma        Number  `json:"gamma"`
	TT0          Number  `json:"T_T0"`
	PP0          Number  `json:"p_p0"`
	RhoRho0      Number  `json:"rho_rho0"`
	AAstar       Number  `json:"A_Astar"`
	AA0          Number  `json:"a_a0"`
	MachAngle    *Number `json:"mach_angle,omitempty"` // Supersonic only
	PrandtlMeyer *Number `json:"prandtl_meyer,omitempty"`
}

func isentropicHandler(q query, gamma float64) (interface{}, error) {
	var (
		fl     isentropic.Flow
		M      float64
		err    error
		ratios = make([]float64, 5)
	)
	if M, err = q.Float("mach"); err != nil {
		return nil, err
	}
	if fl, err = isentropic.NewFlow(gamma); err != nil {
		return nil, err
	}
	for i, r := range []isentropic.Ratio{isentropic.Temperature, isentropic.Pressure,
		isentropic.Density, isentropic.Area, isentropic.SoundSpeed} {
		if ratios[i], err = fl.Func(r)(M); err != nil {
			return nil, err
		}
	}
	res := IsentropicResult{
		Mach: Number(M), Gamma: Number(gamma),
		TT0: Number(ratios[0]), PP0: Number(ratios[1]), RhoRho0: Number(ratios[2]),
		AAstar: Number(ratios[3]), AA0: Number(ratios[4]),
	}
	if M >= 1 {
		var mu, nu float64
		if mu, err = isentropic.MachAngle(M); err != nil {
			return nil, err
		}
		if nu, err = isentropic.PrandtlMeyer(M, gamma); err != nil {
			return nil, err
		}
		muOut, nuOut := Number(q.Out(mu)), Number(q.Out(nu))
		res.MachAngle, res.PrandtlMeyer = &muOut, &nuOut
	}
	return res, nil
}

type AreaMachResult struct {
	Ratio      Number `json:"ratio"`
	Gamma      Number `json:"gamma"`
	Subsonic   Number `json:"subsonic"`
	Supersonic Number `json:"supersonic"`
}

func areaMachHandler(q query, gamma float64) (interface{}, error) {
	var (
		ratio, Msub, Msup float64
		err               error
	)
	if ratio, err = q.Float("ratio"); err != nil {
		return nil, err
	}
	if Msub, Msup, err = isentropic.MachFromAreaRatio(ratio, gamma); err != nil {
		return nil, err
	}
	return AreaMachResult{Number(ratio), Number(gamma), Number(Msub), Number(Msup)}, nil
}

type PrandtlMeyerResult struct {
	Mach      Number `json:"mach"`
	Gamma     Number `json:"gamma"`
	Nu        Number `json:"nu"`
	NuMax     Number `json:"nu_max"`
	MachAngle Number `json:"mach_angle"`
}

// prandtlMeyerHandler evaluates nu(M) for ?mach= and inverts it for ?nu=
func prandtlMeyerHandler(q query, gamma float64) (interface{}, error) {
	var (
		M, nu, numax, mu float64
		err              error
	)
	if numax, err = isentropic.NuMax(gamma); err != nil {
		return nil, err
	}
	switch {
	case q.Has("mach") && q.Has("nu"):
		return nil, &ParameterError{Name: "nu", Value: q.Get("nu"), Reason: "give either mach or nu, not both"}
	case q.Has("nu"):
		if nu, err = q.Angle("nu"); err != nil {
			return nil, err
		}
		if M, err = isentropic.MachFromNu(nu, gamma); err != nil {
			return nil, err
		}
	default:
		if M, err = q.Float("mach"); err != nil {
			return nil, err
		}
		if nu, err = isentropic.PrandtlMeyer(M, gamma); err != nil {
			return nil, err
		}
	}
	if mu, err = isentropic.MachAngle(M); err != nil {
		return nil, err
	}
	return PrandtlMeyerResult{
		Mach: Number(M), Gamma: Number(gamma),
		Nu: Number(q.Out(nu)), NuMax: Number(q.Out(numax)), MachAngle: Number(q.Out(mu)),
	}, nil
}

type ShockResult struct {
	Kind       string `json:"kind"`
	Branch     string `json:"branch,omitempty"`
	M1         Number `json:"M1"`
	Beta       Number `json:"beta"`
	Theta      Number `json:"theta"`
	Gamma      Number `json:"gamma"`
	M1n        Number `json:"M1n"`
	M2n        Number `json:"M2n"`
	M2         Number `json:"M2"`
	P2P1       Number `json:"p2_p1"`
	Rho2Rho1   Number `json:"rho2_rho1"`
	T2T1       Number `json:"T2_T1"`
	P02P01     Number `json:"p02_p01"`
	Rho02Rho01 Number `json:"rho02_rho01"`
	T02T01     Number `json:"T02_T01"`
}

func newShockResult(q query, s shocks.Shock) ShockResult {
	return ShockResult{
		Kind:       s.Kind.String(),
		M1:         Number(s.M1),
		Beta:       Number(q.Out(s.Beta)),
		Theta:      Number(q.Out(s.Theta)),
		Gamma:      Number(s.Gamma),
		M1n:        Number(s.M1n),
		M2n:        Number(s.M2n),
		M2:         Number(s.M2),
		P2P1:       Number(s.P2P1),
		Rho2Rho1:   Number(s.Rho2Rho1),
		T2T1:       Number(s.T2T1),
		P02P01:     Number(s.P02P01),
		Rho02Rho01: Number(s.Rho02Rho01),
		T02T01:     Number(s.T02T01),
	}
}

// shockHandler builds the shock from ?beta=, or solves for it from ?theta= on the weak
// branch unless ?branch=strong
func shockHandler(q query, gamma float64) (interface{}, error) {
	var (
		M1, angle float64
		s         shocks.Shock
		branch    = types.Weak
		err       error
	)
	if M1, err = q.Float("mach"); err != nil {
		return nil, err
	}
	switch {
	case q.Has("beta") && q.Has("theta"):
		return nil, &ParameterError{Name: "theta", Value: q.Get("theta"), Reason: "give either beta or theta, not both"}
	case q.Has("beta"):
		if angle, err = q.Angle("beta"); err != nil {
			return nil, err
		}
		if s, err = shocks.NewShock(M1, angle, gamma); err != nil {
			return nil, err
		}
		return newShockResult(q, s), nil
	}
	if angle, err = q.Angle("theta"); err != nil {
		return nil, err
	}
	if q.Has("branch") {
		if branch, err = types.ParseBranch(q.Get("branch")); err != nil {
			return nil, &ParameterError{Name: "branch", Value: q.Get("branch"), Reason: err.Error()}
		}
	}
	if s, err = shocks.FromDeflectionAngle(M1, angle, branch, gamma); err != nil {
		return nil, err
	}
	res := newShockResult(q, s)
	res.Branch = branch.String()
	return res, nil
}

func normalShockHandler(q query, gamma float64) (interface{}, error) {
	var (
		M1  float64
		s   shocks.Shock
		err error
	)
	if M1, err = q.Float("mach"); err != nil {
		return nil, err
	}
	if s, err = shocks.NewNormalShock(M1, gamma); err != nil {
		return nil, err
	}
	return newShockResult(q, s), nil
}

type MaxDeflectionResult struct {
	Mach     Number `json:"mach"`
	Gamma    Number `json:"gamma"`
	ThetaMax Number `json:"theta_max"`
	BetaMax  Number `json:"beta_max"`
}

func maxDeflectionHandler(q query, gamma float64) (interface{}, error) {
	var (
		M1, thetaMax, betaMax float64
		err                   error
	)
	if M1, err = q.Float("mach"); err != nil {
		return nil, err
	}
	if thetaMax, betaMax, err = shocks.MaxDeflection(M1, gamma); err != nil {
		return nil, err
	}
	return MaxDeflectionResult{Number(M1), Number(gamma), Number(q.Out(thetaMax)), Number(q.Out(betaMax))}, nil
}

type ExpansionResult struct {
	M1       Number `json:"M1"`
	Theta    Number `json:"theta"`
	Gamma    Number `json:"gamma"`
	Nu1      Number `json:"nu1"`
	Nu2      Number `json:"nu2"`
	M2       Number `json:"M2"`
	Mu1      Number `json:"mu1"`
	Mu2      Number `json:"mu2"`
	P2P1     Number `json:"p2_p1"`
	T2T1     Number `json:"T2_T1"`
	Rho2Rho1 Number `json:"rho2_rho1"`
	FanAngle Number `json:"fan_angle"`
}

func expansionHandler(q query, gamma float64) (interface{}, error) {
	var (
		M1, theta float64
		ex        isentropic.Expansion
		err       error
	)
	if M1, err = q.Float("mach"); err != nil {
		return nil, err
	}
	if theta, err = q.Angle("theta"); err != nil {
		return nil, err
	}
	if ex, err = isentropic.NewExpansion(M1, theta, gamma); err != nil {
		return nil, err
	}
	return ExpansionResult{
		M1:       Number(ex.M1),
		Theta:    Number(q.Out(ex.Theta)),
		Gamma:    Number(ex.Gamma),
		Nu1:      Number(q.Out(ex.Nu1)),
		Nu2:      Number(q.Out(ex.Nu2)),
		M2:       Number(ex.M2),
		Mu1:      Number(q.Out(ex.Mu1)),
		Mu2:      Number(q.Out(ex.Mu2)),
		P2P1:     Number(ex.P2P1),
		T2T1:     Number(ex.T2T1),
		Rho2Rho1: Number(ex.Rho2Rho1),
		FanAngle: Number(q.Out(ex.FanAngle())),
	}, nil
}

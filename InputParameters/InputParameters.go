package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gasdyn/types"
)

// Parameters obtained from the YAML case file
type InputParameters struct {
	Title     string               `yaml:"Title"`
	Gamma     float64              `yaml:"Gamma"`
	Nozzle    *NozzleParameters    `yaml:"Nozzle"`
	ShockTube *ShockTubeParameters `yaml:"ShockTube"`
}

// NozzleParameters is a tabulated nozzle and the back pressures to solve it for
type NozzleParameters struct {
	X             []float64 `yaml:"X"`
	A             []float64 `yaml:"A"`
	P0            float64   `yaml:"P0"`
	T0            float64   `yaml:"T0"`
	BackPressures []float64 `yaml:"BackPressures"`
}

type GasState struct {
	Rho float64 `yaml:"Rho"`
	P   float64 `yaml:"P"`
	U   float64 `yaml:"U"`
}

type ShockTubeParameters struct {
	Left   GasState `yaml:"Left"`
	Right  GasState `yaml:"Right"`
	X0     float64  `yaml:"X0"`
	XMin   float64  `yaml:"XMin"`
	XMax   float64  `yaml:"XMax"`
	Time   float64  `yaml:"Time"`
	Points int      `yaml:"Points"`
}

func (ip *InputParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	if ip.Gamma == 0 {
		ip.Gamma = types.DefaultGamma
	}
	if st := ip.ShockTube; st != nil {
		if st.XMin == 0 && st.XMax == 0 {
			st.XMax = 1
		}
		if st.X0 == 0 {
			st.X0 = 0.5 * (st.XMin + st.XMax)
		}
		if st.Points == 0 {
			st.Points = 101
		}
	}
	return ip.Validate()
}

func (ip *InputParameters) Validate() (err error) {
	if err = types.CheckGamma(ip.Gamma); err != nil {
		return
	}
	if ip.Nozzle == nil && ip.ShockTube == nil {
		return fmt.Errorf("case %q defines neither a Nozzle nor a ShockTube", ip.Title)
	}
	if nz := ip.Nozzle; nz != nil {
		switch {
		case len(nz.X) != len(nz.A):
			return fmt.Errorf("nozzle X has %d entries and A has %d", len(nz.X), len(nz.A))
		case !(nz.P0 > 0) || !(nz.T0 > 0):
			return fmt.Errorf("nozzle P0 and T0 must be positive, have %g, %g", nz.P0, nz.T0)
		case len(nz.BackPressures) == 0:
			return fmt.Errorf("nozzle needs at least one back pressure")
		}
	}
	if st := ip.ShockTube; st != nil {
		switch {
		case !(st.XMax > st.XMin):
			return fmt.Errorf("shock tube domain [%g, %g] is empty", st.XMin, st.XMax)
		case st.X0 < st.XMin || st.X0 > st.XMax:
			return fmt.Errorf("diaphragm X0 = %g lies outside [%g, %g]", st.X0, st.XMin, st.XMax)
		case st.Points < 2:
			return fmt.Errorf("shock tube needs at least 2 points, have %d", st.Points)
		case st.Time < 0:
			return fmt.Errorf("shock tube Time must be non-negative, have %g", st.Time)
		}
	}
	return
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	if nz := ip.Nozzle; nz != nil {
		fmt.Printf("[%d]\t\t\t\t= Nozzle Stations\n", len(nz.X))
		fmt.Printf("%8.5g\t\t= P0\n", nz.P0)
		fmt.Printf("%8.5g\t\t= T0\n", nz.T0)
		fmt.Printf("%v\t= Back Pressures\n", nz.BackPressures)
	}
	if st := ip.ShockTube; st != nil {
		fmt.Printf("%+v\t= Left State\n", st.Left)
		fmt.Printf("%+v\t= Right State\n", st.Right)
		fmt.Printf("%8.5f\t\t= X0\n", st.X0)
		fmt.Printf("%8.5f\t\t= Time\n", st.Time)
		fmt.Printf("[%d]\t\t\t\t= Points\n", st.Points)
	}
}

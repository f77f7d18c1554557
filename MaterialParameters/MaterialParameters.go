package MaterialParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/cfdsolve/goeos/eos"
)

// Parameters for one material region, obtained from the YAML input file
type MaterialParameters struct {
	Name             string  `yaml:"Name"`
	EOS              string  `yaml:"EOS"` // StiffenedGas, PerfectGas, JWL
	Gamma            float64 `yaml:"Gamma"`
	PressureConstant float64 `yaml:"PressureConstant"` // stiffened gas p-infinity
	Omega            float64 `yaml:"Omega"`
	A1               float64 `yaml:"A1"`
	A2               float64 `yaml:"A2"`
	R1               float64 `yaml:"R1"`
	R2               float64 `yaml:"R2"`
	Rho0             float64 `yaml:"Rho0"`
	RhoMin           float64 `yaml:"RhoMin"`
	PMin             float64 `yaml:"PMin"`
	Verbose          bool    `yaml:"Verbose"`
}

func (mp *MaterialParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MaterialParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Name\n", mp.Name)
	fmt.Printf("[%s]\t\t= EOS\n", mp.EOS)
	switch mp.EOS {
	case "StiffenedGas", "PerfectGas":
		fmt.Printf("%8.5f\t\t= Gamma\n", mp.Gamma)
		fmt.Printf("%8.5g\t\t= PressureConstant\n", mp.PressureConstant)
	case "JWL":
		fmt.Printf("%8.5f\t\t= Omega\n", mp.Omega)
		fmt.Printf("%8.5g\t\t= A1\n", mp.A1)
		fmt.Printf("%8.5g\t\t= A2\n", mp.A2)
		fmt.Printf("%8.5f\t\t= R1\n", mp.R1)
		fmt.Printf("%8.5f\t\t= R2\n", mp.R2)
		fmt.Printf("%8.5g\t\t= Rho0\n", mp.Rho0)
	}
	fmt.Printf("%8.5g\t\t= RhoMin\n", mp.RhoMin)
	fmt.Printf("%8.5g\t\t= PMin\n", mp.PMin)
}

// Model builds the bound equation of state model for this material. The
// floors and the verbosity flag are fixed into the model here and never
// change afterwards.
func (mp *MaterialParameters) Model() (vf *eos.VarFcn, err error) {
	switch mp.EOS {
	case "StiffenedGas":
		return eos.NewVarFcn(eos.NewStiffenedGas(mp.Gamma, mp.PressureConstant),
			mp.RhoMin, mp.PMin, mp.Verbose), nil
	case "PerfectGas":
		return eos.NewVarFcn(eos.NewPerfectGas(mp.Gamma),
			mp.RhoMin, mp.PMin, mp.Verbose), nil
	case "JWL":
		return eos.NewVarFcn(eos.NewJWL(mp.Omega, mp.A1, mp.A2, mp.R1, mp.R2, mp.Rho0),
			mp.RhoMin, mp.PMin, mp.Verbose), nil
	case "MieGruneisen":
		return nil, fmt.Errorf("EOS type [%s] is not supported yet", mp.EOS)
	default:
		return nil, fmt.Errorf("unknown EOS type [%s]", mp.EOS)
	}
}

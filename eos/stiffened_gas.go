package eos

// StiffenedGas implements p = (gamma-1)*rho*e - gamma*Pstiff. Pstiff = 0
// reduces it to the perfect gas, which is how the solver's air-like materials
// are configured.
type StiffenedGas struct {
	Gamma, Pstiff float64
}

func NewStiffenedGas(gamma, pstiff float64) (sg *StiffenedGas) {
	return &StiffenedGas{Gamma: gamma, Pstiff: pstiff}
}

func NewPerfectGas(gamma float64) (sg *StiffenedGas) {
	return NewStiffenedGas(gamma, 0)
}

func (sg *StiffenedGas) GetPressure(rho, e float64) float64 {
	return (sg.Gamma-1.)*rho*e - sg.Gamma*sg.Pstiff
}

func (sg *StiffenedGas) GetInternalEnergyPerUnitMass(rho, p float64) float64 {
	return (p + sg.Gamma*sg.Pstiff) / ((sg.Gamma - 1.) * rho)
}

func (sg *StiffenedGas) GetDensity(p, e float64) float64 {
	return (p + sg.Gamma*sg.Pstiff) / ((sg.Gamma - 1.) * e)
}

func (sg *StiffenedGas) GetDpdrho(rho, e float64) float64 {
	return (sg.Gamma - 1.) * e
}

func (sg *StiffenedGas) GetBigGamma(rho, e float64) float64 {
	return sg.Gamma - 1.
}

func (sg *StiffenedGas) GetType() Type {
	return STIFFENED_GAS
}

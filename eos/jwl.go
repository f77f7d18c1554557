package eos

import "math"

// JWLGas implements the Jones-Wilkins-Lee EOS for detonation products,
//
//	p = A1*(1 - omega*rho/(R1*rho0))*exp(-R1*rho0/rho)
//	  + A2*(1 - omega*rho/(R2*rho0))*exp(-R2*rho0/rho)
//	  + omega*rho*e
//
// Pressure and energy invert in closed form; density from (p, e) does not and
// is recovered by bracketing bisection.
type JWLGas struct {
	Omega          float64 // Gruneisen coefficient, constant for JWL
	A1, A2, R1, R2 float64
	Rho0           float64 // reference density of the unreacted explosive
}

func NewJWL(omega, a1, a2, r1, r2, rho0 float64) (jwl *JWLGas) {
	return &JWLGas{Omega: omega, A1: a1, A2: a2, R1: r1, R2: r2, Rho0: rho0}
}

// fref is the cold (e-independent) part of the pressure.
func (jwl *JWLGas) fref(rho float64) float64 {
	v1 := jwl.R1 * jwl.Rho0 / rho
	v2 := jwl.R2 * jwl.Rho0 / rho
	return jwl.A1*(1.-jwl.Omega/v1)*math.Exp(-v1) +
		jwl.A2*(1.-jwl.Omega/v2)*math.Exp(-v2)
}

// dfrefdrho is d(fref)/drho.
func (jwl *JWLGas) dfrefdrho(rho float64) float64 {
	v1 := jwl.R1 * jwl.Rho0 / rho
	v2 := jwl.R2 * jwl.Rho0 / rho
	oorho := 1. / rho
	return jwl.A1*math.Exp(-v1)*(-jwl.Omega/v1+(1.-jwl.Omega/v1)*v1)*oorho +
		jwl.A2*math.Exp(-v2)*(-jwl.Omega/v2+(1.-jwl.Omega/v2)*v2)*oorho
}

func (jwl *JWLGas) GetPressure(rho, e float64) float64 {
	return jwl.fref(rho) + jwl.Omega*rho*e
}

func (jwl *JWLGas) GetInternalEnergyPerUnitMass(rho, p float64) float64 {
	return (p - jwl.fref(rho)) / (jwl.Omega * rho)
}

func (jwl *JWLGas) GetDpdrho(rho, e float64) float64 {
	return jwl.dfrefdrho(rho) + jwl.Omega*e
}

func (jwl *JWLGas) GetBigGamma(rho, e float64) float64 {
	return jwl.Omega
}

// GetDensity solves p = fref(rho) + omega*rho*e for rho by bisection. The
// bracket starts at the reference density and expands until the residual
// changes sign; p(rho) is monotone at fixed e over the admissible range.
func (jwl *JWLGas) GetDensity(p, e float64) float64 {
	f := func(rho float64) float64 {
		return jwl.GetPressure(rho, e) - p
	}
	var (
		lo, hi = jwl.Rho0 / 1024., jwl.Rho0
		tol    = 1.e-12 * jwl.Rho0
	)
	for f(lo)*f(hi) > 0 {
		hi *= 2.
		if hi > 1.e6*jwl.Rho0 {
			// no admissible root, hand back the reference density
			return jwl.Rho0
		}
	}
	for hi-lo > tol {
		mid := 0.5 * (lo + hi)
		if f(lo)*f(mid) <= 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return 0.5 * (lo + hi)
}

func (jwl *JWLGas) GetType() Type {
	return JWL_EOS
}

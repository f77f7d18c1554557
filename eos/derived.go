package eos

import (
	"fmt"
	"math"
)

// ComputeSoundSpeedSquare returns c^2 = dp/drho + p/rho * BigGamma. It does
// not validate the result and may return a non-positive value.
func (vf *VarFcn) ComputeSoundSpeedSquare(rho, e float64) float64 {
	return vf.GetDpdrho(rho, e) + vf.GetPressure(rho, e)/rho*vf.GetBigGamma(rho, e)
}

// ComputeSoundSpeed returns sqrt(c^2). A non-positive c^2 has no physical
// meaning, so it is reported as ErrNonPhysical instead of a value that would
// corrupt downstream numerics.
func (vf *VarFcn) ComputeSoundSpeed(rho, e float64) (c float64, err error) {
	c2 := vf.ComputeSoundSpeedSquare(rho, e)
	if c2 <= 0. {
		return 0, fmt.Errorf("cannot calculate speed of sound (square root of a negative number): c2 = %e, rho = %e, e = %e: %w",
			c2, rho, e, ErrNonPhysical)
	}
	return math.Sqrt(c2), nil
}

// ComputeMachNumber returns |u|/c for the primitive state V, with e derived
// from (rho, p) through the contract. Fails with ErrNonPhysical when c^2 <= 0.
func (vf *VarFcn) ComputeMachNumber(V *Primitive) (M float64, err error) {
	e := vf.GetInternalEnergyPerUnitMass(V[0], V[4])
	c2 := vf.ComputeSoundSpeedSquare(V[0], e)
	if c2 <= 0. {
		return 0, fmt.Errorf("cannot calculate Mach number: c2 = %e, V = %e, %e, %e, %e, %e: %w",
			c2, V[0], V[1], V[2], V[3], V[4], ErrNonPhysical)
	}
	return math.Sqrt((V[1]*V[1] + V[2]*V[2] + V[3]*V[3]) / c2), nil
}

// ComputeTotalEnthalpyPerUnitMass returns H = e + 0.5*|u|^2 + p/rho.
func (vf *VarFcn) ComputeTotalEnthalpyPerUnitMass(V *Primitive) (H float64) {
	e := vf.GetInternalEnergyPerUnitMass(V[0], V[4])
	return e + 0.5*(V[1]*V[1]+V[2]*V[2]+V[3]*V[3]) + V[4]/V[0]
}

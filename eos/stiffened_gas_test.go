package eos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestStiffenedGas(t *testing.T) {
	// water-like parameters
	sg := NewStiffenedGas(4.4, 6.e8)
	var (
		rho = 1000.
		p   = 1.e5
	)
	e := sg.GetInternalEnergyPerUnitMass(rho, p)
	// pressure/energy relations are mutual inverses at fixed rho
	assert.True(t, scalar.EqualWithinRel(p, sg.GetPressure(rho, e), 1.e-12))
	assert.True(t, scalar.EqualWithinRel(rho, sg.GetDensity(p, e), 1.e-12))
	// analytic sound speed: c^2 = gamma*(p + Pstiff)/rho
	c2 := sg.GetDpdrho(rho, e) + p/rho*sg.GetBigGamma(rho, e)
	assert.True(t, scalar.EqualWithinRel(4.4*(p+6.e8)/rho, c2, 1.e-12))
}

func TestPerfectGasEnergy(t *testing.T) {
	pg := NewPerfectGas(1.4)
	// e = p/((gamma-1)*rho)
	assert.True(t, scalar.EqualWithinAbs(2.5, pg.GetInternalEnergyPerUnitMass(1., 1.), 1.e-14))
	assert.True(t, scalar.EqualWithinAbs(0.4, pg.GetBigGamma(1., 1.), 1.e-14))
}

package eos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// TNT product-gas coefficients, SI units.
func tntJWL() *JWLGas {
	return NewJWL(0.3, 3.712e11, 3.23e9, 4.15, 0.95, 1630.)
}

func TestJWLInverseRelations(t *testing.T) {
	jwl := tntJWL()
	var (
		rho = 1000.
		e   = 4.e6
	)
	p := jwl.GetPressure(rho, e)
	assert.True(t, scalar.EqualWithinRel(e, jwl.GetInternalEnergyPerUnitMass(rho, p), 1.e-12))
	assert.True(t, scalar.EqualWithinRel(rho, jwl.GetDensity(p, e), 1.e-8))
}

func TestJWLDerivatives(t *testing.T) {
	jwl := tntJWL()
	var (
		rho = 1200.
		e   = 5.e6
		h   = 1.e-3
	)
	// finite-difference check of dp/drho at constant e
	fd := (jwl.GetPressure(rho+h, e) - jwl.GetPressure(rho-h, e)) / (2. * h)
	assert.True(t, scalar.EqualWithinRel(fd, jwl.GetDpdrho(rho, e), 1.e-6))
	assert.Equal(t, 0.3, jwl.GetBigGamma(rho, e))
}

func TestJWLSoundSpeed(t *testing.T) {
	vf := NewVarFcn(tntJWL(), 1.e-6, 1.e-6, false)
	c, err := vf.ComputeSoundSpeed(1000., 4.e6)
	assert.NoError(t, err)
	assert.True(t, c > 0)
	assert.True(t, scalar.EqualWithinRel(vf.ComputeSoundSpeedSquare(1000., 4.e6), c*c, 1.e-12))
}

func TestJWLRoundTrip(t *testing.T) {
	vf := NewVarFcn(tntJWL(), 1.e-6, 1.e-6, false)
	V := Primitive{1000., 100., -50., 20., 1.e9}
	var U Conservative
	var V2 Primitive
	vf.PrimitiveToConservative(&V, &U)
	vf.ConservativeToPrimitive(&U, &V2)
	for i := range V {
		assert.True(t, scalar.EqualWithinRel(V[i], V2[i], 1.e-10))
	}
}

package MaterialParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cfdsolve/goeos/eos"
)

func TestParseMaterial(t *testing.T) {
	fileInput := []byte(`
Name: Water
EOS: StiffenedGas
Gamma: 4.4
PressureConstant: 6.e8
RhoMin: 1.e-6
PMin: 1.e-6
Verbose: true
`)
	var mp MaterialParameters
	if err := mp.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, "Water", mp.Name)
	assert.Equal(t, 4.4, mp.Gamma)
	assert.Equal(t, 6.e8, mp.PressureConstant)
	assert.Equal(t, 1.e-6, mp.RhoMin)
	mp.Print()

	vf, err := mp.Model()
	assert.NoError(t, err)
	assert.Equal(t, eos.STIFFENED_GAS, vf.GetType())
	assert.True(t, vf.Verbose)
}

func TestParseJWLMaterial(t *testing.T) {
	fileInput := []byte(`
Name: TNT Products
EOS: JWL
Omega: 0.3
A1: 3.712e11
A2: 3.23e9
R1: 4.15
R2: 0.95
Rho0: 1630.
RhoMin: 1.e-6
PMin: 1.e-6
`)
	var mp MaterialParameters
	assert.NoError(t, mp.Parse(fileInput))
	vf, err := mp.Model()
	assert.NoError(t, err)
	assert.Equal(t, eos.JWL_EOS, vf.GetType())
	assert.False(t, vf.Verbose)
}

func TestUnsupportedEOS(t *testing.T) {
	mp := MaterialParameters{EOS: "MieGruneisen"}
	_, err := mp.Model()
	assert.Error(t, err)
	mp.EOS = "Bogus"
	_, err = mp.Model()
	assert.Error(t, err)
}

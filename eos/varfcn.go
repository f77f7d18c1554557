package eos

import (
	"errors"
	"fmt"
)

type Type uint8

func (t Type) String() string {
	strings := []string{
		"Stiffened Gas",
		"Mie-Gruneisen",
		"JWL",
	}
	return strings[int(t)]
}

const (
	STIFFENED_GAS Type = iota
	MIE_GRUNEISEN
	JWL_EOS
)

// EquationOfState is the contract every material model must satisfy. All
// relations take single-point scalar arguments - the caller has already
// located the point inside one material region, so no grid context appears
// here. GetPressure and GetInternalEnergyPerUnitMass must be mutual inverses
// at fixed rho; the transform round trip in VarFcn rests on that.
type EquationOfState interface {
	// GetPressure returns p from density and internal energy per unit mass
	GetPressure(rho, e float64) float64
	// GetInternalEnergyPerUnitMass returns e from density and pressure
	GetInternalEnergyPerUnitMass(rho, p float64) float64
	// GetDensity returns rho from pressure and internal energy per unit mass
	GetDensity(p, e float64) float64
	// GetDpdrho returns dp/drho at constant e
	GetDpdrho(rho, e float64) float64
	// GetBigGamma returns (1/rho)*dp/de at constant rho. It is called
	// "BigGamma" to distinguish it from the small gamma of the perfect and
	// stiffened gases.
	GetBigGamma(rho, e float64) float64
	GetType() Type
}

var (
	// ErrNonPhysical marks a state where the governing equations lose
	// hyperbolicity (c^2 <= 0); there is no real sound speed to return and
	// the caller must not propagate the state further.
	ErrNonPhysical = errors.New("non-physical state")
	// ErrNotImplemented marks an EOS relation invoked on a material model
	// that does not define it. That is a code defect, not a data condition.
	ErrNotImplemented = errors.New("EOS relation not implemented")
)

// Unimplemented provides fatal stubs for the five EOS relations. A material
// model embeds it when some relation has no meaning for that material;
// reaching a stub at runtime panics with ErrNotImplemented.
type Unimplemented struct{}

func (Unimplemented) GetPressure(rho, e float64) float64 {
	panic(notImplemented("GetPressure"))
}

func (Unimplemented) GetInternalEnergyPerUnitMass(rho, p float64) float64 {
	panic(notImplemented("GetInternalEnergyPerUnitMass"))
}

func (Unimplemented) GetDensity(p, e float64) float64 {
	panic(notImplemented("GetDensity"))
}

func (Unimplemented) GetDpdrho(rho, e float64) float64 {
	panic(notImplemented("GetDpdrho"))
}

func (Unimplemented) GetBigGamma(rho, e float64) float64 {
	panic(notImplemented("GetBigGamma"))
}

func notImplemented(relation string) error {
	return fmt.Errorf("%s: %w", relation, ErrNotImplemented)
}

// VarFcn binds one material's EOS to its admissibility floors and provides
// the generic state algebra - transforms, derived quantities, validity check
// and clipping - expressed purely through the EquationOfState contract.
// RhoMin, PMin and Verbose are fixed at construction; one VarFcn exists per
// material region and is shared read-only across concurrent per-point
// evaluations, each call site owning its own V/U buffers.
type VarFcn struct {
	EquationOfState
	RhoMin, PMin float64
	Verbose      bool
}

func NewVarFcn(eqs EquationOfState, rhoMin, pMin float64, verbose bool) (vf *VarFcn) {
	return &VarFcn{
		EquationOfState: eqs,
		RhoMin:          rhoMin,
		PMin:            pMin,
		Verbose:         verbose,
	}
}

package eos

// Primitive is the (rho, u, v, w, p) representation of one fluid point.
type Primitive [5]float64

// Conservative is the (rho, rho*u, rho*v, rho*w, E) representation, where E
// is total energy per unit volume.
type Conservative [5]float64

// ConservativeToPrimitive fills V from U. Undefined when U[0] is zero; the
// caller keeps density positive upstream, normally via ClipDensityAndPressure.
func (vf *VarFcn) ConservativeToPrimitive(U *Conservative, V *Primitive) {
	V[0] = U[0]

	oorho := 1. / U[0]

	V[1] = U[1] * oorho
	V[2] = U[2] * oorho
	V[3] = U[3] * oorho

	e := (U[4] - 0.5*V[0]*(V[1]*V[1]+V[2]*V[2]+V[3]*V[3])) * oorho
	V[4] = vf.GetPressure(V[0], e)
}

// PrimitiveToConservative fills U from V. Exact inverse of
// ConservativeToPrimitive whenever the material's pressure/energy relations
// are mutual inverses.
func (vf *VarFcn) PrimitiveToConservative(V *Primitive, U *Conservative) {
	U[0] = V[0]

	U[1] = V[0] * V[1]
	U[2] = V[0] * V[2]
	U[3] = V[0] * V[3]

	e := vf.GetInternalEnergyPerUnitMass(V[0], V[4])
	U[4] = V[0] * (e + 0.5*(V[1]*V[1]+V[2]*V[2]+V[3]*V[3]))
}

package eos

import "fmt"

// CheckState reports whether V is non-physical: nonpositive density or loss
// of hyperbolicity (c^2 <= 0). It is a signal only - V is never modified and
// nothing fails here; the caller decides what to do with an invalid state.
func (vf *VarFcn) CheckState(V *Primitive) bool {
	e := vf.GetInternalEnergyPerUnitMass(V[0], V[4])
	c2 := vf.GetDpdrho(V[0], e) + V[4]/V[0]*vf.GetBigGamma(V[0], e)
	if V[0] <= 0. || c2 <= 0. {
		if vf.Verbose {
			fmt.Printf("Warning: negative density or violation of hyperbolicity. rho = %e, p = %e.\n",
				V[0], V[4])
		}
		return true
	}
	return false
}

// ClipDensityAndPressure floors V[0] against RhoMin and V[4] against PMin.
// When a clamp fires and U is non-nil, U is recomputed from the clamped V so
// the two representations stay consistent. Reports whether anything fired.
// This is the sole repair path in the package; states that clamping cannot
// fix (c^2 <= 0) surface through CheckState and the derived quantities.
func (vf *VarFcn) ClipDensityAndPressure(V *Primitive, U *Conservative) (clipped bool) {
	if V[0] < vf.RhoMin {
		if vf.Verbose {
			fmt.Printf("clip density from %e to %e\n", V[0], vf.RhoMin)
		}
		V[0] = vf.RhoMin
		clipped = true
	}

	if V[4] < vf.PMin {
		if vf.Verbose {
			fmt.Printf("clip pressure from %e to %e\n", V[4], vf.PMin)
		}
		V[4] = vf.PMin
		clipped = true
	}

	if clipped && U != nil {
		vf.PrimitiveToConservative(V, U)
	}

	return
}

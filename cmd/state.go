/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/cfdsolve/goeos/MaterialParameters"
	"github.com/cfdsolve/goeos/eos"
)

type ModelState struct {
	MaterialFile string
	Conservative bool
	Q            [5]float64
}

// StateCmd represents the state command
var StateCmd = &cobra.Command{
	Use:   "state",
	Short: "Evaluate the EOS algebra for a single fluid state",
	Long: `
Evaluates one fluid state against a material file: admissibility clipping,
conservative/primitive conversion both ways, sound speed, Mach number and
total enthalpy.

goeos state -m water.yaml --rho 1000. -u 10. -p 1.e5`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		ms := &ModelState{}
		if ms.MaterialFile, err = cmd.Flags().GetString("materialFile"); err != nil {
			panic(err)
		}
		ms.Conservative, _ = cmd.Flags().GetBool("conservative")
		ms.Q[0], _ = cmd.Flags().GetFloat64("rho")
		ms.Q[1], _ = cmd.Flags().GetFloat64("u")
		ms.Q[2], _ = cmd.Flags().GetFloat64("v")
		ms.Q[3], _ = cmd.Flags().GetFloat64("w")
		ms.Q[4], _ = cmd.Flags().GetFloat64("p")
		mp := processMaterial(ms.MaterialFile)
		RunState(ms, mp)
	},
}

func init() {
	rootCmd.AddCommand(StateCmd)
	StateCmd.Flags().StringP("materialFile", "m", "", "YAML file describing the material and its EOS")
	StateCmd.Flags().BoolP("conservative", "c", false, "interpret the five inputs as (rho, rho*u, rho*v, rho*w, E) instead of (rho, u, v, w, p)")
	StateCmd.Flags().Float64("rho", 1., "density")
	StateCmd.Flags().Float64P("u", "u", 0., "x velocity (or x momentum with -c)")
	StateCmd.Flags().Float64P("v", "v", 0., "y velocity (or y momentum with -c)")
	StateCmd.Flags().Float64P("w", "w", 0., "z velocity (or z momentum with -c)")
	StateCmd.Flags().Float64P("p", "p", 1., "pressure (or total energy per unit volume with -c)")
}

func processMaterial(fileName string) (mp *MaterialParameters.MaterialParameters) {
	var (
		err error
	)
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply a material file (-m, --materialFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Name: Water
EOS: StiffenedGas   # Can be "PerfectGas" or "JWL"
Gamma: 4.4
PressureConstant: 6.e8
RhoMin: 1.e-6
PMin: 1.e-6
Verbose: true
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(fileName); err != nil {
		panic(err)
	}
	mp = &MaterialParameters.MaterialParameters{}
	if err = mp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func RunState(ms *ModelState, mp *MaterialParameters.MaterialParameters) {
	var (
		vf  *eos.VarFcn
		err error
		V   eos.Primitive
		U   eos.Conservative
	)
	if vf, err = mp.Model(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	mp.Print()

	if ms.Conservative {
		U = eos.Conservative(ms.Q)
		vf.ConservativeToPrimitive(&U, &V)
	} else {
		V = eos.Primitive(ms.Q)
		vf.PrimitiveToConservative(&V, &U)
	}

	if vf.ClipDensityAndPressure(&V, &U) {
		fmt.Printf("State was outside the admissibility floors and has been clipped\n")
	}
	if vf.CheckState(&V) {
		fmt.Printf("Warning: state is non-physical (negative density or loss of hyperbolicity)\n")
	}

	fmt.Printf("V = (rho, u, v, w, p)         = %8.5g, %8.5g, %8.5g, %8.5g, %8.5g\n",
		V[0], V[1], V[2], V[3], V[4])
	fmt.Printf("U = (rho, rho*u, rho*v, rho*w, E) = %8.5g, %8.5g, %8.5g, %8.5g, %8.5g\n",
		U[0], U[1], U[2], U[3], U[4])

	e := vf.GetInternalEnergyPerUnitMass(V[0], V[4])
	fmt.Printf("%8.5g\t\t= Internal Energy Per Unit Mass\n", e)
	fmt.Printf("%8.5g\t\t= Total Enthalpy Per Unit Mass\n", vf.ComputeTotalEnthalpyPerUnitMass(&V))

	c, err := vf.ComputeSoundSpeed(V[0], e)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%8.5g\t\t= Sound Speed\n", c)

	M, err := vf.ComputeMachNumber(&V)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("%8.5g\t\t= Mach Number\n", M)
}

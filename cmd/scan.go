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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/cfdsolve/goeos/MaterialParameters"
	"github.com/cfdsolve/goeos/eos"
)

type ModelScan struct {
	MaterialFile   string
	RhoMin, RhoMax float64
	EMin, EMax     float64
	NRho, NE       int
	Profile        bool
}

// ScanCmd represents the scan command
var ScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Map hyperbolicity (c^2) over a density / internal energy grid",
	Long: `
Tabulates the squared sound speed of a material over a rectangular grid in
(rho, e) space and reports where hyperbolicity is lost. Useful for vetting
material coefficients before a run.

goeos scan -m tnt.yaml --rhoMin 100 --rhoMax 2000 --eMin 1.e5 --eMax 1.e7`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		msc := &ModelScan{}
		if msc.MaterialFile, err = cmd.Flags().GetString("materialFile"); err != nil {
			panic(err)
		}
		msc.RhoMin, _ = cmd.Flags().GetFloat64("rhoMin")
		msc.RhoMax, _ = cmd.Flags().GetFloat64("rhoMax")
		msc.EMin, _ = cmd.Flags().GetFloat64("eMin")
		msc.EMax, _ = cmd.Flags().GetFloat64("eMax")
		msc.NRho, _ = cmd.Flags().GetInt("nRho")
		msc.NE, _ = cmd.Flags().GetInt("nE")
		msc.Profile, _ = cmd.Flags().GetBool("profile")
		mp := processMaterial(msc.MaterialFile)
		RunScan(msc, mp)
	},
}

func init() {
	rootCmd.AddCommand(ScanCmd)
	ScanCmd.Flags().StringP("materialFile", "m", "", "YAML file describing the material and its EOS")
	ScanCmd.Flags().Float64("rhoMin", 0.1, "low end of the density range")
	ScanCmd.Flags().Float64("rhoMax", 10., "high end of the density range")
	ScanCmd.Flags().Float64("eMin", 0.1, "low end of the internal energy range")
	ScanCmd.Flags().Float64("eMax", 10., "high end of the internal energy range")
	ScanCmd.Flags().IntP("nRho", "k", 20, "number of density samples")
	ScanCmd.Flags().IntP("nE", "n", 20, "number of internal energy samples")
	ScanCmd.Flags().Bool("profile", false, "write a CPU profile of the scan to the working directory")
}

func RunScan(msc *ModelScan, mp *MaterialParameters.MaterialParameters) {
	var (
		vf  *eos.VarFcn
		err error
	)
	if msc.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if vf, err = mp.Model(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	mp.Print()

	rhos := make([]float64, msc.NRho)
	es := make([]float64, msc.NE)
	floats.Span(rhos, msc.RhoMin, msc.RhoMax)
	floats.Span(es, msc.EMin, msc.EMax)

	lost := 0
	fmt.Printf("%12s %12s %14s\n", "rho", "e", "c^2")
	for _, rho := range rhos {
		for _, e := range es {
			c2 := vf.ComputeSoundSpeedSquare(rho, e)
			marker := ""
			if c2 <= 0. {
				marker = "  <- hyperbolicity lost"
				lost++
			}
			fmt.Printf("%12.5g %12.5g %14.6g%s\n", rho, e, c2, marker)
		}
	}
	fmt.Printf("\n%d of %d samples lost hyperbolicity\n", lost, msc.NRho*msc.NE)
}

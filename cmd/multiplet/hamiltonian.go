// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/multiplet/hamiltonian"
)

var (
	hamOrbital   string
	hamElectrons int
	hamML        int
	hamMS        float64
)

var hamiltonianCmd = &cobra.Command{
	Use:   "hamiltonian",
	Short: "Print the symbolic Coulomb Hamiltonian of one shell sector",
	RunE:  runHamiltonian,
}

func init() {
	rootCmd.AddCommand(hamiltonianCmd)
	hamiltonianCmd.Flags().StringVar(&hamOrbital, "orbital", "p", "shell label: s, p, d or f")
	hamiltonianCmd.Flags().IntVar(&hamElectrons, "electrons", 2, "number of electrons in the shell")
	hamiltonianCmd.Flags().IntVar(&hamML, "ml", 0, "total orbital projection M_L")
	hamiltonianCmd.Flags().Float64Var(&hamMS, "ms", 0, "total spin projection M_S (half-integer)")
}

func runHamiltonian(cmd *cobra.Command, _ []string) error {
	ms, err := halfIntegerRat(hamMS)
	if err != nil {
		return err
	}
	res, err := hamiltonian.Compute(hamOrbital, hamElectrons, hamML, ms)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Report())

	return nil
}

func halfIntegerRat(v float64) (*big.Rat, error) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return nil, fmt.Errorf("ms %v is not finite", v)
	}
	twice := new(big.Rat).Mul(r, big.NewRat(2, 1))
	if !twice.IsInt() {
		return nil, fmt.Errorf("ms %v is not a half-integer", v)
	}

	return r, nil
}

// SPDX-License-Identifier: MIT
package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "multiplet",
	Short: "Symbolic atomic-multiplet toolkit",
	Long: `multiplet computes exact symbolic Coulomb Hamiltonians of open atomic
shells, generates INPUT scripts for the exact-diagonalization binary, and
serves the whole toolchain over the Model Context Protocol.`,
	SilenceUsage: true,
}

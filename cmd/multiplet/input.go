// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/multiplet/edinput"
)

var (
	inputElement string
	inputValence int
	inputTenDQ   float64
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Print an INPUT script for the exact-diagonalization binary",
	RunE:  runInput,
}

func init() {
	rootCmd.AddCommand(inputCmd)
	inputCmd.Flags().StringVar(&inputElement, "element", "", "element symbol, e.g. Ni")
	inputCmd.Flags().IntVar(&inputValence, "valence", 2, "oxidation state, e.g. 2 for Ni2+")
	inputCmd.Flags().Float64Var(&inputTenDQ, "tendq", 0, "cubic crystal field (octahedral positive)")
	_ = inputCmd.MarkFlagRequired("element")
}

func runInput(cmd *cobra.Command, _ []string) error {
	var opts []edinput.Option
	if cmd.Flags().Changed("tendq") {
		opts = append(opts, edinput.WithTenDQ(inputTenDQ))
	}
	text, err := edinput.Generate(inputElement, inputValence, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)

	return nil
}

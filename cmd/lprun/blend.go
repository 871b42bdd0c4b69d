package main

import (
	"github.com/spf13/cobra"

	"github.com/dokeeffe87/linear-programming/examples/blend"
)

var blendCmd = &cobra.Command{
	Use:   "blend",
	Short: "solve the cost-minimizing ingredient blend example",
	RunE: func(cmd *cobra.Command, args []string) error {
		prob, err := blend.Model()
		if err != nil {
			return err
		}
		return solveAndReport(prob)
	},
}

func init() {
	rootCmd.AddCommand(blendCmd)
	blendCmd.Flags().StringVar(&fLPPath, "lp", "", "also write the model to this LP file")
}

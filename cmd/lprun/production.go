package main

import (
	"github.com/spf13/cobra"

	"github.com/dokeeffe87/linear-programming/examples/production"
)

var productionCmd = &cobra.Command{
	Use:   "production",
	Short: "solve the resource-constrained production example",
	RunE: func(cmd *cobra.Command, args []string) error {
		prob, err := production.Model()
		if err != nil {
			return err
		}
		return solveAndReport(prob)
	},
}

func init() {
	rootCmd.AddCommand(productionCmd)
	productionCmd.Flags().StringVar(&fLPPath, "lp", "", "also write the model to this LP file")
}

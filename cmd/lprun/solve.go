package main

import (
	"github.com/spf13/cobra"

	"github.com/dokeeffe87/linear-programming/logger"
	"github.com/dokeeffe87/linear-programming/lp"
)

var solveCmd = &cobra.Command{
	Use:   "solve [model.lp]",
	Short: "solve a model read from an LP-format file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prob, err := lp.ReadLPFile(args[0])
		if err != nil {
			return err
		}
		logger.Logger().Debug().
			Str("problem", prob.Name()).
			Int("variables", prob.NumVars()).
			Int("constraints", prob.NumConstraints()).
			Msg("parsed model")
		return solveAndReport(prob)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

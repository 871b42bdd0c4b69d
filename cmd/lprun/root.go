// lprun formulates small LP/MIP models, writes them in LP format, and
// solves them with HiGHS.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dokeeffe87/linear-programming/highs"
	"github.com/dokeeffe87/linear-programming/logger"
	"github.com/dokeeffe87/linear-programming/lp"
)

var rootCmd = &cobra.Command{
	Use:           "lprun",
	Short:         "formulate and solve small LP/MIP models with HiGHS",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if fVerbose {
			level = zerolog.DebugLevel
		}
		logger.Set(logger.Logger().Level(level))
	},
}

var (
	fVerbose      bool
	fTimeLimit    float64
	fSolverOutput bool
	fLPPath       string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&fVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Float64Var(&fTimeLimit, "time-limit", 0, "solver time limit in seconds (0 means no limit)")
	rootCmd.PersistentFlags().BoolVar(&fSolverOutput, "solver-output", false, "show the solver's own log output")
}

// solveAndReport optionally writes the model to an LP file, solves it,
// and prints the status, variable values, and objective to stdout.
func solveAndReport(prob *lp.Problem) error {
	log := logger.Logger()

	if fLPPath != "" {
		if err := prob.WriteLPFile(fLPPath); err != nil {
			return err
		}
		log.Info().Str("path", fLPPath).Msg("wrote model in LP format")
	}

	opts := []highs.SolveOption{highs.WithOutput(fSolverOutput)}
	if fTimeLimit > 0 {
		opts = append(opts, highs.WithTimeLimit(fTimeLimit))
	}

	if _, err := highs.Solve(prob, opts...); err != nil {
		return err
	}
	return prob.WriteSolution(os.Stdout)
}

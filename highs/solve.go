package highs

import (
	"time"

	"github.com/dokeeffe87/linear-programming/logger"
	"github.com/dokeeffe87/linear-programming/lp"
)

// Solve lowers the problem to matrix form, runs HiGHS synchronously,
// and writes the outcome back into the problem: its status, and, when
// the status carries a solution, each variable's value.
//
// Solver-reported infeasibility or unboundedness is a status, not an
// error; the error return covers solver failures only. Re-solving an
// unchanged problem yields the same status and values.
func Solve(p *lp.Problem, opts ...SolveOption) (lp.Status, error) {
	log := logger.Logger().With().Str("problem", p.Name()).Logger()

	model := Lower(p)

	start := time.Now()
	sol, err := model.Solve(opts...)
	if err != nil {
		if serr := p.SetSolution(lp.SolveError, nil); serr != nil {
			return lp.SolveError, serr
		}
		return lp.SolveError, err
	}

	status := statusFromModel(sol.Status)
	log.Debug().
		Str("status", status.String()).
		Float64("objective", sol.Objective).
		Dur("took", time.Since(start)).
		Msg("solved")

	if status.HasSolution() {
		err = p.SetSolution(status, sol.ColValues)
	} else {
		err = p.SetSolution(status, nil)
	}
	if err != nil {
		return lp.SolveError, err
	}
	return status, nil
}

// Lower converts a problem into the matrix-level Model consumed by
// HiGHS. Columns follow the problem's variable declaration order and
// rows follow constraint declaration order.
func Lower(p *lp.Problem) *Model {
	vars := p.Variables()
	colIndex := make(map[*lp.Variable]int, len(vars))

	model := &Model{
		Maximize: p.Sense() == lp.Maximize,
		ColCosts: make([]float64, len(vars)),
		ColLower: make([]float64, len(vars)),
		ColUpper: make([]float64, len(vars)),
	}

	hasInt := false
	for i, v := range vars {
		colIndex[v] = i
		model.ColLower[i] = v.Lower
		model.ColUpper[i] = v.Upper
		if v.Type == lp.Integer {
			hasInt = true
		}
	}
	if hasInt {
		model.VarTypes = make([]VariableType, len(vars))
		for i, v := range vars {
			if v.Type == lp.Integer {
				model.VarTypes[i] = Integer
			}
		}
	}

	if obj := p.Objective(); obj != nil {
		model.Offset = obj.Constant
		for _, t := range obj.Terms {
			model.ColCosts[colIndex[t.Var]] += t.Coef
		}
	}

	for row, c := range p.Constraints() {
		lower, upper := rowBounds(c)
		model.RowLower = append(model.RowLower, lower)
		model.RowUpper = append(model.RowUpper, upper)
		for _, t := range c.Expr.Terms {
			model.ConstMatrix = append(model.ConstMatrix, Nonzero{
				Row: row,
				Col: colIndex[t.Var],
				Val: t.Coef,
			})
		}
	}

	return model
}

func rowBounds(c *lp.Constraint) (lower, upper float64) {
	switch c.Rel {
	case lp.LessEq:
		return lp.NegInf(), c.RHS
	case lp.GreaterEq:
		return c.RHS, lp.Inf()
	default:
		return c.RHS, c.RHS
	}
}

// statusFromModel maps a HiGHS terminal status onto the problem-level
// status. HiGHS reports UnboundedOrInfeasible when presolve cannot tell
// the two apart; that maps to Infeasible, matching how the combined
// status is treated on read-back.
func statusFromModel(ms ModelStatus) lp.Status {
	switch ms {
	case ModelStatusOptimal, ModelStatusModelEmpty:
		return lp.Optimal
	case ModelStatusInfeasible, ModelStatusUnboundedOrInfeasible:
		return lp.Infeasible
	case ModelStatusUnbounded:
		return lp.Unbounded
	case ModelStatusObjectiveBound, ModelStatusObjectiveTarget,
		ModelStatusTimeLimit, ModelStatusIterationLimit:
		return lp.Feasible
	default:
		return lp.SolveError
	}
}

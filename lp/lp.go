// Package lp provides a small modeling layer for linear programming (LP)
// and mixed-integer programming (MIP) problems.
//
// A Problem is built from named decision variables, a linear objective,
// and labeled linear constraints:
//
//	prob := lp.NewProblem("production", lp.Maximize)
//	x, _ := prob.AddInteger("x", 0, lp.Inf())
//	y, _ := prob.AddInteger("y", 0, lp.Inf())
//	prob.SetObjective(lp.NewExpr().Add(25, x).Add(20, y))
//	prob.AddConstraint("material", lp.NewExpr().Add(3, x).Add(4, y), lp.LessEq, 25)
//	prob.AddConstraint("labor", lp.NewExpr().Add(2, x).Add(1, y), lp.LessEq, 10)
//
// The package does not solve anything itself. A solver backend (see the
// highs package) consumes the problem, runs to a terminal status, and
// writes the solution values back with SetSolution. Problems can also be
// written to and read from the CPLEX LP text format.
package lp

import "math"

// Sense is the optimization direction of a problem.
type Sense int

const (
	// Minimize the objective (default).
	Minimize Sense = iota
	// Maximize the objective.
	Maximize
)

// String returns a human-readable representation of the sense.
func (s Sense) String() string {
	if s == Maximize {
		return "Maximize"
	}
	return "Minimize"
}

// Rel is the relation of a constraint's left-hand side to its bound.
type Rel int

const (
	// LessEq constrains the expression to be <= the bound.
	LessEq Rel = iota
	// GreaterEq constrains the expression to be >= the bound.
	GreaterEq
	// Equal constrains the expression to be exactly the bound.
	Equal
)

// String returns the relation as written in the LP file format.
func (r Rel) String() string {
	switch r {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return "?"
	}
}

// Status is the terminal outcome of a solve attempt.
type Status int

const (
	// NotSolved indicates the problem has not been handed to a solver yet.
	NotSolved Status = iota
	// Optimal indicates a proven optimal solution was found.
	Optimal
	// Feasible indicates the solver stopped at a limit with a feasible
	// incumbent that is not proven optimal.
	Feasible
	// Infeasible indicates no assignment satisfies the constraints.
	Infeasible
	// Unbounded indicates the objective can be improved without limit.
	Unbounded
	// SolveError indicates the solver failed before reaching a conclusion.
	SolveError
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	names := []string{
		"NotSolved", "Optimal", "Feasible",
		"Infeasible", "Unbounded", "Error",
	}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// HasSolution returns true if the status carries defined variable values.
func (s Status) HasSolution() bool {
	return s == Optimal || s == Feasible
}

// Inf returns positive infinity, suitable for unbounded variable bounds.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for unbounded variable bounds.
func NegInf() float64 {
	return math.Inf(-1)
}

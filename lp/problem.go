package lp

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Problem is an LP or MIP model: a set of named decision variables, an
// objective expression with a direction, and an ordered collection of
// labeled constraints.
//
// Variables and constraints are created once at model-definition time
// and are immutable afterward, except for the solution values, which a
// solver backend populates through SetSolution.
type Problem struct {
	name  string
	sense Sense

	objective *Expr

	vars    []*Variable
	byName  map[string]*Variable
	constrs []*Constraint

	status    Status
	objValue  float64
	hasObjVal bool
}

// NewProblem returns an empty problem with the given name and
// optimization direction.
func NewProblem(name string, sense Sense) *Problem {
	return &Problem{
		name:   name,
		sense:  sense,
		byName: make(map[string]*Variable),
		status: NotSolved,
	}
}

// Name returns the problem name.
func (p *Problem) Name() string { return p.name }

// Sense returns the optimization direction.
func (p *Problem) Sense() Sense { return p.sense }

// Status returns the outcome of the most recent solve, or NotSolved.
func (p *Problem) Status() Status { return p.status }

// AddVariable adds a named decision variable with the given bounds and
// domain. Names must be unique and non-empty, and lower must not exceed
// upper.
func (p *Problem) AddVariable(name string, lower, upper float64, typ VarType) (*Variable, error) {
	if name == "" {
		return nil, errors.New("variable name must not be empty")
	}
	if _, ok := p.byName[name]; ok {
		return nil, errors.Errorf("duplicate variable name %q", name)
	}
	if lower > upper {
		return nil, errors.Errorf("variable %s: lower bound %g exceeds upper bound %g", name, lower, upper)
	}
	v := &Variable{Name: name, Lower: lower, Upper: upper, Type: typ}
	p.vars = append(p.vars, v)
	p.byName[name] = v
	return v, nil
}

// AddContinuous adds a continuous variable with the given bounds.
func (p *Problem) AddContinuous(name string, lower, upper float64) (*Variable, error) {
	return p.AddVariable(name, lower, upper, Continuous)
}

// AddInteger adds an integer variable with the given bounds.
func (p *Problem) AddInteger(name string, lower, upper float64) (*Variable, error) {
	return p.AddVariable(name, lower, upper, Integer)
}

// Variable returns the variable with the given name, or nil.
func (p *Problem) Variable(name string) *Variable {
	return p.byName[name]
}

// Variables returns the problem's variables in declaration order.
// The returned slice must not be modified.
func (p *Problem) Variables() []*Variable {
	return p.vars
}

// NumVars returns the number of variables in the problem.
func (p *Problem) NumVars() int { return len(p.vars) }

// SetObjective sets the objective expression. The expression is copied,
// so later changes to e do not affect the problem.
func (p *Problem) SetObjective(e *Expr) error {
	if err := p.checkOwned(e); err != nil {
		return errors.Wrap(err, "objective")
	}
	p.objective = e.clone()
	return nil
}

// Objective returns the objective expression, or nil if none was set.
func (p *Problem) Objective() *Expr {
	return p.objective
}

// AddConstraint adds a labeled constraint expr rel rhs. Any constant in
// the expression is folded into the right-hand side, so the stored
// constraint expression is a pure sum of terms.
func (p *Problem) AddConstraint(name string, e *Expr, rel Rel, rhs float64) (*Constraint, error) {
	if err := p.checkOwned(e); err != nil {
		return nil, errors.Wrapf(err, "constraint %s", name)
	}
	if name == "" {
		name = fmt.Sprintf("c%d", len(p.constrs)+1)
	}
	c := &Constraint{
		Name: name,
		Expr: e.clone(),
		Rel:  rel,
		RHS:  rhs - e.Constant,
	}
	c.Expr.Constant = 0
	p.constrs = append(p.constrs, c)
	return c, nil
}

// Constraints returns the problem's constraints in declaration order.
// The returned slice must not be modified.
func (p *Problem) Constraints() []*Constraint {
	return p.constrs
}

// NumConstraints returns the number of constraints in the problem.
func (p *Problem) NumConstraints() int { return len(p.constrs) }

// checkOwned verifies that every variable in e belongs to this problem.
func (p *Problem) checkOwned(e *Expr) error {
	for _, t := range e.Terms {
		if p.byName[t.Var.Name] != t.Var {
			return errors.Errorf("variable %s does not belong to problem %s", t.Var.Name, p.name)
		}
	}
	return nil
}

// SetSolution records the terminal status of a solve and, for statuses
// that carry a solution, the value of each variable in declaration
// order. For statuses without a solution, values must be nil and every
// variable value becomes undefined. Solver backends call this once per
// solve; user code normally has no reason to.
func (p *Problem) SetSolution(status Status, values []float64) error {
	if status.HasSolution() {
		if len(values) != len(p.vars) {
			return errors.Errorf("got %d solution values for %d variables", len(values), len(p.vars))
		}
		for i, v := range p.vars {
			v.setValue(values[i])
		}
		obj, err := p.evaluateObjective()
		if err != nil {
			return err
		}
		p.objValue = obj
		p.hasObjVal = true
	} else {
		if values != nil {
			return errors.Errorf("status %s does not carry solution values", status)
		}
		for _, v := range p.vars {
			v.clearValue()
		}
		p.objValue = 0
		p.hasObjVal = false
	}
	p.status = status
	return nil
}

// ObjectiveValue returns the objective evaluated at the solution. It is
// derived by substituting the solution values into the objective
// expression, not read from the solver. It returns an error if the
// problem has no solution.
func (p *Problem) ObjectiveValue() (float64, error) {
	if !p.hasObjVal {
		return 0, errors.Errorf("problem %s has status %s, no objective value", p.name, p.status)
	}
	return p.objValue, nil
}

func (p *Problem) evaluateObjective() (float64, error) {
	if p.objective == nil {
		return 0, nil
	}
	return p.objective.Evaluate()
}

// WriteSolution writes a plain-text report of the solve outcome: the
// status, each variable's name and value in declaration order, and the
// objective value, in that order. For statuses without a solution only
// the status line is written.
func (p *Problem) WriteSolution(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Status: %s\n", p.status); err != nil {
		return err
	}
	if !p.status.HasSolution() {
		return nil
	}
	for _, v := range p.vars {
		if _, err := fmt.Fprintf(w, "%s = %g\n", v.Name, v.Value()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Objective = %g\n", p.objValue)
	return err
}

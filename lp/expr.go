package lp

import "github.com/pkg/errors"

// Term is a single coefficient-variable product in a linear expression.
type Term struct {
	Coef float64
	Var  *Variable
}

// Expr is a linear expression: an ordered sum of terms plus a constant.
// Adding a variable that is already present merges the coefficients in
// place, so an expression holds at most one term per variable.
type Expr struct {
	Terms    []Term
	Constant float64
}

// NewExpr returns an empty linear expression.
func NewExpr() *Expr {
	return &Expr{}
}

// Add appends coef*v to the expression and returns the expression for
// chaining. Zero coefficients are kept out; adding to a variable already
// in the expression accumulates into the existing term.
func (e *Expr) Add(coef float64, v *Variable) *Expr {
	if coef == 0 {
		return e
	}
	for i := range e.Terms {
		if e.Terms[i].Var == v {
			e.Terms[i].Coef += coef
			if e.Terms[i].Coef == 0 {
				e.Terms = append(e.Terms[:i], e.Terms[i+1:]...)
			}
			return e
		}
	}
	e.Terms = append(e.Terms, Term{Coef: coef, Var: v})
	return e
}

// AddConstant adds a constant to the expression and returns the
// expression for chaining.
func (e *Expr) AddConstant(c float64) *Expr {
	e.Constant += c
	return e
}

// Evaluate substitutes the solution value of every variable into the
// expression. It returns an error if any variable has no defined value.
func (e *Expr) Evaluate() (float64, error) {
	total := e.Constant
	for _, t := range e.Terms {
		if !t.Var.HasValue() {
			return 0, errors.Errorf("variable %s has no solution value", t.Var.Name)
		}
		total += t.Coef * t.Var.Value()
	}
	return total, nil
}

func (e *Expr) clone() *Expr {
	c := &Expr{Constant: e.Constant}
	c.Terms = append(c.Terms, e.Terms...)
	return c
}

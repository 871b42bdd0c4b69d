package lp

// Constraint is a labeled linear constraint: Expr Rel RHS.
// Constraints are normalized at construction so that the expression
// carries no constant; any constant is folded into the right-hand side.
type Constraint struct {
	Name string
	Expr *Expr
	Rel  Rel
	RHS  float64
}

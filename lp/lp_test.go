package lp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVariableValidation(t *testing.T) {
	prob := NewProblem("bad", Minimize)

	_, err := prob.AddVariable("", 0, 1, Continuous)
	assert.Error(t, err, "empty name must be rejected")

	_, err = prob.AddContinuous("x", 0, 10)
	require.NoError(t, err)
	_, err = prob.AddContinuous("x", 0, 5)
	assert.Error(t, err, "duplicate name must be rejected")

	_, err = prob.AddContinuous("y", 3, 1)
	assert.Error(t, err, "lower > upper must be rejected")
}

func TestExprMergesDuplicates(t *testing.T) {
	prob := NewProblem("merge", Minimize)
	x, err := prob.AddContinuous("x", 0, Inf())
	require.NoError(t, err)
	y, err := prob.AddContinuous("y", 0, Inf())
	require.NoError(t, err)

	e := NewExpr().Add(2, x).Add(1, y).Add(3, x)
	require.Len(t, e.Terms, 2)
	assert.Equal(t, 5.0, e.Terms[0].Coef)
	assert.Same(t, x, e.Terms[0].Var)

	// Cancelling a term removes it entirely.
	e.Add(-1, y)
	require.Len(t, e.Terms, 1)
	assert.Same(t, x, e.Terms[0].Var)

	// Zero coefficients are dropped on entry.
	e.Add(0, y)
	assert.Len(t, e.Terms, 1)
}

func TestConstraintFoldsConstant(t *testing.T) {
	prob := NewProblem("fold", Minimize)
	x, err := prob.AddContinuous("x", 0, Inf())
	require.NoError(t, err)

	c, err := prob.AddConstraint("cap", NewExpr().Add(2, x).AddConstant(5), LessEq, 20)
	require.NoError(t, err)
	assert.Equal(t, 15.0, c.RHS)
	assert.Equal(t, 0.0, c.Expr.Constant)
}

func TestForeignVariableRejected(t *testing.T) {
	p1 := NewProblem("one", Minimize)
	p2 := NewProblem("two", Minimize)
	x, err := p1.AddContinuous("x", 0, 1)
	require.NoError(t, err)

	assert.Error(t, p2.SetObjective(NewExpr().Add(1, x)))
	_, err = p2.AddConstraint("c", NewExpr().Add(1, x), LessEq, 1)
	assert.Error(t, err)
}

func TestUnnamedConstraintGetsLabel(t *testing.T) {
	prob := NewProblem("label", Minimize)
	x, err := prob.AddContinuous("x", 0, 1)
	require.NoError(t, err)

	c, err := prob.AddConstraint("", NewExpr().Add(1, x), LessEq, 1)
	require.NoError(t, err)
	assert.Equal(t, "c1", c.Name)
}

func TestObjectiveIsCopied(t *testing.T) {
	prob := NewProblem("copy", Maximize)
	x, err := prob.AddContinuous("x", 0, 1)
	require.NoError(t, err)

	e := NewExpr().Add(2, x)
	require.NoError(t, prob.SetObjective(e))
	e.Add(5, x)

	assert.Equal(t, 2.0, prob.Objective().Terms[0].Coef)
}

func TestSolutionLifecycle(t *testing.T) {
	prob := NewProblem("production", Maximize)
	x, err := prob.AddInteger("x", 0, Inf())
	require.NoError(t, err)
	y, err := prob.AddInteger("y", 0, Inf())
	require.NoError(t, err)
	require.NoError(t, prob.SetObjective(NewExpr().Add(25, x).Add(20, y)))

	require.Equal(t, NotSolved, prob.Status())
	assert.False(t, x.HasValue())
	_, err = prob.ObjectiveValue()
	assert.Error(t, err, "objective is undefined before solving")

	require.NoError(t, prob.SetSolution(Optimal, []float64{3, 4}))
	assert.Equal(t, Optimal, prob.Status())
	assert.Equal(t, 3.0, x.Value())
	assert.Equal(t, 4.0, y.Value())

	obj, err := prob.ObjectiveValue()
	require.NoError(t, err)
	assert.Equal(t, 155.0, obj)

	// A later solve of the same model can report infeasibility, which
	// clears the values again.
	require.NoError(t, prob.SetSolution(Infeasible, nil))
	assert.False(t, x.HasValue())
	_, err = prob.ObjectiveValue()
	assert.Error(t, err)
}

func TestSetSolutionValidation(t *testing.T) {
	prob := NewProblem("mismatch", Minimize)
	_, err := prob.AddContinuous("x", 0, 1)
	require.NoError(t, err)

	assert.Error(t, prob.SetSolution(Optimal, []float64{1, 2}), "value count must match variables")
	assert.Error(t, prob.SetSolution(Infeasible, []float64{1}), "infeasible carries no values")
}

func TestWriteSolution(t *testing.T) {
	prob := NewProblem("production", Maximize)
	x, err := prob.AddInteger("x", 0, Inf())
	require.NoError(t, err)
	y, err := prob.AddInteger("y", 0, Inf())
	require.NoError(t, err)
	require.NoError(t, prob.SetObjective(NewExpr().Add(25, x).Add(20, y)))
	require.NoError(t, prob.SetSolution(Optimal, []float64{3, 4}))

	var buf bytes.Buffer
	require.NoError(t, prob.WriteSolution(&buf))
	assert.Equal(t, "Status: Optimal\nx = 3\ny = 4\nObjective = 155\n", buf.String())
}

func TestWriteSolutionNoSolution(t *testing.T) {
	prob := NewProblem("stuck", Minimize)
	_, err := prob.AddContinuous("x", 0, 1)
	require.NoError(t, err)
	require.NoError(t, prob.SetSolution(Infeasible, nil))

	var buf bytes.Buffer
	require.NoError(t, prob.WriteSolution(&buf))
	assert.Equal(t, "Status: Infeasible\n", buf.String())
}

func TestEvaluateWithoutValues(t *testing.T) {
	prob := NewProblem("unsolved", Minimize)
	x, err := prob.AddContinuous("x", 0, 1)
	require.NoError(t, err)

	_, err = NewExpr().Add(1, x).Evaluate()
	assert.Error(t, err)
}

package highs

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// TestLP tests a basic linear programming problem at the matrix level.
//
//	Min    f  =  x_0 +  x_1 + 3
//	s.t.                x_1 <= 7
//	       5 <=  x_0 + 2x_1 <= 15
//	       6 <= 3x_0 + 2x_1
//	0 <= x_0 <= 4; 1 <= x_1
func TestLP(t *testing.T) {
	model := Model{
		Offset:   3.0,
		ColCosts: []float64{1.0, 1.0},
		ColLower: []float64{0.0, 1.0},
		ColUpper: []float64{4.0, 1e30},
		ConstMatrix: []Nonzero{
			{0, 1, 1.0},
			{1, 0, 1.0},
			{1, 1, 2.0},
			{2, 0, 3.0},
			{2, 1, 2.0},
		},
		RowLower: []float64{-1e30, 5.0, 6.0},
		RowUpper: []float64{7.0, 15.0, 1e30},
	}

	sol, err := model.Solve(WithOutput(false))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.Status)
	}

	if !almostEqual(sol.ColValues[0], 0.5, 0.01) {
		t.Errorf("x0 = %f, expected 0.5", sol.ColValues[0])
	}
	if !almostEqual(sol.ColValues[1], 2.25, 0.01) {
		t.Errorf("x1 = %f, expected 2.25", sol.ColValues[1])
	}
	if !almostEqual(sol.Objective, 5.75, 0.01) {
		t.Errorf("Objective = %f, expected 5.75", sol.Objective)
	}
}

// TestMIP tests the same model with integer variables.
func TestMIP(t *testing.T) {
	model := Model{
		Maximize: true,
		Offset:   3.0,
		ColCosts: []float64{1.0, 1.0},
		ColLower: []float64{0.0, 1.0},
		ColUpper: []float64{4.0, 1e30},
		ConstMatrix: []Nonzero{
			{0, 1, 1.0},
			{1, 0, 1.0},
			{1, 1, 2.0},
			{2, 0, 3.0},
			{2, 1, 2.0},
		},
		RowLower: []float64{-1e30, 5.0, 6.0},
		RowUpper: []float64{7.0, 15.0, 1e30},
		VarTypes: []VariableType{Integer, Integer},
	}

	sol, err := model.Solve(WithOutput(false), WithThreads(1), WithMIPRelGap(0), WithPresolve("choose"))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.Status)
	}

	if !almostEqual(sol.ColValues[0], 4.0, 0.01) {
		t.Errorf("x0 = %f, expected 4.0", sol.ColValues[0])
	}
	if !almostEqual(sol.ColValues[1], 5.0, 0.01) {
		t.Errorf("x1 = %f, expected 5.0", sol.ColValues[1])
	}
	if !almostEqual(sol.Objective, 12.0, 0.01) {
		t.Errorf("Objective = %f, expected 12.0", sol.Objective)
	}
}

// TestAddDenseRow tests the AddDenseRow convenience method.
func TestAddDenseRow(t *testing.T) {
	model := Model{
		Offset:   3.0,
		ColCosts: []float64{1.0, 1.0},
		ColLower: []float64{0.0, 1.0},
		ColUpper: []float64{4.0, 1.0e30},
	}
	model.AddDenseRow(-1.0e30, []float64{0.0, 1.0}, 7.0)
	model.AddDenseRow(5.0, []float64{1.0, 2.0}, 15.0)
	model.AddDenseRow(6.0, []float64{3.0, 2.0}, 1.0e30)

	sol, err := model.Solve(WithOutput(false))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.Status)
	}

	if !almostEqual(sol.ColValues[0], 0.5, 0.01) {
		t.Errorf("x0 = %f, expected 0.5", sol.ColValues[0])
	}
	if !almostEqual(sol.ColValues[1], 2.25, 0.01) {
		t.Errorf("x1 = %f, expected 2.25", sol.ColValues[1])
	}
}

// TestLowLevelAPI tests the low-level solver API.
func TestLowLevelAPI(t *testing.T) {
	solver, err := NewSolver()
	if err != nil {
		t.Fatalf("NewSolver failed: %v", err)
	}
	defer solver.Close()

	if err := solver.SetBoolOption("output_flag", false); err != nil {
		t.Fatalf("SetBoolOption failed: %v", err)
	}
	if got, err := solver.GetBoolOption("output_flag"); err != nil || got {
		t.Fatalf("GetBoolOption = %v, %v; expected false", got, err)
	}

	if err := solver.SetFloatOption("time_limit", 30.0); err != nil {
		t.Fatalf("SetFloatOption failed: %v", err)
	}
	if got, err := solver.GetFloatOption("time_limit"); err != nil || !almostEqual(got, 30.0, 1e-9) {
		t.Fatalf("GetFloatOption = %v, %v; expected 30.0", got, err)
	}

	// Add variables: 0 <= x0 <= 10, 0 <= x1 <= 10
	if err := solver.AddVars([]float64{0.0, 0.0}, []float64{10.0, 10.0}); err != nil {
		t.Fatalf("AddVars failed: %v", err)
	}

	// Set objective: minimize x0 + x1
	if err := solver.SetColCosts([]float64{1.0, 1.0}); err != nil {
		t.Fatalf("SetColCosts failed: %v", err)
	}

	// Add constraint: 5 <= x0 + 2*x1 <= 15
	if err := solver.AddRow(5.0, 15.0, []int{0, 1}, []float64{1.0, 2.0}); err != nil {
		t.Fatalf("AddRow failed: %v", err)
	}

	if solver.NumCol() != 2 || solver.NumRow() != 1 || solver.NumNonzero() != 2 {
		t.Fatalf("unexpected model dimensions: %d cols, %d rows, %d nonzeros",
			solver.NumCol(), solver.NumRow(), solver.NumNonzero())
	}

	sol, err := solver.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.Status)
	}

	// Minimum: x0 + 2*x1 = 5 (binding), minimize x0 + x1
	// Substituting x0 = 5 - 2*x1, minimize 5 - x1
	// Maximum x1 = 2.5 (from x0 >= 0), so x0 = 0, x1 = 2.5, objective = 2.5
	if !almostEqual(sol.ColValues[0], 0.0, 0.01) {
		t.Errorf("x0 = %f, expected 0.0", sol.ColValues[0])
	}
	if !almostEqual(sol.ColValues[1], 2.5, 0.01) {
		t.Errorf("x1 = %f, expected 2.5", sol.ColValues[1])
	}
	if !almostEqual(sol.Objective, 2.5, 0.01) {
		t.Errorf("Objective = %f, expected 2.5", sol.Objective)
	}

	if err := solver.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if solver.NumCol() != 0 {
		t.Errorf("NumCol after Clear = %d, expected 0", solver.NumCol())
	}
}

// TestLowLevelMIP marks columns integer through the low-level API.
func TestLowLevelMIP(t *testing.T) {
	solver, err := NewSolver()
	if err != nil {
		t.Fatalf("NewSolver failed: %v", err)
	}
	defer solver.Close()

	if err := solver.SetBoolOption("output_flag", false); err != nil {
		t.Fatalf("SetBoolOption failed: %v", err)
	}
	if err := solver.AddVars([]float64{0.0, 0.0}, []float64{10.0, 10.0}); err != nil {
		t.Fatalf("AddVars failed: %v", err)
	}
	if err := solver.SetColCosts([]float64{1.0, 1.0}); err != nil {
		t.Fatalf("SetColCosts failed: %v", err)
	}
	if err := solver.AddRow(5.0, 15.0, []int{0, 1}, []float64{1.0, 2.0}); err != nil {
		t.Fatalf("AddRow failed: %v", err)
	}
	if err := solver.SetIntegrality([]VariableType{Integer, Integer}); err != nil {
		t.Fatalf("SetIntegrality failed: %v", err)
	}

	sol, err := solver.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal, got %s", sol.Status)
	}
	// The continuous optimum (0, 2.5) is cut off; the best integer
	// point costs 3.
	if !almostEqual(sol.Objective, 3.0, 0.01) {
		t.Errorf("Objective = %f, expected 3.0", sol.Objective)
	}
}

// TestEmptyModel tests that an empty model returns optimal.
func TestEmptyModel(t *testing.T) {
	model := Model{}

	sol, err := model.Solve(WithOutput(false))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !sol.IsOptimal() {
		t.Fatalf("Expected optimal for empty model, got %s", sol.Status)
	}
}

// TestInfeasibleModel tests detection of infeasible models.
func TestInfeasibleModel(t *testing.T) {
	model := Model{
		ColCosts: []float64{1.0},
		ColLower: []float64{0.0},
		ColUpper: []float64{10.0},
	}
	// x >= 5
	model.AddGeRow([]float64{1.0}, 5.0)
	// x <= 3
	model.AddLeRow([]float64{1.0}, 3.0)

	sol, err := model.Solve(WithOutput(false))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !sol.IsInfeasible() {
		t.Errorf("Expected infeasible, got %s", sol.Status)
	}
}

func TestSolverInfinity(t *testing.T) {
	solver, err := NewSolver()
	if err != nil {
		t.Fatalf("NewSolver failed: %v", err)
	}
	defer solver.Close()

	inf := solver.Infinity()
	if inf <= 0 || math.IsNaN(inf) {
		t.Errorf("Invalid infinity value: %f", inf)
	}
}

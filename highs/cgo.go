//go:build (linux || darwin) && (amd64 || arm64)

// Package highs solves lp.Problem models with the HiGHS optimization
// solver.
//
// HiGHS is a high-performance solver for linear programming (LP) and
// mixed-integer programming (MIP) problems. This package links against
// the system HiGHS library through its C API.
//
// Most callers use the high-level entry point:
//
//	status, err := highs.Solve(prob, highs.WithTimeLimit(60))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if status == lp.Optimal {
//		fmt.Println(prob.Variable("x").Value())
//	}
//
// The low-level Solver type exposes the underlying HiGHS instance for
// callers that need direct control over options and model loading.
package highs

/*
#cgo pkg-config: highs

#include <stdlib.h>
#include <stdint.h>
#include "interfaces/highs_c_api.h"
*/
import "C"
import (
	"fmt"
	"runtime"
	"unsafe"
)

// HighsInt is the integer type used by HiGHS (matches C's HighsInt).
type HighsInt = C.HighsInt

// ----------------------------------------------------------------------------
// Types
// ----------------------------------------------------------------------------

// VariableType specifies whether a column is continuous or integer.
type VariableType int

const (
	// Continuous indicates a continuous column (default).
	Continuous VariableType = iota
	// Integer indicates an integer column.
	Integer
)

// String returns a human-readable representation of the variable type.
func (v VariableType) String() string {
	if v == Integer {
		return "Integer"
	}
	return "Continuous"
}

func (v VariableType) toC() C.HighsInt {
	if v == Integer {
		return C.kHighsVarTypeInteger
	}
	return C.kHighsVarTypeContinuous
}

// Status represents the result status of a HiGHS operation.
type Status int

const (
	// StatusError indicates the operation failed with an error.
	StatusError Status = -1
	// StatusOK indicates the operation succeeded.
	StatusOK Status = 0
	// StatusWarning indicates the operation succeeded with warnings.
	StatusWarning Status = 1
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusError:
		return "Error"
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "Warning"
	default:
		return "Unknown"
	}
}

// ModelStatus represents the status of a solved model as reported by
// HiGHS.
type ModelStatus int

const (
	// ModelStatusNotSet indicates the model status has not been set.
	ModelStatusNotSet ModelStatus = iota
	// ModelStatusLoadError indicates an error loading the model.
	ModelStatusLoadError
	// ModelStatusModelError indicates an error in the model.
	ModelStatusModelError
	// ModelStatusPresolveError indicates an error during presolve.
	ModelStatusPresolveError
	// ModelStatusSolveError indicates an error during solve.
	ModelStatusSolveError
	// ModelStatusPostsolveError indicates an error during postsolve.
	ModelStatusPostsolveError
	// ModelStatusModelEmpty indicates the model is empty.
	ModelStatusModelEmpty
	// ModelStatusOptimal indicates an optimal solution was found.
	ModelStatusOptimal
	// ModelStatusInfeasible indicates the model is infeasible.
	ModelStatusInfeasible
	// ModelStatusUnboundedOrInfeasible indicates the model is unbounded or infeasible.
	ModelStatusUnboundedOrInfeasible
	// ModelStatusUnbounded indicates the model is unbounded.
	ModelStatusUnbounded
	// ModelStatusObjectiveBound indicates the objective bound was reached.
	ModelStatusObjectiveBound
	// ModelStatusObjectiveTarget indicates the objective target was reached.
	ModelStatusObjectiveTarget
	// ModelStatusTimeLimit indicates the time limit was reached.
	ModelStatusTimeLimit
	// ModelStatusIterationLimit indicates the iteration limit was reached.
	ModelStatusIterationLimit
	// ModelStatusUnknown indicates an unknown status.
	ModelStatusUnknown
)

// String returns a human-readable representation of the model status.
func (s ModelStatus) String() string {
	names := []string{
		"NotSet", "LoadError", "ModelError", "PresolveError",
		"SolveError", "PostsolveError", "ModelEmpty", "Optimal",
		"Infeasible", "UnboundedOrInfeasible", "Unbounded",
		"ObjectiveBound", "ObjectiveTarget", "TimeLimit",
		"IterationLimit", "Unknown",
	}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsOptimal returns true if the model was solved to optimality.
func (s ModelStatus) IsOptimal() bool {
	return s == ModelStatusOptimal
}

// HasSolution returns true if the terminal status carries a valid
// primal solution.
func (s ModelStatus) HasSolution() bool {
	return s == ModelStatusOptimal ||
		s == ModelStatusObjectiveBound ||
		s == ModelStatusObjectiveTarget ||
		s == ModelStatusTimeLimit ||
		s == ModelStatusIterationLimit
}

func modelStatusFromC(status C.HighsInt) ModelStatus {
	switch status {
	case C.kHighsModelStatusNotset:
		return ModelStatusNotSet
	case C.kHighsModelStatusLoadError:
		return ModelStatusLoadError
	case C.kHighsModelStatusModelError:
		return ModelStatusModelError
	case C.kHighsModelStatusPresolveError:
		return ModelStatusPresolveError
	case C.kHighsModelStatusSolveError:
		return ModelStatusSolveError
	case C.kHighsModelStatusPostsolveError:
		return ModelStatusPostsolveError
	case C.kHighsModelStatusModelEmpty:
		return ModelStatusModelEmpty
	case C.kHighsModelStatusOptimal:
		return ModelStatusOptimal
	case C.kHighsModelStatusInfeasible:
		return ModelStatusInfeasible
	case C.kHighsModelStatusUnboundedOrInfeasible:
		return ModelStatusUnboundedOrInfeasible
	case C.kHighsModelStatusUnbounded:
		return ModelStatusUnbounded
	case C.kHighsModelStatusObjectiveBound:
		return ModelStatusObjectiveBound
	case C.kHighsModelStatusObjectiveTarget:
		return ModelStatusObjectiveTarget
	case C.kHighsModelStatusTimeLimit:
		return ModelStatusTimeLimit
	case C.kHighsModelStatusIterationLimit:
		return ModelStatusIterationLimit
	default:
		return ModelStatusUnknown
	}
}

// Nonzero represents a non-zero entry in a sparse constraint matrix.
// Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// ----------------------------------------------------------------------------
// Errors
// ----------------------------------------------------------------------------

// Error represents a HiGHS error with context about which operation failed.
type Error struct {
	Op     string // Operation that failed (e.g., "Run", "SetOption")
	Status Status // HiGHS status code
	Msg    string // Additional context
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("highs: %s failed: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("highs: %s failed with status %s", e.Op, e.Status)
}

// newError creates a new Error if status is not OK.
// Returns nil if status is OK or Warning.
func newError(op string, status Status) error {
	if status == StatusOK || status == StatusWarning {
		return nil
	}
	return &Error{Op: op, Status: status}
}

// newErrorMsg creates a new Error with an additional message.
func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Status: StatusError, Msg: msg}
}

// ----------------------------------------------------------------------------
// Solver (Low-Level API)
// ----------------------------------------------------------------------------

// Solver provides low-level access to a HiGHS instance. Solve uses it
// internally; direct use is only needed for fine-grained control.
//
// Always call Close() when done to release resources:
//
//	solver, _ := NewSolver()
//	defer solver.Close()
type Solver struct {
	ptr unsafe.Pointer
}

// NewSolver creates a new HiGHS solver instance.
// Returns an error if the solver could not be created.
//
// The solver must be closed with Close() when no longer needed.
func NewSolver() (*Solver, error) {
	ptr := C.Highs_create()
	if ptr == nil {
		return nil, newErrorMsg("NewSolver", "failed to create HiGHS instance")
	}

	s := &Solver{ptr: ptr}
	runtime.SetFinalizer(s, (*Solver).Close)
	return s, nil
}

// Close releases the resources held by the solver.
// It is safe to call Close multiple times.
func (s *Solver) Close() {
	if s.ptr != nil {
		C.Highs_destroy(s.ptr)
		s.ptr = nil
	}
}

// Clear resets the solver to its initial state, clearing
// the model and resetting options to defaults.
func (s *Solver) Clear() error {
	status := Status(C.Highs_clear(s.ptr))
	return newError("Clear", status)
}

// Infinity returns the value used by HiGHS to represent infinity.
func (s *Solver) Infinity() float64 {
	return float64(C.Highs_getInfinity(s.ptr))
}

// NumCol returns the number of columns (variables) in the model.
func (s *Solver) NumCol() int {
	return int(C.Highs_getNumCol(s.ptr))
}

// NumRow returns the number of rows (constraints) in the model.
func (s *Solver) NumRow() int {
	return int(C.Highs_getNumRow(s.ptr))
}

// NumNonzero returns the number of non-zero entries in the constraint matrix.
func (s *Solver) NumNonzero() int {
	return int(C.Highs_getNumNz(s.ptr))
}

// SetBoolOption sets a boolean option.
func (s *Solver) SetBoolOption(name string, value bool) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var cVal C.HighsInt
	if value {
		cVal = 1
	}
	status := Status(C.Highs_setBoolOptionValue(s.ptr, cName, cVal))
	return newError("SetBoolOption", status)
}

// SetIntOption sets an integer option.
func (s *Solver) SetIntOption(name string, value int) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	status := Status(C.Highs_setIntOptionValue(s.ptr, cName, C.HighsInt(value)))
	return newError("SetIntOption", status)
}

// SetFloatOption sets a floating-point option.
func (s *Solver) SetFloatOption(name string, value float64) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	status := Status(C.Highs_setDoubleOptionValue(s.ptr, cName, C.double(value)))
	return newError("SetFloatOption", status)
}

// SetStringOption sets a string option.
func (s *Solver) SetStringOption(name, value string) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.CString(value)
	defer C.free(unsafe.Pointer(cVal))

	status := Status(C.Highs_setStringOptionValue(s.ptr, cName, cVal))
	return newError("SetStringOption", status)
}

// GetBoolOption returns the value of a boolean option.
func (s *Solver) GetBoolOption(name string) (bool, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var val C.HighsInt
	status := Status(C.Highs_getBoolOptionValue(s.ptr, cName, &val))
	if err := newError("GetBoolOption", status); err != nil {
		return false, err
	}
	return val != 0, nil
}

// GetFloatOption returns the value of a floating-point option.
func (s *Solver) GetFloatOption(name string) (float64, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var val C.double
	status := Status(C.Highs_getDoubleOptionValue(s.ptr, cName, &val))
	if err := newError("GetFloatOption", status); err != nil {
		return 0, err
	}
	return float64(val), nil
}

// AddVars adds columns with the given bounds.
func (s *Solver) AddVars(lower, upper []float64) error {
	if len(lower) != len(upper) {
		return newErrorMsg("AddVars", "lower and upper bounds must have same length")
	}
	if len(lower) == 0 {
		return nil
	}

	status := Status(C.Highs_addVars(s.ptr,
		C.HighsInt(len(lower)),
		(*C.double)(&lower[0]),
		(*C.double)(&upper[0])))
	return newError("AddVars", status)
}

// AddRow adds a constraint row with the given bounds and sparse
// coefficients.
func (s *Solver) AddRow(lower, upper float64, index []int, value []float64) error {
	if len(index) != len(value) {
		return newErrorMsg("AddRow", "index and value must have same length")
	}

	var pIndex *C.HighsInt
	var pValue *C.double
	if len(index) > 0 {
		cIndex := make([]C.HighsInt, len(index))
		for i, v := range index {
			cIndex[i] = C.HighsInt(v)
		}
		pIndex = &cIndex[0]
		pValue = (*C.double)(&value[0])
	}

	status := Status(C.Highs_addRow(s.ptr,
		C.double(lower), C.double(upper),
		C.HighsInt(len(index)), pIndex, pValue))
	return newError("AddRow", status)
}

// SetColCosts sets the objective coefficients for all columns.
func (s *Solver) SetColCosts(costs []float64) error {
	if len(costs) == 0 {
		return nil
	}
	status := Status(C.Highs_changeColsCostByRange(s.ptr,
		0, C.HighsInt(len(costs)-1),
		(*C.double)(&costs[0])))
	return newError("SetColCosts", status)
}

// SetIntegrality sets the variable types for all columns.
func (s *Solver) SetIntegrality(varTypes []VariableType) error {
	if len(varTypes) == 0 {
		return nil
	}
	integrality := make([]C.HighsInt, len(varTypes))
	for i, vt := range varTypes {
		integrality[i] = vt.toC()
	}
	status := Status(C.Highs_changeColsIntegralityByRange(s.ptr,
		0, C.HighsInt(len(varTypes)-1),
		&integrality[0]))
	return newError("SetIntegrality", status)
}

// PassModel passes a complete LP or MIP model to the solver in one
// call. The constraint matrix is given in compressed sparse row format.
func (s *Solver) PassModel(
	numCol, numRow int,
	colCost, colLower, colUpper []float64,
	rowLower, rowUpper []float64,
	aStart, aIndex []int,
	aValue []float64,
	integrality []VariableType,
	maximize bool,
	offset float64,
) error {
	sense := C.kHighsObjSenseMinimize
	if maximize {
		sense = C.kHighsObjSenseMaximize
	}

	cAStart := make([]C.HighsInt, len(aStart))
	for i, v := range aStart {
		cAStart[i] = C.HighsInt(v)
	}
	cAIndex := make([]C.HighsInt, len(aIndex))
	for i, v := range aIndex {
		cAIndex[i] = C.HighsInt(v)
	}

	var cIntegrality []C.HighsInt
	var pIntegrality *C.HighsInt
	if len(integrality) > 0 {
		cIntegrality = make([]C.HighsInt, len(integrality))
		for i, vt := range integrality {
			cIntegrality[i] = vt.toC()
		}
		pIntegrality = &cIntegrality[0]
	}

	var pColCost, pColLower, pColUpper *C.double
	var pRowLower, pRowUpper *C.double
	var pAStart, pAIndex *C.HighsInt
	var pAValue *C.double

	if len(colCost) > 0 {
		pColCost = (*C.double)(&colCost[0])
	}
	if len(colLower) > 0 {
		pColLower = (*C.double)(&colLower[0])
	}
	if len(colUpper) > 0 {
		pColUpper = (*C.double)(&colUpper[0])
	}
	if len(rowLower) > 0 {
		pRowLower = (*C.double)(&rowLower[0])
	}
	if len(rowUpper) > 0 {
		pRowUpper = (*C.double)(&rowUpper[0])
	}
	if len(cAStart) > 0 {
		pAStart = &cAStart[0]
	}
	if len(cAIndex) > 0 {
		pAIndex = &cAIndex[0]
	}
	if len(aValue) > 0 {
		pAValue = (*C.double)(&aValue[0])
	}

	status := Status(C.Highs_passModel(s.ptr,
		C.HighsInt(numCol), C.HighsInt(numRow),
		C.HighsInt(len(aValue)), 0, // num_nz, q_num_nz
		C.kHighsMatrixFormatRowwise, C.kHighsHessianFormatTriangular,
		C.HighsInt(sense), C.double(offset),
		pColCost, pColLower, pColUpper,
		pRowLower, pRowUpper,
		pAStart, pAIndex, pAValue,
		nil, nil, nil, // Hessian pointers
		pIntegrality))
	return newError("PassModel", status)
}

// Run solves the loaded model and returns the solution.
func (s *Solver) Run() (*Solution, error) {
	status := Status(C.Highs_run(s.ptr))
	if status == StatusError {
		return nil, newError("Run", status)
	}

	modelStatus := modelStatusFromC(C.Highs_getModelStatus(s.ptr))

	numCol := int(C.Highs_getNumCol(s.ptr))
	numRow := int(C.Highs_getNumRow(s.ptr))

	colValue := make([]float64, numCol)
	colDual := make([]float64, numCol)
	rowValue := make([]float64, numRow)
	rowDual := make([]float64, numRow)

	var pColValue, pColDual, pRowValue, pRowDual *C.double
	if numCol > 0 {
		pColValue = (*C.double)(&colValue[0])
		pColDual = (*C.double)(&colDual[0])
	}
	if numRow > 0 {
		pRowValue = (*C.double)(&rowValue[0])
		pRowDual = (*C.double)(&rowDual[0])
	}

	C.Highs_getSolution(s.ptr, pColValue, pColDual, pRowValue, pRowDual)

	objective := float64(C.Highs_getObjectiveValue(s.ptr))

	return &Solution{
		Status:    modelStatus,
		ColValues: colValue,
		ColDuals:  colDual,
		RowValues: rowValue,
		RowDuals:  rowDual,
		Objective: objective,
	}, nil
}

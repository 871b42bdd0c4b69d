package lp

// VarType specifies the domain of a decision variable.
type VarType int

const (
	// Continuous indicates a real-valued variable (default).
	Continuous VarType = iota
	// Integer indicates a variable restricted to integer values.
	Integer
)

// String returns a human-readable representation of the variable type.
func (t VarType) String() string {
	if t == Integer {
		return "Integer"
	}
	return "Continuous"
}

// Variable is a named decision variable with bounds and a domain.
// Bounds may be infinite; use Inf and NegInf. The solution value is
// undefined until a solve terminates with a status that has a solution.
type Variable struct {
	Name  string
	Lower float64
	Upper float64
	Type  VarType

	value    float64
	hasValue bool
}

// Value returns the variable's solution value. It is only meaningful
// when HasValue reports true; otherwise it returns 0.
func (v *Variable) Value() float64 {
	if !v.hasValue {
		return 0
	}
	return v.value
}

// HasValue returns true if a solve populated this variable's value.
func (v *Variable) HasValue() bool {
	return v.hasValue
}

func (v *Variable) setValue(x float64) {
	v.value = x
	v.hasValue = true
}

func (v *Variable) clearValue() {
	v.value = 0
	v.hasValue = false
}

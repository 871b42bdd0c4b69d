package lp

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// WriteLP writes the problem in the CPLEX LP text format: the problem
// name as a comment, the objective with its direction, the labeled
// constraints, variable bounds, and the list of integer variables.
// The output is deterministic and can be read back with ParseLP.
func (p *Problem) WriteLP(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if p.name != "" {
		fmt.Fprintf(bw, "\\* %s *\\\n", p.name)
	}
	fmt.Fprintf(bw, "%s\n", p.sense)

	obj := p.objective
	if obj == nil {
		obj = NewExpr()
	}
	fmt.Fprintf(bw, "obj: %s\n", formatExpr(obj))

	fmt.Fprintln(bw, "Subject To")
	for _, c := range p.constrs {
		fmt.Fprintf(bw, "%s: %s %s %s\n", c.Name, formatExpr(c.Expr), c.Rel, formatNum(c.RHS))
	}

	fmt.Fprintln(bw, "Bounds")
	for _, v := range p.vars {
		if line, ok := formatBounds(v); ok {
			fmt.Fprintln(bw, line)
		}
	}

	if p.hasIntegerVars() {
		fmt.Fprintln(bw, "Generals")
		for _, v := range p.vars {
			if v.Type == Integer {
				fmt.Fprintln(bw, v.Name)
			}
		}
	}

	fmt.Fprintln(bw, "End")
	return bw.Flush()
}

// WriteLPFile writes the problem in LP format to the named file.
func (p *Problem) WriteLPFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "writing LP file %s", path)
	}
	if err := p.WriteLP(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing LP file %s", path)
	}
	return f.Close()
}

func (p *Problem) hasIntegerVars() bool {
	for _, v := range p.vars {
		if v.Type == Integer {
			return true
		}
	}
	return false
}

// formatExpr renders a linear expression with space-separated signs,
// e.g. "25 x + 20 y" or "- x + 0.5 y + 3".
func formatExpr(e *Expr) string {
	if len(e.Terms) == 0 && e.Constant == 0 {
		return "0"
	}

	out := ""
	for i, t := range e.Terms {
		coef := t.Coef
		if i == 0 {
			if coef < 0 {
				out += "- "
				coef = -coef
			}
		} else {
			if coef < 0 {
				out += " - "
				coef = -coef
			} else {
				out += " + "
			}
		}
		if coef != 1 {
			out += formatNum(coef) + " "
		}
		out += t.Var.Name
	}

	if e.Constant != 0 {
		c := e.Constant
		switch {
		case len(e.Terms) == 0 && c < 0:
			out += "- "
			c = -c
		case len(e.Terms) > 0 && c < 0:
			out += " - "
			c = -c
		case len(e.Terms) > 0:
			out += " + "
		}
		out += formatNum(c)
	}
	return out
}

// formatBounds renders the Bounds line for a variable, or ok=false when
// the variable has the LP-format default bounds 0 <= x < +inf.
func formatBounds(v *Variable) (string, bool) {
	lo, up := v.Lower, v.Upper
	negInf := math.IsInf(lo, -1)
	posInf := math.IsInf(up, 1)

	switch {
	case lo == 0 && posInf:
		return "", false
	case negInf && posInf:
		return fmt.Sprintf("%s free", v.Name), true
	case lo == up:
		return fmt.Sprintf("%s = %s", v.Name, formatNum(lo)), true
	case negInf:
		return fmt.Sprintf("-inf <= %s <= %s", v.Name, formatNum(up)), true
	case posInf:
		return fmt.Sprintf("%s >= %s", v.Name, formatNum(lo)), true
	case lo == 0:
		return fmt.Sprintf("%s <= %s", v.Name, formatNum(up)), true
	default:
		return fmt.Sprintf("%s <= %s <= %s", formatNum(lo), v.Name, formatNum(up)), true
	}
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

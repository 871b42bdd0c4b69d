package lp

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseLP reads a problem in the CPLEX LP text format, the dialect
// written by WriteLP: an optional name comment, an objective section,
// Subject To, Bounds, Generals/Integers or Binaries, and End. Variables
// are created in order of first appearance with the LP-format default
// bounds 0 <= x < +inf; Bounds and Generals sections then adjust them.
func ParseLP(r io.Reader) (*Problem, error) {
	pr := &lpParser{
		prob: NewProblem("", Minimize),
	}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := pr.handleLine(sc.Text()); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading LP input")
	}
	if err := pr.finish(); err != nil {
		return nil, err
	}
	return pr.prob, nil
}

// ReadLPFile reads a problem in LP format from the named file.
func ReadLPFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading LP file %s", path)
	}
	defer f.Close()
	p, err := ParseLP(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading LP file %s", path)
	}
	return p, nil
}

type lpSection int

const (
	secStart lpSection = iota
	secObjective
	secConstraints
	secBounds
	secGenerals
	secBinaries
	secEnd
)

type lpParser struct {
	prob    *Problem
	section lpSection

	// objTokens and conTokens accumulate expressions that span lines.
	objTokens []string
	conTokens []string
}

func (pr *lpParser) handleLine(raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}
	if strings.HasPrefix(text, "\\") {
		// Comment line. The first one before the objective carries the
		// problem name, as written by WriteLP.
		if pr.section == secStart && pr.prob.name == "" {
			name := strings.TrimPrefix(text, "\\*")
			name = strings.TrimSuffix(name, "*\\")
			pr.prob.name = strings.TrimSpace(name)
		}
		return nil
	}

	if sec, ok := sectionKeyword(text); ok {
		return pr.enterSection(sec, text)
	}

	switch pr.section {
	case secStart:
		return errors.Errorf("expected objective section, got %q", text)
	case secObjective:
		pr.objTokens = append(pr.objTokens, strings.Fields(text)...)
		return nil
	case secConstraints:
		pr.conTokens = append(pr.conTokens, strings.Fields(text)...)
		return pr.flushConstraint(false)
	case secBounds:
		return pr.parseBoundsLine(strings.Fields(text))
	case secGenerals:
		for _, name := range strings.Fields(text) {
			pr.getVar(name).Type = Integer
		}
		return nil
	case secBinaries:
		for _, name := range strings.Fields(text) {
			v := pr.getVar(name)
			v.Type = Integer
			v.Lower, v.Upper = 0, 1
		}
		return nil
	case secEnd:
		return errors.Errorf("unexpected content after End: %q", text)
	}
	return nil
}

// sectionKeyword recognizes LP-format section headers.
func sectionKeyword(line string) (lpSection, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "maximize", "maximise", "max":
		return secObjective, true
	case "minimize", "minimise", "min":
		return secObjective, true
	case "subject to", "such that", "st", "s.t.":
		return secConstraints, true
	case "bounds", "bound":
		return secBounds, true
	case "generals", "general", "gen", "integers", "integer":
		return secGenerals, true
	case "binaries", "binary", "bin":
		return secBinaries, true
	case "end":
		return secEnd, true
	}
	return 0, false
}

func (pr *lpParser) enterSection(sec lpSection, header string) error {
	// Leaving a section finalizes anything accumulated in it.
	switch pr.section {
	case secObjective:
		if err := pr.finishObjective(); err != nil {
			return err
		}
	case secConstraints:
		if err := pr.flushConstraint(true); err != nil {
			return err
		}
	}

	if sec == secObjective {
		if pr.section != secStart {
			return errors.Errorf("unexpected objective section %q", header)
		}
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "maximize", "maximise", "max":
			pr.prob.sense = Maximize
		default:
			pr.prob.sense = Minimize
		}
	}
	pr.section = sec
	return nil
}

func (pr *lpParser) finish() error {
	switch pr.section {
	case secObjective:
		return pr.finishObjective()
	case secConstraints:
		return pr.flushConstraint(true)
	}
	return nil
}

func (pr *lpParser) finishObjective() error {
	tokens := pr.objTokens
	pr.objTokens = nil
	if len(tokens) > 0 && strings.HasSuffix(tokens[0], ":") {
		tokens = tokens[1:]
	}
	e, err := pr.parseExpr(tokens)
	if err != nil {
		return errors.Wrap(err, "objective")
	}
	return pr.prob.SetObjective(e)
}

// flushConstraint finalizes accumulated constraint tokens whenever a
// relation and its right-hand side are present. With force set, leftover
// tokens are an error.
func (pr *lpParser) flushConstraint(force bool) error {
	for {
		rel := -1
		for i, tok := range pr.conTokens {
			if _, ok := parseRel(tok); ok {
				rel = i
				break
			}
		}
		if rel < 0 || rel+1 >= len(pr.conTokens) {
			if force && len(pr.conTokens) > 0 {
				return errors.Errorf("incomplete constraint %q", strings.Join(pr.conTokens, " "))
			}
			return nil
		}

		tokens := pr.conTokens[:rel+2]
		pr.conTokens = pr.conTokens[rel+2:]

		name := ""
		if strings.HasSuffix(tokens[0], ":") {
			name = strings.TrimSuffix(tokens[0], ":")
			tokens = tokens[1:]
			rel--
		}
		r, _ := parseRel(tokens[rel])
		rhs, err := parseNumber(tokens[rel+1])
		if err != nil {
			return errors.Wrapf(err, "constraint %s right-hand side", name)
		}
		e, err := pr.parseExpr(tokens[:rel])
		if err != nil {
			return errors.Wrapf(err, "constraint %s", name)
		}
		if _, err := pr.prob.AddConstraint(name, e, r, rhs); err != nil {
			return err
		}
	}
}

func (pr *lpParser) parseBoundsLine(tokens []string) error {
	if len(tokens) == 2 && strings.EqualFold(tokens[1], "free") {
		v := pr.getVar(tokens[0])
		v.Lower, v.Upper = math.Inf(-1), math.Inf(1)
		return nil
	}

	// A one-sided bound keeps the other side's existing value: setting
	// only an upper bound leaves the default lower bound of 0 in place.
	var v *Variable
	var lo, up float64
	var setLo, setUp bool

	switch len(tokens) {
	case 3:
		rel, ok := parseRel(tokens[1])
		if !ok {
			return errors.Errorf("malformed bounds line %q", strings.Join(tokens, " "))
		}
		if n, err := parseNumber(tokens[0]); err == nil {
			// number rel var
			v = pr.getVar(tokens[2])
			switch rel {
			case LessEq:
				lo, setLo = n, true
			case GreaterEq:
				up, setUp = n, true
			case Equal:
				lo, up, setLo, setUp = n, n, true, true
			}
		} else {
			// var rel number
			n, err := parseNumber(tokens[2])
			if err != nil {
				return errors.Wrapf(err, "bounds for %s", tokens[0])
			}
			v = pr.getVar(tokens[0])
			switch rel {
			case LessEq:
				up, setUp = n, true
			case GreaterEq:
				lo, setLo = n, true
			case Equal:
				lo, up, setLo, setUp = n, n, true, true
			}
		}
	case 5:
		// lower rel var rel upper
		r1, ok1 := parseRel(tokens[1])
		r2, ok2 := parseRel(tokens[3])
		if !ok1 || !ok2 || r1 != r2 || r1 == Equal {
			return errors.Errorf("malformed bounds line %q", strings.Join(tokens, " "))
		}
		a, err := parseNumber(tokens[0])
		if err != nil {
			return errors.Wrapf(err, "bounds for %s", tokens[2])
		}
		b, err := parseNumber(tokens[4])
		if err != nil {
			return errors.Wrapf(err, "bounds for %s", tokens[2])
		}
		v = pr.getVar(tokens[2])
		if r1 == LessEq {
			lo, up = a, b
		} else {
			lo, up = b, a
		}
		setLo, setUp = true, true
	default:
		return errors.Errorf("malformed bounds line %q", strings.Join(tokens, " "))
	}

	if setLo {
		v.Lower = lo
	}
	if setUp {
		v.Upper = up
	}
	if v.Lower > v.Upper {
		return errors.Errorf("variable %s: lower bound %g exceeds upper bound %g", v.Name, v.Lower, v.Upper)
	}
	return nil
}

// parseExpr parses a linear expression from space-separated tokens:
// signs, numeric coefficients, constants, and variable names.
func (pr *lpParser) parseExpr(tokens []string) (*Expr, error) {
	e := NewExpr()
	sign := 1.0
	var pending *float64

	flushConstant := func() {
		if pending != nil {
			e.Constant += *pending
			pending = nil
		}
	}

	for _, tok := range tokens {
		switch tok {
		case "+":
			flushConstant()
			sign = 1
		case "-":
			flushConstant()
			sign = -1
		default:
			if n, err := parseNumber(tok); err == nil {
				if pending != nil {
					return nil, errors.Errorf("unexpected number %q", tok)
				}
				val := sign * n
				pending = &val
				sign = 1
				continue
			}
			if !validVarName(tok) {
				return nil, errors.Errorf("invalid token %q", tok)
			}
			coef := sign
			if pending != nil {
				coef = *pending
				pending = nil
			}
			e.Add(coef, pr.getVar(tok))
			sign = 1
		}
	}
	flushConstant()
	return e, nil
}

// getVar returns the named variable, creating it with LP-format default
// bounds on first reference.
func (pr *lpParser) getVar(name string) *Variable {
	if v := pr.prob.Variable(name); v != nil {
		return v
	}
	v, _ := pr.prob.AddContinuous(name, 0, math.Inf(1))
	return v
}

func parseRel(tok string) (Rel, bool) {
	switch tok {
	case "<=", "=<", "<":
		return LessEq, true
	case ">=", "=>", ">":
		return GreaterEq, true
	case "=":
		return Equal, true
	}
	return 0, false
}

func parseNumber(tok string) (float64, error) {
	return strconv.ParseFloat(tok, 64)
}

// validVarName rejects tokens that cannot be variable names, such as
// stray punctuation. Names must start with a letter or underscore.
func validVarName(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

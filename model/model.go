package model

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/csolve/csp"
)

// Sentinel errors for problem parsing.
var (
	// ErrNoVariables indicates a problem without variables.
	ErrNoVariables = errors.New("model: problem defines no variables")
	// ErrEmptyDomain indicates a variable without domain values.
	ErrEmptyDomain = errors.New("model: variable domain is empty")
	// ErrUnknownScopeName indicates a constraint scope naming an
	// undefined variable.
	ErrUnknownScopeName = errors.New("model: constraint scope names unknown variable")
	// ErrConstraintForm indicates a constraint with neither or both of
	// expr and tuples.
	ErrConstraintForm = errors.New("model: constraint needs exactly one of expr or tuples")
)

// Problem is the YAML shape of a problem file.
type Problem struct {
	Name        string          `yaml:"name"`
	Variables   []VariableDef   `yaml:"variables"`
	Constraints []ConstraintDef `yaml:"constraints"`
}

// VariableDef declares one variable and its permanent domain.
type VariableDef struct {
	Name   string `yaml:"name"`
	Domain []any  `yaml:"domain"`
}

// ConstraintDef declares one constraint over an ordered scope. Expr
// and Tuples are mutually exclusive; an omitted Name defaults to
// "c<index>".
type ConstraintDef struct {
	Name   string   `yaml:"name"`
	Scope  []string `yaml:"scope"`
	Expr   string   `yaml:"expr"`
	Tuples [][]any  `yaml:"tuples"`
}

// Load reads and parses a problem file.
func Load(path string) (*csp.CSP, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse builds a CSP from YAML problem data.
func Parse(data []byte) (*csp.CSP, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("model: parse problem: %w", err)
	}

	return Build(&p)
}

// Build compiles an in-memory Problem into a CSP.
func Build(p *Problem) (*csp.CSP, error) {
	if len(p.Variables) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoVariables, p.Name)
	}

	cs, err := csp.New(p.Name)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*csp.Variable, len(p.Variables))
	for _, vd := range p.Variables {
		if len(vd.Domain) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyDomain, vd.Name)
		}
		v := csp.NewVariable(vd.Name, normalizeAll(vd.Domain)...)
		if err = cs.AddVariable(v); err != nil {
			return nil, err
		}
		byName[vd.Name] = v
	}

	for i, cd := range p.Constraints {
		name := cd.Name
		if name == "" {
			name = fmt.Sprintf("c%d", i)
		}
		scope := make([]*csp.Variable, len(cd.Scope))
		for j, sn := range cd.Scope {
			v, ok := byName[sn]
			if !ok {
				return nil, fmt.Errorf("%w: %q in %q", ErrUnknownScopeName, sn, name)
			}
			scope[j] = v
		}

		var con *csp.Constraint
		switch {
		case cd.Expr != "" && len(cd.Tuples) == 0:
			con, err = csp.NewExprConstraint(name, scope, cd.Expr)
		case cd.Expr == "" && len(cd.Tuples) > 0:
			tuples := make([][]csp.Value, len(cd.Tuples))
			for j, row := range cd.Tuples {
				tuples[j] = normalizeAll(row)
			}
			con, err = csp.NewTableConstraint(name, scope, tuples...)
		default:
			return nil, fmt.Errorf("%w: %q", ErrConstraintForm, name)
		}
		if err != nil {
			return nil, err
		}
		if err = cs.AddConstraint(con); err != nil {
			return nil, err
		}
	}

	return cs, nil
}

// normalizeAll maps YAML scalars to engine Values.
func normalizeAll(vals []any) []csp.Value {
	out := make([]csp.Value, len(vals))
	for i, v := range vals {
		out[i] = normalize(v)
	}

	return out
}

// normalize folds the integer types the YAML decoder may produce into
// int, so domain values, tuple values and expression results compare
// consistently.
func normalize(v any) csp.Value {
	switch n := v.(type) {
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
		return n
	default:
		return v
	}
}

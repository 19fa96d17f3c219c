// Package rules evaluates script-driven setup adjustments as CEL
// expressions over the base character distribution.
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Registry manages the CEL environment and provides helper methods for
// evaluating distribution expressions.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with the variables every
// setup expression may reference.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("townsfolk", cel.IntType),
		cel.Variable("outsider", cel.IntType),
		cel.Variable("minion", cel.IntType),
		cel.Variable("demon", cel.IntType),
		cel.Variable("players", cel.IntType),
		cel.Variable("script", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build rules environment: %w", err)
	}
	return &Registry{env: env}, nil
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// evalInt evaluates an expression expected to produce an integer.
func (r *Registry) evalInt(expression string, context map[string]any) (int, error) {
	v, err := r.Eval(expression, context)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("expression %q produced %T, expected int", expression, v)
	}
	return int(n), nil
}

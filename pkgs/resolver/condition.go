package resolver

import (
	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/ggerr"
)

// evalCondition implements spec §4.5's condition evaluation: both sides
// expand to value sets (a choice expands to its members, anything else to
// a singleton), then CondEq/CondNeq check for a satisfying pair.
func (r *Resolver) evalCondition(cond ast.Condition, params map[string]string) (bool, error) {
	switch c := cond.(type) {
	case ast.CondEq:
		left, right, err := exprValuePair(c.Left, c.Right, params)
		if err != nil {
			return false, err
		}
		for _, l := range left {
			for _, rv := range right {
				if l == rv {
					return true, nil
				}
			}
		}
		return false, nil

	case ast.CondNeq:
		left, right, err := exprValuePair(c.Left, c.Right, params)
		if err != nil {
			return false, err
		}
		for _, l := range left {
			for _, rv := range right {
				if l != rv {
					return true, nil
				}
			}
		}
		return false, nil
	}
	return false, nil
}

func exprValuePair(left, right ast.Expression, params map[string]string) ([]string, []string, error) {
	l, err := exprValues(left, params)
	if err != nil {
		return nil, nil, err
	}
	rv, err := exprValues(right, params)
	if err != nil {
		return nil, nil, err
	}
	return l, rv, nil
}

// exprValues expands an Expression into its value set.
func exprValues(e ast.Expression, params map[string]string) ([]string, error) {
	switch expr := e.(type) {
	case ast.ExprIdent:
		v, ok := params[expr.Name]
		if !ok {
			return nil, ggerr.NewResolution(ggerr.UnknownIdentifier, "Resolver",
				"no parameter named \""+expr.Name+"\" in scope")
		}
		return []string{v}, nil

	case ast.ExprString:
		return []string{expr.Text}, nil

	case ast.ExprChoice:
		var out []string
		for _, opt := range expr.Options {
			vs, err := exprValues(opt, params)
			if err != nil {
				return nil, err
			}
			out = append(out, vs...)
		}
		return out, nil
	}
	return nil, nil
}

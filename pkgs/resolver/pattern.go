package resolver

import "github.com/aledsdavies/ggra/pkgs/ast"

// resolvePattern implements spec §4.5's pattern resolution semantics. A
// nil elems with a nil error is the documented (null, null) control-flow
// signal: "this branch is not usable", not a failure — callers propagate
// it rather than treating it as an error.
func (r *Resolver) resolvePattern(p ast.Pattern, params map[string]string) ([]ast.Element, []ast.Change, error) {
	switch pat := p.(type) {
	case ast.BNForm:
		// The parser gives an epsilon-only production (e.g. a bare <>) a
		// non-nil empty slice, but a BNForm built elsewhere may still carry
		// nil Elements, which must not be confused with the (null, null)
		// "not usable" signal below — normalize to a non-nil empty slice.
		elems := pat.Elements
		if elems == nil {
			elems = []ast.Element{}
		}
		return elems, nil, nil

	case ast.Guarded:
		ok, err := r.evalCondition(pat.Condition, params)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, nil
		}
		return r.resolvePattern(pat.Inner, params)

	case ast.Modified:
		elems, changes, err := r.resolvePattern(pat.Inner, params)
		if err != nil || elems == nil {
			return nil, nil, err
		}
		return elems, append(append([]ast.Change{}, changes...), pat.WithChanges...), nil

	case ast.Alternation:
		order := make([]int, len(pat.Alternatives))
		for i := range order {
			order[i] = i
		}
		r.Rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, idx := range order {
			elems, changes, err := r.resolvePattern(pat.Alternatives[idx], params)
			if err != nil {
				return nil, nil, err
			}
			if elems != nil {
				return elems, changes, nil
			}
		}
		return nil, nil, nil
	}
	return nil, nil, nil
}

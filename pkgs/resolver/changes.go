package resolver

import (
	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/ggerr"
	"github.com/aledsdavies/ggra/pkgs/scheduler"
)

// buildOutput implements spec §4.5's "after pattern resolution" steps:
// collect the child nonterminal names, configure their parameter slots by
// running the aggregated changes through pkgs/scheduler, then build the
// output left-to-right, resolving each child once (memoized) unless it
// was referenced eagerly.
func (r *Resolver) buildOutput(elems []ast.Element, changes []ast.Change, enclosingParams map[string]string) ([]string, error) {
	ntConfig := make(map[string]map[string]string)
	for _, el := range elems {
		if ref, ok := el.(ast.NonterminalRef); ok {
			if _, ok := ntConfig[ref.Name]; !ok {
				ntConfig[ref.Name] = make(map[string]string)
			}
		}
	}

	resolved := r.collapseChoices(changes)
	ordered := scheduler.OrderChanges(resolved, func(ch ast.Change) (string, bool) {
		nt, ok := ch.Source.(ast.SrcNonterminal)
		if !ok {
			return "", false
		}
		return nt.NtName, true
	})

	for _, ch := range ordered {
		if err := r.executeChange(ch, enclosingParams, ntConfig); err != nil {
			return nil, err
		}
	}

	memo := make(map[string][]string)
	var out []string
	for _, el := range elems {
		switch e := el.(type) {
		case ast.TerminalString:
			out = append(out, e.Text)

		case ast.NonterminalRef:
			if e.Eager {
				seq, err := r.Resolve(e.Name, ntConfig[e.Name])
				if err != nil {
					return nil, err
				}
				out = append(out, seq...)
				continue
			}
			if cached, ok := memo[e.Name]; ok {
				out = append(out, cached...)
				continue
			}
			seq, err := r.Resolve(e.Name, ntConfig[e.Name])
			if err != nil {
				return nil, err
			}
			memo[e.Name] = seq
			out = append(out, seq...)
		}
	}
	return out, nil
}

// collapseChoices decides every change's SrcChoice (spec §4.5 step 4)
// uniformly at random, independently per change, before scheduling.
func (r *Resolver) collapseChoices(changes []ast.Change) []ast.Change {
	out := make([]ast.Change, len(changes))
	for i, ch := range changes {
		out[i] = ast.Change{
			Source:        r.collapseSource(ch.Source),
			TargetNtName:  ch.TargetNtName,
			TargetNtParam: ch.TargetNtParam,
		}
	}
	return out
}

func (r *Resolver) collapseSource(src ast.Source) ast.Source {
	choice, ok := src.(ast.SrcChoice)
	if !ok {
		return src
	}
	picked := choice.Options[r.Rng.IntN(len(choice.Options))]
	return r.collapseSource(picked)
}

// executeChange assigns one change's source value into its target's
// parameter slot within ntConfig.
func (r *Resolver) executeChange(ch ast.Change, enclosingParams map[string]string, ntConfig map[string]map[string]string) error {
	value, err := r.resolveSourceValue(ch.Source, enclosingParams, ntConfig)
	if err != nil {
		return err
	}
	target, ok := ntConfig[ch.TargetNtName]
	if !ok {
		return ggerr.NewResolution(ggerr.UnknownChangeTarget, "Resolver",
			"\""+ch.TargetNtName+"\" is not a nonterminal referenced in this production")
	}
	target[ch.TargetNtParam] = value
	return nil
}

func (r *Resolver) resolveSourceValue(src ast.Source, enclosingParams map[string]string, ntConfig map[string]map[string]string) (string, error) {
	switch s := src.(type) {
	case ast.SrcString:
		return s.Text, nil

	case ast.SrcIdent:
		v, ok := enclosingParams[s.Name]
		if !ok {
			return "", ggerr.NewResolution(ggerr.UnknownIdentifier, "Resolver",
				"no parameter named \""+s.Name+"\" in scope")
		}
		return v, nil

	case ast.SrcNonterminal:
		cfg, ok := ntConfig[s.NtName]
		if !ok {
			return "", ggerr.NewResolution(ggerr.UnknownChangeTarget, "Resolver",
				"\""+s.NtName+"\" is not a nonterminal referenced in this production")
		}
		v, ok := cfg[s.NtParam]
		if !ok {
			return "", ggerr.NewResolution(ggerr.UnknownIdentifier, "Resolver",
				"\""+s.NtName+"\" has not been assigned a \""+s.NtParam+"\" parameter yet")
		}
		return v, nil

	case ast.SrcChoice:
		return r.resolveSourceValue(r.collapseSource(s), enclosingParams, ntConfig)
	}
	return "", ggerr.NewResolution(ggerr.UnknownIdentifier, "Resolver", "unrecognized change source")
}

// Package resolver implements the stochastic evaluator described in spec
// §4.5: recursively expanding a chosen nonterminal definition's production
// into a sequence of output strings, honoring conditional guards and
// feature-propagation changes along the way.
package resolver

import (
	"math/rand/v2"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/ggerr"
	"github.com/aledsdavies/ggra/pkgs/lexicon"
)

// Resolver holds the parsed grammar's definitions and the explicit random
// source every choice point draws from. Per spec §5 ("implementations may
// parameterize this for test determinism"), the caller supplies Rng
// rather than the package reaching for a global generator.
type Resolver struct {
	Defs []ast.NonterminalDef
	Rng  *rand.Rand

	lexiconCache map[string]*ast.LexiconDoc
}

// New builds a Resolver over a parsed grammar's definitions.
func New(defs []ast.NonterminalDef, rng *rand.Rand) *Resolver {
	return &Resolver{Defs: defs, Rng: rng, lexiconCache: make(map[string]*ast.LexiconDoc)}
}

// Resolve is resolve_nonterminal: find a definition named name whose
// declared parameters exactly match params' keys, choose uniformly at
// random among ties, then expand it.
func (r *Resolver) Resolve(name string, params map[string]string) ([]string, error) {
	def, err := r.pickDefinition(name, params)
	if err != nil {
		return nil, err
	}

	switch d := def.(type) {
	case ast.External:
		return r.resolveExternal(d, params)
	case ast.Inline:
		return r.resolveInline(d, params)
	}
	return nil, ggerr.NewResolution(ggerr.NoFittingDefinition, "Resolver",
		"definition \""+name+"\" is neither Inline nor External")
}

func (r *Resolver) pickDefinition(name string, params map[string]string) (ast.NonterminalDef, error) {
	wanted := paramKeySet(params)

	var candidates []ast.NonterminalDef
	for _, d := range r.Defs {
		if d.DefName() == name && ast.SameParamSet(d.DefParamNames(), wanted) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil, ggerr.NewResolution(ggerr.NoFittingDefinition, "Resolver",
			"no definition named \""+name+"\" accepts these parameters")
	}
	return candidates[r.Rng.IntN(len(candidates))], nil
}

func paramKeySet(params map[string]string) map[string]struct{} {
	set := make(map[string]struct{}, len(params))
	for k := range params {
		set[k] = struct{}{}
	}
	return set
}

func (r *Resolver) resolveExternal(d ast.External, params map[string]string) ([]string, error) {
	doc, ok := r.lexiconCache[d.Filename]
	if !ok {
		loaded, err := lexicon.Load(d.Filename)
		if err != nil {
			return nil, err
		}
		doc = loaded
		r.lexiconCache[d.Filename] = doc
	}
	return lexicon.Resolve(doc, params, r.Rng)
}

func (r *Resolver) resolveInline(d ast.Inline, params map[string]string) ([]string, error) {
	elems, changes, err := r.resolvePattern(d.Body, params)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, ggerr.NewResolution(ggerr.PatternExhausted, "Resolver",
			"definition \""+d.Name+"\" had no usable production for these parameters")
	}
	return r.buildOutput(elems, changes, params)
}

package main

import (
	"errors"
	"fmt"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/ggerr"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// annotateWithSuggestion implements spec's diagnostics helper: on a
// NoFittingDefinition ResolutionError, fuzzy-match the requested name
// against every known definition name and append the closest match. The
// returned ResolutionError itself is unchanged; the suggestion is purely
// in the wrapping text printed to the user.
func annotateWithSuggestion(err error, requested string, defs []ast.NonterminalDef) error {
	var gerr *ggerr.Error
	if !errors.As(err, &gerr) || gerr.Reason != ggerr.NoFittingDefinition {
		return err
	}

	best := fuzzy.RankFind(requested, definitionNames(defs))
	if len(best) == 0 {
		return err
	}
	closest := best[0]
	for _, candidate := range best {
		if candidate.Distance < closest.Distance {
			closest = candidate
		}
	}
	return fmt.Errorf("%w (did you mean %q?)", err, closest.Target)
}

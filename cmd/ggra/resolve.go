package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/resolver"
	"github.com/spf13/cobra"
)

func runResolve(cmd *cobra.Command, args []string) error {
	name := args[0]
	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	defs, err := loadGrammar(grammarFile, lexiconDir, cacheDir)
	if err != nil {
		return err
	}

	rng := newRng(seed)
	r := resolver.New(defs, rng)

	if err := resolveAndPrint(r, defs, name, params, count); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchAndReresolve(grammarFile, lexiconDir, cacheDir, name, params)
}

func resolveAndPrint(r *resolver.Resolver, defs []ast.NonterminalDef, name string, params map[string]string, n int) error {
	for i := 0; i < n; i++ {
		seq, err := r.Resolve(name, params)
		if err != nil {
			return annotateWithSuggestion(err, name, defs)
		}
		fmt.Println(strings.Join(seq, " "))
	}
	return nil
}

func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", p)
		}
		params[k] = v
	}
	return params, nil
}

func newRng(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

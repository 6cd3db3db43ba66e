package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/cache"
	"github.com/aledsdavies/ggra/pkgs/parser"
)

// lexiconRefPattern picks out "-> \"file\"" style FileNt headers straight
// out of raw grammar source, so the cache can be fingerprinted (and miss
// on a changed lexicon file) before the grammar is actually parsed.
var lexiconRefPattern = regexp.MustCompile(`->\s*"([^"]*)"`)

// loadGrammar parses file, consulting the compile cache in cacheDir
// first. External definitions' Filename fields are rewritten to be
// relative to baseDir so the resolver can open them directly.
func loadGrammar(file, baseDir, cacheDir string) ([]ast.NonterminalDef, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	if baseDir == "" {
		baseDir = filepath.Dir(file)
	}

	lexRefs := scanLexiconRefs(raw, baseDir)
	fp, err := cache.Fingerprint(raw, lexRefs)
	if err != nil {
		return nil, err
	}

	cachePath := filepath.Join(cacheDir, filepath.Base(file)+".cache")
	if defs, ok, err := cache.Load(cachePath, fp); err == nil && ok {
		return rebaseLexiconPaths(defs, baseDir), nil
	}

	defs, err := parser.Parse(string(raw))
	if err != nil {
		return nil, err
	}

	// Cache writes are an accelerator; a failure here must not block a
	// successful parse from being used.
	_ = cache.Save(cachePath, fp, defs)

	return rebaseLexiconPaths(defs, baseDir), nil
}

func scanLexiconRefs(source []byte, baseDir string) []string {
	matches := lexiconRefPattern.FindAllSubmatch(source, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, rebasePath(string(m[1]), baseDir))
	}
	return out
}

func rebaseLexiconPaths(defs []ast.NonterminalDef, baseDir string) []ast.NonterminalDef {
	out := make([]ast.NonterminalDef, len(defs))
	for i, d := range defs {
		ext, ok := d.(ast.External)
		if !ok {
			out[i] = d
			continue
		}
		ext.Filename = rebasePath(ext.Filename, baseDir)
		out[i] = ext
	}
	return out
}

func rebasePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// definitionNames collects every distinct DefName across defs, for fuzzy
// "did you mean" suggestions.
func definitionNames(defs []ast.NonterminalDef) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range defs {
		if _, ok := seen[d.DefName()]; !ok {
			seen[d.DefName()] = struct{}{}
			out = append(out, d.DefName())
		}
	}
	return out
}

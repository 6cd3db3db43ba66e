package main

import (
	"fmt"
	"os"

	"github.com/aledsdavies/ggra/pkgs/cache"
	"github.com/aledsdavies/ggra/pkgs/resolver"
	"github.com/fsnotify/fsnotify"
)

// watchAndReresolve is a CLI/host concern, not core-engine behavior (spec's
// Non-goals exclude watch/reload from the resolver itself): it watches the
// grammar file and the file of every External definition in the grammar
// as loaded when watching starts, and on a write or create event simply
// calls loadGrammar again — the compile
// cache's own fingerprint check is what decides whether anything actually
// needs re-parsing.
func watchAndReresolve(file, baseDir, cacheDir, name string, params map[string]string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(file); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	for _, lex := range currentLexiconFiles(file, baseDir, cacheDir) {
		_ = watcher.Add(lex) // a lexicon file that doesn't exist yet is simply not watched
	}

	fmt.Fprintf(os.Stderr, "watching %s for changes (ctrl-c to stop)\n", file)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			defs, err := loadGrammar(file, baseDir, cacheDir)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			rng := newRng(0)
			if err := resolveAndPrint(resolver.New(defs, rng), defs, name, params, 1); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch:", err)
		}
	}
}

func currentLexiconFiles(file, baseDir, cacheDir string) []string {
	defs, err := loadGrammar(file, baseDir, cacheDir)
	if err != nil {
		return nil
	}
	return cache.LexiconFilenames(defs)
}

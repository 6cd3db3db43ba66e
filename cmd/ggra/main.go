// Command ggra is the CLI front end for the grammar engine: parse a
// grammar file (optionally through an on-disk compile cache), resolve a
// named nonterminal, and print the resulting sentences.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables, set via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	grammarFile string
	lexiconDir  string
	cacheDir    string
	seed        int64
	count       int
	watch       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ggra",
	Short: "Resolve sentences from a generative grammar",
	Long: `ggra parses an indentation-sensitive grammar file describing nonterminal
productions, conditional guards, and feature-propagation changes, then
stochastically resolves a named nonterminal into a sequence of output
tokens.`,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <Nonterminal> [key=value...]",
	Short: "Resolve a nonterminal and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Dump the token stream for a grammar file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse a grammar file and report success or the first error",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ggra %s\n", Version)
		fmt.Printf("Built: %s\n", BuildTime)
		fmt.Printf("Commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&grammarFile, "file", "f", "grammar.ggra", "Path to the grammar file")
	rootCmd.PersistentFlags().StringVar(&lexiconDir, "lexicon-dir", "", "Base directory for resolving External nonterminal files (default: grammar file's directory)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", defaultCacheDir(), "Directory for the compiled-grammar cache")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (0 picks a fresh seed each run)")

	resolveCmd.Flags().IntVar(&count, "count", 1, "Number of sentences to resolve and print")
	resolveCmd.Flags().BoolVar(&watch, "watch", false, "Watch the grammar and its lexicon files, re-resolving on change")

	rootCmd.AddCommand(resolveCmd, lexCmd, validateCmd, versionCmd)
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".ggra-cache"
	}
	return base + string(os.PathSeparator) + "ggra"
}

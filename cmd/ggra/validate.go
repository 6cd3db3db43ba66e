package main

import (
	"fmt"
	"os"

	"github.com/aledsdavies/ggra/pkgs/parser"
	"github.com/spf13/cobra"
)

func runValidate(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	defs, err := parser.Parse(string(raw))
	if err != nil {
		return err
	}
	fmt.Printf("ok: %d nonterminal definitions\n", len(defs))
	return nil
}

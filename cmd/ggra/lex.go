package main

import (
	"fmt"
	"os"

	"github.com/aledsdavies/ggra/pkgs/lexer"
	"github.com/spf13/cobra"
)

func runLex(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	tokens, err := lexer.New(string(raw)).Tokenize()
	if err != nil {
		return err
	}
	for _, t := range tokens {
		fmt.Println(t.String())
	}
	return nil
}

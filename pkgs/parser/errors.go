package parser

import "github.com/aledsdavies/ggra/pkgs/ggerr"

// parserError builds a ggerr.Error of kind Parser, tagged with the
// sub-stage that raised it (spec §6's "origin string", e.g.
// "Parser: Pre-Parsing lines").
func parserError(origin string, line, column int, messages ...string) *ggerr.Error {
	return ggerr.New(ggerr.Parser, origin, messages...).WithPos(line, column)
}

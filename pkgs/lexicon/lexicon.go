// Package lexicon loads and resolves the JSON documents behind External
// nonterminal definitions (spec §4.6): an ordered query-vector shape and
// a nested content mapping it indexes into.
package lexicon

import (
	"encoding/json"
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/aledsdavies/ggra/pkgs/ggerr"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var compiledSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema://lexicon.json", strings.NewReader(docSchema)); err != nil {
		panic(err) // docSchema is a compile-time constant; a failure here is a programming error
	}
	compiledSchema = compiler.MustCompile("schema://lexicon.json")
}

type wireDoc struct {
	Order   []string       `json:"order"`
	Content map[string]any `json:"content"`
}

// Load reads, schema-validates, and parses a lexicon document from disk.
// Callers cache the result themselves: pkgs/resolver keeps loaded
// documents in its own map keyed by filename, so each file is loaded at
// most once per Resolver.
func Load(filename string) (*ast.LexiconDoc, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, ggerr.NewResolution(ggerr.MissingFile, "Lexicon reader",
			"could not read "+filename+": "+err.Error())
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, ggerr.NewResolution(ggerr.MissingFile, "Lexicon reader",
			filename+" is not valid JSON: "+err.Error())
	}
	if err := compiledSchema.Validate(generic); err != nil {
		return nil, ggerr.NewResolution(ggerr.MissingFile, "Lexicon reader",
			filename+" does not match the lexicon document schema: "+err.Error())
	}

	var doc wireDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, ggerr.NewResolution(ggerr.MissingFile, "Lexicon reader",
			filename+": "+err.Error())
	}
	return &ast.LexiconDoc{Order: doc.Order, Content: doc.Content}, nil
}

// Resolve implements spec §4.6's traversal: for each order position, the
// current cursor is either a mapping (step by supplied param or, on
// "...", a random key) or a list (only "..." applies, picking a random
// element); any other shape mid-walk is a malformed document.
func Resolve(doc *ast.LexiconDoc, params map[string]string, rng *rand.Rand) ([]string, error) {
	cursor := any(doc.Content)
	for _, key := range doc.Order {
		switch sub := cursor.(type) {
		case map[string]any:
			pick := ""
			if key == "..." {
				pick = randomKey(sub, rng)
				if pick == "" {
					return nil, ggerr.NewResolution(ggerr.NoLexiconEntry, "Lexicon reader",
						"\"...\" has no keys to pick from at this level")
				}
			} else {
				var ok bool
				pick, ok = params[key]
				if !ok {
					return nil, ggerr.NewResolution(ggerr.NoLexiconEntry, "Lexicon reader",
						"missing parameter value for \""+key+"\"")
				}
			}
			next, ok := sub[pick]
			if !ok {
				return nil, ggerr.NewResolution(ggerr.NoLexiconEntry, "Lexicon reader",
					"no entry for \""+pick+"\"")
			}
			cursor = next

		case []any:
			if key != "..." {
				return nil, ggerr.NewResolution(ggerr.NoLexiconEntry, "Lexicon reader",
					"named parameter \""+key+"\" cannot index into a list entry")
			}
			if len(sub) == 0 {
				return nil, ggerr.NewResolution(ggerr.NoLexiconEntry, "Lexicon reader",
					"\"...\" has no elements to pick from at this level")
			}
			cursor = sub[rng.IntN(len(sub))]

		default:
			return nil, ggerr.NewResolution(ggerr.NoLexiconEntry, "Lexicon reader",
				"query vector runs past the document's nesting depth")
		}
	}

	return finalize(cursor)
}

func randomKey(m map[string]any, rng *rand.Rand) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	// Go's map iteration order is randomized per-process, so the slice
	// must be put into a fixed order before indexing with rng.IntN —
	// otherwise the same seed could pick a different key across runs.
	sort.Strings(keys)
	return keys[rng.IntN(len(keys))]
}

// finalize converts the traversal's terminal value into the resolver's
// output sequence: a string wraps as a singleton, an array passes through
// element-by-element, anything else is a malformed document.
func finalize(v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, elem := range t {
			s, ok := elem.(string)
			if !ok {
				return nil, ggerr.NewResolution(ggerr.NoLexiconEntry, "Lexicon reader",
					"lexicon array entries must be strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, ggerr.NewResolution(ggerr.NoLexiconEntry, "Lexicon reader",
			"lexicon entry must terminate in a string or an array of strings")
	}
}

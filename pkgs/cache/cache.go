// Package cache persists a parsed grammar's AST to disk so repeat runs
// over an unchanged grammar+lexicon set can skip re-lexing and
// re-parsing. Entries are fingerprinted with BLAKE2b-256 over the
// grammar source plus every referenced lexicon file's bytes, and gated
// by an exact cache-format semver so a version bump invalidates
// everything rather than risk decoding a stale wire shape.
package cache

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aledsdavies/ggra/pkgs/ast"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/mod/semver"
)

// FormatVersion is the compiled cache's wire-format version. Bumping it
// invalidates every existing cache entry on next read, since Load only
// accepts an exact match (spec's cache-invalidation design note: no
// partial compatibility between format versions).
const FormatVersion = "v1.0.0"

type entry struct {
	FormatVersion string    `cbor:"format_version"`
	Fingerprint   [32]byte  `cbor:"fingerprint"`
	Defs          []wireDef `cbor:"defs"`
}

// Fingerprint hashes a grammar file's contents together with every
// lexicon file referenced by its External definitions, so editing either
// the grammar or any lexicon it points to invalidates the cache entry.
func Fingerprint(grammarSource []byte, lexiconFiles []string) ([32]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, err
	}
	h.Write(grammarSource)
	for _, path := range lexiconFiles {
		raw, err := os.ReadFile(path)
		if err != nil {
			return [32]byte{}, fmt.Errorf("fingerprinting %s: %w", path, err)
		}
		h.Write([]byte(path))
		h.Write(raw)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}

// LexiconFilenames collects the Filename of every External definition, in
// definition order, for use with Fingerprint.
func LexiconFilenames(defs []ast.NonterminalDef) []string {
	var out []string
	for _, d := range defs {
		if ext, ok := d.(ast.External); ok {
			out = append(out, ext.Filename)
		}
	}
	return out
}

// Save writes defs to path as a fingerprinted, CBOR-encoded cache entry.
func Save(path string, fingerprint [32]byte, defs []ast.NonterminalDef) error {
	if !semver.IsValid(FormatVersion) {
		return fmt.Errorf("cache: %q is not a valid semver", FormatVersion)
	}
	e := entry{FormatVersion: FormatVersion, Fingerprint: fingerprint, Defs: toWireDefs(defs)}

	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return err
	}
	encoded, err := mode.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encoding entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	return os.WriteFile(path, encoded, 0o644)
}

// Load reads path and returns its definitions only if both the cache
// format version matches exactly and the stored fingerprint matches
// wantFingerprint. A false second return means "no usable entry" — not
// an error — so callers fall back to re-parsing.
func Load(path string, wantFingerprint [32]byte) ([]ast.NonterminalDef, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		// Any unreadable cache file — missing, permission-denied, or
		// otherwise — is a miss, never an error: the cache is purely an
		// accelerator and must never block a caller from falling back
		// to re-parsing.
		return nil, false, nil
	}

	var e entry
	if err := cbor.Unmarshal(raw, &e); err != nil {
		return nil, false, nil // a corrupt or foreign file is a cache miss, not a hard failure
	}

	if semver.Compare(e.FormatVersion, FormatVersion) != 0 {
		return nil, false, nil
	}
	if !bytes.Equal(e.Fingerprint[:], wantFingerprint[:]) {
		return nil, false, nil
	}
	return fromWireDefs(e.Defs), true, nil
}

/*
Copyright 2026 The Recode Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package charset converts text between UTF-8 and an open-ended set of
// legacy encodings, addressed by name.
//
// A Recoder owns a frozen registry of every known charset name, built
// once from a fixed base table (the Unicode transformation formats and
// the Japanese wire formats) merged with the catalogs of the table
// providers, plus a runtime-mutable alias overlay. ToUTF8 and FromUTF8
// are the two primitive operations; Convert pivots through UTF-8 so no
// direct charset-to-charset tables are ever needed.
//
// All methods on a Recoder are safe for concurrent use.
package charset

import (
	"sort"
	"strings"
	"sync"

	"recode.io/recode/go/charset/types"
	"recode.io/recode/go/recerrors"
)

// Recoder is the conversion dispatcher. The zero value is not usable;
// construct with New or use the package-level functions, which share a
// lazily built default instance.
type Recoder struct {
	base    map[string]entry
	aliases *aliasTable
	cjk     types.CJKProvider
}

// New builds a Recoder: the registry is assembled once, here, and never
// mutated afterwards.
func New(opts ...Option) *Recoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Recoder{
		base:    buildRegistry(&cfg),
		aliases: newAliasTable(),
		cjk:     cfg.cjk,
	}
}

var (
	defaultRecoder *Recoder
	defaultOnce    sync.Once
)

// Default returns the shared Recoder with the bundled providers. It is
// built on first use, exactly once, regardless of how many goroutines
// race here.
func Default() *Recoder {
	defaultOnce.Do(func() {
		defaultRecoder = New()
	})
	return defaultRecoder
}

// Lookup resolves a name through the alias overlay and the base
// registry and reports the canonical identity it lands on.
func (r *Recoder) Lookup(name string) (CanonicalCharset, bool) {
	ent, err := r.resolve("Lookup", name)
	if err != nil {
		return CanonicalCharset{}, false
	}
	return CanonicalCharset{Canonical: ent.canonical, Kind: ent.kind}, true
}

// Supported reports whether name resolves to a known charset. The empty
// name is not supported.
func (r *Recoder) Supported(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// SupportedCharsets enumerates every currently known name: the base
// registry spellings and the active alias spellings, without
// duplicates, in a single sorted order.
func (r *Recoder) SupportedCharsets() []string {
	seen := make(map[string]bool, len(r.base))
	names := make([]string, 0, len(r.base))
	for _, ent := range r.base {
		if !seen[ent.canonical] {
			seen[ent.canonical] = true
			names = append(names, ent.canonical)
		}
	}
	for _, spelling := range r.aliases.spellings() {
		if !seen[spelling] {
			seen[spelling] = true
			names = append(names, spelling)
		}
	}
	sort.Strings(names)
	return names
}

// resolve maps a user-supplied name to its registry entry: alias
// overlay first, base registry second. Errors carry the spelling
// exactly as the caller gave it.
func (r *Recoder) resolve(op, name string) (entry, error) {
	if name == "" {
		return entry{}, recerrors.Errorf(recerrors.MissingArgument, "%s: no charset name given", op)
	}
	key := strings.ToLower(name)
	if canonical, ok := r.aliases.lookup(key); ok {
		key = strings.ToLower(canonical)
	}
	if ent, ok := r.base[key]; ok {
		return ent, nil
	}
	return entry{}, recerrors.Errorf(recerrors.UnsupportedCharset, "%s: unsupported charset %q", op, name)
}

// Package-level convenience wrappers over the Default Recoder.

// ToUTF8 converts text from the named charset into UTF-8.
func ToUTF8(text []byte, name string) ([]byte, error) {
	return Default().ToUTF8(text, name)
}

// FromUTF8 converts UTF-8 text into the named charset.
func FromUTF8(text []byte, name string) ([]byte, error) {
	return Default().FromUTF8(text, name)
}

// Convert re-encodes text between two named charsets via UTF-8.
func Convert(text []byte, from, to string) ([]byte, error) {
	return Default().Convert(text, from, to)
}

// Supported reports whether name resolves on the default Recoder.
func Supported(name string) bool {
	return Default().Supported(name)
}

// SupportedCharsets enumerates the default Recoder's known names.
func SupportedCharsets() []string {
	return Default().SupportedCharsets()
}

// SetAliases applies alias updates to the default Recoder.
func SetAliases(pairs map[string]string) error {
	return Default().SetAliases(pairs)
}

// Aliases snapshots the default Recoder's alias table.
func Aliases() map[string]string {
	return Default().Aliases()
}

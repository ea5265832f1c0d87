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

package charset

import (
	"strings"
	"sync"

	"recode.io/recode/go/log"
	"recode.io/recode/go/recerrors"
)

// aliasTable is the runtime-mutable overlay above the frozen registry.
// Lookups consult it before the base table. It never persists; a
// restart empties it.
type aliasTable struct {
	mu      sync.RWMutex
	entries map[string]aliasEntry // keyed by lowercase alias
}

type aliasEntry struct {
	// spelling is the alias exactly as the caller gave it, kept for
	// enumeration.
	spelling string

	// canonical is the canonical id of the target, always a base
	// registry name.
	canonical string
}

func newAliasTable() *aliasTable {
	return &aliasTable{entries: make(map[string]aliasEntry)}
}

func (t *aliasTable) set(key, spelling, canonical string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key] = aliasEntry{spelling: spelling, canonical: canonical}
}

func (t *aliasTable) remove(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, key)
}

func (t *aliasTable) lookup(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[key]
	return e.canonical, ok
}

func (t *aliasTable) snapshot() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]string, len(t.entries))
	for _, e := range t.entries {
		out[e.spelling] = e.canonical
	}
	return out
}

func (t *aliasTable) spellings() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.spelling)
	}
	return out
}

// SetAliases applies a batch of alias updates. An empty target clears
// the alias; any other target must be a base registry name (an alias may
// not point at another alias). An alias whose lowercase form collides
// with a base name is accepted with a warning: the alias then shadows
// the base name for lookups. Within the batch, last write wins per
// alias.
//
// The first invalid pair aborts the batch with InvalidAlias; pairs
// already applied stay applied.
func (r *Recoder) SetAliases(pairs map[string]string) error {
	for alias, target := range pairs {
		if alias == "" {
			return recerrors.New(recerrors.InvalidParameters, "SetAliases: empty alias name")
		}
		key := strings.ToLower(alias)
		if target == "" {
			r.aliases.remove(key)
			continue
		}
		ent, ok := r.base[strings.ToLower(target)]
		if !ok {
			return recerrors.Errorf(recerrors.InvalidAlias,
				"SetAliases: alias %q: target %q is not a known charset", alias, target)
		}
		if _, shadow := r.base[key]; shadow {
			log.WarnS("charset alias shadows a registered charset name",
				"alias", alias, "target", target)
		}
		r.aliases.set(key, alias, ent.canonical)
	}
	return nil
}

// Aliases returns a snapshot of the current alias table, alias spelling
// to canonical id. The snapshot is never nil.
func (r *Recoder) Aliases() map[string]string {
	return r.aliases.snapshot()
}

// ResolveAlias reports the canonical id an alias points at. It only
// consults the overlay: a name that is not an alias yields ok == false,
// never an error, even if the name is a perfectly good base charset.
func (r *Recoder) ResolveAlias(name string) (canonical string, ok bool) {
	return r.aliases.lookup(strings.ToLower(name))
}

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

	"recode.io/recode/go/charset/cjk"
	"recode.io/recode/go/charset/eightbit"
	"recode.io/recode/go/charset/multibyte"
	"recode.io/recode/go/charset/types"
	"recode.io/recode/go/charset/unicode"
	"recode.io/recode/go/log"
)

// ProviderKind selects the conversion strategy for a charset. It is a
// closed set: the dispatch switch over it is exhaustive.
type ProviderKind int8

const (
	// KindUTFTransform covers the Unicode transformation formats
	// (utf8, ucs2, ucs4, utf7, utf16).
	KindUTFTransform ProviderKind = iota

	// KindTableBased covers every table-driven code page, single-byte
	// and multi-byte alike. Conversion goes through a UTF-16 code unit
	// intermediate.
	KindTableBased

	// KindCJKStateful covers the stateful Japanese wire formats
	// (sjis, iso-2022-jp, jis, euc-jp).
	KindCJKStateful
)

func (k ProviderKind) String() string {
	switch k {
	case KindUTFTransform:
		return "utf-transform"
	case KindTableBased:
		return "table-based"
	case KindCJKStateful:
		return "cjk-stateful"
	default:
		return "unknown"
	}
}

// CanonicalCharset is the resolved identity of one supported charset.
type CanonicalCharset struct {
	// Canonical is the authoritative spelling, case preserved as
	// registered.
	Canonical string

	// Kind selects the conversion strategy.
	Kind ProviderKind
}

// entry is one frozen registry slot.
type entry struct {
	canonical string
	kind      ProviderKind

	// form is set for KindUTFTransform entries; names are parsed into
	// the tagged form once, here, so dispatch never branches on name
	// strings again.
	form unicode.Form

	// table is the provider owning a KindTableBased entry.
	table types.TableProvider
}

type config struct {
	tables []types.TableProvider
	cjk    types.CJKProvider
}

// Option adjusts registry construction. The zero configuration uses the
// bundled providers.
type Option func(*config)

// WithTableProviders replaces the bundled table providers. Catalogs are
// scanned in the given order; an identifier already registered is not
// overwritten.
func WithTableProviders(providers ...types.TableProvider) Option {
	return func(c *config) {
		c.tables = providers
	}
}

// WithCJKProvider replaces the bundled CJK codec provider.
func WithCJKProvider(p types.CJKProvider) Option {
	return func(c *config) {
		c.cjk = p
	}
}

func defaultConfig() config {
	return config{
		tables: []types.TableProvider{eightbit.Provider{}, multibyte.Provider{}},
		cjk:    cjk.Provider{},
	}
}

// buildRegistry produces the frozen base name table: the fixed UTF and
// CJK forms first, then every identifier the table providers report.
// First registration wins throughout, so the hand-verified base forms
// can never be shadowed by a provider catalog, and an earlier provider
// beats a later one on colliding identifiers.
func buildRegistry(cfg *config) map[string]entry {
	base := make(map[string]entry, 128)

	for _, name := range unicode.Forms() {
		form, _ := unicode.ParseForm(name)
		base[name] = entry{canonical: name, kind: KindUTFTransform, form: form}
	}
	for _, name := range cjk.Formats() {
		base[name] = entry{canonical: name, kind: KindCJKStateful}
	}

	for _, provider := range cfg.tables {
		var added, skipped int
		for _, id := range provider.KnownIDs() {
			key := strings.ToLower(id)
			if _, dup := base[key]; dup {
				skipped++
				continue
			}
			base[key] = entry{canonical: id, kind: KindTableBased, table: provider}
			added++
		}
		log.DebugS("charset catalog scanned", "provider", provider.Name(), "added", added, "skipped", skipped)
	}

	return base
}

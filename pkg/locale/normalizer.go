// Package locale canonicalizes locale identifiers before they are used to
// build resource paths.
package locale

import (
	"strings"

	"golang.org/x/text/language"

	"lingo-hq/cldr/pkg/data"
)

// Normalizer maps a raw locale string to its canonical tag.
type Normalizer interface {
	Normalize(locale string) data.Symbol
}

// DefaultAliases maps application locale codes to the CLDR locale that
// holds their data. Keys are lowercase and hyphenated.
var DefaultAliases = map[string]string{
	"msa":   "ms",
	"zh-cn": "zh",
	"zh-tw": "zh-Hant",
	"no":    "nb",
}

// CLDRNormalizer resolves aliases first and falls back to BCP 47
// canonicalization through golang.org/x/text/language.
type CLDRNormalizer struct {
	aliases map[string]string
}

// NewCLDRNormalizer creates a normalizer with DefaultAliases plus extra.
// Entries in extra take precedence.
func NewCLDRNormalizer(extra map[string]string) *CLDRNormalizer {
	aliases := make(map[string]string, len(DefaultAliases)+len(extra))
	for k, v := range DefaultAliases {
		aliases[k] = v
	}
	for k, v := range extra {
		aliases[aliasKey(k)] = v
	}
	return &CLDRNormalizer{aliases: aliases}
}

// Normalize returns the canonical tag for raw. Unparseable input is
// returned unchanged so the resulting lookup fails with a not-found error
// rather than here.
func (n *CLDRNormalizer) Normalize(raw string) data.Symbol {
	key := aliasKey(raw)
	if alias, ok := n.aliases[key]; ok {
		return data.Symbol(alias)
	}

	tag, err := language.Parse(key)
	if err != nil {
		return data.Symbol(raw)
	}
	return data.Symbol(tag.String())
}

func aliasKey(raw string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "_", "-"))
}

// Func adapts a plain function to the Normalizer interface.
type Func func(locale string) data.Symbol

// Normalize calls f(locale).
func (f Func) Normalize(locale string) data.Symbol {
	return f(locale)
}

// Package resources loads localization data files and memoizes them.
//
// A Loader maps symbolic identifiers to files below a resource root:
//
//	loader := resources.New("/usr/share/cldr",
//		resources.WithCustomRoot("/usr/share/cldr/custom"),
//	)
//
//	// reads locales/zh-Hant/numbers.yml
//	res, err := loader.GetLocaleResource(ctx, "zh-tw", data.Symbol("numbers"))
//
// # Lookups
//
// Three lookups are provided:
//
//   - GetYAMLResource joins its segments with "/" and appends ".yml"
//   - GetLocaleResource canonicalizes the locale and delegates to
//     GetYAMLResource under "locales/<locale>/"
//   - GetPlainResource reads a caller-supplied path as text, without parsing
//
// # Caching
//
// The resolved path is the cache key. The first successful lookup stores
// its *Resource and every later lookup of the same path returns that
// pointer. Entries are never evicted. Failed lookups store nothing.
// Concurrent misses on one path share a single load.
//
// # Custom Overrides
//
// When a custom root is configured, a file at the same relative path under
// it is parsed and merged over the base mapping. The merge is shallow:
// top-level keys from the override replace or extend the base. A missing
// override is not an error; a missing base file is, reported as a
// *NotFoundError matching ErrResourceNotFound.
package resources

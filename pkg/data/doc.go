// Package data defines the value model shared by the resource loader and
// its collaborators.
//
// Parsed resources are trees built from three shapes:
//
//   - Map: a mapping whose keys are canonical symbols (map[Symbol]any)
//   - []any: a sequence of values
//   - scalars: int, float64, string, bool and nil
//
// # Symbols and Segments
//
// A Symbol is the canonical key form. Resource files written for the
// original data set spell keys with a leading colon (":one:"), which
// SymbolizeKeys strips so that ":one" and "one" resolve to the same key.
//
// Resource paths are built from Segments. A Segment is either a Text or a
// Symbol; both render to the same string, so mixing them never changes the
// resolved path:
//
//	segs := data.Segments("locales", data.Symbol("de"), "numbers")
//
// # Merging
//
// MergeShallow overlays one mapping onto another at the top level only.
// Nested mappings in the overlay replace their counterparts wholesale.
package data

package resources

import "lingo-hq/cldr/pkg/data"

// Kind identifies how a resource was loaded.
type Kind string

const (
	// KindYAML marks a parsed, key-symbolized resource.
	KindYAML Kind = "yaml"
	// KindPlain marks a resource returned as raw text.
	KindPlain Kind = "plain"
)

// Resource is the cached handle returned by every lookup. The Loader hands
// out the same pointer for every lookup of the same path.
type Resource struct {
	// Path is the resolved path relative to the resource root.
	Path string

	// Kind records which lookup created the entry.
	Kind Kind

	// Value is the parsed tree for KindYAML and a string for KindPlain.
	Value any
}

// Map returns the value as a mapping, or nil when it is not one.
func (r *Resource) Map() data.Map {
	m, _ := r.Value.(data.Map)
	return m
}

// Text returns the raw text of a plain resource, or "" for parsed ones.
func (r *Resource) Text() string {
	s, _ := r.Value.(string)
	return s
}

// Dig follows keys through nested mappings of the value.
func (r *Resource) Dig(keys ...data.Symbol) (any, bool) {
	return data.Dig(r.Value, keys...)
}

package resources

import (
	"strings"

	"lingo-hq/cldr/pkg/data"
)

// YAMLExt is appended to every structured resource path.
const YAMLExt = ".yml"

// LocalesDir is the first segment of every locale-scoped resource path.
const LocalesDir data.Symbol = "locales"

// ResolvePath joins segments with "/" and appends ext. Segment order is
// preserved and nothing is cleaned or deduplicated.
func ResolvePath(ext string, segments ...data.Segment) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = data.SegmentString(seg)
	}
	return strings.Join(parts, "/") + ext
}

// cldr inspects a CLDR resource tree the way the resource loader sees it.
//
// Resources are YAML files under a root directory. Locale resources live
// under locales/<locale>/, and files under a custom root override the
// top-level keys of the matching base resource.
//
// Usage:
//
//	# Print a locale resource
//	cldr get locale zh-tw numbers
//
//	# Print one key as JSON
//	cldr get locale en calendars --dig calendars.gregorian --format json
//
//	# List the resource types available for a locale
//	cldr types pt-br
//
//	# Parse every resource file, re-running on change
//	cldr lint --watch
//
//	# Show version information
//	cldr version
package main

func main() {
	Execute()
}

// Package metrics provides Prometheus metrics for the resource loader.
//
// # Metrics
//
// With the default namespace "cldr" and subsystem "resources":
//   - cldr_resources_cache_hits_total{kind}: lookups answered from the cache
//   - cldr_resources_cache_misses_total{kind}: lookups that reached the file system
//   - cldr_resources_cache_entries: resources currently cached
//   - cldr_resources_loads_total{kind,result}: file loads by outcome
//   - cldr_resources_load_duration_seconds{kind}: read, parse and merge time
//   - cldr_resources_not_found_total{kind}: lookups of missing base files
//   - cldr_resources_overrides_merged_total: custom overrides merged
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	loader := resources.New(root, resources.WithMetrics(collector))
//
//	// Export for the node_exporter textfile collector
//	if err := collector.WriteTextfile("/var/lib/node_exporter/cldr.prom"); err != nil {
//		return err
//	}
//
// Long running commands can serve collector.Handler() at /metrics instead.
package metrics

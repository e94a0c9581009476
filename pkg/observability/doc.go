/*
Package observability exposes search engine activity as Prometheus
metrics.

The Collector implements the engine's Metrics hook with counters for
expansions and suppressed duplicates and gauges for frontier and history
sizes, so a long-running solver can be watched without putting anything
heavier than an increment on the engine's hot loop.
*/
package observability

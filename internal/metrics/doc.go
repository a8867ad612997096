// Package metrics wires a scheduler.Profiler into a Prometheus
// registry and serves it over HTTP, the way arx-os-arxos's daemon and
// gateway packages expose a /metrics endpoint via promhttp (spec.md's
// SUPPLEMENTAL FEATURES: "scheduler.Profiler gains a Prometheus Collect
// method"; this package is the thin server around it, not the
// collector itself).
package metrics

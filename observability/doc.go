// Package observability holds the ambient logging and metrics plumbing
// shared by the CLI and the HTTP service: a zap logger factory and a
// Prometheus collector that observes coloring searches.
package observability

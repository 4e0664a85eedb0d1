// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, logging, metrics and debug introspection layer for
// hioload-pooled.
//
// Provides:
//   - Environment tunables resolved once per process
//   - zap logger construction
//   - A Prometheus collector over array pool statistics
//   - Probe registration for state dumps
//
// Unlike the pools it observes, everything here is safe for concurrent use.
package control

// Package observe provides telemetry for cache lookups: structured
// JSON logging with query redaction, OpenTelemetry spans per retrieve,
// and hit/miss/compute-duration metrics, behind a single Observer with
// no-op fallbacks for disabled subsystems.
package observe

// Package config holds process-wide constants and the legacy toggle the
// resolver exposes for backward compatibility: a small set of package-level
// vars read by other packages rather than threaded through every call.
package config

// Version is the current declorder module version.
var Version = "0.1.0"

// IgnoreErrorsDefault is a legacy, process-wide switch; prefer setting
// resolver.Config.IgnoreErrors directly. SetIgnoreErrors exists only for
// callers (e.g. a CLI flag parsed before any Config is built) that have no
// Config value in hand yet.
var IgnoreErrorsDefault = false

// SetIgnoreErrors is the legacy setter. resolver.DefaultConfig reads this
// value once at construction time.
func SetIgnoreErrors(v bool) {
	IgnoreErrorsDefault = v
}

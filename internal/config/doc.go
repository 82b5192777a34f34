// Package config reads the optional fyi configuration file.
//
// The file lives at $XDG_CONFIG_HOME/fyi/config.yaml (resolved with
// github.com/adrg/xdg, so the usual per-platform fallbacks apply) unless
// FYI_CONFIG points somewhere else. A missing file is not an error: the
// defaults below are used.
//
//	version: 1
//	messages:
//	  timestamp: false
//	  no_color: false
//	  indent_width: 4
//	progress:
//	  tick_ms: 100
//	  fallback_width: 80
//	  max_labels: 3
//
// Values act as defaults for command-line flags; an explicit flag always
// wins. Unknown keys, an unsupported version or out-of-range values are
// reported as errors rather than silently ignored. The tick interval is the
// exception and is clamped to 60-1000ms.
//
// # Thread Safety
//
// Load caches the configuration with sync.Once; the returned value must be
// treated as read-only.
package config

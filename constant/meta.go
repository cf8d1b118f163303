// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "vidping"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, injected with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Logo is the banner shown by the root command help.
const Logo = `       _     _       _
__   _(_) __| |_ __ (_)_ __   __ _
\ \ / / |/ _` + "`" + ` | '_ \| | '_ \ / _` + "`" + ` |
 \ V /| | (_| | |_) | | | | | (_| |
  \_/ |_|\__,_| .__/|_|_| |_|\__, |
              |_|            |___/`

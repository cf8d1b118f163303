// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Strategy - these keys tune how player state is derived.
const (
	StrategyPositionInterval = "strategy.position_interval"
)

// Ping Sampling - these keys govern how the snapshot is sampled into ping records.
const (
	PingInterval     = "ping.interval"
	PingRequireReady = "ping.require_ready"
)

// Session Replay - these keys configure the playback of recorded player sessions.
const (
	ReplaySpeed        = "replay.speed"
	ReplayQueryLatency = "replay.query_latency"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)

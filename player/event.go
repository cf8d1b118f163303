package player

// Event is a tagged record emitted by the player.
// The type of each argument depends on the tag.
type Event struct {
	Name string `json:"name"`
	Args []any  `json:"args"`
}

// Listener receives player events.
type Listener func(evt Event)

// Event tags emitted by the player.
const (
	EventMetadataLoaded  = "METADATA_LOADED"
	EventProgramChanged  = "PROGRAM_CHANGED"
	EventStateChange     = "STATE_CHANGE"
	EventPlayingStart    = "PLAYING_START"
	EventVideoCompleted  = "VIDEO_COMPLETED"
	EventAdStarted       = "AD_STARTED"
	EventVideoStarted    = "VIDEO_STARTED"
	EventFirstFrameReady = "FIRST_FRAME_READY"
	EventClientBandwidth = "CLIENT_BANDWIDTH"
	EventAdTimeUpdated   = "AD_TIME_UPDATED"
)

// Values carried by STATE_CHANGE as its first argument.
const (
	StateVideoPause = "videoPause"
	StateVideoPlay  = "videoPlay"
)

// Arg returns the i-th argument, or nil when there are not enough arguments.
func (e Event) Arg(i int) any {
	if i < 0 || i >= len(e.Args) {
		return nil
	}
	return e.Args[i]
}

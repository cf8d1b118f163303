package strategy

// The string codes below are the vocabulary understood by the ping consumer.
// They must not change.

// VideoState is the play state reported in the _vs key of a ping.
type VideoState string

const (
	VideoStateUnplayed  VideoState = "s1"
	VideoStatePlayed    VideoState = "s2"
	VideoStateStopped   VideoState = "s3"
	VideoStateCompleted VideoState = "s4"
)

// ContentType is the kind of content playing, reported in the _vt key of a ping.
type ContentType string

const (
	ContentTypeAd      ContentType = "ad"
	ContentTypeContent ContentType = "ct"
)

// AdPosition is reported in the _vap key of a ping.
type AdPosition string

const (
	AdPositionPreroll  AdPosition = "a1"
	AdPositionMidroll  AdPosition = "a2"
	AdPositionPostroll AdPosition = "a3"
	AdPositionOverlay  AdPosition = "a4"
	AdPositionSpecial  AdPosition = "a5"
)

// AutoplayType describes how playback was initiated.
type AutoplayType string

const (
	AutoplayTypeUnknown    AutoplayType = "unkn"
	AutoplayTypeManual     AutoplayType = "man"
	AutoplayTypeAutoplay   AutoplayType = "auto"
	AutoplayTypeContinuous AutoplayType = "cont"
)

// String returns a human readable label, used by the watch view.
func (s VideoState) String() string {
	switch s {
	case VideoStateUnplayed:
		return "unplayed"
	case VideoStatePlayed:
		return "played"
	case VideoStateStopped:
		return "stopped"
	case VideoStateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// String returns a human readable label, used by the watch view.
func (c ContentType) String() string {
	switch c {
	case ContentTypeAd:
		return "ad"
	case ContentTypeContent:
		return "content"
	default:
		return "unknown"
	}
}

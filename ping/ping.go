// Package ping samples a strategy into ping records.
// It only produces records; sending them anywhere is the caller's business.
package ping

import (
	"time"

	"github.com/invopop/jsonschema"
	"github.com/vidping/vidping/strategy"
)

// Ping is one sample of a strategy. Unknown values are omitted.
type Ping struct {
	At       time.Time `json:"at" jsonschema:"description=Sampling time"`
	Strategy string    `json:"strategy" jsonschema:"description=Short identifier of the strategy"`

	Title           *string  `json:"i,omitempty" jsonschema:"description=Video title"`
	Path            string   `json:"p" jsonschema:"description=Video path or identifier"`
	ContentType     string   `json:"_vt" jsonschema:"enum=ad,enum=ct"`
	AdPosition      *string  `json:"_vap,omitempty" jsonschema:"enum=a1,enum=a2,enum=a3,enum=a4,enum=a5"`
	TotalDuration   *float64 `json:"_vd,omitempty" jsonschema:"description=Total duration in milliseconds"`
	State           string   `json:"_vs" jsonschema:"enum=s1,enum=s2,enum=s3,enum=s4"`
	CurrentPlayTime float64  `json:"_vpt" jsonschema:"description=Playhead position in milliseconds"`
	Bitrate         *float64 `json:"_vbr,omitempty" jsonschema:"description=Bitrate in kbps"`
	ThumbnailPath   string   `json:"_vtn" jsonschema:"description=Absolute thumbnail URL"`
	AutoplayType    string   `json:"_va" jsonschema:"enum=unkn,enum=man,enum=auto,enum=cont"`
	PlayerType      *string  `json:"_vplt,omitempty"`
	ViewStartTime   int64    `json:"_vvs" jsonschema:"description=Milliseconds since viewing started"`
	ViewPlayTime    *int64   `json:"_vvsp,omitempty"`
	ViewAdPlayTime  *int64   `json:"_vasp,omitempty"`
}

// Collect reads every getter of the strategy into a ping.
func Collect(s strategy.Strategy, at time.Time) Ping {
	var adPosition *string
	if pos, ok := s.AdPosition().Get(); ok {
		code := string(pos)
		adPosition = &code
	}

	return Ping{
		At:              at,
		Strategy:        s.Name(),
		Title:           s.Title().ToPointer(),
		Path:            s.VideoPath(),
		ContentType:     string(s.ContentType()),
		AdPosition:      adPosition,
		TotalDuration:   s.TotalDuration().ToPointer(),
		State:           string(s.State()),
		CurrentPlayTime: s.CurrentPlayTime(),
		Bitrate:         s.Bitrate().ToPointer(),
		ThumbnailPath:   s.ThumbnailPath(),
		AutoplayType:    string(s.AutoplayType()),
		PlayerType:      s.PlayerType().ToPointer(),
		ViewStartTime:   s.ViewStartTime(),
		ViewPlayTime:    s.ViewPlayTime().ToPointer(),
		ViewAdPlayTime:  s.ViewAdPlayTime().ToPointer(),
	}
}

// Schema returns the JSON schema of a ping record.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&Ping{})
}

package session

import (
	"context"
	"time"

	"github.com/vidping/vidping/log"
	"github.com/vidping/vidping/player"
)

// Play applies the session entries to the player, honouring their timing scaled by speed.
// A speed of zero or less applies every entry immediately.
// It returns the context error if the context ends first.
func Play(ctx context.Context, s *Session, p *player.Scripted, speed float64) error {
	start := time.Now()

	for _, entry := range s.Entries {
		if speed > 0 {
			due := start.Add(time.Duration(float64(entry.Offset()) / speed))
			if err := sleepUntil(ctx, due); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		apply(p, entry)
	}

	return nil
}

func apply(p *player.Scripted, entry Entry) {
	if entry.Config != nil {
		p.SetConfig(entry.Config)
	}

	if entry.Props != nil {
		p.Set(*entry.Props)
	}

	if entry.IsEvent() {
		log.Tracef("replay: %s at %dms", entry.Name, entry.At)
		p.Emit(player.Event{Name: entry.Name, Args: entry.Args})
	}
}

func sleepUntil(ctx context.Context, due time.Time) error {
	wait := time.Until(due)
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

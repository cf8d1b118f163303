package strategy

import (
	"strings"

	"github.com/vidping/vidping/log"
	"github.com/vidping/vidping/player"
)

// anvatoMarker identifies the Anvato player's content domain in its base URL.
const anvatoMarker = "up.anv.bz"

// Verify reports whether the player is an Anvato player this strategy can track.
// A player whose configuration cannot be read, for whatever reason, does not match.
func Verify(p player.Player) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("verify: unreadable player config: %v", r)
			ok = false
		}
	}()

	if p == nil {
		return false
	}

	baseURL, isString := p.Config()[player.ConfigBaseURL].(string)
	return isString && strings.Contains(baseURL, anvatoMarker)
}

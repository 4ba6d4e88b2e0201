package marquee

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy selects how frames are produced during playback
type Strategy uint8

const (
	// Precomputed renders every frame before the first is shown and
	// replays them from one buffer
	Precomputed Strategy = iota
	// Streaming renders each frame right before it is written
	Streaming
)

func (s Strategy) String() string {
	switch s {
	case Precomputed:
		return "precomputed"
	case Streaming:
		return "streaming"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy accepts "precomputed" / "buffered" or "streaming" / "stream"
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "precomputed", "buffered", "":
		return Precomputed, nil
	case "streaming", "stream":
		return Streaming, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

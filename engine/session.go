package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

type GameType int

const (
	GameTypeHuman GameType = iota
	GameTypeBrain
	GameTypeTournament
	GameTypeNetwork
)

// Session records the parameters the manager communicates through INFO.
// The search consumes TimeoutTurn when deriving its deadline; the rest is
// recorded for future use.
type Session struct {
	TimeoutTurn  time.Duration
	TimeoutMatch time.Duration
	MaxMemory    uint64
	TimeLeft     time.Duration
	GameType     GameType
	Rule         int
	EvaluateX    int
	EvaluateY    int
	Folder       string
}

// Apply updates one setting from an INFO key/value pair. An unknown key is
// an error; a value that fails to parse is too.
func (s *Session) Apply(key, value string) error {
	switch key {
	case "timeout_turn":
		return applyMillis(key, value, &s.TimeoutTurn)
	case "timeout_match":
		return applyMillis(key, value, &s.TimeoutMatch)
	case "time_left":
		return applyMillis(key, value, &s.TimeLeft)
	case "max_memory":
		limit, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value %q", key, value)
		}
		if total := memory.TotalMemory(); limit > total {
			log.Warn().
				Uint64("limit", limit).
				Uint64("total", total).
				Msg("manager memory ceiling exceeds physical memory")
		}
		s.MaxMemory = limit
		return nil
	case "game_type":
		n, err := strconv.Atoi(value)
		if err != nil || n < int(GameTypeHuman) || n > int(GameTypeNetwork) {
			return fmt.Errorf("invalid game_type value %q", value)
		}
		s.GameType = GameType(n)
		return nil
	case "rule":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid rule value %q", value)
		}
		s.Rule = n
		return nil
	case "evaluate":
		x, y, err := parseCoordinates(value)
		if err != nil {
			return fmt.Errorf("invalid evaluate value %q", value)
		}
		s.EvaluateX, s.EvaluateY = x, y
		return nil
	case "folder":
		s.Folder = value
		return nil
	default:
		return fmt.Errorf("unknown INFO key %q", key)
	}
}

func applyMillis(key, value string, dst *time.Duration) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid %s value %q", key, value)
	}
	*dst = time.Duration(n) * time.Millisecond
	return nil
}

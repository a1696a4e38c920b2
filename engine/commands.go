package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Epitech-CI/Gomoku/game"
	"github.com/Epitech-CI/Gomoku/searcher"
)

type command struct {
	keyword string
	handler func(payload string)
}

// commandTable builds the immutable keyword table, ordered longest keyword
// first so that prefix matching can never pick a shorter keyword over a
// longer one that also matches.
func (b *Brain) commandTable() []command {
	cmds := []command{
		{keyword: "START", handler: b.handleStart},
		{keyword: "RECSTART", handler: b.handleRecstart},
		{keyword: "RESTART", handler: b.handleRestart},
		{keyword: "TURN", handler: b.handleTurn},
		{keyword: "BEGIN", handler: b.handleBegin},
		{keyword: "BOARD", handler: b.handleBoard},
		{keyword: "DONE", handler: b.handleDone},
		{keyword: "PLAY", handler: b.handlePlay},
		{keyword: "TAKEBACK", handler: b.handleTakeback},
		{keyword: "INFO", handler: b.handleInfo},
		{keyword: "END", handler: b.handleEnd},
		{keyword: "ABOUT", handler: b.handleAbout},
		{keyword: "ERROR", handler: b.handleNoop},
		{keyword: "UNKNOWN", handler: b.handleNoop},
		{keyword: "MESSAGE", handler: b.handleNoop},
		{keyword: "DEBUG", handler: b.handleNoop},
		{keyword: "SUGGEST", handler: b.handleNoop},
		{keyword: "SWAP2BOARD", handler: b.handleNoop},
	}
	sort.SliceStable(cmds, func(i, j int) bool {
		if len(cmds[i].keyword) != len(cmds[j].keyword) {
			return len(cmds[i].keyword) > len(cmds[j].keyword)
		}
		return cmds[i].keyword < cmds[j].keyword
	})
	return cmds
}

func (b *Brain) handleStart(payload string) {
	size, err := strconv.Atoi(strings.TrimSpace(payload))
	if err != nil {
		b.emitter.Error("failed to parse START payload %q", strings.TrimSpace(payload))
		return
	}
	if size < b.cfg.MinBoardSize {
		b.emitter.Error("invalid board size %d, minimum is %d", size, b.cfg.MinBoardSize)
		return
	}
	b.board.Resize(size, size)
	b.emitter.OK()
}

func (b *Brain) handleRecstart(payload string) {
	width, height, err := parseCoordinates(payload)
	if err != nil {
		b.emitter.Error("failed to parse RECSTART payload %q", strings.TrimSpace(payload))
		return
	}
	if width < b.cfg.MinBoardSize || height < b.cfg.MinBoardSize {
		b.emitter.Error("invalid board size %dx%d, minimum is %d", width, height, b.cfg.MinBoardSize)
		return
	}
	b.board.Resize(width, height)
	b.emitter.OK()
	b.emitter.Debug(fmt.Sprintf("playing on a %dx%d board", width, height))
}

func (b *Brain) handleRestart(payload string) {
	b.board.Clear()
	b.emitter.OK()
}

func (b *Brain) handleTurn(payload string) {
	x, y, err := parseCoordinates(payload)
	if err != nil {
		b.emitter.Error("failed to parse TURN payload %q", strings.TrimSpace(payload))
		return
	}
	if !b.board.InBounds(x, y) {
		b.emitter.Error("coordinates (%d,%d) out of range", x, y)
		return
	}
	b.board.Set(x, y, game.Opponent)
	b.reply()
}

func (b *Brain) handleBegin(payload string) {
	b.reply()
}

// handleBoard only flips the dispatcher into the bulk-load sub-state; the
// entries that follow bypass the command table entirely.
func (b *Brain) handleBoard(payload string) {
	b.state = stateLoadingBoard
}

func (b *Brain) handleDone(payload string) {
	b.state = stateIdle
	b.reply()
}

func (b *Brain) handlePlay(payload string) {
	x, y, err := parseCoordinates(payload)
	if err != nil {
		b.emitter.Error("failed to parse PLAY payload %q", strings.TrimSpace(payload))
		return
	}
	if !b.board.InBounds(x, y) {
		b.emitter.Error("coordinates (%d,%d) out of range", x, y)
		return
	}
	if b.board.At(x, y) != game.Empty {
		b.emitter.Error("cell (%d,%d) is already occupied", x, y)
		return
	}
	b.board.Set(x, y, game.Self)
	b.emitter.Coordinate(x, y)
}

func (b *Brain) handleTakeback(payload string) {
	x, y, err := parseCoordinates(payload)
	if err != nil {
		b.emitter.Error("failed to parse TAKEBACK payload %q", strings.TrimSpace(payload))
		return
	}
	if !b.board.InBounds(x, y) {
		b.emitter.Error("coordinates (%d,%d) out of range", x, y)
		return
	}
	b.board.Set(x, y, game.Empty)
}

func (b *Brain) handleInfo(payload string) {
	trimmed := strings.TrimSpace(payload)
	key, value, found := strings.Cut(trimmed, " ")
	if !found {
		b.emitter.Error("failed to parse INFO payload %q", trimmed)
		return
	}
	if err := b.session.Apply(key, strings.TrimSpace(value)); err != nil {
		b.emitter.Error("%v", err)
	}
}

func (b *Brain) handleEnd(payload string) {
	b.running = false
}

func (b *Brain) handleAbout(payload string) {
	b.emitter.Line(b.cfg.About())
}

// handleNoop covers the commands accepted purely for protocol symmetry.
func (b *Brain) handleNoop(payload string) {}

// applyBoardEntry consumes one "x,y,owner" line of the bulk-load sequence.
// A bad entry is reported and skipped; entries already applied stand, the
// sequence is not transactional.
func (b *Brain) applyBoardEntry(entry string) {
	fields := strings.Split(strings.TrimSpace(entry), ",")
	if len(fields) != 3 {
		b.emitter.Error("failed to parse board entry %q", strings.TrimSpace(entry))
		return
	}
	x, errX := strconv.Atoi(strings.TrimSpace(fields[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(fields[1]))
	owner, errOwner := strconv.Atoi(strings.TrimSpace(fields[2]))
	if errX != nil || errY != nil || errOwner != nil {
		b.emitter.Error("failed to parse board entry %q", strings.TrimSpace(entry))
		return
	}
	if !b.board.InBounds(x, y) {
		b.emitter.Error("board entry (%d,%d) out of range", x, y)
		return
	}
	cell, ok := game.CellFromOwner(owner)
	if !ok {
		b.emitter.Error("invalid owner %d in board entry", owner)
		return
	}
	b.board.Set(x, y, cell)
	if e := log.Debug(); e.Enabled() {
		e.Msg("board after entry\n" + b.board.String())
	}
}

// reply runs the search for the engine's move, applies it to the board and
// emits it. The search deadline derives from the manager's per-turn
// timeout, minus a safety margin for protocol overhead.
func (b *Brain) reply() {
	options := []searcher.Option{searcher.WithDepth(b.cfg.SearchDepth)}
	if b.session.TimeoutTurn > 0 {
		budget := b.session.TimeoutTurn - b.cfg.TurnMargin()
		if budget < time.Millisecond {
			budget = time.Millisecond
		}
		options = append(options, searcher.WithDeadline(time.Now().Add(budget)))
	}
	result := searcher.New(options...).FindBestMove(b.board)
	if result.Move == searcher.NoMove {
		b.emitter.Error("search produced no move")
		return
	}
	x, y := b.board.XY(result.Move)
	b.board.Set(x, y, game.Self)
	b.emitter.Coordinate(x, y)
}

// parseCoordinates parses a comma-separated integer pair such as "10,12".
func parseCoordinates(payload string) (int, int, error) {
	first, second, found := strings.Cut(strings.TrimSpace(payload), ",")
	if !found {
		return 0, 0, fmt.Errorf("expected two comma-separated values, got %q", payload)
	}
	x, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid first value %q", first)
	}
	y, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid second value %q", second)
	}
	return x, y, nil
}

package engine

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Epitech-CI/Gomoku/config"
	"github.com/Epitech-CI/Gomoku/game"
)

// protocolState is the dispatcher's sub-state: idle command matching, or
// consuming the multi-line BOARD ... DONE bulk-load sequence.
type protocolState int

const (
	stateIdle protocolState = iota
	stateLoadingBoard
)

// Brain owns the board and all search state. It is the single consumer of
// the ingestion queue: one command runs to completion, search included,
// before the next queued line is looked at.
type Brain struct {
	cfg     *config.Config
	board   *game.Board
	session *Session
	emitter *Emitter

	commands []command
	state    protocolState
	running  bool
}

func New(cfg *config.Config, out io.Writer) *Brain {
	b := &Brain{
		cfg:     cfg,
		board:   game.NewBoard(cfg.MinBoardSize, cfg.MinBoardSize),
		session: &Session{},
		emitter: NewEmitter(out),
		state:   stateIdle,
	}
	b.commands = b.commandTable()
	return b
}

// Run processes the protocol until an END command, end of input, or a read
// failure. The reader goroutine and the dispatcher share nothing but the
// line channel.
func (b *Brain) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string, lineQueueSize)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ingest(ctx, in, lines)
	})
	g.Go(func() error {
		defer cancel()
		return b.dispatch(ctx, lines)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (b *Brain) dispatch(ctx context.Context, lines <-chan string) error {
	b.running = true
	for b.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				log.Info().Msg("input stream closed")
				return nil
			}
			b.process(line)
		}
	}
	log.Info().Msg("received END, shutting down")
	return nil
}

// process handles one raw line, terminator included.
func (b *Brain) process(raw string) {
	payload, terminated := stripTerminator(raw)
	if !terminated {
		log.Warn().Str("line", raw).Msg("rejecting line without terminator")
		b.emitter.Error("malformed line: missing terminator")
		return
	}
	if payload == "" {
		return
	}

	if b.state == stateLoadingBoard {
		if strings.HasPrefix(payload, "DONE") {
			b.state = stateIdle
			b.handleDone(strings.TrimPrefix(payload, "DONE"))
			return
		}
		b.applyBoardEntry(payload)
		return
	}

	for _, cmd := range b.commands {
		if strings.HasPrefix(payload, cmd.keyword) {
			cmd.handler(payload[len(cmd.keyword):])
			return
		}
	}
	b.emitter.Unknown(payload)
}

// stripTerminator removes one trailing CR/LF sequence. A line carrying no
// terminator at all arrives only when the stream was cut mid-line; it is
// malformed and must be rejected, not interpreted.
func stripTerminator(raw string) (string, bool) {
	trimmed := strings.TrimRight(raw, "\r\n")
	if trimmed == raw {
		return raw, false
	}
	return trimmed, true
}

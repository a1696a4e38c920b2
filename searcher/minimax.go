package searcher

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Epitech-CI/Gomoku/game"
)

// NoMove is the sentinel returned when a search node produced no move
// (terminal position, depth exhausted, stalemate). Callers must check it
// before applying or emitting a result; it is never a valid index.
const NoMove = -1

// WinScore dominates every pattern score the evaluator can produce. Wins
// found higher in the tree carry a small depth bonus so faster wins rank
// above slower ones.
const WinScore = 1_000_000_000

// DefaultDepth is the ply count used when no depth option is given. Every
// trigger (TURN, DONE, BEGIN) searches at the same configured depth.
const DefaultDepth = 3

// Result pairs a minimax score with the cell index that produced it.
type Result struct {
	Score int
	Move  int
}

type Option func(m *Minimax)

// Minimax explores candidate moves with alpha-beta pruning, mutating the
// board in place and undoing each trial move before returning. It never
// copies the board.
type Minimax struct {
	depth    int
	deadline time.Time

	expired bool
	metrics collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithDeadline sets the wall-clock instant past which the search stops
// descending and returns the best move found so far. The zero time means
// no budget.
func WithDeadline(deadline time.Time) Option {
	return func(m *Minimax) {
		m.deadline = deadline
	}
}

func New(options ...Option) *Minimax {
	m := &Minimax{depth: DefaultDepth}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindBestMove runs a full-window search for the engine's next move. The
// board is restored to its input state before returning.
func (m *Minimax) FindBestMove(b *game.Board) Result {
	m.expired = false
	m.metrics.start(m.depth)
	result := m.search(b, m.depth, true, math.MinInt, math.MaxInt)
	metric := m.metrics.complete(m.expired)
	log.Debug().
		Int64("nodes", metric.Nodes).
		Int64("cutoffs", metric.Cutoffs).
		Int("depth", metric.Depth).
		Bool("timed_out", metric.TimedOut).
		Dur("elapsed", metric.Elapsed).
		Int("score", result.Score).
		Msg("search finished")
	return result
}

func (m *Minimax) search(b *game.Board, depth int, maximizing bool, alpha, beta int) Result {
	m.metrics.addNode()

	switch {
	case game.HasFiveInRow(b, game.Self):
		return Result{Score: WinScore + depth, Move: NoMove}
	case game.HasFiveInRow(b, game.Opponent):
		return Result{Score: -(WinScore + depth), Move: NoMove}
	case depth == 0 || b.Full():
		return Result{Score: game.Evaluate(b), Move: NoMove}
	}

	candidates := game.Candidates(b)
	if len(candidates) == 0 {
		return Result{Score: 0, Move: NoMove}
	}

	if maximizing {
		best := Result{Score: math.MinInt, Move: NoMove}
		for _, move := range candidates {
			if m.timedOut() {
				break
			}
			b.SetIndex(move, game.Self)
			eval := m.search(b, depth-1, false, alpha, beta).Score
			b.SetIndex(move, game.Empty)
			if eval > best.Score {
				best = Result{Score: eval, Move: move}
			}
			if eval > alpha {
				alpha = eval
			}
			if beta <= alpha {
				m.metrics.addCutoff()
				break
			}
		}
		if best.Move == NoMove {
			best.Move = candidates[0]
		}
		return best
	}

	best := Result{Score: math.MaxInt, Move: NoMove}
	for _, move := range candidates {
		if m.timedOut() {
			break
		}
		b.SetIndex(move, game.Opponent)
		eval := m.search(b, depth-1, true, alpha, beta).Score
		b.SetIndex(move, game.Empty)
		if eval < best.Score {
			best = Result{Score: eval, Move: move}
		}
		if eval < beta {
			beta = eval
		}
		if beta <= alpha {
			m.metrics.addCutoff()
			break
		}
	}
	if best.Move == NoMove {
		best.Move = candidates[0]
	}
	return best
}

// timedOut samples the wall clock between candidate moves; once the
// deadline has passed it stays true for the rest of the search, so every
// ply unwinds with its best move so far.
func (m *Minimax) timedOut() bool {
	if m.deadline.IsZero() {
		return false
	}
	if !m.expired && time.Now().After(m.deadline) {
		m.expired = true
	}
	return m.expired
}

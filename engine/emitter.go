package engine

import (
	"fmt"
	"io"
	"sync"
)

// Emitter serializes protocol responses. Every outgoing line goes through
// the same mutex so lines stay atomic against any other concurrent writer.
type Emitter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewEmitter(out io.Writer) *Emitter {
	return &Emitter{out: out}
}

// Line writes one newline-terminated response.
func (e *Emitter) Line(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintln(e.out, s)
}

func (e *Emitter) OK() {
	e.Line("OK")
}

func (e *Emitter) Error(format string, args ...any) {
	e.Line("ERROR " + fmt.Sprintf(format, args...))
}

func (e *Emitter) Unknown(raw string) {
	e.Line("UNKNOWN " + raw)
}

func (e *Emitter) Message(msg string) {
	e.Line("MESSAGE " + msg)
}

func (e *Emitter) Debug(msg string) {
	e.Line("DEBUG " + msg)
}

// Coordinate emits the engine's move as a zero-based "x,y" pair.
func (e *Emitter) Coordinate(x, y int) {
	e.Line(fmt.Sprintf("%d,%d", x, y))
}

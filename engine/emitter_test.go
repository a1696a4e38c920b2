package engine

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitterFormats(t *testing.T) {
	var out bytes.Buffer
	e := NewEmitter(&out)

	e.OK()
	e.Coordinate(3, 14)
	e.Error("bad payload %q", "x")
	e.Unknown("FOO")
	e.Message("hi")
	e.Debug("trace")

	want := "OK\n3,14\nERROR bad payload \"x\"\nUNKNOWN FOO\nMESSAGE hi\nDEBUG trace\n"
	require.Equal(t, want, out.String())
}

func TestEmitterKeepsLinesAtomic(t *testing.T) {
	var out bytes.Buffer
	e := NewEmitter(&out)

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				e.Line(fmt.Sprintf("writer-%d-line-%d", w, i))
			}
		}(w)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, writers*perWriter)
	for _, line := range lines {
		require.Regexp(t, `^writer-\d+-line-\d+$`, line, "interleaved write detected")
	}
}

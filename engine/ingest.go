package engine

import (
	"bufio"
	"context"
	"errors"
	"io"
)

// lineQueueSize bounds the hand-off channel between the reader and the
// dispatcher. The manager waits for a reply before sending gameplay
// commands, so the queue only ever holds a bulk-load burst.
const lineQueueSize = 128

// ingest reads raw lines from in and pushes them onto lines until the
// stream ends or ctx is cancelled. Line terminators are preserved so the
// dispatcher can reject unterminated input; content is never interpreted
// here. The channel is closed on return so the dispatcher can observe
// shutdown instead of blocking forever.
func ingest(ctx context.Context, in io.Reader, lines chan<- string) error {
	defer close(lines)

	raw := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		reader := bufio.NewReader(in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case raw <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line := <-raw:
			select {
			case lines <- line:
			case <-ctx.Done():
				return ctx.Err()
			}
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

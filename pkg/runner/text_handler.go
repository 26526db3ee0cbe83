package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// IOHandler defines the input strategy for the Runner. Implementations
// print the prompt and block until a line arrives, the stream ends, or
// the context is cancelled.
type IOHandler interface {
	Input(ctx context.Context, prompt string) (string, error)
}

// TextHandler reads lines from a reader behind a pump goroutine, so a
// blocked read can lose the race against context cancellation (Ctrl+C
// while waiting at the prompt).
type TextHandler struct {
	Reader *bufio.Reader
	Writer io.Writer

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			// Backoff to avoid spinning on a persistently failing reader
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// Input prints the prompt (no trailing newline) and waits for the next
// line. The returned line is trimmed of its newline and sanitized; a
// sanitizer rejection is a command-local error, not end-of-input.
func (h *TextHandler) Input(ctx context.Context, prompt string) (string, error) {
	h.initPump()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		fmt.Fprint(h.Writer, prompt)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-h.inputChan:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return SanitizeInput(strings.TrimRight(res.text, "\r\n"))
	}
}

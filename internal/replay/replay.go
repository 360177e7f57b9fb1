// Package replay drives the calculator from a key script and prints one
// transcript line per accepted key. It is the presentation layer used when
// there is no terminal to draw on.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/rail44/calc/internal/calculator"
	"github.com/rail44/calc/internal/input"
)

// transcript presents projections as text lines tagged with the key that
// caused them.
type transcript struct {
	w   io.Writer
	key string
	err error
}

func (t *transcript) Present(p calculator.Projection) {
	if t.err != nil {
		return
	}
	line := fmt.Sprintf("%-9s| %s", t.key, p.Display)
	if p.Indicator != "" {
		line += " | " + p.Indicator
	}
	_, t.err = fmt.Fprintln(t.w, line)
}

// Run reads a key script from r line by line, dispatching each key as soon as
// its line arrives, and writes the transcript to w. Unrecognized keys are
// skipped without output.
func Run(r io.Reader, w io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	t := &transcript{w: w}
	machine := calculator.NewMachine(t, logger)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, key := range input.TokenizeLine(scanner.Text()) {
			e, ok := input.FromKey(key)
			if !ok {
				logger.Debug("ignored key", "key", key)
				continue
			}
			t.key = key
			machine.Dispatch(e)
			if t.err != nil {
				return fmt.Errorf("failed to write transcript: %w", t.err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

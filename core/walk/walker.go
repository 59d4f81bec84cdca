// Package walk drives a resumable, operator-paced traversal of a term list.
// Each term is resolved and displayed, then the walk blocks until the
// operator advances. Any error ends the walk.
package walk

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gaurav-prasanna/glosswalk/core"
)

// Recorder receives every term entry the walk displays.
type Recorder interface {
	Record(entry core.TermEntry)
}

// Walker runs the term walk.
type Walker struct {
	Resolver  core.Resolver
	Presenter core.Presenter
	Advancer  core.Advancer
	Recorder  Recorder // optional
	Logger    *slog.Logger
}

// Run loads terms from r starting at the 1-based position start and walks them.
// A start below 1 fails with core.ErrArgument before anything is read or fetched.
func (w *Walker) Run(ctx context.Context, r io.Reader, start int) error {
	if start < 1 {
		return fmt.Errorf("%w: start position must be at least 1, got %d", core.ErrArgument, start)
	}
	state, err := Load(r, start)
	if err != nil {
		return err
	}
	return w.Walk(ctx, state)
}

// Walk processes the terms of state in order, updating state.CurrentIndex.
func (w *Walker) Walk(ctx context.Context, state *State) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "starting walk",
		"start", state.StartIndex,
		"total", state.TotalCount,
		"remaining", len(state.Terms),
	)

	for i, term := range state.Terms {
		state.CurrentIndex = state.StartIndex + i
		logger.DebugContext(ctx, "processing term", "term", term, "index", state.CurrentIndex)

		if err := w.Presenter.Term(term, state.CurrentIndex, state.TotalCount); err != nil {
			return err
		}

		defs, err := w.Resolver.Resolve(ctx, term)
		if err != nil {
			return fmt.Errorf("term %d/%d %q: %w", state.CurrentIndex, state.TotalCount, term, err)
		}
		for _, def := range defs {
			if err := w.Presenter.Definition(def); err != nil {
				return err
			}
		}

		if w.Recorder != nil {
			w.Recorder.Record(core.TermEntry{
				Term:        term,
				Index:       state.CurrentIndex,
				Total:       state.TotalCount,
				Definitions: defs,
			})
		}

		if err := w.Presenter.Prompt(); err != nil {
			return err
		}
		if err := w.Advancer.Advance(ctx); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "walk finished", "processed", len(state.Terms))
	return nil
}

// TranscriptRecorder collects entries in memory.
type TranscriptRecorder struct {
	Entries []core.TermEntry
}

// Record appends entry.
func (t *TranscriptRecorder) Record(entry core.TermEntry) {
	t.Entries = append(t.Entries, entry)
}

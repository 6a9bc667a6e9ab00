// Package ui renders progress for long-running commands. Steps run
// behind an animated spinner when a terminal is attached and color is
// enabled, and as plain log lines otherwise.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Step is one named unit of work shown to the user while it runs.
type Step struct {
	Title string
	Run   func(ctx context.Context) error
}

// Runner executes steps sequentially with progress feedback.
type Runner interface {
	// Run executes the steps in order. The first failing step aborts
	// the remainder and its error is returned unwrapped.
	Run(ctx context.Context, steps ...Step) error
}

// runnerImpl implements the Runner interface.
type runnerImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewRunner creates a Runner backed by the given theme and headless
// manager. Plain output goes to os.Stdout.
func NewRunner(theme *Theme, hm *HeadlessManager) Runner {
	return &runnerImpl{theme: theme, headless: hm, writer: os.Stdout}
}

// newRunnerImpl creates a runnerImpl with a custom writer (for testing).
func newRunnerImpl(theme *Theme, hm *HeadlessManager, w io.Writer) *runnerImpl {
	return &runnerImpl{theme: theme, headless: hm, writer: w}
}

// Run executes the steps headless or behind a spinner.
func (r *runnerImpl) Run(ctx context.Context, steps ...Step) error {
	if len(steps) == 0 {
		return nil
	}
	if r.headless.IsHeadless() || r.theme.NoColor {
		return r.runHeadless(ctx, steps)
	}
	return r.runInteractive(ctx, steps)
}

// runHeadless prints one plain line per step.
func (r *runnerImpl) runHeadless(ctx context.Context, steps []Step) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(r.writer, "%s\n", stepTitle(i, len(steps), step.Title))
		if err := step.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

// runInteractive drives one spinner across all steps.
func (r *runnerImpl) runInteractive(ctx context.Context, steps []Step) error {
	sp := newInteractiveSpinner(r.theme, stepTitle(0, len(steps), steps[0].Title))
	defer sp.Stop()

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			sp.SetTitle(stepTitle(i, len(steps), step.Title))
		}
		if err := step.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

// stepTitle prefixes multi-step titles with a [current/total] counter.
func stepTitle(i, total int, title string) string {
	if total <= 1 {
		return title
	}
	return fmt.Sprintf("[%d/%d] %s", i+1, total, title)
}

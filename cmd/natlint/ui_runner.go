package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"natlint/internal/driver"
	"natlint/internal/ui"
)

type lintOutcome struct {
	result *driver.Result
	err    error
}

// runWithUI runs the linter in the background while a Bubble Tea program
// renders its progress on stderr.
func runWithUI(ctx context.Context, title string, opts driver.Options) (*driver.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan lintOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.Run(ctx, optsCopy)
		outcomeCh <- lintOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	final, uiErr := program.Run()
	if uiErr != nil || ui.Interrupted(final) {
		cancel()
	}
	// The run may still be sending events after the view is gone.
	go func() {
		for range events {
		}
	}()

	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/rail44/calc/internal/config"
	"github.com/rail44/calc/internal/log"
	"github.com/rail44/calc/internal/replay"
)

// ProgramOptions contains options for creating a Program
type ProgramOptions struct {
	Plain  bool // Use the plain replay presenter instead of the TUI
	Config *config.Config
}

// Program runs the calculator either as a TUI or, when stdin/stdout is not a
// terminal or plain mode is requested, as a line-oriented replay of stdin.
type Program struct {
	model      *Model
	teaProgram *tea.Program
	logger     *slog.Logger
	config     *config.Config
	isTerminal bool // Whether stdin and stdout are terminals
	plain      bool // Whether to use plain text output
}

// NewProgramWithOptions creates a new program with specified options
func NewProgramWithOptions(opts ProgramOptions) *Program {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))

	p := &Program{
		config:     cfg,
		isTerminal: isTerminal,
		plain:      opts.Plain || cfg.Plain,
	}
	if !p.IsTUIEnabled() {
		return p
	}

	// Warnings are shown in the footer; everything else goes to the log
	// file, if any.
	p.logger = log.Tee(func(r slog.Record) {
		msg := logMsg{entry: newLogEntry(r)}
		// Send blocks until the event loop is running
		go p.teaProgram.Send(msg)
	}, slog.LevelWarn)

	p.model = NewModel(cfg.Theme, p.logger)
	p.teaProgram = tea.NewProgram(p.model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	return p
}

// IsTerminal returns whether the program is running in a terminal
func (p *Program) IsTerminal() bool {
	return p.isTerminal
}

// IsTUIEnabled returns whether the TUI is enabled
func (p *Program) IsTUIEnabled() bool {
	return p.isTerminal && !p.plain
}

// Run blocks until the user quits the TUI or stdin is exhausted in plain mode.
func (p *Program) Run(ctx context.Context) error {
	if !p.IsTUIEnabled() {
		log.Debug("running in plain mode", "terminal", p.isTerminal)
		return replay.Run(os.Stdin, os.Stdout, log.Logger())
	}

	closeLog, err := p.redirectLog()
	if err != nil {
		return err
	}
	defer closeLog()

	if p.config.Path != "" {
		watcher, err := config.NewWatcher(p.config.Path, p.reloadTheme)
		if err != nil {
			p.logger.Warn("config hot reload disabled", "error", err)
		} else {
			defer watcher.Close()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			go watcher.Start(ctx)
		}
	}

	log.Info("calculator started", "config", p.config.Path)
	if _, err := p.teaProgram.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	log.Info("calculator stopped", "display", p.model.State().Display())
	return nil
}

// redirectLog keeps log output off the alt screen while the TUI runs.
func (p *Program) redirectLog() (func(), error) {
	if p.config.LogFile == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(p.config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func (p *Program) reloadTheme() {
	cfg, err := config.Load(afero.NewOsFs(), p.config.Path, "")
	if err != nil {
		p.logger.Warn("config reload failed", "error", err)
		return
	}
	log.Info("theme reloaded", "path", p.config.Path)
	p.teaProgram.Send(themeMsg{theme: cfg.Theme})
}

// Quit stops the TUI program
func (p *Program) Quit() {
	if p.teaProgram != nil {
		p.teaProgram.Quit()
	}
}

package calculator

import (
	"io"
	"log/slog"
)

// Presenter makes a projection visible. It is called once per accepted event.
type Presenter interface {
	Present(Projection)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(Projection)

func (f PresenterFunc) Present(p Projection) {
	f(p)
}

// Machine owns a State and forwards every transition to its presenter.
type Machine struct {
	state     State
	presenter Presenter
	logger    *slog.Logger
}

// NewMachine creates a machine in the startup state. A nil logger discards
// transition logs.
func NewMachine(presenter Presenter, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Machine{
		state:     New(),
		presenter: presenter,
		logger:    logger,
	}
}

// Dispatch applies e and presents the resulting projection.
func (m *Machine) Dispatch(e Event) Projection {
	prev := m.state
	m.state = m.state.Apply(e)

	m.logger.Debug("transition",
		slog.String("event", e.String()),
		slog.String("from", string(prev.Phase())),
		slog.String("to", string(m.state.Phase())),
		slog.String("display", m.state.display))
	if prev.Err() == nil && m.state.Err() != nil {
		m.logger.Debug("division by zero", slog.String("event", e.String()))
	}

	p := m.state.RenderProjection()
	if m.presenter != nil {
		m.presenter.Present(p)
	}
	return p
}

// Refresh presents the current projection without changing state.
func (m *Machine) Refresh() Projection {
	p := m.state.RenderProjection()
	if m.presenter != nil {
		m.presenter.Present(p)
	}
	return p
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Projection returns the current projection.
func (m *Machine) Projection() Projection {
	return m.state.RenderProjection()
}

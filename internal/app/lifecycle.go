package app

import (
	"errors"
	"sync"

	"github.com/bft-labs/devcap/internal/ports"
)

// ErrInvalidTransition is returned for a loop state change the state
// machine does not allow.
var ErrInvalidTransition = errors.New("devcap: invalid loop state transition")

// State represents the state of the acquisition loop.
type State int

const (
	StateRunning State = iota
	StateDraining
	StateStopped
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateDraining:
		return "Draining"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// EventEmitter is called when the loop state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// Lifecycle is the acquisition loop state machine:
//
//	Running  -> Draining (stop observed, finishing the current step)
//	Running  -> Stopped  (completed or fatal error)
//	Draining -> Stopped
//
// Stopped is terminal.
type Lifecycle struct {
	mu           sync.RWMutex
	state        State
	logger       ports.Logger
	eventEmitter EventEmitter
}

// NewLifecycle creates a state machine in StateRunning.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateRunning,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current loop state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo attempts to transition to a new state.
// Returns ErrInvalidTransition if the transition is not valid.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	l.mu.Lock()
	oldState := l.state

	switch oldState {
	case StateRunning:
		if newState != StateDraining && newState != StateStopped {
			l.mu.Unlock()
			return ErrInvalidTransition
		}
	case StateDraining:
		if newState != StateStopped {
			l.mu.Unlock()
			return ErrInvalidTransition
		}
	default:
		l.mu.Unlock()
		return ErrInvalidTransition
	}

	l.state = newState
	l.mu.Unlock()

	// Emit event outside of lock
	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Debug("loop state transition",
		ports.String("from", oldState.String()),
		ports.String("to", newState.String()),
		ports.String("reason", reason),
	)

	return nil
}

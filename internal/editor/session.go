// Package editor implements the settings form as a UI-independent state
// machine. Hosts feed it edit, save and exit events and render its rows,
// Save enablement and exit label.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/thomaskilian/Teacup-Firmware/internal/settings"
)

var (
	// ErrNotModified is returned by Save while no field has been edited.
	ErrNotModified = errors.New("no changes to save")

	// ErrClosed is returned for events delivered after the session closed.
	ErrClosed = errors.New("editor session is closed")

	// ErrOutOfRange is returned for a row index outside the field table.
	ErrOutOfRange = errors.New("row index out of range")
)

const (
	// ConfirmTitle is the title of the discard-changes prompt.
	ConfirmTitle = "Changes pending"

	// ConfirmMessage is the body of the discard-changes prompt.
	ConfirmMessage = "Are you sure you want to exit?\nThere are changes to your settings that will be lost."
)

// State is the modification state of a session.
type State int

const (
	StateClean State = iota
	StateDirty
)

func (s State) String() string {
	if s == StateDirty {
		return "dirty"
	}
	return "clean"
}

// Result is how a session ended, or ResultPending while it is open.
type Result int

const (
	ResultPending Result = iota
	ResultConfirmed
	ResultCancelled
)

func (r Result) String() string {
	switch r {
	case ResultConfirmed:
		return "confirmed"
	case ResultCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Store is the settings collaborator of a session.
type Store interface {
	Snapshot() settings.Values
	Apply(settings.Values)
	Save(ctx context.Context) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(title, message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(title, message string) bool

func (f ConfirmFunc) Confirm(title, message string) bool {
	return f(title, message)
}

// Row is one labelled text field of the form.
type Row struct {
	Key   string
	Label string
	Help  string
	Text  string
}

// Session is one opening of the settings form.
type Session struct {
	store  Store
	fields []settings.Field
	texts  []string
	state  State
	result Result
}

// New opens a session pre-populated from the store's current values.
func New(store Store) *Session {
	fields := settings.Fields()
	values := store.Snapshot()

	texts := make([]string, len(fields))
	for i, f := range fields {
		texts[i] = f.Get(&values)
	}

	return &Session{
		store:  store,
		fields: fields,
		texts:  texts,
		state:  StateClean,
		result: ResultPending,
	}
}

// Rows returns the form rows in field order.
func (s *Session) Rows() []Row {
	rows := make([]Row, len(s.fields))
	for i, f := range s.fields {
		rows[i] = Row{Key: f.Key, Label: f.Label, Help: f.Help, Text: s.texts[i]}
	}
	return rows
}

// Len returns the number of rows.
func (s *Session) Len() int {
	return len(s.fields)
}

// Text returns the current text of row i.
func (s *Session) Text(i int) (string, error) {
	if i < 0 || i >= len(s.texts) {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	return s.texts[i], nil
}

// Edit records an edit event on row i. Any edit marks the session dirty,
// even one that leaves the text unchanged.
func (s *Session) Edit(i int, text string) error {
	if s.Closed() {
		return ErrClosed
	}
	if i < 0 || i >= len(s.texts) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}

	s.texts[i] = text
	s.state = StateDirty
	return nil
}

// State returns the modification state.
func (s *Session) State() State {
	return s.state
}

// Modified reports whether any field has been edited.
func (s *Session) Modified() bool {
	return s.state == StateDirty
}

// SaveEnabled reports whether the Save action is available.
func (s *Session) SaveEnabled() bool {
	return !s.Closed() && s.state == StateDirty
}

// ExitLabel returns the label of the exit action.
func (s *Session) ExitLabel() string {
	if s.state == StateDirty {
		return "Cancel"
	}
	return "Exit"
}

// Save copies every row into the store by field position, saves the
// store and closes the session as confirmed. A store save error is
// returned together with ResultConfirmed: the values are already applied
// in memory and the failure has been reported by the store.
func (s *Session) Save(ctx context.Context) (Result, error) {
	if s.Closed() {
		return s.result, ErrClosed
	}
	if s.state != StateDirty {
		return ResultPending, ErrNotModified
	}

	values := s.store.Snapshot()
	for i, f := range s.fields {
		f.Set(&values, s.texts[i])
	}
	s.store.Apply(values)

	s.result = ResultConfirmed
	if err := s.store.Save(ctx); err != nil {
		return s.result, fmt.Errorf("failed to save settings: %w", err)
	}
	return s.result, nil
}

// RequestExit handles the exit action. A clean session closes as
// cancelled. A dirty session stays open and reports that the host must
// ask for confirmation and call ConfirmExit.
func (s *Session) RequestExit() (Result, bool) {
	if s.Closed() {
		return s.result, false
	}
	if s.state == StateClean {
		s.result = ResultCancelled
		return s.result, false
	}
	return ResultPending, true
}

// ConfirmExit completes an exit that needed confirmation. Discarding
// closes the session as cancelled without touching the store; declining
// keeps it open and dirty.
func (s *Session) ConfirmExit(discard bool) Result {
	if s.Closed() {
		return s.result
	}
	if discard {
		s.result = ResultCancelled
	}
	return s.result
}

// Exit runs the exit action with a synchronous confirmation prompt.
func (s *Session) Exit(c Confirmer) Result {
	result, needConfirm := s.RequestExit()
	if !needConfirm {
		return result
	}
	return s.ConfirmExit(c.Confirm(ConfirmTitle, ConfirmMessage))
}

// Result returns how the session ended, or ResultPending while open.
func (s *Session) Result() Result {
	return s.result
}

// Closed reports whether the session has ended.
func (s *Session) Closed() bool {
	return s.result != ResultPending
}

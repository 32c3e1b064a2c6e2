package calpdf

// Status messages and fallbacks recorded by StateManager.
const (
	StatusStarting    = "Starting PDF generation..."
	StatusComplete    = "PDF generation complete"
	DefaultStateError = "Unknown error occurred"
)

// Phase is the lifecycle position of a generation run.
type Phase int

// Phases of a generation run. Completed and Failed end a run; Start may be
// called again from any phase.
const (
	PhaseIdle Phase = iota
	PhaseGenerating
	PhaseCompleted
	PhaseFailed
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGenerating:
		return "generating"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// GenerationState is a snapshot of a generation run.
// Error is empty unless the last run failed; a recorded error is never empty.
type GenerationState struct {
	IsGenerating  bool
	CurrentPage   int
	TotalPages    int
	StatusMessage string
	Error         string
}

// HasError reports whether the state carries a failure message.
func (s GenerationState) HasError() bool {
	return s.Error != ""
}

// ProgressFunc receives one notification per rendered page.
// A non-nil error stops notification of later subscribers and is returned
// from UpdateProgress.
type ProgressFunc func(currentPage, totalPages int, message string) error

// StateManager tracks one generation run at a time and fans progress out to
// subscribers. It is reusable: Start begins a new run from any phase.
//
// StateManager is not safe for concurrent use. Subscribers must not call
// UpdateProgress on the manager that is notifying them.
type StateManager struct {
	state       GenerationState
	phase       Phase
	subscribers []ProgressFunc
}

// NewStateManager returns an idle manager. The zero value is equally usable.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// Start begins a run of totalPages pages. Any value is accepted; a
// non-positive count simply means no progress will be reported.
func (m *StateManager) Start(totalPages int) {
	m.phase = PhaseGenerating
	m.state = GenerationState{
		IsGenerating:  true,
		TotalPages:    totalPages,
		CurrentPage:   0,
		StatusMessage: StatusStarting,
	}
}

// UpdateProgress records page progress and notifies subscribers in
// registration order. Outside a run it does nothing and returns nil.
// The first subscriber error is returned as is; remaining subscribers are
// skipped and the recorded progress is kept.
func (m *StateManager) UpdateProgress(currentPage int, message string) error {
	if m.phase != PhaseGenerating {
		return nil
	}
	m.state.CurrentPage = currentPage
	m.state.StatusMessage = message

	total := m.state.TotalPages
	for _, fn := range m.subscribers {
		if err := fn(currentPage, total, message); err != nil {
			return err
		}
	}
	return nil
}

// Complete ends the current run successfully. Page counters and the last
// status message are left as they were. Outside a run it does nothing.
func (m *StateManager) Complete() {
	if m.phase != PhaseGenerating {
		return
	}
	m.phase = PhaseCompleted
	m.state.IsGenerating = false
}

// Fail ends the current run with message, or DefaultStateError when message
// is empty. It may be called in any phase.
func (m *StateManager) Fail(message string) {
	if message == "" {
		message = DefaultStateError
	}
	m.phase = PhaseFailed
	m.state.IsGenerating = false
	m.state.Error = message
	m.state.StatusMessage = ""
}

// OnProgress registers fn for progress notifications. Registrations cannot
// be removed. A nil fn is ignored.
func (m *StateManager) OnProgress(fn ProgressFunc) {
	if fn == nil {
		return
	}
	m.subscribers = append(m.subscribers, fn)
}

// State returns a copy of the current state.
func (m *StateManager) State() GenerationState {
	return m.state
}

// Phase returns the lifecycle phase of the current run.
func (m *StateManager) Phase() Phase {
	return m.phase
}

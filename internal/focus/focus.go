// Package focus decides where keyboard focus goes after a state change.
// Each tracker keeps the value it saw on the previous event and reports a
// Target only on the transitions it cares about.
package focus

type Kind int

const (
	None Kind = iota
	Heading
	RenameInput
	EditButton
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case RenameInput:
		return "rename-input"
	case EditButton:
		return "edit-button"
	default:
		return "none"
	}
}

type Target struct {
	Kind   Kind
	TaskID string
}

// CountTracker fires when the visible count drops by exactly one between
// two observations. A filter switch that hides one task fires it too.
type CountTracker struct {
	prev int
}

func (c *CountTracker) Observe(count int) (Target, bool) {
	prev := c.prev
	c.prev = count
	if count-prev == -1 {
		return Target{Kind: Heading}, true
	}
	return Target{}, false
}

type EditState int

const (
	Viewing EditState = iota
	Editing
)

// EditMachine tracks one list item's viewing/editing mode.
type EditMachine struct {
	taskID string
	state  EditState
	prev   EditState
}

func NewEditMachine(taskID string) *EditMachine {
	return &EditMachine{taskID: taskID}
}

func (m *EditMachine) TaskID() string {
	return m.taskID
}

func (m *EditMachine) State() EditState {
	return m.state
}

func (m *EditMachine) Editing() bool {
	return m.state == Editing
}

func (m *EditMachine) StartEditing() {
	m.state = Editing
}

// StopEditing covers both save and cancel.
func (m *EditMachine) StopEditing() {
	m.state = Viewing
}

// Settle records the current state as the previous one and reports the
// focus target for the transition, if any. Call it once per event.
func (m *EditMachine) Settle() (Target, bool) {
	prev := m.prev
	m.prev = m.state
	switch {
	case prev == Viewing && m.state == Editing:
		return Target{Kind: RenameInput, TaskID: m.taskID}, true
	case prev == Editing && m.state == Viewing:
		return Target{Kind: EditButton, TaskID: m.taskID}, true
	}
	return Target{}, false
}

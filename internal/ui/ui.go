package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todomatic/internal/config"
	"todomatic/internal/focus"
	"todomatic/internal/logs"
	"todomatic/internal/tasks"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeRename
)

type Model struct {
	store   *tasks.Store
	cfg     config.Config
	cursor  int
	mode    mode
	input   textinput.Model
	rename  textinput.Model
	form    *tasks.EntryForm
	editors map[string]*focus.EditMachine
	editing string
	heading *focus.CountTracker
	focus   focus.Target
	status  string
}

func New(store *tasks.Store, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Width = 40

	ri := textinput.New()
	ri.CharLimit = 256
	ri.Width = 40

	m := Model{
		store:   store,
		cfg:     cfg,
		mode:    modeList,
		input:   ti,
		rename:  ri,
		form:    &tasks.EntryForm{},
		editors: map[string]*focus.EditMachine{},
		heading: &focus.CountTracker{},
		status:  fmt.Sprintf("Press '%s' to add, space to toggle, '%s' to edit, '%s' to delete.", cfg.Keys.Add, cfg.Keys.Edit, cfg.Keys.Delete),
	}
	m.heading.Observe(store.View().Remaining)
	return m
}

func Run(store *tasks.Store, cfg config.Config) error {
	program := tea.NewProgram(New(store, cfg))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			m, cmd = m.updateAddMode(msg)
		case modeRename:
			m, cmd = m.updateRenameMode(msg)
		default:
			m, cmd = m.updateListMode(msg)
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		m.rename.Width = msg.Width - 10
	}
	m.settleFocus()
	return m, cmd
}

func (m Model) updateAddMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.form.SetPending("")
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		m.form.SetPending(m.input.Value())
		if !m.form.Submit(m.store) {
			return m, nil
		}
		all := m.store.Tasks()
		added := all[len(all)-1]
		logs.Logger.Printf("added task %s %q", added.ID, added.Name)
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.status = "Added task"
		if i := indexOf(m.store.View().Visible, added.ID); i >= 0 {
			m.cursor = i
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.form.SetPending(m.input.Value())
		return m, cmd
	}
}

func (m Model) updateRenameMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.cfg.Keys.Cancel:
		m.stopEditing()
		m.status = "Rename cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		id := m.editing
		m.store.Edit(id, m.rename.Value())
		logs.Logger.Printf("renamed task %s to %q", id, m.rename.Value())
		m.stopEditing()
		m.status = "Renamed task"
		return m, nil
	default:
		var cmd tea.Cmd
		m.rename, cmd = m.rename.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	keys := m.cfg.Keys
	visible := m.store.View().Visible
	switch key := msg.String(); key {
	case "ctrl+c", keys.Quit:
		return m, tea.Quit
	case keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, len(visible))
		m.focus = focus.Target{}
	case keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, len(visible))
		m.focus = focus.Target{}
	case keys.Add:
		m.mode = modeAdd
		m.focus = focus.Target{}
		m.status = "Add mode: type a name and press Enter"
		return m, m.input.Focus()
	case keys.NextFilter:
		m.setFilter(m.store.Filter().Next())
	case keys.PrevFilter:
		m.setFilter(m.store.Filter().Prev())
	case "1", "2", "3":
		filters := tasks.Filters()
		m.setFilter(filters[int(key[0]-'1')])
	case keys.Toggle:
		t, ok := m.selected(visible)
		if !ok {
			return m, nil
		}
		m.store.ToggleCompleted(t.ID)
		logs.Logger.Printf("toggled task %s", t.ID)
		m.status = "Toggled task"
	case keys.Delete:
		t, ok := m.selected(visible)
		if !ok {
			return m, nil
		}
		m.store.Delete(t.ID)
		logs.Logger.Printf("deleted task %s", t.ID)
		m.status = fmt.Sprintf("Deleted %q", t.Name)
	case keys.Edit:
		t, ok := m.selected(visible)
		if !ok {
			m.status = "No tasks to edit"
			return m, nil
		}
		m.editorFor(t.ID).StartEditing()
		m.editing = t.ID
		m.mode = modeRename
		m.rename.SetValue("")
		m.rename.Placeholder = t.Name
		m.status = "Rename: enter to save, esc to cancel"
	}
	return m, nil
}

func (m *Model) setFilter(f tasks.Filter) {
	m.store.SetFilter(f)
	m.cursor = 0
	m.focus = focus.Target{}
	m.status = "Showing " + string(f) + " tasks"
}

func (m *Model) stopEditing() {
	if ed, ok := m.editors[m.editing]; ok {
		ed.StopEditing()
	}
	m.editing = ""
	m.mode = modeList
	m.rename.SetValue("")
	m.rename.Blur()
}

func (m *Model) editorFor(id string) *focus.EditMachine {
	ed, ok := m.editors[id]
	if !ok {
		ed = focus.NewEditMachine(id)
		m.editors[id] = ed
	}
	return ed
}

// settleFocus runs once per event: it feeds the new visible count and every
// item's edit state to the focus trackers and applies what they report.
func (m *Model) settleFocus() {
	visible := m.store.View().Visible
	for id := range m.editors {
		if indexOf(visible, id) < 0 {
			delete(m.editors, id)
		}
	}
	m.cursor = clampCursor(m.cursor, len(visible))

	if target, ok := m.heading.Observe(len(visible)); ok {
		m.applyFocus(target, visible)
	}
	for _, t := range visible {
		ed, ok := m.editors[t.ID]
		if !ok {
			continue
		}
		if target, ok := ed.Settle(); ok {
			m.applyFocus(target, visible)
		}
	}
}

func (m *Model) applyFocus(target focus.Target, visible []tasks.Task) {
	m.focus = target
	switch target.Kind {
	case focus.RenameInput:
		m.rename.Focus()
	case focus.EditButton:
		m.rename.Blur()
		if i := indexOf(visible, target.TaskID); i >= 0 {
			m.cursor = i
		}
	}
}

func (m Model) selected(visible []tasks.Task) (tasks.Task, bool) {
	if len(visible) == 0 {
		return tasks.Task{}, false
	}
	return visible[clampCursor(m.cursor, len(visible))], true
}

func (m Model) View() string {
	view := m.store.View()
	var b strings.Builder

	b.WriteString(titleStyle.Render("TodoMatic"))
	b.WriteString("\n\n")

	b.WriteString("What needs to be done?\n")
	if m.mode == modeAdd {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(helpStyle.Render(fmt.Sprintf("press %s to add", m.cfg.Keys.Add)))
	}
	b.WriteString("\n\n")

	b.WriteString(renderFilters(view))
	b.WriteString("\n")

	heading := view.Heading
	if m.focus.Kind == focus.Heading {
		heading = focusStyle.Render(heading)
	} else {
		heading = headingStyle.Render(heading)
	}
	b.WriteString(heading)
	b.WriteString("\n\n")

	b.WriteString(m.renderTaskList(view.Visible))

	if m.mode == modeRename {
		b.WriteString("\n---\n")
		b.WriteString(m.renderRenameForm())
	}

	b.WriteString("\n\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderTaskList(visible []tasks.Task) string {
	var b strings.Builder
	for i, t := range visible {
		cursor := " "
		if m.cursor == i && m.mode == modeList && m.focus.Kind != focus.Heading {
			cursor = ">"
		}

		checkbox := "[ ]"
		name := t.Name
		if t.Completed {
			checkbox = "[x]"
			name = doneStyle.Render(name)
		}

		edit := "Edit"
		if m.focus.Kind == focus.EditButton && m.focus.TaskID == t.ID {
			edit = focusStyle.Render(edit)
		}

		b.WriteString(fmt.Sprintf("%s %s %s  %s  Delete\n", cursor, checkbox, name, edit))
	}
	return b.String()
}

func (m Model) renderRenameForm() string {
	t, ok := m.store.Find(m.editing)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString("New name for " + t.Name)
	b.WriteString("\n")
	b.WriteString(m.rename.View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s Save • %s Cancel", m.cfg.Keys.Confirm, m.cfg.Keys.Cancel))
	return b.String()
}

func renderFilters(view tasks.View) string {
	parts := make([]string, 0, len(view.Filters))
	for _, f := range view.Filters {
		label := "[ " + string(f) + " ]"
		if f == view.Filter {
			label = pressedStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • space toggle • %s edit • %s delete • %s/1-3 filter • %s quit",
		k.Up, k.Down, k.Add, k.Edit, k.Delete, k.NextFilter, k.Quit)
}

func indexOf(list []tasks.Task, id string) int {
	for i, t := range list {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

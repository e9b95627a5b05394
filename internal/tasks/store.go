package tasks

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmptyID     = errors.New("task id is empty")
	ErrDuplicateID = errors.New("duplicate task id")
)

type Task struct {
	ID        string `toml:"id" yaml:"id"`
	Name      string `toml:"name" yaml:"name"`
	Completed bool   `toml:"completed" yaml:"completed"`
}

// IDGenerator returns a value distinct from every value it returned before.
type IDGenerator func() string

func NewIDGenerator() IDGenerator {
	return func() string {
		return "todo-" + uuid.NewString()
	}
}

// Store owns the task sequence and the active filter. Every mutation swaps
// in a freshly built slice, so slices returned by Tasks or View are never
// written to afterwards.
type Store struct {
	tasks  []Task
	filter Filter
	newID  IDGenerator
}

func NewStore(seed []Task, newID IDGenerator) (*Store, error) {
	if newID == nil {
		newID = NewIDGenerator()
	}
	seen := make(map[string]struct{}, len(seed))
	for i, t := range seed {
		if t.ID == "" {
			return nil, fmt.Errorf("seed task %d (%q): %w", i, t.Name, ErrEmptyID)
		}
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("seed task %d: %w: %s", i, ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return &Store{
		tasks:  append([]Task(nil), seed...),
		filter: FilterAll,
		newID:  newID,
	}, nil
}

// Tasks returns the current snapshot. Callers must not modify it.
func (s *Store) Tasks() []Task {
	return s.tasks
}

func (s *Store) Filter() Filter {
	return s.filter
}

func (s *Store) Find(id string) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Add appends a new pending task. The name is expected to be trimmed and
// non-empty already; the entry form enforces that.
func (s *Store) Add(name string) Task {
	t := Task{ID: s.newID(), Name: name}
	next := make([]Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	s.tasks = append(next, t)
	return t
}

func (s *Store) ToggleCompleted(id string) {
	s.update(id, func(t *Task) { t.Completed = !t.Completed })
}

// Edit renames a task. An empty name is stored as given.
func (s *Store) Edit(id, newName string) {
	s.update(id, func(t *Task) { t.Name = newName })
}

func (s *Store) Delete(id string) {
	if _, ok := s.Find(id); !ok {
		return
	}
	next := make([]Task, 0, len(s.tasks)-1)
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.tasks = next
}

// SetFilter panics on a value outside Filters(); callers only pass the
// enumerated names.
func (s *Store) SetFilter(f Filter) {
	if !f.Valid() {
		panic(fmt.Sprintf("tasks: unknown filter %q", string(f)))
	}
	s.filter = f
}

func (s *Store) update(id string, fn func(*Task)) {
	if _, ok := s.Find(id); !ok {
		return
	}
	next := make([]Task, len(s.tasks))
	copy(next, s.tasks)
	for i := range next {
		if next[i].ID == id {
			fn(&next[i])
			break
		}
	}
	s.tasks = next
}

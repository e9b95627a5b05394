package tasks

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func counterIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("todo-%d", n)
	}
}

func newTestStore(t *testing.T, seed ...Task) *Store {
	t.Helper()
	s, err := NewStore(seed, counterIDs())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func names(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Name)
	}
	return out
}

func TestAddAppendsPendingTaskWithFreshID(t *testing.T) {
	s := newTestStore(t, Task{ID: "seed-1", Name: "Eat", Completed: true})

	added := s.Add("Sleep")

	if got := len(s.Tasks()); got != 2 {
		t.Fatalf("expected 2 tasks, got %d", got)
	}
	if added.Completed {
		t.Errorf("new task should not be completed")
	}
	if added.ID == "" || added.ID == "seed-1" {
		t.Errorf("expected fresh id, got %q", added.ID)
	}
	if last := s.Tasks()[1]; last != added {
		t.Errorf("expected new task last, got %+v", last)
	}

	again := s.Add("Repeat")
	if again.ID == added.ID {
		t.Errorf("ids reused: %q", again.ID)
	}
}

func TestDefaultIDGeneratorIsUnique(t *testing.T) {
	gen := NewIDGenerator()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen()
		if !strings.HasPrefix(id, "todo-") {
			t.Fatalf("unexpected id format %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestToggleFlipsOnlyTarget(t *testing.T) {
	s := newTestStore(t,
		Task{ID: "a", Name: "A"},
		Task{ID: "b", Name: "B", Completed: true},
		Task{ID: "c", Name: "C"},
	)
	before := s.Tasks()

	s.ToggleCompleted("b")

	after := s.Tasks()
	if after[1].Completed {
		t.Errorf("expected b to be active after toggle")
	}
	if after[0] != before[0] || after[2] != before[2] {
		t.Errorf("other tasks changed: %+v", after)
	}

	s.ToggleCompleted("b")
	if !s.Tasks()[1].Completed {
		t.Errorf("expected b completed after second toggle")
	}
}

func TestToggleAbsentIDIsNoop(t *testing.T) {
	s := newTestStore(t, Task{ID: "a", Name: "A"})
	before := s.Tasks()

	s.ToggleCompleted("missing")

	if !reflect.DeepEqual(before, s.Tasks()) {
		t.Errorf("collection changed: %+v", s.Tasks())
	}
}

func TestMutationsLeaveSnapshotsUntouched(t *testing.T) {
	s := newTestStore(t, Task{ID: "a", Name: "A"}, Task{ID: "b", Name: "B"})
	snapshot := s.Tasks()

	s.ToggleCompleted("a")
	s.Edit("b", "renamed")
	s.Add("C")
	s.Delete("a")

	want := []Task{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	if !reflect.DeepEqual(snapshot, want) {
		t.Errorf("snapshot mutated: %+v", snapshot)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t, Task{ID: "a", Name: "A"}, Task{ID: "b", Name: "B"})

	s.Delete("a")
	afterFirst := s.Tasks()
	s.Delete("a")

	if got := names(s.Tasks()); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("expected [B], got %v", got)
	}
	if !reflect.DeepEqual(afterFirst, s.Tasks()) {
		t.Errorf("second delete changed the collection")
	}
}

func TestEditChangesOnlyName(t *testing.T) {
	s := newTestStore(t, Task{ID: "a", Name: "A", Completed: true}, Task{ID: "b", Name: "B"})

	s.Edit("a", "Alpha")

	got := s.Tasks()
	if got[0] != (Task{ID: "a", Name: "Alpha", Completed: true}) {
		t.Errorf("unexpected edited task %+v", got[0])
	}
	if got[1] != (Task{ID: "b", Name: "B"}) {
		t.Errorf("unexpected untouched task %+v", got[1])
	}
}

func TestEditAcceptsEmptyName(t *testing.T) {
	s := newTestStore(t, Task{ID: "a", Name: "A"})

	s.Edit("a", "")

	if got := s.Tasks()[0].Name; got != "" {
		t.Errorf("expected empty name, got %q", got)
	}
}

func TestNewStoreRejectsBadSeed(t *testing.T) {
	_, err := NewStore([]Task{{ID: "a"}, {ID: "a"}}, nil)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}

	_, err = NewStore([]Task{{Name: "no id"}}, nil)
	if !errors.Is(err, ErrEmptyID) {
		t.Errorf("expected ErrEmptyID, got %v", err)
	}
}

func TestNewStoreCopiesSeed(t *testing.T) {
	seed := []Task{{ID: "a", Name: "A"}}
	s := newTestStore(t, seed...)

	seed[0].Name = "changed"

	if got := s.Tasks()[0].Name; got != "A" {
		t.Errorf("store aliased the seed slice, got %q", got)
	}
}

func TestSetFilterPanicsOnUnknown(t *testing.T) {
	s := newTestStore(t)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unknown filter")
		}
	}()
	s.SetFilter(Filter("Someday"))
}

func TestBuyMilkScenario(t *testing.T) {
	s := newTestStore(t, Task{ID: "todo-0", Name: "Buy milk"})

	s.ToggleCompleted("todo-0")

	if got := Apply(s.Tasks(), FilterActive); len(got) != 0 {
		t.Errorf("expected no active tasks, got %v", names(got))
	}
	if got := names(Apply(s.Tasks(), FilterCompleted)); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Errorf("expected [Buy milk], got %v", got)
	}
}

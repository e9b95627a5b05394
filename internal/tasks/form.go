package tasks

import "strings"

// EntryForm holds the text typed into the "What needs to be done?" input.
type EntryForm struct {
	pending string
}

func (f *EntryForm) SetPending(name string) {
	f.pending = name
}

func (f *EntryForm) Pending() string {
	return f.pending
}

// Submit adds the pending name to s and clears it. Blank input is dropped
// silently and reported as false.
func (f *EntryForm) Submit(s *Store) bool {
	name := strings.TrimSpace(f.pending)
	if name == "" {
		return false
	}
	s.Add(name)
	f.pending = ""
	return true
}

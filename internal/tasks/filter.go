package tasks

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFilter = errors.New("unknown filter")

type Filter string

const (
	FilterAll       Filter = "All"
	FilterActive    Filter = "Active"
	FilterCompleted Filter = "Completed"
)

var filterOrder = []Filter{FilterAll, FilterActive, FilterCompleted}

var predicates = map[Filter]func(Task) bool{
	FilterAll:       func(Task) bool { return true },
	FilterActive:    func(t Task) bool { return !t.Completed },
	FilterCompleted: func(t Task) bool { return t.Completed },
}

// Filters lists the filter names in display order.
func Filters() []Filter {
	return append([]Filter(nil), filterOrder...)
}

func ParseFilter(s string) (Filter, error) {
	for _, f := range filterOrder {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

func (f Filter) Valid() bool {
	_, ok := predicates[f]
	return ok
}

func (f Filter) Predicate() func(Task) bool {
	p, ok := predicates[f]
	if !ok {
		panic(fmt.Sprintf("tasks: unknown filter %q", string(f)))
	}
	return p
}

func (f Filter) Next() Filter {
	return filterOrder[wrapIndex(f.index()+1, len(filterOrder))]
}

func (f Filter) Prev() Filter {
	return filterOrder[wrapIndex(f.index()-1, len(filterOrder))]
}

func (f Filter) index() int {
	for i, candidate := range filterOrder {
		if candidate == f {
			return i
		}
	}
	return 0
}

// Apply returns the tasks passing f, in their original order.
func Apply(tasks []Task, f Filter) []Task {
	keep := f.Predicate()
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

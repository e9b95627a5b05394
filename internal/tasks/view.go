package tasks

import "fmt"

// View is everything the presentation layer reads for one render.
type View struct {
	Visible   []Task
	Remaining int
	Heading   string
	Filter    Filter
	Filters   []Filter
}

func (s *Store) View() View {
	visible := Apply(s.tasks, s.filter)
	return View{
		Visible:   visible,
		Remaining: len(visible),
		Heading:   RemainingText(len(visible)),
		Filter:    s.filter,
		Filters:   Filters(),
	}
}

func RemainingText(n int) string {
	noun := "tasks"
	if n == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s remaining", n, noun)
}

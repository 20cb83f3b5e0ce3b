package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// taskKind tells the app what a fired task was scheduled for
type taskKind int

const (
	taskClearToast taskKind = iota
	taskDeleteComponent
)

// task is a pending timer owned by the view
type task struct {
	id     int
	kind   taskKind
	target string // component id for delete tasks
}

// taskFiredMsg is delivered by tea.Tick when a task's delay elapses
type taskFiredMsg struct {
	id int
}

// Scheduler hands out cancellable timers. A fired message only counts when
// its task is still live, so cancelled or superseded timers are ignored.
type Scheduler struct {
	nextID int
	live   map[int]task
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{live: make(map[int]task)}
}

// Schedule registers a task and returns its id with the tick command
func (s *Scheduler) Schedule(d time.Duration, kind taskKind, target string) (int, tea.Cmd) {
	s.nextID++
	id := s.nextID
	s.live[id] = task{id: id, kind: kind, target: target}

	return id, tea.Tick(d, func(time.Time) tea.Msg {
		return taskFiredMsg{id: id}
	})
}

// Fire claims the task behind msg. ok is false for stale messages.
func (s *Scheduler) Fire(msg taskFiredMsg) (task, bool) {
	t, ok := s.live[msg.id]
	if ok {
		delete(s.live, msg.id)
	}
	return t, ok
}

// Cancel drops a pending task
func (s *Scheduler) Cancel(id int) {
	delete(s.live, id)
}

// CancelAll drops every pending task
func (s *Scheduler) CancelAll() {
	s.live = make(map[int]task)
}

// Pending reports how many tasks are live
func (s *Scheduler) Pending() int {
	return len(s.live)
}

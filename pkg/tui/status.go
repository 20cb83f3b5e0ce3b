package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusType represents the type of status message
type StatusType int

const (
	StatusTypeSuccess StatusType = iota
	StatusTypeWarning
	StatusTypeInfo
)

// Toast is the transient notification shown at the bottom of the screen
type Toast struct {
	Message string
	Type    StatusType
	Undo    bool // offer the undo key alongside the message
}

// StatusManager shows one toast at a time. A new toast replaces the old
// one and cancels its dismiss timer.
type StatusManager struct {
	scheduler *Scheduler
	duration  time.Duration
	current   *Toast
	taskID    int
}

// NewStatusManager creates a status manager backed by scheduler
func NewStatusManager(scheduler *Scheduler, duration time.Duration) *StatusManager {
	return &StatusManager{scheduler: scheduler, duration: duration}
}

// Show displays toast and schedules its dismissal
func (sm *StatusManager) Show(toast Toast) tea.Cmd {
	if sm.current != nil {
		sm.scheduler.Cancel(sm.taskID)
	}
	sm.current = &toast

	id, cmd := sm.scheduler.Schedule(sm.duration, taskClearToast, "")
	sm.taskID = id
	return cmd
}

// ShowSuccess shows a success message
func (sm *StatusManager) ShowSuccess(message string) tea.Cmd {
	return sm.Show(Toast{Message: message, Type: StatusTypeSuccess})
}

// ShowWarning shows a warning message
func (sm *StatusManager) ShowWarning(message string) tea.Cmd {
	return sm.Show(Toast{Message: message, Type: StatusTypeWarning})
}

// expire clears the toast if id is its current dismiss task
func (sm *StatusManager) expire(id int) {
	if sm.current != nil && sm.taskID == id {
		sm.current = nil
	}
}

// Clear removes the current toast
func (sm *StatusManager) Clear() {
	if sm.current != nil {
		sm.scheduler.Cancel(sm.taskID)
	}
	sm.current = nil
}

// Current returns the visible toast
func (sm *StatusManager) Current() (Toast, bool) {
	if sm.current == nil {
		return Toast{}, false
	}
	return *sm.current, true
}

package notify

import (
	"log"
	"sync"
)

// Kind classifies a notification for the client surface.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notifier is the transient message surface used by services.
// Messages are advisory: they never carry business state.
type Notifier interface {
	Notify(title, description string, kind Kind)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(title, description string, kind Kind) {
	log.Printf("[%s] %s: %s", kind, title, description)
}

// Event is a recorded notification, used by the Recorder.
type Event struct {
	Title       string
	Description string
	Kind        Kind
}

// Recorder captures notifications for tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(title, description string, kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Title: title, Description: description, Kind: kind})
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

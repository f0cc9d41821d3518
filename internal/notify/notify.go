package notify

import (
	"sync"

	applog "ultrapopular/internal/log"
)

type Kind string

const (
	Success Kind = "success"
	Failure Kind = "error"
)

// Notice is one toast shown to the shopper.
type Notice struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Notifier receives fire-and-forget feedback for the shopper.
type Notifier interface {
	Notify(kind Kind, text string)
}

// Feed collects notices raised while handling one request.
type Feed struct {
	mu      sync.Mutex
	notices []Notice
}

func (f *Feed) Notify(kind Kind, text string) {
	f.mu.Lock()
	f.notices = append(f.notices, Notice{Kind: kind, Text: text})
	f.mu.Unlock()
}

// Notices returns what was collected so far, never nil.
func (f *Feed) Notices() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Notice{}, f.notices...)
}

// Log writes notices to the event log.
type Log struct{}

func (Log) Notify(kind Kind, text string) {
	applog.Info(nil, "notify."+string(kind), map[string]any{"text": text})
}

type multi []Notifier

func (m multi) Notify(kind Kind, text string) {
	for _, n := range m {
		n.Notify(kind, text)
	}
}

// Tee fans every notice out to all non-nil notifiers.
func Tee(ns ...Notifier) Notifier {
	out := multi{}
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Discard drops every notice.
var Discard Notifier = multi{}

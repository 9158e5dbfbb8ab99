package live

import (
	"time"

	"flightdeck/internal/hook"
	"flightdeck/internal/platform"
	"flightdeck/internal/poll"
	"flightdeck/internal/stage"
)

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventTask delivers a refreshed task document.
	EventTask EventKind = iota
	// EventHooks delivers a full hook snapshot that replaces the previous one.
	EventHooks
	// EventStageDoc delivers a refreshed stage-status document.
	EventStageDoc
	// EventFetchError reports a failed poll; the prior snapshot stays visible.
	EventFetchError
)

// Source keys used by the watch pipeline's poll sources.
const (
	SourceTask   = "task"
	SourceHooks  = "hooks"
	SourceStages = "stages"
)

// Event carries a UI update payload.
type Event struct {
	Kind     EventKind
	Source   string
	Task     platform.TaskInfo
	Snapshot hook.Snapshot
	Stages   stage.StatusDoc
	Err      string
	At       time.Time
}

// FromPollUpdate translates a poll outcome into a UI event. Unknown source
// keys are dropped.
func FromPollUpdate(u poll.Update) (Event, bool) {
	if u.Err != nil {
		return Event{Kind: EventFetchError, Source: u.Key, Err: u.Err.Error(), At: u.At}, true
	}
	switch u.Key {
	case SourceTask:
		info, ok := u.Snapshot.(platform.TaskInfo)
		if !ok {
			return Event{}, false
		}
		return Event{Kind: EventTask, Source: u.Key, Task: info, At: u.At}, true
	case SourceHooks:
		snap, ok := u.Snapshot.(hook.Snapshot)
		if !ok {
			return Event{}, false
		}
		return Event{Kind: EventHooks, Source: u.Key, Snapshot: snap, At: u.At}, true
	case SourceStages:
		doc, ok := u.Snapshot.(stage.StatusDoc)
		if !ok {
			return Event{}, false
		}
		return Event{Kind: EventStageDoc, Source: u.Key, Stages: doc, At: u.At}, true
	}
	return Event{}, false
}

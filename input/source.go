package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-raycaster/parameter"
)

// EventSource decodes terminal events into commands
// A background poller goroutine owns screen.PollEvent and feeds a buffered channel
type EventSource struct {
	screen tcell.Screen
	keys   *KeyTable
	events chan tcell.Event

	stopOnce sync.Once
	done     chan struct{}
}

// NewEventSource starts polling the screen
func NewEventSource(screen tcell.Screen, keys *KeyTable) *EventSource {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	s := &EventSource{
		screen: screen,
		keys:   keys,
		events: make(chan tcell.Event, parameter.EventQueueSize),
		done:   make(chan struct{}),
	}
	go s.poll()
	return s
}

// poll runs until the screen is finalized or Stop is called
func (s *EventSource) poll() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		default:
			// Queue full: drop rather than stall the poller
			logrus.WithField("event", ev).Debug("input queue full, event dropped")
		}
	}
}

// Next waits up to timeout for one event and decodes it
// Returns CommandNone when nothing arrived in time
func (s *EventSource) Next(timeout time.Duration) Command {
	select {
	case <-s.done:
		return CommandNone
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-s.events:
		return s.keys.Decode(ev)
	case <-timer.C:
		return CommandNone
	case <-s.done:
		return CommandNone
	}
}

// Stop detaches the source; the poller exits on the next event or when the screen is finalized
func (s *EventSource) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

package easel

import (
	"context"
	"sync"
	"time"
)

// Loop serializes input for one Editor and renders once per tick.
//
// Post may be called from any goroutine. Tick drains everything queued so
// far in arrival order, then calls the render step exactly once, so a
// frame never observes a half-applied event.
type Loop struct {
	editor *Editor
	render func(*Editor)

	mu     sync.Mutex
	queue  []Event
	frames uint64
}

// NewLoop returns a loop driving ed. render may be nil.
func NewLoop(ed *Editor, render func(*Editor)) *Loop {
	return &Loop{editor: ed, render: render}
}

// Post queues events for the next tick.
func (l *Loop) Post(evs ...Event) {
	l.mu.Lock()
	l.queue = append(l.queue, evs...)
	l.mu.Unlock()
}

// Pending returns the number of queued events.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Frames returns the number of completed ticks.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Tick dispatches the queued events and runs the render step. It returns
// the number of events handled. Events posted while the tick runs wait
// for the next one.
func (l *Loop) Tick() int {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, ev := range batch {
		l.editor.Dispatch(ev)
	}
	if l.render != nil {
		l.render(l.editor)
	}

	l.mu.Lock()
	l.frames++
	l.mu.Unlock()
	return len(batch)
}

// Run ticks every interval until ctx is done and returns ctx.Err().
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			l.Tick()
		}
	}
}

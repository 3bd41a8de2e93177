// Package scheduler drives the dashboard's periodic refreshes: the
// once-per-minute check that rotates daily content after 00:01, and the
// short-interval poll for fresh task state. Jobs are held in a trigger-time
// heap; recurring jobs re-arm themselves each time they fire.
package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidTriggerTime = errors.New("scheduler: invalid trigger time")
	ErrInvalidInterval    = errors.New("scheduler: interval must be positive")
)

type RefreshKind string

const (
	// KindRotationCheck fires once per minute; the update layer decides
	// whether the daily quote/insight rotation is actually due.
	KindRotationCheck RefreshKind = "rotation-check"
	// KindTaskPoll refetches today's task state at a short fixed interval.
	KindTaskPoll RefreshKind = "task-poll"
	// KindSessionRefresh refetches the coaching-session list.
	KindSessionRefresh RefreshKind = "session-refresh"
)

type RefreshEvent struct {
	ID        string
	Kind      RefreshKind
	TriggerAt time.Time
	Every     time.Duration // zero for one-shot events
}

type queueItem struct {
	event RefreshEvent
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].event.TriggerAt.Before(pq[j].event.TriggerAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	out     chan RefreshEvent
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
	now     func() time.Time
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:  make(priorityQueue, 0),
		out:    make(chan RefreshEvent, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (e *Engine) C() <-chan RefreshEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule queues a one-shot event.
func (e *Engine) Schedule(ev RefreshEvent) error {
	if ev.TriggerAt.IsZero() {
		return ErrInvalidTriggerTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return errors.New("scheduler: engine stopped")
	}

	heap.Push(&e.queue, queueItem{event: ev})
	e.signalWakeup()
	return nil
}

// ScheduleEvery queues a recurring event whose first trigger is one interval
// from now. After each fire the event is re-armed at TriggerAt+Every, so a
// slow consumer delays delivery but never changes the cadence.
func (e *Engine) ScheduleEvery(id string, kind RefreshKind, every time.Duration) error {
	if every <= 0 {
		return ErrInvalidInterval
	}
	return e.Schedule(RefreshEvent{
		ID:        id,
		Kind:      kind,
		TriggerAt: e.now().Add(every),
		Every:     every,
	})
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.TriggerAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(e.now())
			for _, ev := range due {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
				if ev.Every > 0 {
					e.rearm(ev)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) rearm(ev RefreshEvent) {
	next := ev
	next.TriggerAt = ev.TriggerAt.Add(ev.Every)
	// Skip forward if delivery fell more than one interval behind.
	now := e.now()
	for !next.TriggerAt.After(now) {
		next.TriggerAt = next.TriggerAt.Add(ev.Every)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	heap.Push(&e.queue, queueItem{event: next})
	e.signalWakeup()
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (RefreshEvent, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return RefreshEvent{}, false
	}
	return e.queue[0].event, true
}

func (e *Engine) popDue(now time.Time) []RefreshEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]RefreshEvent, 0)
	for len(e.queue) > 0 {
		next := e.queue[0].event
		if next.TriggerAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(queueItem)
		out = append(out, item.event)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}

package heartbeat

import (
	"log"
	"sync"
	"time"
)

// Task keeps the database connection warm with a periodic trivial read. It is
// constructed once by the composition root; visibility and connectivity
// signals are injected so the lifecycle is testable without a browser
// environment or a real scheduler.
type Task struct {
	ping         func() error
	interval     time.Duration
	visibility   <-chan bool // true = visible
	connectivity <-chan bool // true = online

	pause  chan bool
	stop   chan struct{}
	once   sync.Once
	ticker *time.Ticker

	mu    sync.Mutex
	beats int
}

func New(ping func() error, interval time.Duration, visibility, connectivity <-chan bool) *Task {
	return &Task{
		ping:         ping,
		interval:     interval,
		visibility:   visibility,
		connectivity: connectivity,
		pause:        make(chan bool, 1),
		stop:         make(chan struct{}),
	}
}

// Start runs the heartbeat loop until Stop is called.
func (t *Task) Start() {
	t.ticker = time.NewTicker(t.interval)
	go t.run()
}

func (t *Task) Pause()  { t.setPaused(true) }
func (t *Task) Resume() { t.setPaused(false) }

func (t *Task) setPaused(p bool) {
	select {
	case t.pause <- p:
	case <-t.stop:
	}
}

func (t *Task) Stop() {
	t.once.Do(func() { close(t.stop) })
}

// Beats reports how many pings have run.
func (t *Task) Beats() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.beats
}

func (t *Task) run() {
	defer t.ticker.Stop()

	visible := true
	online := true
	paused := false

	// A closed signal channel goes nil so it stops being selectable; the
	// last reported state sticks.
	visibility := t.visibility
	connectivity := t.connectivity

	active := func() bool { return !paused && visible && online }

	for {
		select {
		case <-t.stop:
			return
		case p := <-t.pause:
			paused = p
		case v, ok := <-visibility:
			if !ok {
				visibility = nil
				continue
			}
			visible = v
		case c, ok := <-connectivity:
			if !ok {
				connectivity = nil
				continue
			}
			online = c
		case <-t.ticker.C:
			if !active() {
				continue
			}
			if err := t.ping(); err != nil {
				log.Printf("heartbeat: ping failed: %v", err)
				continue
			}
			t.mu.Lock()
			t.beats++
			t.mu.Unlock()
		}
	}
}

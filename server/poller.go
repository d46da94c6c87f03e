// Package server exposes the snapshot pipeline over HTTP: a JSON API,
// a websocket push stream, and a Prometheus endpoint, fed by a single
// background poller.
package server

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"gitlab.com/tinyland/lab/sysdeck/snapshot"
)

// Source produces snapshots. Satisfied by *snapshot.Assembler.
type Source interface {
	Poll(ctx context.Context) *snapshot.Snapshot
}

// Poller runs the poll loop in serve mode, caches the latest snapshot,
// and fans updates out to subscribers.
type Poller struct {
	source   Source
	interval time.Duration
	logger   *slog.Logger

	mu          sync.RWMutex
	latest      *snapshot.Snapshot
	subscribers map[*subscriber]struct{}

	polls atomic.Uint64
}

// NewPoller builds a poller around the given source.
func NewPoller(source Source, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Poller{
		source:      source,
		interval:    interval,
		logger:      logger.With("component", "poller"),
		subscribers: make(map[*subscriber]struct{}),
	}
}

// Run polls until the context is canceled. The first poll runs
// immediately to prime the cache.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("poller started", "interval", p.interval)

	p.store(p.source.Poll(ctx))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopping", "reason", ctx.Err())
			p.closeSubscribers()
			return nil
		case <-ticker.C:
			p.store(p.source.Poll(ctx))
		}
	}
}

// Latest returns the most recent snapshot.
func (p *Poller) Latest() (*snapshot.Snapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest, p.latest != nil
}

// Ready reports whether at least one snapshot has been taken.
func (p *Poller) Ready() bool {
	_, ok := p.Latest()
	return ok
}

// Polls returns the number of snapshots stored since start.
func (p *Poller) Polls() uint64 {
	return p.polls.Load()
}

// Subscribe registers a listener for new snapshots. The current snapshot,
// if any, is delivered immediately. The returned func unsubscribes.
func (p *Poller) Subscribe() (<-chan *snapshot.Snapshot, func()) {
	sub := newSubscriber()

	p.mu.Lock()
	p.subscribers[sub] = struct{}{}
	latest := p.latest
	p.mu.Unlock()

	if latest != nil {
		sub.send(latest)
	}

	return sub.channel(), func() { p.removeSubscriber(sub) }
}

func (p *Poller) store(snap *snapshot.Snapshot) {
	p.polls.Add(1)
	p.mu.Lock()
	p.latest = snap
	subs := make([]*subscriber, 0, len(p.subscribers))
	for sub := range p.subscribers {
		subs = append(subs, sub)
	}
	p.mu.Unlock()

	for _, sub := range subs {
		sub.send(snap)
	}
}

func (p *Poller) removeSubscriber(sub *subscriber) {
	p.mu.Lock()
	delete(p.subscribers, sub)
	p.mu.Unlock()
	sub.close()
}

func (p *Poller) closeSubscribers() {
	p.mu.Lock()
	subs := make([]*subscriber, 0, len(p.subscribers))
	for sub := range p.subscribers {
		subs = append(subs, sub)
	}
	p.subscribers = make(map[*subscriber]struct{})
	p.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

// subscriber holds a one-deep buffered channel; a slow consumer loses
// intermediate snapshots rather than blocking the poll loop.
type subscriber struct {
	ch     chan *snapshot.Snapshot
	mu     sync.Mutex
	closed bool
}

func newSubscriber() *subscriber {
	return &subscriber{ch: make(chan *snapshot.Snapshot, 1)}
}

func (s *subscriber) channel() <-chan *snapshot.Snapshot {
	return s.ch
}

func (s *subscriber) send(snap *snapshot.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- snap:
		return
	default:
		// Drop the stale snapshot to make room for the new one.
		select {
		case <-s.ch:
		default:
		}
		select {
		case s.ch <- snap:
		default:
		}
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	close(s.ch)
	s.closed = true
}

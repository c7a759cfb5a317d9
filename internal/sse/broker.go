// Package sse implements a Server-Sent Events broker for feed updates.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

const (
	clientBuffer   = 64
	historySize    = 128
	keepAliveEvery = 30 * time.Second
)

// Item event kinds.
const (
	KindAdded   = "added"
	KindUpdated = "updated"
	KindRemoved = "removed"
)

// event is one SSE frame before encoding.
type event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type itemEventReq struct {
	kind string
	url  string
}

type subscribeReq struct {
	ch    chan []byte
	after uint64
}

type frame struct {
	id  uint64
	raw []byte
}

// Broker manages SSE client connections and broadcasts events.
//
// A single internal event loop owns the mutable state (clients, event ids,
// replay history, feed throttle timestamp). Public methods talk to it over
// channels. Clients reconnecting with Last-Event-ID get the frames they
// missed, as long as those are still in the bounded history.
type Broker struct {
	feedMin time.Duration

	subscribeCh   chan subscribeReq
	unsubscribeCh chan chan []byte
	itemEventCh   chan itemEventReq
	countReqCh    chan chan int

	stopCh  chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

// NewBroker creates a new SSE broker. feedThrottle is the minimum interval
// between two feed.updated events.
func NewBroker(feedThrottle time.Duration) *Broker {
	if feedThrottle <= 0 {
		feedThrottle = 2 * time.Second
	}

	b := &Broker{
		feedMin:       feedThrottle,
		subscribeCh:   make(chan subscribeReq),
		unsubscribeCh: make(chan chan []byte),
		itemEventCh:   make(chan itemEventReq, 256),
		countReqCh:    make(chan chan int),
		stopCh:        make(chan struct{}),
		stopped:       make(chan struct{}),
	}

	go b.run()
	return b
}

func (b *Broker) run() {
	defer close(b.stopped)

	clients := make(map[chan []byte]struct{})
	history := make([]frame, 0, historySize)
	var (
		lastFeed time.Time
		nextID   uint64
	)

	broadcast := func(ev event) {
		payload, err := json.Marshal(ev.Data)
		if err != nil {
			return
		}
		nextID++
		f := frame{
			id:  nextID,
			raw: []byte(fmt.Sprintf("id: %d\nevent: %s\ndata: %s\n\n", nextID, ev.Type, payload)),
		}
		if len(history) == historySize {
			history = append(history[:0], history[1:]...)
		}
		history = append(history, f)

		for ch := range clients {
			select {
			case ch <- f.raw:
			default:
				// Slow client; drop rather than block the loop.
			}
		}
	}

	for {
		select {
		case <-b.stopCh:
			for ch := range clients {
				close(ch)
			}
			return

		case req := <-b.subscribeCh:
			clients[req.ch] = struct{}{}
			if req.after == 0 {
				continue
			}
			for _, f := range history {
				if f.id <= req.after {
					continue
				}
				select {
				case req.ch <- f.raw:
				default:
				}
			}

		case ch := <-b.unsubscribeCh:
			if _, ok := clients[ch]; ok {
				delete(clients, ch)
				close(ch)
			}

		case req := <-b.itemEventCh:
			switch req.kind {
			case KindAdded, KindUpdated, KindRemoved:
				broadcast(event{Type: "item." + req.kind, Data: map[string]string{"url": req.url}})
			default:
				continue
			}

			now := time.Now()
			if now.Sub(lastFeed) >= b.feedMin {
				lastFeed = now
				broadcast(event{Type: "feed.updated", Data: map[string]string{}})
			}

		case resp := <-b.countReqCh:
			resp <- len(clients)
		}
	}
}

// Close gracefully stops broker loop and closes all client channels.
func (b *Broker) Close() {
	if b.closed.CompareAndSwap(false, true) {
		close(b.stopCh)
	}
	<-b.stopped
}

// Subscribe adds a new client and returns its channel.
func (b *Broker) Subscribe() chan []byte {
	return b.SubscribeAfter(0)
}

// SubscribeAfter adds a new client and first replays retained events with an
// id greater than lastID. Zero replays nothing.
func (b *Broker) SubscribeAfter(lastID uint64) chan []byte {
	ch := make(chan []byte, clientBuffer)
	if b.closed.Load() {
		close(ch)
		return ch
	}

	select {
	case b.subscribeCh <- subscribeReq{ch: ch, after: lastID}:
	case <-b.stopped:
		close(ch)
	}

	return ch
}

// Unsubscribe removes a client and closes its channel.
func (b *Broker) Unsubscribe(ch chan []byte) {
	if b.closed.Load() {
		return
	}
	select {
	case b.unsubscribeCh <- ch:
	case <-b.stopped:
	}
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	if b.closed.Load() {
		return 0
	}

	resp := make(chan int, 1)
	select {
	case b.countReqCh <- resp:
	case <-b.stopped:
		return 0
	}

	select {
	case n := <-resp:
		return n
	case <-b.stopped:
		return 0
	}
}

// PublishItemEvent publishes an item change and a throttled feed.updated event.
func (b *Broker) PublishItemEvent(kind, url string) {
	if b.closed.Load() {
		return
	}
	select {
	case b.itemEventCh <- itemEventReq{kind: kind, url: url}:
	case <-b.stopped:
	}
}

// ServeHTTP is the SSE endpoint handler (GET /api/events).
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	lastID, _ := strconv.ParseUint(r.Header.Get("Last-Event-ID"), 10, 64)
	ch := b.SubscribeAfter(lastID)
	defer b.Unsubscribe(ch)

	keepAlive := time.NewTicker(keepAliveEvery)
	defer keepAlive.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keep-alive\n\n"))
			flusher.Flush()
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write(msg)
			flusher.Flush()
		}
	}
}

package paginator

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

type expiryItem struct {
	id       string
	ttl      time.Duration
	deadline time.Time
	index    int
}

type expiryHeap []*expiryItem

func (h expiryHeap) Len() int           { return len(h) }
func (h expiryHeap) Less(i, j int) bool { return h[i].deadline.Before(h[j].deadline) }
func (h expiryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *expiryHeap) Push(x any) {
	it := x.(*expiryItem)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *expiryHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// Expiry es una cola de vencimientos ordenada por deadline y una sola
// goroutine (Run) que la drena. Un timer para todas las sesiones.
type Expiry struct {
	mu    sync.Mutex
	h     expiryHeap
	items map[string]*expiryItem
	wake  chan struct{}
	now   func() time.Time
	fire  func(id string)
}

func NewExpiry(fire func(id string)) *Expiry {
	return &Expiry{
		items: map[string]*expiryItem{},
		wake:  make(chan struct{}, 1),
		now:   time.Now,
		fire:  fire,
	}
}

// Start arma (o rearma) el vencimiento de id dentro de d.
func (e *Expiry) Start(id string, d time.Duration) {
	e.mu.Lock()
	if it, ok := e.items[id]; ok {
		it.ttl = d
		it.deadline = e.now().Add(d)
		heap.Fix(&e.h, it.index)
	} else {
		it := &expiryItem{id: id, ttl: d, deadline: e.now().Add(d)}
		heap.Push(&e.h, it)
		e.items[id] = it
	}
	e.mu.Unlock()
	e.poke()
}

// Reset vuelve a contar la duración completa. false si id no estaba armado.
func (e *Expiry) Reset(id string) bool {
	e.mu.Lock()
	it, ok := e.items[id]
	if ok {
		it.deadline = e.now().Add(it.ttl)
		heap.Fix(&e.h, it.index)
	}
	e.mu.Unlock()
	if ok {
		e.poke()
	}
	return ok
}

// Cancel desarma sin disparar.
func (e *Expiry) Cancel(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	it, ok := e.items[id]
	if !ok {
		return false
	}
	heap.Remove(&e.h, it.index)
	delete(e.items, id)
	return true
}

func (e *Expiry) Pending(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.items[id]
	return ok
}

func (e *Expiry) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

func (e *Expiry) poke() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// popDue saca de la cola todo lo vencido a now.
func (e *Expiry) popDue(now time.Time) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var due []string
	for len(e.h) > 0 && !e.h[0].deadline.After(now) {
		it := heap.Pop(&e.h).(*expiryItem)
		delete(e.items, it.id)
		due = append(due, it.id)
	}
	return due
}

func (e *Expiry) next() (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.h) == 0 {
		return time.Time{}, false
	}
	return e.h[0].deadline, true
}

// Run bloquea hasta que ctx se cancele. Cada vencimiento se dispara en su
// propia goroutine para que un edit lento no atrase al resto.
func (e *Expiry) Run(ctx context.Context) {
	const idle = time.Hour
	t := time.NewTimer(idle)
	defer t.Stop()

	for {
		for _, id := range e.popDue(e.now()) {
			go e.fire(id)
		}

		wait := idle
		if d, ok := e.next(); ok {
			wait = d.Sub(e.now())
			if wait < 0 {
				wait = 0
			}
		}
		t.Reset(wait)

		select {
		case <-ctx.Done():
			return
		case <-e.wake:
		case <-t.C:
		}
	}
}

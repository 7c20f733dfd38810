// Implements the ServerPool, the finite set of interchangeable service
// counters shared by all entities in a run. Access is granted in strict FIFO
// order among waiters.

package sim

import (
	"fmt"
)

// Ticket is the token returned by a successful grant. It must be handed back
// to Release when the holder departs.
type Ticket int64

// ServerPool models C interchangeable service counters with a FIFO wait
// queue. Invariants: occupied is always within [0, capacity], and the wait
// queue is non-empty only while occupied == capacity. The pool is mutated
// only through Request and Release; violations panic because the event
// loop's logic, if correct, makes them impossible.
type ServerPool struct {
	capacity    int
	occupied    int
	waiters     []*Entity // FIFO queue of entities waiting for a grant
	nextTicket  Ticket
	outstanding map[Ticket]bool // tickets granted and not yet released
}

// NewServerPool creates a pool with the given counter capacity.
// Capacity is validated by Config before a run starts; a non-positive value
// reaching here is a programming error.
func NewServerPool(capacity int) *ServerPool {
	if capacity <= 0 {
		panic(fmt.Sprintf("NewServerPool: capacity must be > 0, got %d", capacity))
	}
	return &ServerPool{
		capacity:    capacity,
		outstanding: make(map[Ticket]bool),
	}
}

// Request asks for a counter on behalf of e. If one is free it is granted
// immediately and Request returns (ticket, true). Otherwise e is appended to
// the FIFO wait queue and Request returns (0, false); the entity will
// receive its grant through a ServiceGrantEvent after a release.
func (p *ServerPool) Request(e *Entity) (Ticket, bool) {
	if e == nil {
		panic("Request: entity must not be nil")
	}
	if p.occupied < p.capacity {
		p.occupied++
		return p.issueTicket(), true
	}
	p.waiters = append(p.waiters, e)
	return 0, false
}

// Release frees the counter held by ticket t. If entities are waiting, the
// head of the queue is promoted on the spot — the counter never goes idle
// while someone waits — and Release returns the promoted entity with its
// fresh ticket so the caller can schedule the grant at the current clock.
// Returns (nil, 0) when nobody waits.
func (p *ServerPool) Release(t Ticket) (*Entity, Ticket) {
	if !p.outstanding[t] {
		panic(fmt.Sprintf("Release: ticket %d is not outstanding", t))
	}
	delete(p.outstanding, t)
	p.occupied--
	if p.occupied < 0 {
		panic("Release: occupied count went negative")
	}
	if len(p.waiters) == 0 {
		return nil, 0
	}
	next := p.waiters[0]
	p.waiters = p.waiters[1:]
	p.occupied++
	if p.occupied > p.capacity {
		panic(fmt.Sprintf("Release: occupied %d exceeds capacity %d", p.occupied, p.capacity))
	}
	return next, p.issueTicket()
}

func (p *ServerPool) issueTicket() Ticket {
	p.nextTicket++
	p.outstanding[p.nextTicket] = true
	return p.nextTicket
}

// Capacity returns the configured number of counters.
func (p *ServerPool) Capacity() int {
	return p.capacity
}

// Occupied returns the number of counters currently in use.
func (p *ServerPool) Occupied() int {
	return p.occupied
}

// Waiting returns the number of entities queued for a counter.
func (p *ServerPool) Waiting() int {
	return len(p.waiters)
}

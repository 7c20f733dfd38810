package sim

import (
	"testing"
)

func TestServerPool_Request_BelowCapacity_GrantsImmediately(t *testing.T) {
	// GIVEN a pool with 2 counters
	p := NewServerPool(2)
	e := &Entity{ID: 0}

	// WHEN an entity requests a counter
	_, granted := p.Request(e)

	// THEN the grant is immediate and occupancy increments
	if !granted {
		t.Fatal("Request below capacity: got queued, want immediate grant")
	}
	if p.Occupied() != 1 {
		t.Errorf("Occupied: got %d, want 1", p.Occupied())
	}
	if p.Waiting() != 0 {
		t.Errorf("Waiting: got %d, want 0", p.Waiting())
	}
}

func TestServerPool_Request_AtCapacity_QueuesFIFO(t *testing.T) {
	// GIVEN a pool with 1 counter already occupied
	p := NewServerPool(1)
	holder := &Entity{ID: 0}
	ticket, granted := p.Request(holder)
	if !granted {
		t.Fatal("setup: first request should be granted")
	}

	// WHEN two more entities request
	w1 := &Entity{ID: 1}
	w2 := &Entity{ID: 2}
	if _, granted := p.Request(w1); granted {
		t.Fatal("Request at capacity: got grant, want queued")
	}
	if _, granted := p.Request(w2); granted {
		t.Fatal("Request at capacity: got grant, want queued")
	}

	// THEN occupancy never exceeds capacity and waiters queue in order
	if p.Occupied() != 1 {
		t.Errorf("Occupied: got %d, want 1", p.Occupied())
	}
	if p.Waiting() != 2 {
		t.Errorf("Waiting: got %d, want 2", p.Waiting())
	}

	// AND releases promote strictly in FIFO order
	next, t1 := p.Release(ticket)
	if next != w1 {
		t.Errorf("first release promoted entity %v, want %v", next, w1)
	}
	next, _ = p.Release(t1)
	if next != w2 {
		t.Errorf("second release promoted entity %v, want %v", next, w2)
	}
}

func TestServerPool_Release_NoWaiters_FreesCounter(t *testing.T) {
	// GIVEN a pool with one occupied counter and no waiters
	p := NewServerPool(2)
	ticket, _ := p.Request(&Entity{ID: 0})

	// WHEN the counter is released
	next, _ := p.Release(ticket)

	// THEN nobody is promoted and occupancy drops
	if next != nil {
		t.Errorf("Release with no waiters: promoted %v, want nil", next)
	}
	if p.Occupied() != 0 {
		t.Errorf("Occupied: got %d, want 0", p.Occupied())
	}
}

func TestServerPool_Release_PromotionKeepsOccupancyFull(t *testing.T) {
	// GIVEN a full pool with a waiter
	p := NewServerPool(1)
	ticket, _ := p.Request(&Entity{ID: 0})
	p.Request(&Entity{ID: 1})

	// WHEN the holder releases
	next, _ := p.Release(ticket)

	// THEN the waiter takes the counter at the same instant
	if next == nil {
		t.Fatal("Release with waiter: promoted nil")
	}
	if p.Occupied() != 1 {
		t.Errorf("Occupied after promotion: got %d, want 1", p.Occupied())
	}
	if p.Waiting() != 0 {
		t.Errorf("Waiting after promotion: got %d, want 0", p.Waiting())
	}
}

func TestServerPool_Release_UnknownTicket_Panics(t *testing.T) {
	p := NewServerPool(1)
	defer func() {
		if recover() == nil {
			t.Error("Release of unknown ticket did not panic")
		}
	}()
	p.Release(Ticket(99))
}

func TestNewServerPool_NonPositiveCapacity_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewServerPool(0) did not panic")
		}
	}()
	NewServerPool(0)
}

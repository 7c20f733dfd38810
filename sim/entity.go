// Defines the Entity struct that models an individual customer in the simulation.
// Tracks arrival, service-start and departure timestamps across its lifecycle.

package sim

import (
	"fmt"
)

// EntityState represents the lifecycle state of an entity.
type EntityState string

const (
	StateArrived   EntityState = "arrived"
	StateWaiting   EntityState = "waiting"
	StateInService EntityState = "in_service"
	StateDeparted  EntityState = "departed"
)

// Entity models a single customer's passage through the service facility:
// arrive, possibly wait for a counter, hold it for a sampled service
// duration, depart. Transitions are driven by the event loop; each one
// stamps the corresponding timestamp. StateDeparted is terminal.
type Entity struct {
	ID int

	State EntityState

	ArrivalTime     float64 // simulation time of arrival (minutes)
	ServiceStart    float64 // time a counter was granted
	ServiceEnd      float64 // time the counter was released
	ServiceDuration float64 // sampled service duration

	ticket Ticket // counter ticket held while in service
}

// arrive marks the entity as having entered the facility at time now.
func (e *Entity) arrive(now float64) {
	if e.State != "" {
		panic(fmt.Sprintf("arrive: entity %d already in state %q", e.ID, e.State))
	}
	e.State = StateArrived
	e.ArrivalTime = now
}

// enqueue marks the entity as waiting for a counter.
func (e *Entity) enqueue() {
	if e.State != StateArrived {
		panic(fmt.Sprintf("enqueue: entity %d in state %q, want %q", e.ID, e.State, StateArrived))
	}
	e.State = StateWaiting
}

// startService moves the entity into service. Legal both directly from
// StateArrived (a counter was free on arrival, wait is exactly zero) and
// from StateWaiting (granted after a release).
func (e *Entity) startService(now, duration float64, t Ticket) {
	if e.State != StateArrived && e.State != StateWaiting {
		panic(fmt.Sprintf("startService: entity %d in state %q", e.ID, e.State))
	}
	e.State = StateInService
	e.ServiceStart = now
	e.ServiceDuration = duration
	e.ticket = t
}

// depart finalizes the entity and freezes it into an immutable EntityRecord.
// Called exactly once, when the departure event fires.
func (e *Entity) depart(now float64) EntityRecord {
	if e.State != StateInService {
		panic(fmt.Sprintf("depart: entity %d in state %q, want %q", e.ID, e.State, StateInService))
	}
	e.State = StateDeparted
	e.ServiceEnd = now
	return EntityRecord{
		ID:              e.ID,
		ArrivalTime:     e.ArrivalTime,
		ServiceStart:    e.ServiceStart,
		ServiceEnd:      e.ServiceEnd,
		ServiceDuration: e.ServiceDuration,
	}
}

// String returns a human-readable representation of an Entity.
func (e Entity) String() string {
	return fmt.Sprintf("Entity: (ID: %d, State: %s, ArrivalTime: %.3f)", e.ID, e.State, e.ArrivalTime)
}

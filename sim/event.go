package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in simulated minutes) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent represents one entity arriving at the service facility.
type ArrivalEvent struct {
	time   float64 // simulation time of arrival (minutes)
	Entity *Entity // the arriving entity
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute processes an arrival: the next arrival in the stream is chained,
// then the entity asks the pool for a counter. A free counter means service
// starts immediately (wait == 0); otherwise the entity joins the FIFO queue.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival: entity %d at %.3f min", e.Entity.ID, e.time)

	e.Entity.arrive(e.time)
	sim.scheduleNextArrival()

	if t, granted := sim.Pool.Request(e.Entity); granted {
		sim.startService(e.Entity, e.time, t)
	} else {
		e.Entity.enqueue()
	}
}

// ServiceGrantEvent hands a freed counter to the entity at the head of the
// wait queue. It is scheduled by a DepartureEvent at the release clock, so
// the grant happens at the same logical time as the release.
type ServiceGrantEvent struct {
	time   float64
	Entity *Entity
	ticket Ticket
}

// Timestamp returns the scheduled time of the ServiceGrantEvent.
func (e *ServiceGrantEvent) Timestamp() float64 {
	return e.time
}

// Execute moves the granted entity into service.
func (e *ServiceGrantEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< ServiceGrant: entity %d at %.3f min", e.Entity.ID, e.time)
	sim.startService(e.Entity, e.time, e.ticket)
}

// DepartureEvent fires when an entity's sampled service duration has
// elapsed: the entity leaves the system and its counter is released.
type DepartureEvent struct {
	time   float64
	Entity *Entity
	ticket Ticket
}

// Timestamp returns the scheduled time of the DepartureEvent.
func (e *DepartureEvent) Timestamp() float64 {
	return e.time
}

// Execute finalizes the entity's record and releases the counter. If the
// release promotes a waiter, its grant is scheduled at the current clock.
func (e *DepartureEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Departure: entity %d at %.3f min", e.Entity.ID, e.time)

	rec := e.Entity.depart(e.time)
	sim.appendRecord(rec)

	if next, t := sim.Pool.Release(e.ticket); next != nil {
		sim.Schedule(&ServiceGrantEvent{time: e.time, Entity: next, ticket: t})
	}
}

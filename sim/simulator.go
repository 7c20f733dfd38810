// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// queuedEvent pairs an Event with its insertion sequence number. Sequence
// numbers break timestamp ties so that simultaneous events execute in the
// order they were scheduled, which keeps runs deterministic for a fixed seed.
type queuedEvent struct {
	ev  Event
	seq int64
}

// EventQueue implements heap.Interface and orders events by (timestamp, seq).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []*queuedEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	ti, tj := eq[i].ev.Timestamp(), eq[j].ev.Timestamp()
	if ti != tj {
		return ti < tj
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(*queuedEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, system state, and
// the event loop. It is single-threaded: exactly one event executes at a
// time, so the pool's state needs no synchronization. A Simulator serves one
// run and is discarded afterwards.
type Simulator struct {
	// Clock is the logical simulation time in minutes. It advances only
	// when the next event is popped, and never moves backwards.
	Clock float64
	// EventQueue holds all pending events: arrivals, grants, departures.
	EventQueue EventQueue
	// Pool is the shared set of service counters.
	Pool *ServerPool

	arrivalSampler DurationSampler
	serviceSampler DurationSampler

	remainingArrivals int
	nextArrivalTime   float64
	nextEntityID      int
	nextSeq           int64

	records []EntityRecord
}

// NewSimulator creates a fresh simulator for one run: numEntities arrivals
// spaced by the arrival sampler, served on servers counters with durations
// from the service sampler. Parameter validation happens in Config.Validate;
// this constructor assumes valid inputs.
func NewSimulator(servers, numEntities int, arrival, service DurationSampler) *Simulator {
	return &Simulator{
		EventQueue:        make(EventQueue, 0),
		Pool:              NewServerPool(servers),
		arrivalSampler:    arrival,
		serviceSampler:    service,
		remainingArrivals: numEntities,
		records:           make([]EntityRecord, 0, numEntities),
	}
}

// Schedule pushes an event into the simulator's EventQueue, tagging it with
// the next insertion sequence number.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, &queuedEvent{ev: ev, seq: sim.nextSeq})
	sim.nextSeq++
}

// Run drains the event queue and returns the finalized result. The loop
// terminates when no events remain, which happens once the last of the
// configured arrivals has been processed to completion.
func (sim *Simulator) Run() *RunResult {
	sim.scheduleNextArrival()

	for len(sim.EventQueue) > 0 {
		qe := heap.Pop(&sim.EventQueue).(*queuedEvent)
		ev := qe.ev
		if ts := ev.Timestamp(); ts < sim.Clock {
			panic("Run: event scheduled in the past")
		}
		// advance the clock, then process the event
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[%09.3f min] executing %T", sim.Clock, ev)
		ev.Execute(sim)
	}

	logrus.Debugf("[%09.3f min] simulation ended, %d entities completed", sim.Clock, len(sim.records))
	return &RunResult{Records: sim.records, FinalClockTime: sim.Clock}
}

// scheduleNextArrival advances the arrival stream by one sampled
// interarrival gap. It is called once by Run to prime the chain and then by
// each ArrivalEvent, so at most one arrival is ever pending.
func (sim *Simulator) scheduleNextArrival() {
	if sim.remainingArrivals == 0 {
		return
	}
	sim.remainingArrivals--

	sim.nextArrivalTime += sim.arrivalSampler.Sample()
	e := &Entity{ID: sim.nextEntityID}
	sim.nextEntityID++

	sim.Schedule(&ArrivalEvent{time: sim.nextArrivalTime, Entity: e})
}

// startService samples a service duration for e, moves it into service and
// schedules its departure.
func (sim *Simulator) startService(e *Entity, now float64, t Ticket) {
	d := sim.serviceSampler.Sample()
	e.startService(now, d, t)
	sim.Schedule(&DepartureEvent{time: now + d, Entity: e, ticket: t})
}

// appendRecord collects a finalized record in completion order.
func (sim *Simulator) appendRecord(rec EntityRecord) {
	sim.records = append(sim.records, rec)
}

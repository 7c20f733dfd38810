package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/queuesim/queuesim/sim"
)

func TestObserveRun_SetsSummaryGauges(t *testing.T) {
	sum := &sim.Summary{
		Completed:      3,
		MeanWait:       1.0,
		MaxWait:        2.0,
		Utilization:    15.0 / 19.0,
		Throughput:     3.0 / 19.0,
		FinalClockTime: 19,
	}
	res := &sim.RunResult{
		Records: []sim.EntityRecord{
			{ID: 0, ArrivalTime: 4, ServiceStart: 4, ServiceEnd: 9, ServiceDuration: 5},
			{ID: 1, ArrivalTime: 8, ServiceStart: 9, ServiceEnd: 14, ServiceDuration: 5},
			{ID: 2, ArrivalTime: 12, ServiceStart: 14, ServiceEnd: 19, ServiceDuration: 5},
		},
		FinalClockTime: 19,
	}

	runsBefore := testutil.ToFloat64(RunsTotal)
	completedBefore := testutil.ToFloat64(EntitiesCompletedTotal)

	ObserveRun(sum, res)

	assert.Equal(t, runsBefore+1, testutil.ToFloat64(RunsTotal))
	assert.Equal(t, completedBefore+3, testutil.ToFloat64(EntitiesCompletedTotal))
	assert.InDelta(t, 1.0, testutil.ToFloat64(MeanWaitMinutes), 1e-12)
	assert.InDelta(t, 2.0, testutil.ToFloat64(MaxWaitMinutes), 1e-12)
	assert.InDelta(t, 15.0/19.0, testutil.ToFloat64(UtilizationRatio), 1e-12)
	assert.InDelta(t, 3.0/19.0, testutil.ToFloat64(ThroughputPerMinute), 1e-12)
}

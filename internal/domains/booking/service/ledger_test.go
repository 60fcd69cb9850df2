package service_test

import (
	"context"
	"sync"

	tripDateModel "tripseat/internal/domains/tripdate/model"
	tripDateService "tripseat/internal/domains/tripdate/service"
	"tripseat/shared/failure"
)

// fakeLedger applies reserve as one guarded step, the way the conditional
// UPDATE does, so lifecycle tests can run against real seat counts.
type fakeLedger struct {
	tripDateService.TripDate

	mu    sync.Mutex
	dates map[string]*tripDateModel.TripDate
}

func newFakeLedger(dates ...tripDateModel.TripDate) *fakeLedger {
	l := &fakeLedger{dates: map[string]*tripDateModel.TripDate{}}

	for i := range dates {
		td := dates[i]
		l.dates[td.ID] = &td
	}

	return l
}

func (l *fakeLedger) Lookup(_ context.Context, id string) (tripDateModel.TripDate, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	td, ok := l.dates[id]
	if !ok {
		return tripDateModel.TripDate{}, failure.NotFound("trip date not found")
	}

	return *td, nil
}

func (l *fakeLedger) Reserve(_ context.Context, id string, spots int) (tripDateModel.TripDate, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	td, ok := l.dates[id]
	if !ok {
		return tripDateModel.TripDate{}, failure.NotFound("trip date not found")
	}

	if td.ReservedSpots+spots > td.Capacity {
		return tripDateModel.TripDate{}, failure.CapacityExceeded(td.Available())
	}

	td.ReservedSpots += spots

	return *td, nil
}

func (l *fakeLedger) Release(_ context.Context, id string, spots int) (tripDateModel.TripDate, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	td, ok := l.dates[id]
	if !ok {
		return tripDateModel.TripDate{}, failure.NotFound("trip date not found")
	}

	td.ReservedSpots = max(td.ReservedSpots-spots, 0)

	return *td, nil
}

func (l *fakeLedger) reserved(id string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dates[id].ReservedSpots
}

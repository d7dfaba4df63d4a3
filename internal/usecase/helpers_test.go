package usecase

import (
	"sync"
	"testing"
	"time"

	"bidright/internal/domain/pricing"
	"bidright/internal/infrastructure/catalog"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCalculator(t *testing.T) *pricing.Calculator {
	t.Helper()
	return pricing.NewCalculator(catalog.Default(),
		pricing.WithClock(func() time.Time { return fixedNow }),
		pricing.WithIDGenerator(func() string { return "est-1" }),
	)
}

type recordedEvents struct {
	mu         sync.Mutex
	calculated []string
	saved      int
	denied     []string
	changes    []string
}

func (r *recordedEvents) EstimateCalculated(industryID, complexity string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calculated = append(r.calculated, industryID+"/"+complexity)
}

func (r *recordedEvents) EstimateSaved() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved++
}

func (r *recordedEvents) FeatureDenied(feature string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.denied = append(r.denied, feature)
}

func (r *recordedEvents) SubscriptionChanged(plan, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, plan+":"+action)
}

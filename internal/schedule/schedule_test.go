package schedule

import (
	"context"
	"errors"
	"testing"

	"server/internal/domain"
)

func TestCostLookup(t *testing.T) {
	svc, err := New(context.Background(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		feature domain.Feature
		want    int
	}{
		{domain.FeatureStrategyGeneration, 1},
		{domain.FeatureScriptGeneration, 5},
		{domain.FeatureThumbnailGeneration, 3},
		{domain.FeatureChannelAnalysis, 10},
	}
	for _, tc := range tests {
		got, err := svc.Cost(tc.feature)
		if err != nil {
			t.Fatalf("Cost(%s) error = %v", tc.feature, err)
		}
		if got != tc.want {
			t.Fatalf("Cost(%s) = %d, want %d", tc.feature, got, tc.want)
		}
	}

	if _, err := svc.Cost(domain.Feature("VOICE_CLONING")); !errors.Is(err, domain.ErrUnknownFeature) {
		t.Fatalf("Cost(unknown) error = %v, want ErrUnknownFeature", err)
	}
}

func TestUpdateRejectsInvalidScheduleAtomically(t *testing.T) {
	svc, err := New(context.Background(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	bad := domain.CostSchedule{
		domain.FeatureStrategyGeneration:  2,
		domain.FeatureScriptGeneration:    -1,
		domain.FeatureThumbnailGeneration: 4,
		domain.FeatureChannelAnalysis:     12,
	}
	if err := svc.Update(context.Background(), bad); !errors.Is(err, domain.ErrInvalidCostSchedule) {
		t.Fatalf("Update(bad) error = %v, want ErrInvalidCostSchedule", err)
	}

	// The previously active schedule must remain fully intact, including the
	// keys the rejected update would have changed.
	for feature, want := range domain.DefaultCostSchedule() {
		got, err := svc.Cost(feature)
		if err != nil {
			t.Fatalf("Cost(%s) error = %v", feature, err)
		}
		if got != want {
			t.Fatalf("Cost(%s) = %d after rejected update, want %d", feature, got, want)
		}
	}
}

func TestUpdateTakesEffectImmediately(t *testing.T) {
	svc, err := New(context.Background(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	next := domain.CostSchedule{
		domain.FeatureStrategyGeneration:  2,
		domain.FeatureScriptGeneration:    8,
		domain.FeatureThumbnailGeneration: 4,
		domain.FeatureChannelAnalysis:     15,
	}
	if err := svc.Update(context.Background(), next); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, err := svc.Cost(domain.FeatureScriptGeneration)
	if err != nil {
		t.Fatalf("Cost() error = %v", err)
	}
	if got != 8 {
		t.Fatalf("Cost(SCRIPT_GENERATION) = %d, want 8", got)
	}

	// Mutating the map passed in must not leak into the committed schedule.
	next[domain.FeatureScriptGeneration] = 0
	got, _ = svc.Cost(domain.FeatureScriptGeneration)
	if got != 8 {
		t.Fatalf("committed schedule aliased caller map: Cost = %d", got)
	}
}

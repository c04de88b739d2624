package domain

import "testing"

func TestCostScheduleValidate(t *testing.T) {
	tests := []struct {
		name     string
		schedule CostSchedule
		wantErr  bool
	}{
		{
			name:     "defaults are valid",
			schedule: DefaultCostSchedule(),
			wantErr:  false,
		},
		{
			name: "missing key rejected",
			schedule: CostSchedule{
				FeatureStrategyGeneration:  1,
				FeatureScriptGeneration:    5,
				FeatureThumbnailGeneration: 3,
			},
			wantErr: true,
		},
		{
			name: "negative cost rejected",
			schedule: CostSchedule{
				FeatureStrategyGeneration:  1,
				FeatureScriptGeneration:    -5,
				FeatureThumbnailGeneration: 3,
				FeatureChannelAnalysis:     10,
			},
			wantErr: true,
		},
		{
			name: "extra key rejected",
			schedule: CostSchedule{
				FeatureStrategyGeneration:  1,
				FeatureScriptGeneration:    5,
				FeatureThumbnailGeneration: 3,
				FeatureChannelAnalysis:     10,
				Feature("VOICE_CLONING"):   2,
			},
			wantErr: true,
		},
		{
			name: "zero cost allowed",
			schedule: CostSchedule{
				FeatureStrategyGeneration:  0,
				FeatureScriptGeneration:    0,
				FeatureThumbnailGeneration: 0,
				FeatureChannelAnalysis:     0,
			},
			wantErr: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.schedule.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestCostScheduleClone(t *testing.T) {
	original := DefaultCostSchedule()
	clone := original.Clone()
	clone[FeatureScriptGeneration] = 99
	if original[FeatureScriptGeneration] != 5 {
		t.Fatalf("mutating clone changed original: %d", original[FeatureScriptGeneration])
	}
}

func TestPlanCatalog(t *testing.T) {
	tests := []struct {
		plan       Plan
		maxDaily   int
		maxMonthly int
	}{
		{PlanFree, 5, 50},
		{PlanPro, 50, 1000},
		{PlanPremium, 100, 5000},
	}
	for _, tc := range tests {
		limits, ok := PlanCatalog[tc.plan]
		if !ok {
			t.Fatalf("plan %s missing from catalog", tc.plan)
		}
		if limits.MaxDaily != tc.maxDaily || limits.MaxMonthly != tc.maxMonthly {
			t.Fatalf("plan %s limits = %+v, want (%d,%d)", tc.plan, limits, tc.maxDaily, tc.maxMonthly)
		}
		pool := limits.Grant()
		if !pool.Valid() {
			t.Fatalf("granted pool for %s violates invariant: %+v", tc.plan, pool)
		}
		if pool.Daily != tc.maxDaily || pool.Monthly != tc.maxMonthly {
			t.Fatalf("granted pool for %s not full: %+v", tc.plan, pool)
		}
	}
	if ValidPlan(Plan("ENTERPRISE")) {
		t.Fatal("unknown plan reported valid")
	}
}

func TestTotalConsumed(t *testing.T) {
	entries := []AuditEntry{
		{Cost: 5, Status: AuditSuccess},
		{Cost: 3, Status: AuditFailed},
		{Cost: 1, Status: AuditSuccess},
	}
	if got := TotalConsumed(entries); got != 6 {
		t.Fatalf("TotalConsumed() = %d, want 6", got)
	}
}

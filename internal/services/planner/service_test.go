package planner

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/amitrb/finplan/internal/common"
	"github.com/amitrb/finplan/internal/models"
)

func approxEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func newTestService() *Service {
	return NewService(models.DefaultAssumptions(), common.NewSilentLogger())
}

func baseInputs() models.RetirementInputs {
	// The reference scenario: 30-year horizon, 50k/month expenses today.
	return models.RetirementInputs{
		CurrentAge:               30,
		RetirementAge:            60,
		MonthlyExpenseToday:      50000,
		CurrentMonthlyInvestment: 30000,
		CurrentSavings:           0,
		UserRisk:                 3,
		SpendingStyle:            models.SpendingNominal,
	}
}

func TestComputeRetirementPlan_ReferenceScenario(t *testing.T) {
	svc := newTestService()

	plan, err := svc.ComputeRetirementPlan(context.Background(), baseInputs())
	if err != nil {
		t.Fatalf("ComputeRetirementPlan failed: %v", err)
	}

	if plan.RequiredCorpus <= 0 {
		t.Errorf("RequiredCorpus = %v, want positive", plan.RequiredCorpus)
	}
	if plan.RequiredMonthlySIP <= 0 {
		t.Errorf("RequiredMonthlySIP = %v, want positive", plan.RequiredMonthlySIP)
	}

	// 50k/month inflated 30 years at 6%, drawn down over 30 years at 5%
	// growth, needs a corpus around 53M.
	if plan.RequiredCorpus < 4e7 || plan.RequiredCorpus > 7e7 {
		t.Errorf("RequiredCorpus = %v, want within [4e7, 7e7]", plan.RequiredCorpus)
	}

	if plan.YearsToRetirement != 30 {
		t.Errorf("YearsToRetirement = %d, want 30", plan.YearsToRetirement)
	}
	if plan.RetirementYears != 30 {
		t.Errorf("RetirementYears = %d, want 30", plan.RetirementYears)
	}

	// Allocation covers exactly the four asset classes and sums to the SIP.
	if len(plan.Allocation) != 4 {
		t.Fatalf("Allocation has %d entries, want 4", len(plan.Allocation))
	}
	sum := 0.0
	for _, class := range models.AssetClasses {
		amount, ok := plan.Allocation[class]
		if !ok {
			t.Errorf("Allocation missing asset class %s", class)
		}
		sum += amount
	}
	if !approxEqual(sum, float64(plan.RequiredMonthlySIP), 1.0) {
		t.Errorf("Allocation sums to %v, want ~%d", sum, plan.RequiredMonthlySIP)
	}

	if len(plan.CatchUpPath) != 30 {
		t.Errorf("CatchUpPath has %d entries, want 30", len(plan.CatchUpPath))
	}

	if plan.SystemRisk < 1 || plan.SystemRisk > 5 {
		t.Errorf("SystemRisk = %d, outside [1,5]", plan.SystemRisk)
	}
	if plan.BlendedRisk < 1 || plan.BlendedRisk > 5 {
		t.Errorf("BlendedRisk = %d, outside [1,5]", plan.BlendedRisk)
	}
}

func TestComputeRetirementPlan_Idempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.ComputeRetirementPlan(ctx, baseInputs())
	if err != nil {
		t.Fatalf("first computation failed: %v", err)
	}
	second, err := svc.ComputeRetirementPlan(ctx, baseInputs())
	if err != nil {
		t.Fatalf("second computation failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Error("identical inputs produced different plans")
	}
}

func TestComputeRetirementPlan_InflationProtectedNeedsMore(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	nominal := baseInputs()
	protected := baseInputs()
	protected.SpendingStyle = models.SpendingInflationProtected

	nominalPlan, err := svc.ComputeRetirementPlan(ctx, nominal)
	if err != nil {
		t.Fatalf("nominal plan failed: %v", err)
	}
	protectedPlan, err := svc.ComputeRetirementPlan(ctx, protected)
	if err != nil {
		t.Fatalf("inflation-protected plan failed: %v", err)
	}

	if protectedPlan.RequiredCorpus <= nominalPlan.RequiredCorpus {
		t.Errorf("inflation-protected corpus (%v) should exceed nominal corpus (%v)",
			protectedPlan.RequiredCorpus, nominalPlan.RequiredCorpus)
	}
}

func TestComputeRetirementPlan_MonotoneInExpense(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	prev := 0.0
	for _, expense := range []float64{20000, 50000, 100000, 200000} {
		in := baseInputs()
		in.MonthlyExpenseToday = expense
		plan, err := svc.ComputeRetirementPlan(ctx, in)
		if err != nil {
			t.Fatalf("plan for expense %v failed: %v", expense, err)
		}
		if plan.RequiredCorpus < prev {
			t.Errorf("corpus decreased (%v -> %v) when expense rose to %v", prev, plan.RequiredCorpus, expense)
		}
		prev = plan.RequiredCorpus
	}
}

func TestComputeRetirementPlan_MonotoneInSavings(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	prev := int64(math.MaxInt64)
	for _, savings := range []float64{0, 1e6, 5e6, 2e7} {
		in := baseInputs()
		in.CurrentSavings = savings
		plan, err := svc.ComputeRetirementPlan(ctx, in)
		if err != nil {
			t.Fatalf("plan for savings %v failed: %v", savings, err)
		}
		if plan.RequiredMonthlySIP > prev {
			t.Errorf("required SIP increased (%d -> %d) when savings rose to %v", prev, plan.RequiredMonthlySIP, savings)
		}
		prev = plan.RequiredMonthlySIP
	}
}

func TestComputeRetirementPlan_BehindAndRecovery(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	behind := baseInputs()
	behind.CurrentMonthlyInvestment = 1000
	plan, err := svc.ComputeRetirementPlan(ctx, behind)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if !plan.IsBehind {
		t.Error("1k/month against a ~30k requirement should be behind")
	}

	ahead := baseInputs()
	ahead.CurrentMonthlyInvestment = 100000
	plan, err = svc.ComputeRetirementPlan(ctx, ahead)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if plan.IsBehind {
		t.Error("100k/month against a ~30k requirement should not be behind")
	}
	if !plan.CanRecover {
		t.Error("a contributor ahead of the requirement can always recover")
	}
}

func TestComputeRetirementPlan_InvalidHorizon(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Retiring at life expectancy leaves no retirement years.
	in := baseInputs()
	in.RetirementAge = 90
	if _, err := svc.ComputeRetirementPlan(ctx, in); !errors.Is(err, ErrInvalidHorizon) {
		t.Errorf("retirement at 90 should return ErrInvalidHorizon, got %v", err)
	}

	in = baseInputs()
	in.RetirementAge = 95
	if _, err := svc.ComputeRetirementPlan(ctx, in); !errors.Is(err, ErrInvalidHorizon) {
		t.Errorf("retirement past 90 should return ErrInvalidHorizon, got %v", err)
	}
}

func TestComputeRetirementPlan_ProgressRatio(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := baseInputs()
	in.CurrentSavings = 1e9 // far beyond any requirement
	plan, err := svc.ComputeRetirementPlan(ctx, in)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if plan.ProgressRatio != 1.0 {
		t.Errorf("ProgressRatio = %v, want capped at 1.0", plan.ProgressRatio)
	}

	in = baseInputs()
	plan, err = svc.ComputeRetirementPlan(ctx, in)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
	if plan.ProgressRatio != 0 {
		t.Errorf("ProgressRatio with zero savings = %v, want 0", plan.ProgressRatio)
	}
}

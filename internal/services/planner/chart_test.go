package planner

import (
	"bytes"
	"context"
	"testing"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestRenderAllocationChart(t *testing.T) {
	svc := newTestService()

	plan, err := svc.ComputeRetirementPlan(context.Background(), baseInputs())
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	png, err := svc.RenderAllocationChart(plan)
	if err != nil {
		t.Fatalf("RenderAllocationChart failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("allocation chart output is not a PNG")
	}
}

func TestRenderAllocationChart_NilPlan(t *testing.T) {
	svc := newTestService()
	if _, err := svc.RenderAllocationChart(nil); err == nil {
		t.Error("expected error for nil plan")
	}
}

func TestRenderCatchUpChart(t *testing.T) {
	svc := newTestService()

	in := baseInputs()
	plan, err := svc.ComputeRetirementPlan(context.Background(), in)
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}

	png, err := svc.RenderCatchUpChart(plan, in.CurrentMonthlyInvestment)
	if err != nil {
		t.Fatalf("RenderCatchUpChart failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("catch-up chart output is not a PNG")
	}
}

func TestRenderCatchUpChart_TooFewPoints(t *testing.T) {
	svc := newTestService()
	if _, err := svc.RenderCatchUpChart(nil, 10000); err == nil {
		t.Error("expected error for nil plan")
	}
}

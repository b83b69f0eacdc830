package planner

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/amitrb/finplan/internal/models"
)

// RenderAllocationChart renders the plan's monthly allocation as a PNG donut,
// one slice per asset class. Returns raw PNG bytes.
func (s *Service) RenderAllocationChart(plan *models.RetirementPlan) ([]byte, error) {
	if plan == nil || len(plan.Allocation) == 0 {
		return nil, fmt.Errorf("plan has no allocation to chart")
	}

	values := make([]chart.Value, 0, len(plan.Allocation))
	for _, class := range models.AssetClasses {
		amount := plan.Allocation[class]
		if amount <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: amount,
			Label: fmt.Sprintf("%s ₹%.0f", class, amount),
		})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("allocation amounts are all zero")
	}

	graph := chart.DonutChart{
		Title:  "Monthly Investment Allocation",
		Width:  600,
		Height: 400,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderCatchUpChart renders current vs required vs catch-up SIP over the
// accumulation horizon as a PNG line chart. Three series: Current SIP (gray
// dashed), Required SIP (blue solid), Catch-up Path (amber solid).
// Returns raw PNG bytes.
func (s *Service) RenderCatchUpChart(plan *models.RetirementPlan, currentMonthlyInvestment float64) ([]byte, error) {
	if plan == nil || len(plan.CatchUpPath) < 2 {
		return nil, fmt.Errorf("need at least 2 path points, got %d", len(plan.CatchUpPath))
	}

	n := len(plan.CatchUpPath)
	xValues := make([]float64, n)
	currentY := make([]float64, n)
	requiredY := make([]float64, n)
	catchupY := make([]float64, n)

	for i, sip := range plan.CatchUpPath {
		xValues[i] = float64(i + 1)
		currentY[i] = currentMonthlyInvestment
		requiredY[i] = float64(plan.RequiredMonthlySIP)
		catchupY[i] = float64(sip)
	}

	currentSeries := chart.ContinuousSeries{
		Name: "Current SIP",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: currentY,
	}

	requiredSeries := chart.ContinuousSeries{
		Name: "Required SIP",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: requiredY,
	}

	catchupSeries := chart.ContinuousSeries{
		Name: "Catch-up Path",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("f59e0b"), // amber-500
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: catchupY,
	}

	graph := chart.Chart{
		Title:  "Closing the SIP Gap",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: "Years till retirement",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("₹%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{
			currentSeries,
			requiredSeries,
			catchupSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

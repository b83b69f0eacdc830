package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amitrb/finplan/internal/cache"
	"github.com/amitrb/finplan/internal/models"
	"github.com/amitrb/finplan/internal/services/planner"
)

// handleRetirementPlan handles POST /api/plan/retirement.
func (s *Server) handleRetirementPlan(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var inputs models.RetirementInputs
	if !DecodeJSON(w, r, &inputs) {
		return
	}
	if err := inputs.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if body, ok := s.cachedResult(r.Context(), "plan", inputs); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
		return
	}

	plan, err := s.app.PlannerService.ComputeRetirementPlan(r.Context(), inputs)
	if err != nil {
		s.writePlanError(w, err)
		return
	}

	s.storeResult(r.Context(), "plan", inputs, plan)
	WriteJSON(w, http.StatusOK, plan)
}

// handleAllocationChart handles POST /api/plan/retirement/chart/allocation.
// Recomputes the plan from the posted inputs and renders its allocation donut.
func (s *Server) handleAllocationChart(w http.ResponseWriter, r *http.Request) {
	plan, _, ok := s.planFromRequest(w, r)
	if !ok {
		return
	}

	png, err := s.app.PlannerService.RenderAllocationChart(plan)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to render chart: "+err.Error())
		return
	}
	WritePNG(w, png)
}

// handleCatchUpChart handles POST /api/plan/retirement/chart/catchup.
func (s *Server) handleCatchUpChart(w http.ResponseWriter, r *http.Request) {
	plan, inputs, ok := s.planFromRequest(w, r)
	if !ok {
		return
	}

	png, err := s.app.PlannerService.RenderCatchUpChart(plan, inputs.CurrentMonthlyInvestment)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to render chart: "+err.Error())
		return
	}
	WritePNG(w, png)
}

// planFromRequest decodes, validates, and computes a plan for chart handlers.
func (s *Server) planFromRequest(w http.ResponseWriter, r *http.Request) (*models.RetirementPlan, models.RetirementInputs, bool) {
	var inputs models.RetirementInputs
	if !RequireMethod(w, r, http.MethodPost) {
		return nil, inputs, false
	}
	if !DecodeJSON(w, r, &inputs) {
		return nil, inputs, false
	}
	if err := inputs.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return nil, inputs, false
	}

	plan, err := s.app.PlannerService.ComputeRetirementPlan(r.Context(), inputs)
	if err != nil {
		s.writePlanError(w, err)
		return nil, inputs, false
	}
	return plan, inputs, true
}

// writePlanError maps planner errors to HTTP status codes.
func (s *Server) writePlanError(w http.ResponseWriter, err error) {
	if errors.Is(err, planner.ErrInvalidHorizon) {
		WriteErrorWithCode(w, http.StatusUnprocessableEntity, err.Error(), "invalid_horizon")
		return
	}
	WriteError(w, http.StatusInternalServerError, err.Error())
}

// cachedResult looks up a serialized result for the request, when caching is on.
func (s *Server) cachedResult(ctx context.Context, prefix string, request interface{}) (string, bool) {
	if s.app.Cache == nil {
		return "", false
	}
	key, err := cache.Key(prefix, request)
	if err != nil {
		return "", false
	}
	return s.app.Cache.Get(ctx, key)
}

// storeResult caches a serialized result for the request, when caching is on.
// Cache failures only cost a recomputation, so they are logged and swallowed.
func (s *Server) storeResult(ctx context.Context, prefix string, request, result interface{}) {
	if s.app.Cache == nil {
		return
	}
	key, err := cache.Key(prefix, request)
	if err != nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.app.Cache.Set(ctx, key, string(data)); err != nil {
		s.logger.Warn().Err(err).Msg("Result cache write failed")
	}
}

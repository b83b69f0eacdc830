package server

import (
	"net/http"
	"time"

	"github.com/amitrb/finplan/internal/common"
	"github.com/amitrb/finplan/internal/models"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/assumptions", s.handleAssumptions)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Retirement planning
	mux.HandleFunc("/api/plan/retirement", s.handleRetirementPlan)
	mux.HandleFunc("/api/plan/retirement/chart/allocation", s.handleAllocationChart)
	mux.HandleFunc("/api/plan/retirement/chart/catchup", s.handleCatchUpChart)

	// Insurance
	mux.HandleFunc("/api/insurance/gap", s.handleInsuranceGap)
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion handles GET /api/version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleConfig handles GET /api/config. Reports the non-sensitive runtime
// configuration.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	cfg := s.app.Config
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":        cfg.Environment,
		"cache_enabled":      cfg.Cache.Enabled,
		"rate_limit_enabled": cfg.RateLimit.Enabled,
		"uptime":             time.Since(s.app.StartupTime).String(),
	})
}

// handleAssumptions handles GET /api/assumptions: the fixed economic
// assumptions and the risk allocation table behind every plan.
func (s *Server) handleAssumptions(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"assumptions":      s.app.PlannerService.Assumptions(),
		"risk_allocations": models.RiskAllocationTable(),
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}

package server

import (
	"net/http"

	"github.com/amitrb/finplan/internal/models"
)

// handleInsuranceGap handles POST /api/insurance/gap.
func (s *Server) handleInsuranceGap(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var inputs models.InsuranceInputs
	if !DecodeJSON(w, r, &inputs) {
		return
	}
	if err := inputs.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if body, ok := s.cachedResult(r.Context(), "insurance", inputs); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
		return
	}

	assessment, err := s.app.InsuranceService.ComputeInsuranceGap(r.Context(), inputs)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.storeResult(r.Context(), "insurance", inputs, assessment)
	WriteJSON(w, http.StatusOK, assessment)
}

package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/space42/astra/internal/careers"
)

func (s *Server) handleCompanyInfo(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"overview": s.kb.Overview,
		"business_units": []map[string]any{
			{
				"name":        s.kb.SpaceServices.Name,
				"description": s.kb.SpaceServices.Description,
				"key_areas":   s.kb.SpaceServices.KeyAreas,
			},
			{
				"name":        s.kb.SmartSolutions.Name,
				"description": s.kb.SmartSolutions.Description,
				"key_areas":   s.kb.SmartSolutions.KeyAreas,
			},
		},
		"locations": map[string]any{
			"headquarters": s.kb.Locations.Headquarters,
			"offices":      s.kb.Locations.Offices,
		},
		"culture": map[string]any{
			"dress_code": s.kb.Culture.DressCode,
			"work_hours": s.kb.Culture.WorkHours,
			"values":     s.kb.Culture.Values,
		},
	})
}

func (s *Server) handleChecklist(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"items": s.kb.Checklist,
	})
}

func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"jobs": s.catalog.List(),
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid_job_id", "missing job id")
		return
	}
	job, err := s.catalog.Get(id)
	if err != nil {
		if errors.Is(err, careers.ErrNotFound) {
			respondError(w, http.StatusNotFound, "job_not_found", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "job_lookup_failed", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (s *Server) handlePerfLatency(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.metrics.SnapshotReplyStages())
}

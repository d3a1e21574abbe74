package api

import (
	"net/http"

	"github.com/healthbuddy/health-tracker-core/internal/tracker"
)

type HealthHandler struct {
	svc     *tracker.Service
	clock   *Clock
	env     string
	version string
}

func NewHealthHandler(svc *tracker.Service, clock *Clock, env, version string) *HealthHandler {
	return &HealthHandler{
		svc:     svc,
		clock:   clock,
		env:     env,
		version: version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
	Clock   string `json:"clock,omitempty"`
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version,omitempty"`
	Env          string            `json:"env,omitempty"`
	Appointments int               `json:"appointments"`
	Medications  int               `json:"medications"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	resp := LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
		Clock:   h.clock.Now(),
	}
	writeJSON(w, http.StatusOK, resp)
}

// Readiness reports store sizes. The store is in-process memory, so the
// only failure mode worth exposing is the process itself being gone.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	appointments, medications := h.svc.Counts()

	resp := ReadinessResponse{
		Status:       "ok",
		Version:      h.version,
		Env:          h.env,
		Appointments: appointments,
		Medications:  medications,
		Dependencies: map[string]string{"store": "ok"},
	}
	writeJSON(w, http.StatusOK, resp)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/scheduler"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// JobLister lists the queued jobs of the runner.
type JobLister interface {
	Jobs() []scheduler.JobInfo
}

// HTTPHandler serves the ops endpoints.
type HTTPHandler struct {
	registry contract.TriggerRegistry
	jobs     JobLister
	log      *zap.SugaredLogger
}

func NewHTTPHandler(registry contract.TriggerRegistry, jobs JobLister, log *zap.SugaredLogger) *HTTPHandler {
	return &HTTPHandler{
		registry: registry,
		jobs:     jobs,
		log:      log,
	}
}

func (h *HTTPHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/schedules", h.HandleListSchedules).Methods(http.MethodGet)
	r.HandleFunc("/schedules/resync", h.HandleResync).Methods(http.MethodPost)
	if h.jobs != nil {
		r.HandleFunc("/jobs", h.HandleListJobs).Methods(http.MethodGet)
	}
	return r
}

func (h *HTTPHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) HandleListSchedules(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, h.registry.Triggers())
}

func (h *HTTPHandler) HandleResync(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Reload(r.Context()); err != nil {
		h.log.Errorw("failed to resync schedules", "error", err)
		h.respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "resync failed"})
		return
	}

	triggers := h.registry.Triggers()
	h.log.Infow("schedules resynced", "triggers", len(triggers))
	h.respondJSON(w, http.StatusOK, triggers)
}

func (h *HTTPHandler) HandleListJobs(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, h.jobs.Jobs())
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Warnw("failed to encode response", "error", err)
	}
}

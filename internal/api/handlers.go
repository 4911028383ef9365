package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/service"
)

type handler struct {
	c *Container
}

type stakeholderSummary struct {
	ID          domain.StakeholderID `json:"id"`
	Name        string               `json:"name"`
	Color       string               `json:"color"`
	Description string               `json:"description"`
	Priorities  []string             `json:"priorities"`
}

// listStakeholders handles GET /api/stakeholders
func (h *handler) listStakeholders(w http.ResponseWriter, r *http.Request) {
	all := h.c.Catalog.All()
	out := make([]stakeholderSummary, 0, len(all))
	for _, p := range all {
		out = append(out, stakeholderSummary{
			ID:          p.ID,
			Name:        p.Name,
			Color:       p.Color,
			Description: p.Description,
			Priorities:  p.Priorities,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// getStakeholder handles GET /api/stakeholders/{id}
func (h *handler) getStakeholder(w http.ResponseWriter, r *http.Request) {
	id := domain.StakeholderID(mux.Vars(r)["id"])
	p, ok := h.c.Catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown stakeholder: "+string(id))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// getResponse handles GET /api/responses/{id}?enhanced=&context=&variant=&ai=
func (h *handler) getResponse(w http.ResponseWriter, r *http.Request) {
	opts, err := revealOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := h.c.Dialogue.Reveal(r.Context(), domain.StakeholderID(mux.Vars(r)["id"]), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// listResponses handles GET /api/responses
func (h *handler) listResponses(w http.ResponseWriter, r *http.Request) {
	opts, err := revealOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.c.Dialogue.RevealAll(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type sentimentRequest struct {
	Base     *domain.AdjustmentState `json:"base"`
	Adjusted *domain.AdjustmentState `json:"adjusted"`
}

// computeSentiment handles POST /api/sentiment. A missing base falls back to
// the active scenario's baseline.
func (h *handler) computeSentiment(w http.ResponseWriter, r *http.Request) {
	var req sentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Adjusted == nil {
		writeError(w, http.StatusBadRequest, "adjusted is required")
		return
	}
	base := req.Base
	if base == nil {
		b, err := h.c.Explore.Baseline(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		base = &b
	}
	writeJSON(w, http.StatusOK, h.c.Explore.Explore(r.Context(), *base, *req.Adjusted))
}

type scenarioResponse struct {
	Scenario *domain.StoredScenario `json:"scenario"`
	Derived  *domain.DerivedMetrics `json:"derived"`
	Baseline domain.AdjustmentState `json:"baseline"`
}

// getScenario handles GET /api/scenario
func (h *handler) getScenario(w http.ResponseWriter, r *http.Request) {
	active, err := h.c.Scenarios.Active(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scenarioResponse{
		Scenario: active.Stored,
		Derived:  active.Derived,
		Baseline: service.BaselineState(active.Scenario()),
	})
}

// aiStatus handles GET /api/ai/status
func (h *handler) aiStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.c.Dialogue.AIStatus(r.Context()))
}

var errBadQuery = errors.New("invalid query parameter")

func revealOptions(r *http.Request) (service.RevealOptions, error) {
	q := r.URL.Query()
	var opts service.RevealOptions
	var err error
	if opts.Enhanced, err = boolParam(q.Get("enhanced")); err != nil {
		return opts, err
	}
	if opts.AI, err = boolParam(q.Get("ai")); err != nil {
		return opts, err
	}
	if c := q.Get("context"); c != "" {
		if !domain.ValidContexts[c] {
			return opts, errors.New("unknown context: " + c)
		}
		opts.Context = domain.DevelopmentContext(c)
		opts.Enhanced = true
	}
	if v := q.Get("variant"); v != "" {
		if !domain.ValidVariants[v] {
			return opts, errors.New("unknown variant: " + v)
		}
		opts.Variant = domain.Variant(v)
		opts.Enhanced = true
	}
	return opts, nil
}

func boolParam(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errBadQuery
	}
	return b, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownStakeholder):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoActiveScenario):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

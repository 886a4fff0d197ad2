package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/charlesw/alexandria-crm/internal/infra/http/middleware"
	"github.com/charlesw/alexandria-crm/internal/infra/store"
)

type HealthHandler struct {
	Store          store.TableStore
	MailConfigured bool
	StartTime      time.Time

	// probeTable/probeHeaders is the contract used to exercise the store.
	ProbeTable   string
	ProbeHeaders []string
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(s store.TableStore, mailConfigured bool, probeTable string, probeHeaders []string) *HealthHandler {
	return &HealthHandler{
		Store:          s,
		MailConfigured: mailConfigured,
		StartTime:      time.Now(),
		ProbeTable:     probeTable,
		ProbeHeaders:   probeHeaders,
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Check the record store by reading the probe table against its header
	// contract. A schema drift shows up here before any user hits it.
	if h.Store != nil {
		if _, err := h.Store.GetAllRows(r.Context(), h.ProbeTable, h.ProbeHeaders); err != nil {
			middleware.RecordStoreError("health_probe")
			deps["record_store"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["record_store"] = "healthy"
		}
	} else {
		deps["record_store"] = "not configured"
	}

	if h.MailConfigured {
		deps["mail"] = "configured"
	} else {
		deps["mail"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

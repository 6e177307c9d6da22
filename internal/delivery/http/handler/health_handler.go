package handler

import (
	"context"
	"net/http"
	"time"

	"hospital-dashboard/pkg/response"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		response.ServiceUnavailable(w, "Database unreachable")
		return
	}

	response.Success(w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}

package handler

import (
	"context"
	"net/http"

	"hospital-dashboard/internal/service"
	"hospital-dashboard/pkg/response"
)

type AssistantStatsReader interface {
	Stats(ctx context.Context) (*service.AssistantStats, error)
}

type AssistantStatsHandler struct {
	stats AssistantStatsReader
}

// NewAssistantStatsHandler accepts a nil reader when Redis is disabled.
func NewAssistantStatsHandler(stats AssistantStatsReader) *AssistantStatsHandler {
	return &AssistantStatsHandler{stats: stats}
}

func (h *AssistantStatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		response.ServiceUnavailable(w, "Assistant statistics require Redis")
		return
	}

	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		response.ServiceUnavailable(w, "Failed to read assistant statistics")
		return
	}

	response.Success(w, http.StatusOK, "Assistant statistics retrieved successfully", stats)
}

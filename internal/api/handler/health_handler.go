package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/comedor/internal/service"
)

type healthResponse struct {
	Status    string             `json:"status" example:"ok"`
	Checks    map[string]string  `json:"checks"`
	MenuCache service.CacheStats `json:"menu_cache"`
}

// Health 健康检查
// @Summary 健康检查
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	res := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks)), MenuCache: h.menuCache.Stats()}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			res.Checks[name] = err.Error()
			res.Status = "degraded"
			continue
		}
		res.Checks[name] = "ok"
	}

	code := http.StatusOK
	if res.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, res)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/commerce-api/common"
	"github.com/shopcore/commerce-api/framework/web"
)

type Health struct {
	started time.Time
}

func NewHealth() *Health {
	return &Health{started: time.Now().UTC()}
}

// Check reports process liveness. It is unauthenticated and excluded from
// request logging.
func (h *Health) Check(ctx *gin.Context) error {
	return web.Respond(ctx, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(h.started).String(),
		"environment": common.Env,
	}, http.StatusOK)
}

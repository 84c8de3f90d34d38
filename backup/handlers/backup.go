package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/commerce-api/backup/service"
	"github.com/shopcore/commerce-api/framework/connection"
	"github.com/shopcore/commerce-api/framework/web"
	"github.com/shopcore/commerce-api/logger"
)

type Backup struct {
	loggerProvider logger.Provider
	service        *service.ExportService
}

func NewBackup(loggerProvider logger.Provider, conn *connection.Connection) *Backup {
	return &Backup{
		loggerProvider,
		service.NewExportService(loggerProvider, conn),
	}
}

// ExportCustomers runs the customers snapshot export. Invoked by the
// scheduler and exposed as a task endpoint for manual runs.
func (h *Backup) ExportCustomers(ctx *gin.Context) error {
	object, err := h.service.ExportCustomers(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"object": object}, http.StatusOK)
}

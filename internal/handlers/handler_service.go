package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/dto"
	"github.com/govportal/citizen_services_backend/internal/middleware"
)

// serviceHandler handles HTTP requests for the public service catalog.
type serviceHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newServiceHandler(cs portssvc.CatalogSvcFacade) *serviceHandler {
	return &serviceHandler{catalogService: cs}
}

// registerServiceRoutes registers the public catalog routes.
func registerServiceRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newServiceHandler(catalogService)

	rg.GET("/services", h.listServices)
}

// listServices godoc
// @Summary List offered services
// @Description Returns the catalog of government services with their fees.
// @Tags services
// @Produce json
// @Success 200 {array} dto.ServiceResponse
// @Failure 500 {object} ErrorResponse
// @Router /services [get]
func (h *serviceHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list services", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve services"})
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponses(services))
}

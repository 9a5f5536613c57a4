package v1

import (
	"github.com/cascade-admin/locations/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Locations API
// @version 1.0
// @description Lookup endpoints feeding the cascading country → region → city dropdowns.

// @BasePath /

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initLookupRoutes(api)
}

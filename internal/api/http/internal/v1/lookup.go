package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cascade-admin/locations/internal/domain"
	"github.com/cascade-admin/locations/pkg/logger"
)

func (h *Handler) initLookupRoutes(api *gin.RouterGroup) {
	api.GET("/get_regions_for_country/:id", h.getRegionsForCountry)
	api.GET("/get_cities_for_region/:id", h.getCitiesForRegion)
}

type regionsResponse struct {
	Regions []domain.Option `json:"regions"`
} // @name RegionsResponse

type citiesResponse struct {
	Cities []domain.Option `json:"cities"`
} // @name CitiesResponse

// @Summary Get Regions For Country
// @Tags Lookup
// @Description Regions of a country in store order, used to refill the region dropdown
// @ModuleID getRegionsForCountry
// @Produce  json
// @Param id path int true "Country ID"
// @Success 200 {object} regionsResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /get_regions_for_country/{id} [get]
func (h *Handler) getRegionsForCountry(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		errorResponse(c, http.StatusNotFound, InvalidIDCode)
		return
	}

	regions, err := h.services.Lookup.RegionsForCountry(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, CountryNotFoundCode)
			return
		}
		logger.Error("get regions for country failed", zap.Error(err), zap.Int64("country_id", id))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	if regions == nil {
		regions = []domain.Option{}
	}
	c.JSON(http.StatusOK, regionsResponse{Regions: regions})
}

// @Summary Get Cities For Region
// @Tags Lookup
// @Description Cities of a region in store order, used to refill the city dropdown
// @ModuleID getCitiesForRegion
// @Produce  json
// @Param id path int true "Region ID"
// @Success 200 {object} citiesResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /get_cities_for_region/{id} [get]
func (h *Handler) getCitiesForRegion(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		errorResponse(c, http.StatusNotFound, InvalidIDCode)
		return
	}

	cities, err := h.services.Lookup.CitiesForRegion(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, RegionNotFoundCode)
			return
		}
		logger.Error("get cities for region failed", zap.Error(err), zap.Int64("region_id", id))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	if cities == nil {
		cities = []domain.Option{}
	}
	c.JSON(http.StatusOK, citiesResponse{Cities: cities})
}

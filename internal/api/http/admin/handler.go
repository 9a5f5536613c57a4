package admin

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cascade-admin/locations/internal/domain"
	"github.com/cascade-admin/locations/internal/service"
	"github.com/cascade-admin/locations/pkg/logger"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*.js
var staticFiles embed.FS

const methodOverrideField = "_method"

type Handler struct {
	locations service.Locations
}

func NewHandler(locations service.Locations) *Handler {
	return &Handler{
		locations: locations,
	}
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
	}
	return template.Must(template.New("admin").Funcs(funcs).ParseFS(templateFiles, "templates/*.html"))
}

func (h *Handler) Init(router *gin.Engine) {
	router.SetHTMLTemplate(Templates())
	router.StaticFileFS("/js/location_form.js", "static/location_form.js", http.FS(staticFiles))

	router.GET("/", h.listLocations)
	router.GET("/create", h.createLocationPage)
	router.POST("/create", h.createLocation)
	router.GET("/edit/:id", h.editLocationPage)
	router.PUT("/edit/:id", h.updateLocation)
	router.POST("/edit/:id", h.overrideMethod(http.MethodPut, h.updateLocation))
}

func (h *Handler) listLocations(c *gin.Context) {
	locations, err := h.locations.List(c.Request.Context())
	if err != nil {
		logger.Error("list locations failed", zap.Error(err))
		h.errorPage(c, http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "list.html", gin.H{
		"Title":     "List locations",
		"Locations": locations,
	})
}

func (h *Handler) createLocationPage(c *gin.Context) {
	form, err := h.locations.NewForm(c.Request.Context())
	if err != nil {
		logger.Error("build location form failed", zap.Error(err))
		h.errorPage(c, http.StatusInternalServerError)
		return
	}

	h.formPage(c, "New location", "/create", false, form)
}

func (h *Handler) createLocation(c *gin.Context) {
	var submission service.Submission
	if err := c.ShouldBind(&submission); err != nil {
		logger.Error("invalid location submission", zap.Error(err))
		h.errorPage(c, http.StatusBadRequest)
		return
	}

	form, location, err := h.locations.Create(c.Request.Context(), submission)
	if err != nil {
		logger.Error("create location failed", zap.Error(err))
		h.errorPage(c, http.StatusInternalServerError)
		return
	}

	if !form.Valid() {
		h.formPage(c, "New location", "/create", false, form)
		return
	}

	logger.Info("location created", zap.Int64("id", location.ID), zap.Int64("city_id", location.CityID))
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) editLocationPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorPage(c, http.StatusNotFound)
		return
	}

	form, err := h.locations.EditForm(c.Request.Context(), id)
	if err != nil {
		h.handleLocationError(c, id, err)
		return
	}

	h.formPage(c, "Edit location", editPath(id), true, form)
}

func (h *Handler) updateLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.errorPage(c, http.StatusNotFound)
		return
	}

	var submission service.Submission
	if err := c.ShouldBind(&submission); err != nil {
		logger.Error("invalid location submission", zap.Error(err))
		h.errorPage(c, http.StatusBadRequest)
		return
	}

	form, location, err := h.locations.Update(c.Request.Context(), id, submission)
	if err != nil {
		h.handleLocationError(c, id, err)
		return
	}

	if !form.Valid() {
		h.formPage(c, "Edit location", editPath(id), true, form)
		return
	}

	logger.Info("location updated", zap.Int64("id", location.ID), zap.Int64("city_id", location.CityID))
	c.Redirect(http.StatusFound, "/")
}

// overrideMethod dispatches a POST carrying _method=<method> to next, the way
// HTML forms emulate PUT.
func (h *Handler) overrideMethod(method string, next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.EqualFold(c.PostForm(methodOverrideField), method) {
			h.errorPage(c, http.StatusMethodNotAllowed)
			return
		}
		next(c)
	}
}

func (h *Handler) handleLocationError(c *gin.Context, id int64, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.errorPage(c, http.StatusNotFound)
		return
	}
	logger.Error("location request failed", zap.Error(err), zap.Int64("id", id))
	h.errorPage(c, http.StatusInternalServerError)
}

func (h *Handler) formPage(c *gin.Context, title string, action string, edit bool, form *service.LocationForm) {
	c.HTML(http.StatusOK, "form.html", gin.H{
		"Title":  title,
		"Action": action,
		"Edit":   edit,
		"Form":   form,
	})
}

func (h *Handler) errorPage(c *gin.Context, status int) {
	c.HTML(status, "error.html", gin.H{
		"Title":  http.StatusText(status),
		"Status": status,
	})
	c.Abort()
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func editPath(id int64) string {
	return "/edit/" + strconv.FormatInt(id, 10)
}

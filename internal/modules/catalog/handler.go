package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starwarsblog/internal/domain"
	"starwarsblog/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/all_users", h.List(domain.KindUser))
	rg.GET("/user/:id", h.Get(domain.KindUser))
	rg.POST("/new_user", h.Create(domain.KindUser))

	rg.GET("/all_characters", h.List(domain.KindCharacter))
	rg.GET("/character/:id", h.Get(domain.KindCharacter))
	rg.POST("/new_character", h.Create(domain.KindCharacter))

	rg.GET("/all_planets", h.List(domain.KindPlanet))
	rg.GET("/planet/:id", h.Get(domain.KindPlanet))
	rg.POST("/new_planet", h.Create(domain.KindPlanet))

	rg.GET("/all_vehicles", h.List(domain.KindVehicle))
	rg.GET("/vehicle/:id", h.Get(domain.KindVehicle))
	rg.POST("/new_vehicle", h.Create(domain.KindVehicle))
}

// List returns every entity of the kind.
// @Summary  List entities
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /all_planets [GET]
func (h *Handler) List(kind domain.EntityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.service.ListAll(c.Request.Context(), kind)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, items)
	}
}

// Get returns one entity by id.
// @Summary  Get entity
// @Produce  json
// @Param    id path int true "Entity ID"
// @Success  200 {object} map[string]interface{}
// @Failure  400 {object} map[string]interface{} "Invalid ID"
// @Failure  404 {object} map[string]interface{} "Not found"
// @Router   /planet/{id} [GET]
func (h *Handler) Get(kind domain.EntityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+string(kind)+" ID")
			return
		}

		e, err := h.service.GetByID(c.Request.Context(), kind, id)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, e)
	}
}

// Create validates the JSON body and stores a new entity.
// @Summary  Create entity
// @Accept   json
// @Produce  json
// @Success  201 {object} map[string]interface{}
// @Failure  400 {object} map[string]interface{} "Validation error"
// @Failure  409 {object} map[string]interface{} "Name or email already taken"
// @Router   /new_planet [POST]
func (h *Handler) Create(kind domain.EntityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]any
		if err := c.ShouldBindJSON(&fields); err != nil || fields == nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
			return
		}

		e, err := h.service.Create(c.Request.Context(), kind, fields)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, e)
	}
}

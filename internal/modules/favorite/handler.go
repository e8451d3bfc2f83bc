package favorite

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starwarsblog/internal/pkg/response"
)

// Handler serves the favorites endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user/:id/favorites", h.GetFavorites)

	favorites := rg.Group("/favorite/user/:user_id")
	{
		favorites.POST("/:kind/:target_id", h.AddFavorite)
		favorites.DELETE("/:kind/:target_id", h.RemoveFavorite)
		favorites.GET("/:kind/:target_id/check", h.CheckFavorite)
	}
}

// GetFavorites returns the user's favorites.
//
// @Summary List favorites of a user
// @Tags Favorite
// @Produce json
// @Param id path int64 true "User ID"
// @Success 200 {object} map[string]interface{} "Favorites, possibly empty"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Router /user/{id}/favorites [get]
func (h *Handler) GetFavorites(c *gin.Context) {
	userID, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	favorites, err := h.service.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, favorites)
}

// AddFavorite adds a planet, vehicle or character to the user's favorites.
//
// @Summary Add favorite
// @Tags Favorite
// @Produce json
// @Param user_id path int64 true "User ID"
// @Param kind path string true "planet | vehicle | character"
// @Param target_id path int64 true "Target ID"
// @Success 201 {object} map[string]interface{} "Created favorite"
// @Failure 400 {object} map[string]interface{} "Invalid ID or kind"
// @Failure 404 {object} map[string]interface{} "User or target not found"
// @Failure 409 {object} map[string]interface{} "Already in favorites"
// @Router /favorite/user/{user_id}/{kind}/{target_id} [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, targetID, ok := parsePair(c)
	if !ok {
		return
	}

	favorite, err := h.service.AddFavorite(c.Request.Context(), userID, c.Param("kind"), targetID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, favorite)
}

// RemoveFavorite deletes the favorite matching user, kind and target.
//
// @Summary Remove favorite
// @Tags Favorite
// @Produce json
// @Param user_id path int64 true "User ID"
// @Param kind path string true "planet | vehicle | character"
// @Param target_id path int64 true "Target ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Favorite not found"
// @Router /favorite/user/{user_id}/{kind}/{target_id} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, targetID, ok := parsePair(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(c.Request.Context(), userID, c.Param("kind"), targetID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MessageResponse{Message: "Favorite has been deleted"})
}

// CheckFavorite reports whether the target is in the user's favorites.
//
// @Summary Check favorite
// @Tags Favorite
// @Produce json
// @Success 200 {object} CheckFavoriteResponse
// @Router /favorite/user/{user_id}/{kind}/{target_id}/check [get]
func (h *Handler) CheckFavorite(c *gin.Context) {
	userID, targetID, ok := parsePair(c)
	if !ok {
		return
	}

	isFavorite, err := h.service.IsFavorite(c.Request.Context(), userID, c.Param("kind"), targetID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, CheckFavoriteResponse{IsFavorite: isFavorite})
}

func parsePair(c *gin.Context) (userID, targetID int64, ok bool) {
	if userID, ok = parseID(c, "user_id", "user"); !ok {
		return 0, 0, false
	}
	if targetID, ok = parseID(c, "target_id", "target"); !ok {
		return 0, 0, false
	}
	return userID, targetID, true
}

func parseID(c *gin.Context, param, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+what+" ID")
		return 0, false
	}
	return id, true
}

package server

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"starwarsblog/internal/config"
	"starwarsblog/internal/middleware"
	"starwarsblog/internal/modules/catalog"
	"starwarsblog/internal/modules/favorite"
	"starwarsblog/internal/pkg/response"
	"starwarsblog/internal/repository"
)

// Route is one sitemap entry.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	catalogService := catalog.NewService(userRepo, planetRepo, vehicleRepo, characterRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	favoriteService := favorite.NewService(favoriteRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		gin.Logger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	root := r.Group("")
	{
		catalogHandler.RegisterRoutes(root)
		favoriteHandler.RegisterRoutes(root)
	}

	r.GET("/", sitemap(r))

	return r
}

// sitemap lists every registered endpoint except itself.
func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := make([]Route, 0)
		for _, ri := range r.Routes() {
			if ri.Path == "/" {
				continue
			}
			routes = append(routes, Route{Method: ri.Method, Path: ri.Path})
		}
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path != routes[j].Path {
				return routes[i].Path < routes[j].Path
			}
			return routes[i].Method < routes[j].Method
		})
		response.Success(c, http.StatusOK, routes)
	}
}

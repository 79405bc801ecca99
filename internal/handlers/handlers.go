package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/service"
)

// API bundles the services behind the HTTP surface.
type API struct {
	catalog    *service.Catalog
	characters *service.Characters
	loadouts   *service.Loadouts
	matches    *service.Matches
	log        zerolog.Logger
}

func NewAPI(catalog *service.Catalog, characters *service.Characters, loadouts *service.Loadouts, matches *service.Matches, log zerolog.Logger) *API {
	return &API{
		catalog:    catalog,
		characters: characters,
		loadouts:   loadouts,
		matches:    matches,
		log:        log.With().Str("component", "api").Logger(),
	}
}

func SetupRoutes(r *gin.Engine, api *API) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/arenas", api.handleListArenas)

		apiGroup.GET("/characters", api.handleListCharacters)
		apiGroup.POST("/characters", api.handleCreateCharacter)

		apiGroup.GET("/equipments", api.handleListEquipments)
		apiGroup.POST("/equipments", api.handleCreateEquipment)
		apiGroup.GET("/class-equipments", api.handleClassEquipments)

		apiGroup.GET("/loadouts", api.handleListLoadouts)
		apiGroup.POST("/loadouts", api.handleCreateLoadout)
		apiGroup.PUT("/loadouts/:id", api.handleReplaceLoadout)

		apiGroup.GET("/specializations", api.handleListSpecializations)

		apiGroup.GET("/matches", api.handleListMatchCharacters)
		apiGroup.POST("/matches", api.handleCreateMatch)
		apiGroup.GET("/match-history", api.handleMatchHistory)
	}
}

// respondError maps the failure taxonomy onto status codes. Internal detail
// is logged, never echoed to the caller.
func (api *API) respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.KindConsistency:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		api.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/models"
	"worldtour-tracker/internal/service"
)

func (api *API) handleListArenas(c *gin.Context) {
	arenas, err := api.catalog.ListArenas()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, arenas)
}

func (api *API) handleListEquipments(c *gin.Context) {
	equipments, err := api.catalog.ListEquipments()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipments)
}

func (api *API) handleCreateEquipment(c *gin.Context) {
	var req createEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.respondError(c, apperr.Validation("invalid request body"))
		return
	}

	detail, err := api.catalog.CreateEquipment(service.CreateEquipmentInput{
		Name:          req.Name,
		EquipmentType: req.EquipmentType,
		Description:   req.Description,
		WeaponType:    req.WeaponType,
		ClassNames:    req.ClassNames,
	})
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (api *API) handleClassEquipments(c *gin.Context) {
	className := c.Query("class_name")

	equipments, err := api.catalog.AllowedEquipment(className)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipments)
}

// handleListSpecializations never errors toward the caller; anything that
// prevents resolving the character's class degrades to an empty list.
func (api *API) handleListSpecializations(c *gin.Context) {
	characterID, err := strconv.Atoi(c.Query("characterId"))
	if err != nil {
		c.JSON(http.StatusOK, []models.Specialization{})
		return
	}

	specs, err := api.catalog.SpecializationsForCharacter(characterID)
	if err != nil {
		api.log.Warn().Err(err).Int("character_id", characterID).Msg("failed to list specializations")
		c.JSON(http.StatusOK, []models.Specialization{})
		return
	}

	c.JSON(http.StatusOK, specs)
}

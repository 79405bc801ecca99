package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/service"
)

func (api *API) handleListLoadouts(c *gin.Context) {
	var (
		loadouts interface{}
		err      error
	)

	if raw := c.Query("character_id"); raw != "" {
		characterID, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			api.respondError(c, apperr.Validation("invalid character_id parameter"))
			return
		}
		loadouts, err = api.loadouts.ListByCharacter(characterID)
	} else {
		loadouts, err = api.loadouts.List()
	}
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loadouts)
}

func (api *API) handleCreateLoadout(c *gin.Context) {
	var req createLoadoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.respondError(c, apperr.Validation("invalid request body"))
		return
	}

	input := service.CreateLoadoutInput{
		CharacterName: req.CharacterName,
		ClassName:     req.ClassName,
		LoadoutName:   req.LoadoutName,
	}
	for _, eq := range req.Equipments {
		input.Equipments = append(input.Equipments, service.SlotInput{
			EquipmentName: eq.EquipmentName,
			SlotNumber:    eq.SlotNumber,
		})
	}

	loadout, err := api.loadouts.Create(input)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Loadout created successfully",
		"loadout": loadout,
	})
}

func (api *API) handleReplaceLoadout(c *gin.Context) {
	loadoutID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.respondError(c, apperr.Validation("invalid loadout id"))
		return
	}

	var req replaceLoadoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Equipments == nil {
		api.respondError(c, apperr.Validation("Invalid equipment data"))
		return
	}

	equipmentIDs := make([]int, len(*req.Equipments))
	for i, eq := range *req.Equipments {
		equipmentIDs[i] = eq.EquipmentID
	}

	loadout, slots, err := api.loadouts.Replace(loadoutID, req.LoadoutName, equipmentIDs)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 loadout.ID,
		"character_id":       loadout.CharacterID,
		"loadout_name":       loadout.Name,
		"loadout_equipments": slots,
	})
}

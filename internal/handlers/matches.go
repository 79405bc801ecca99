package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/service"
)

// handleListMatchCharacters backs the match entry form: every character with
// its loadouts.
func (api *API) handleListMatchCharacters(c *gin.Context) {
	characters, err := api.characters.List()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, characters)
}

func (api *API) handleCreateMatch(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.respondError(c, apperr.Validation("invalid request body"))
		return
	}

	input := service.RecordMatchInput{
		CharacterName:      req.CharacterName,
		LoadoutName:        req.LoadoutName,
		PrimaryWeaponName:  req.PrimaryWeaponName,
		SpecializationName: req.SpecializationName,
		Won:                req.Won,
		ProgressionPts:     int(req.ProgressionPoints),
		Kills:              int(req.Kills),
		Assists:            int(req.Assists),
		Deaths:             int(req.Deaths),
		Revives:            int(req.Revives),
		DamageScore:        int(req.Damage),
		SupportScore:       int(req.Support),
		ObjectiveScore:     int(req.Objective),
	}
	if req.ArenaID != nil && *req.ArenaID != 0 {
		arenaID := int(*req.ArenaID)
		input.ArenaID = &arenaID
	}

	match, err := api.matches.Record(input)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

func (api *API) handleMatchHistory(c *gin.Context) {
	history, err := api.matches.History()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worldtour-tracker/internal/apperr"
)

func (api *API) handleListCharacters(c *gin.Context) {
	characters, err := api.characters.List()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, characters)
}

func (api *API) handleCreateCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.respondError(c, apperr.Validation("invalid request body"))
		return
	}

	character, err := api.characters.Create(req.Name, req.ClassName)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, character)
}

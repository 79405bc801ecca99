package service

import (
	"database/sql"
	"strings"

	"github.com/rs/zerolog"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/database"
	"worldtour-tracker/internal/models"
)

// Characters is the character registry. Every character is bound to exactly
// one class at creation and keeps it for life.
type Characters struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewCharacters(db *sql.DB, log zerolog.Logger) *Characters {
	return &Characters{db: db, log: log.With().Str("component", "characters").Logger()}
}

func (s *Characters) List() ([]models.CharacterSummary, error) {
	return database.GetCharacterSummaries(s.db)
}

func (s *Characters) Create(name, className string) (*models.Character, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(className) == "" {
		return nil, apperr.Validation("Both 'name' and 'class_name' are required")
	}

	class, err := database.GetClassByName(s.db, className)
	if err != nil {
		return nil, err
	}

	character, err := database.CreateCharacter(s.db, name, class.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("character_id", character.ID).Str("name", name).Str("class", className).Msg("character created")

	return character, nil
}

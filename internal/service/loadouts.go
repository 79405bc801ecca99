package service

import (
	"database/sql"
	"strings"

	"github.com/rs/zerolog"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/database"
	"worldtour-tracker/internal/models"
)

// Loadouts manages a character's equipment loadouts. Slot numbers always
// mirror the input order, and every chosen equipment is checked against the
// resolver's allowed set for the owning character's class before anything is
// written.
type Loadouts struct {
	db      *sql.DB
	catalog *Catalog
	log     zerolog.Logger
}

func NewLoadouts(db *sql.DB, catalog *Catalog, log zerolog.Logger) *Loadouts {
	return &Loadouts{db: db, catalog: catalog, log: log.With().Str("component", "loadouts").Logger()}
}

func (s *Loadouts) List() ([]models.LoadoutSummary, error) {
	return database.GetLoadoutSummaries(s.db)
}

// ListByCharacter lists only the loadouts owned by the character.
func (s *Loadouts) ListByCharacter(characterID int) ([]models.LoadoutSummary, error) {
	if _, err := database.GetCharacter(s.db, characterID); err != nil {
		return nil, err
	}
	return database.GetLoadoutSummariesForCharacter(s.db, characterID)
}

type SlotInput struct {
	EquipmentName string
	SlotNumber    int
}

type CreateLoadoutInput struct {
	CharacterName string
	ClassName     string
	LoadoutName   string
	Equipments    []SlotInput
}

// Create builds a loadout for the character, one slot per entry in input
// order. A blank loadout name is auto-generated from the character name.
func (s *Loadouts) Create(input CreateLoadoutInput) (*models.Loadout, error) {
	if strings.TrimSpace(input.CharacterName) == "" || strings.TrimSpace(input.ClassName) == "" {
		return nil, apperr.Validation("Missing required fields")
	}

	character, err := database.GetCharacterByNameAndClass(s.db, input.CharacterName, input.ClassName)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(input.Equipments))
	for i, eq := range input.Equipments {
		names[i] = eq.EquipmentName
	}

	resolved, err := database.GetEquipmentsByNames(s.db, names)
	if err != nil {
		return nil, err
	}

	equipmentIDs := make([]int, len(names))
	for i, name := range names {
		eq, ok := resolved[name]
		if !ok {
			return nil, apperr.NotFound("equipment", "equipment %q not found", name)
		}
		equipmentIDs[i] = eq.ID
	}

	if err := s.checkAllowed(character.ClassID, equipmentIDs, resolvedNames(resolved)); err != nil {
		return nil, err
	}

	loadout, err := database.CreateLoadout(s.db, character, input.LoadoutName, equipmentIDs)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("loadout_id", loadout.ID).
		Str("loadout_name", loadout.Name).
		Str("character", character.Name).
		Int("slots", len(equipmentIDs)).
		Msg("loadout created")

	return loadout, nil
}

// Replace swaps the loadout's slot list for the given equipment ids, in
// order, as one atomic operation. Replaying the same call is a no-op.
func (s *Loadouts) Replace(loadoutID int, name string, equipmentIDs []int) (*models.Loadout, []models.LoadoutSlot, error) {
	loadout, err := database.GetLoadout(s.db, loadoutID)
	if err != nil {
		return nil, nil, err
	}

	character, err := database.GetCharacter(s.db, loadout.CharacterID)
	if err != nil {
		return nil, nil, err
	}

	resolved, err := database.GetEquipmentsByIDs(s.db, equipmentIDs)
	if err != nil {
		return nil, nil, err
	}

	nameByID := make(map[int]string, len(resolved))
	for id, eq := range resolved {
		nameByID[id] = eq.Name
	}

	for _, id := range equipmentIDs {
		if _, ok := resolved[id]; !ok {
			return nil, nil, apperr.NotFound("equipment", "equipment %d not found", id)
		}
	}

	if err := s.checkAllowed(character.ClassID, equipmentIDs, nameByID); err != nil {
		return nil, nil, err
	}

	updated, slots, err := database.ReplaceLoadout(s.db, loadoutID, name, equipmentIDs)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().
		Int("loadout_id", loadoutID).
		Int("slots", len(slots)).
		Msg("loadout replaced")

	return updated, slots, nil
}

// checkAllowed gates writes on the resolver: every chosen equipment must be
// usable by the class.
func (s *Loadouts) checkAllowed(classID int, equipmentIDs []int, nameByID map[int]string) error {
	allowed, err := s.catalog.allowedEquipmentIDs(classID)
	if err != nil {
		return err
	}

	for _, id := range equipmentIDs {
		if !allowed[id] {
			return apperr.Consistency("equipment %q is not usable by this class", nameByID[id])
		}
	}

	return nil
}

func resolvedNames(resolved map[string]models.Equipment) map[int]string {
	names := make(map[int]string, len(resolved))
	for name, eq := range resolved {
		names[eq.ID] = name
	}
	return names
}

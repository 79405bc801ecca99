// Package service holds the domain operations behind the HTTP surface:
// reference-data access, the class/equipment resolver, the character
// registry, loadout management, and match recording.
package service

import (
	"database/sql"
	"strings"

	"github.com/rs/zerolog"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/database"
	"worldtour-tracker/internal/models"
)

// Catalog serves the mostly-static reference data: arenas, equipment with
// subtypes and class links, and class-scoped specializations. It also owns
// the class/equipment resolver, the single source of truth for "is this
// equipment usable by that class".
type Catalog struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewCatalog(db *sql.DB, log zerolog.Logger) *Catalog {
	return &Catalog{db: db, log: log.With().Str("component", "catalog").Logger()}
}

func (c *Catalog) ListArenas() ([]models.Arena, error) {
	return database.GetArenas(c.db)
}

// AllowedEquipment resolves the full set of equipment a class may use:
// equipment explicitly linked to it plus global equipment with no links.
func (c *Catalog) AllowedEquipment(className string) ([]models.AllowedEquipment, error) {
	if strings.TrimSpace(className) == "" {
		return nil, apperr.Validation("Missing class_name parameter")
	}

	class, err := database.GetClassByName(c.db, className)
	if err != nil {
		return nil, err
	}

	return database.GetAllowedEquipment(c.db, class.ID)
}

// allowedEquipmentIDs is the set form of the resolver, used by the loadout
// manager to gate writes.
func (c *Catalog) allowedEquipmentIDs(classID int) (map[int]bool, error) {
	allowed, err := database.GetAllowedEquipment(c.db, classID)
	if err != nil {
		return nil, err
	}

	ids := make(map[int]bool, len(allowed))
	for _, eq := range allowed {
		ids[eq.ID] = true
	}
	return ids, nil
}

func (c *Catalog) ListEquipments() ([]models.EquipmentDetail, error) {
	return database.GetEquipments(c.db)
}

type CreateEquipmentInput struct {
	Name          string
	EquipmentType string
	Description   *string
	WeaponType    *string
	ClassNames    []string
}

// CreateEquipment creates an equipment item with its optional weapon subtype
// row and class links as one atomic write. Unknown class names are skipped
// with a warning rather than failing the create.
func (c *Catalog) CreateEquipment(input CreateEquipmentInput) (*models.EquipmentDetail, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.EquipmentType) == "" {
		return nil, apperr.Validation("Fields 'name' and 'equipment_type' are required")
	}

	classes, err := database.GetClassesByNames(c.db, input.ClassNames)
	if err != nil {
		return nil, err
	}

	classIDs := make([]int, 0, len(input.ClassNames))
	for _, className := range input.ClassNames {
		class, ok := classes[className]
		if !ok {
			c.log.Warn().Str("class_name", className).Msg("class not found, skipping association")
			continue
		}
		classIDs = append(classIDs, class.ID)
	}

	equipment, err := database.CreateEquipment(c.db, input.Name, input.EquipmentType, input.Description, input.WeaponType, classIDs)
	if err != nil {
		return nil, err
	}

	c.log.Info().Int("equipment_id", equipment.ID).Str("name", equipment.Name).Msg("equipment created")

	return database.GetEquipmentDetail(c.db, equipment.ID)
}

// SpecializationsForCharacter lists the specializations scoped to the
// character's class. A missing character degrades to an empty list.
func (c *Catalog) SpecializationsForCharacter(characterID int) ([]models.Specialization, error) {
	character, err := database.GetCharacter(c.db, characterID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return []models.Specialization{}, nil
		}
		return nil, err
	}

	return database.GetSpecializationsByClass(c.db, character.ClassID)
}

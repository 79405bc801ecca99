package database

import (
	"database/sql"
	"fmt"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/models"
)

func CreateCharacter(db *sql.DB, name string, classID int) (*models.Character, error) {
	result, err := db.Exec(
		`INSERT INTO characters (name, class_id) VALUES (?, ?)`,
		name, classID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get character ID: %w", err)
	}

	return &models.Character{
		ID:      int(id),
		Name:    name,
		ClassID: classID,
	}, nil
}

func GetCharacter(db *sql.DB, id int) (*models.Character, error) {
	character := &models.Character{}
	query := `SELECT id, name, class_id FROM characters WHERE id = ?`

	err := db.QueryRow(query, id).Scan(&character.ID, &character.Name, &character.ClassID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("character", "character %d not found", id)
		}
		return nil, fmt.Errorf("failed to query character: %w", err)
	}

	return character, nil
}

func GetCharacterByName(db *sql.DB, name string) (*models.Character, error) {
	character := &models.Character{}
	query := `SELECT id, name, class_id FROM characters WHERE name = ?`

	err := db.QueryRow(query, name).Scan(&character.ID, &character.Name, &character.ClassID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("character", "character %q not found", name)
		}
		return nil, fmt.Errorf("failed to query character: %w", err)
	}

	return character, nil
}

// GetCharacterByNameAndClass resolves a character by name constrained to a
// class name, the lookup the loadout create flow uses.
func GetCharacterByNameAndClass(db *sql.DB, name, className string) (*models.Character, error) {
	character := &models.Character{}
	query := `
		SELECT ch.id, ch.name, ch.class_id
		FROM characters ch
		INNER JOIN classes c ON c.id = ch.class_id
		WHERE ch.name = ? AND c.class_name = ?
	`

	err := db.QueryRow(query, name, className).Scan(&character.ID, &character.Name, &character.ClassID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("character", "character %q with class %q not found", name, className)
		}
		return nil, fmt.Errorf("failed to query character: %w", err)
	}

	return character, nil
}

// GetCharacterSummaries lists all characters enriched with class name and
// loadouts including per-slot equipment.
func GetCharacterSummaries(db *sql.DB) ([]models.CharacterSummary, error) {
	query := `
		SELECT ch.id, ch.name, c.class_name
		FROM characters ch
		INNER JOIN classes c ON c.id = ch.class_id
		ORDER BY ch.id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	defer rows.Close()

	summaries := []models.CharacterSummary{}
	index := make(map[int]int)
	for rows.Next() {
		var summary models.CharacterSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.ClassName); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		summary.Loadouts = []models.CharacterLoadout{}
		index[summary.ID] = len(summaries)
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating characters: %w", err)
	}

	loadoutQuery := `
		SELECT l.id, l.character_id, l.loadout_name,
		       e.id, e.name, e.equipment_type
		FROM loadouts l
		LEFT JOIN loadout_equipments le ON le.loadout_id = l.id
		LEFT JOIN equipments e ON e.id = le.equipment_id
		ORDER BY l.id, le.slot_number
	`

	loadoutRows, err := db.Query(loadoutQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query loadouts: %w", err)
	}
	defer loadoutRows.Close()

	// Rows come ordered by loadout id, so each loadout is one contiguous run.
	var current *models.CharacterLoadout
	var currentCharacter int
	flush := func() {
		if current == nil {
			return
		}
		if i, ok := index[currentCharacter]; ok {
			summaries[i].Loadouts = append(summaries[i].Loadouts, *current)
		}
		current = nil
	}

	for loadoutRows.Next() {
		var loadoutID, characterID int
		var loadoutName string
		var equipmentID sql.NullInt64
		var equipmentName, equipmentType sql.NullString

		err := loadoutRows.Scan(&loadoutID, &characterID, &loadoutName, &equipmentID, &equipmentName, &equipmentType)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loadout: %w", err)
		}

		if current == nil || current.ID != loadoutID {
			flush()
			current = &models.CharacterLoadout{
				ID:         loadoutID,
				Name:       loadoutName,
				Equipments: []models.CharacterLoadoutEquipment{},
			}
			currentCharacter = characterID
		}

		if equipmentID.Valid {
			current.Equipments = append(current.Equipments, models.CharacterLoadoutEquipment{
				ID:   int(equipmentID.Int64),
				Name: equipmentName.String,
				Type: equipmentType.String,
			})
		}
	}
	flush()

	if err = loadoutRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loadouts: %w", err)
	}

	return summaries, nil
}

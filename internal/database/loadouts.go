package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-sqlite3"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/models"
)

// CreateLoadout creates a loadout and one slot per equipment, slot numbers
// assigned from input position. A blank name is auto-generated as
// "<character name> <n>" inside the same transaction, so two concurrent
// blank-name creates cannot land on the same name.
func CreateLoadout(db *sql.DB, character *models.Character, name string, equipmentIDs []int) (*models.Loadout, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if strings.TrimSpace(name) == "" {
		name, err = nextLoadoutName(tx, character)
		if err != nil {
			return nil, err
		}
	}

	result, err := tx.Exec(
		`INSERT INTO loadouts (character_id, loadout_name) VALUES (?, ?)`,
		character.ID, name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Validation("loadout %q already exists for character %q", name, character.Name)
		}
		return nil, fmt.Errorf("failed to create loadout: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get loadout ID: %w", err)
	}

	if err := insertSlots(tx, int(id), equipmentIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit loadout: %w", err)
	}

	return &models.Loadout{
		ID:          int(id),
		CharacterID: character.ID,
		Name:        name,
	}, nil
}

// ReplaceLoadout swaps a loadout's slots for the given list and optionally
// renames it, as a single transaction. Replaying the same call yields the
// same final state.
func ReplaceLoadout(db *sql.DB, loadoutID int, name string, equipmentIDs []int) (*models.Loadout, []models.LoadoutSlot, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	loadout := &models.Loadout{}
	err = tx.QueryRow(
		`SELECT id, character_id, loadout_name FROM loadouts WHERE id = ?`,
		loadoutID,
	).Scan(&loadout.ID, &loadout.CharacterID, &loadout.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, apperr.NotFound("loadout", "loadout %d not found", loadoutID)
		}
		return nil, nil, fmt.Errorf("failed to query loadout: %w", err)
	}

	if name = strings.TrimSpace(name); name != "" && name != loadout.Name {
		_, err = tx.Exec(`UPDATE loadouts SET loadout_name = ? WHERE id = ?`, name, loadoutID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, nil, apperr.Validation("loadout %q already exists for this character", name)
			}
			return nil, nil, fmt.Errorf("failed to rename loadout: %w", err)
		}
		loadout.Name = name
	}

	if _, err := tx.Exec(`DELETE FROM loadout_equipments WHERE loadout_id = ?`, loadoutID); err != nil {
		return nil, nil, fmt.Errorf("failed to clear loadout slots: %w", err)
	}

	if err := insertSlots(tx, loadoutID, equipmentIDs); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit loadout replacement: %w", err)
	}

	slots, err := GetLoadoutSlots(db, loadoutID)
	if err != nil {
		return nil, nil, err
	}

	return loadout, slots, nil
}

// insertSlots writes one slot per equipment id, numbered 0..N-1 in input
// order. No dedup, no reordering.
func insertSlots(tx *sql.Tx, loadoutID int, equipmentIDs []int) error {
	for i, equipmentID := range equipmentIDs {
		_, err := tx.Exec(
			`INSERT INTO loadout_equipments (loadout_id, equipment_id, slot_number) VALUES (?, ?, ?)`,
			loadoutID, equipmentID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert slot %d: %w", i, err)
		}
	}
	return nil
}

// nextLoadoutName picks "<character name> <n>" with n one past the highest
// numeric suffix among the character's loadout names, or 1 when none parse.
func nextLoadoutName(tx *sql.Tx, character *models.Character) (string, error) {
	rows, err := tx.Query(
		`SELECT loadout_name FROM loadouts WHERE character_id = ?`,
		character.ID,
	)
	if err != nil {
		return "", fmt.Errorf("failed to query loadout names: %w", err)
	}
	defer rows.Close()

	max := 0
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", fmt.Errorf("failed to scan loadout name: %w", err)
		}
		if n, ok := numericSuffix(name); ok && n > max {
			max = n
		}
	}

	if err = rows.Err(); err != nil {
		return "", fmt.Errorf("error iterating loadout names: %w", err)
	}

	return fmt.Sprintf("%s %d", character.Name, max+1), nil
}

func numericSuffix(name string) (int, bool) {
	i := strings.LastIndex(name, " ")
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

func GetLoadout(db *sql.DB, id int) (*models.Loadout, error) {
	loadout := &models.Loadout{}
	query := `SELECT id, character_id, loadout_name FROM loadouts WHERE id = ?`

	err := db.QueryRow(query, id).Scan(&loadout.ID, &loadout.CharacterID, &loadout.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("loadout", "loadout %d not found", id)
		}
		return nil, fmt.Errorf("failed to query loadout: %w", err)
	}

	return loadout, nil
}

// GetLoadoutByCharacterAndName resolves a loadout owned by the character.
func GetLoadoutByCharacterAndName(db *sql.DB, characterID int, name string) (*models.Loadout, error) {
	loadout := &models.Loadout{}
	query := `SELECT id, character_id, loadout_name FROM loadouts WHERE character_id = ? AND loadout_name = ?`

	err := db.QueryRow(query, characterID, name).Scan(&loadout.ID, &loadout.CharacterID, &loadout.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("loadout", "loadout %q not found for character %d", name, characterID)
		}
		return nil, fmt.Errorf("failed to query loadout: %w", err)
	}

	return loadout, nil
}

func GetLoadoutSlots(db *sql.DB, loadoutID int) ([]models.LoadoutSlot, error) {
	query := `
		SELECT id, loadout_id, equipment_id, slot_number
		FROM loadout_equipments
		WHERE loadout_id = ?
		ORDER BY slot_number ASC
	`

	rows, err := db.Query(query, loadoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to query loadout slots: %w", err)
	}
	defer rows.Close()

	slots := []models.LoadoutSlot{}
	for rows.Next() {
		var slot models.LoadoutSlot
		if err := rows.Scan(&slot.ID, &slot.LoadoutID, &slot.EquipmentID, &slot.SlotNumber); err != nil {
			return nil, fmt.Errorf("failed to scan loadout slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loadout slots: %w", err)
	}

	return slots, nil
}

// LoadoutContainsEquipment reports whether the equipment occupies any slot of
// the loadout.
func LoadoutContainsEquipment(db *sql.DB, loadoutID, equipmentID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM loadout_equipments WHERE loadout_id = ? AND equipment_id = ?)`

	if err := db.QueryRow(query, loadoutID, equipmentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check loadout equipment: %w", err)
	}

	return exists, nil
}

// GetLoadoutSummaries lists all loadouts newest first, slots ascending.
func GetLoadoutSummaries(db *sql.DB) ([]models.LoadoutSummary, error) {
	return loadoutSummaries(db, "")
}

// GetLoadoutSummariesForCharacter is GetLoadoutSummaries restricted to one
// character.
func GetLoadoutSummariesForCharacter(db *sql.DB, characterID int) ([]models.LoadoutSummary, error) {
	return loadoutSummaries(db, "WHERE l.character_id = ?", characterID)
}

func loadoutSummaries(db *sql.DB, where string, args ...interface{}) ([]models.LoadoutSummary, error) {
	query := `
		SELECT l.id, l.loadout_name, ch.name, c.class_name,
		       le.slot_number, e.name, e.equipment_type
		FROM loadouts l
		INNER JOIN characters ch ON ch.id = l.character_id
		INNER JOIN classes c ON c.id = ch.class_id
		LEFT JOIN loadout_equipments le ON le.loadout_id = l.id
		LEFT JOIN equipments e ON e.id = le.equipment_id
		` + where + `
		ORDER BY l.id DESC, le.slot_number ASC
	`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loadouts: %w", err)
	}
	defer rows.Close()

	summaries := []models.LoadoutSummary{}
	for rows.Next() {
		var id int
		var loadoutName, characterName, className string
		var slotNumber sql.NullInt64
		var equipmentName, equipmentType sql.NullString

		err := rows.Scan(&id, &loadoutName, &characterName, &className, &slotNumber, &equipmentName, &equipmentType)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loadout row: %w", err)
		}

		if len(summaries) == 0 || summaries[len(summaries)-1].ID != id {
			summaries = append(summaries, models.LoadoutSummary{
				ID:            id,
				Name:          loadoutName,
				CharacterName: characterName,
				ClassName:     className,
				Equipments:    []models.LoadoutSlotView{},
			})
		}

		if slotNumber.Valid {
			last := &summaries[len(summaries)-1]
			last.Equipments = append(last.Equipments, models.LoadoutSlotView{
				SlotNumber:    int(slotNumber.Int64),
				EquipmentName: equipmentName.String,
				EquipmentType: equipmentType.String,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loadouts: %w", err)
	}

	return summaries, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

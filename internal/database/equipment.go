package database

import (
	"database/sql"
	"fmt"
	"strings"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/models"
)

// CreateEquipment inserts the equipment row, the weapons subtype row when the
// type is "weapon" and a weapon type was given, and the class links, all in
// one transaction so a failure never leaves a half-created equipment.
func CreateEquipment(db *sql.DB, name, equipmentType string, description, weaponType *string, classIDs []int) (*models.Equipment, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO equipments (name, equipment_type, description) VALUES (?, ?, ?)`,
		name, equipmentType, description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment ID: %w", err)
	}

	if strings.EqualFold(equipmentType, models.EquipmentTypeWeapon) && weaponType != nil {
		_, err = tx.Exec(
			`INSERT INTO weapons (equipment_id, weapon_type) VALUES (?, ?)`,
			id, *weaponType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create weapon subtype: %w", err)
		}
	}

	for _, classID := range classIDs {
		_, err = tx.Exec(
			`INSERT INTO class_equipments (class_id, equipment_id) VALUES (?, ?)`,
			classID, id,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to link equipment to class %d: %w", classID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit equipment: %w", err)
	}

	return &models.Equipment{
		ID:            int(id),
		Name:          name,
		EquipmentType: equipmentType,
		Description:   description,
	}, nil
}

// GetEquipments lists all equipment with subtype rows and linked class names.
func GetEquipments(db *sql.DB) ([]models.EquipmentDetail, error) {
	query := `
		SELECT e.id, e.name, e.equipment_type, e.description,
		       w.id, w.weapon_type,
		       g.id, g.gadget_type
		FROM equipments e
		LEFT JOIN weapons w ON w.equipment_id = e.id
		LEFT JOIN gadgets g ON g.equipment_id = e.id
		ORDER BY e.id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipments: %w", err)
	}
	defer rows.Close()

	details := []models.EquipmentDetail{}
	index := make(map[int]int)
	for rows.Next() {
		var detail models.EquipmentDetail
		var weaponID, gadgetID sql.NullInt64
		var weaponType, gadgetType sql.NullString

		err := rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.EquipmentType,
			&detail.Description,
			&weaponID,
			&weaponType,
			&gadgetID,
			&gadgetType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}

		if weaponID.Valid {
			detail.Weapon = &models.Weapon{
				ID:          int(weaponID.Int64),
				EquipmentID: detail.ID,
				WeaponType:  weaponType.String,
			}
		}
		if gadgetID.Valid {
			detail.Gadget = &models.Gadget{
				ID:          int(gadgetID.Int64),
				EquipmentID: detail.ID,
				GadgetType:  gadgetType.String,
			}
		}
		detail.Classes = []string{}

		index[detail.ID] = len(details)
		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equipments: %w", err)
	}

	linkQuery := `
		SELECT ce.equipment_id, c.class_name
		FROM class_equipments ce
		INNER JOIN classes c ON c.id = ce.class_id
		ORDER BY ce.equipment_id, c.class_name
	`

	linkRows, err := db.Query(linkQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query class links: %w", err)
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var equipmentID int
		var className string
		if err := linkRows.Scan(&equipmentID, &className); err != nil {
			return nil, fmt.Errorf("failed to scan class link: %w", err)
		}
		if i, ok := index[equipmentID]; ok {
			details[i].Classes = append(details[i].Classes, className)
		}
	}

	if err = linkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class links: %w", err)
	}

	return details, nil
}

// GetEquipmentDetail loads one equipment with subtype rows and class links.
func GetEquipmentDetail(db *sql.DB, id int) (*models.EquipmentDetail, error) {
	detail := &models.EquipmentDetail{Classes: []string{}}
	var weaponID, gadgetID sql.NullInt64
	var weaponType, gadgetType sql.NullString

	query := `
		SELECT e.id, e.name, e.equipment_type, e.description,
		       w.id, w.weapon_type,
		       g.id, g.gadget_type
		FROM equipments e
		LEFT JOIN weapons w ON w.equipment_id = e.id
		LEFT JOIN gadgets g ON g.equipment_id = e.id
		WHERE e.id = ?
	`

	err := db.QueryRow(query, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.EquipmentType,
		&detail.Description,
		&weaponID,
		&weaponType,
		&gadgetID,
		&gadgetType,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("equipment", "equipment %d not found", id)
		}
		return nil, fmt.Errorf("failed to query equipment: %w", err)
	}

	if weaponID.Valid {
		detail.Weapon = &models.Weapon{
			ID:          int(weaponID.Int64),
			EquipmentID: detail.ID,
			WeaponType:  weaponType.String,
		}
	}
	if gadgetID.Valid {
		detail.Gadget = &models.Gadget{
			ID:          int(gadgetID.Int64),
			EquipmentID: detail.ID,
			GadgetType:  gadgetType.String,
		}
	}

	linkQuery := `
		SELECT c.class_name
		FROM class_equipments ce
		INNER JOIN classes c ON c.id = ce.class_id
		WHERE ce.equipment_id = ?
		ORDER BY c.class_name
	`

	rows, err := db.Query(linkQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query class links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var className string
		if err := rows.Scan(&className); err != nil {
			return nil, fmt.Errorf("failed to scan class link: %w", err)
		}
		detail.Classes = append(detail.Classes, className)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class links: %w", err)
	}

	return detail, nil
}

// GetEquipmentsByIDs resolves equipment ids in one lookup, keyed by id.
// Missing ids are absent from the map; the caller decides whether that is an
// error.
func GetEquipmentsByIDs(db *sql.DB, ids []int) (map[int]models.Equipment, error) {
	equipments := make(map[int]models.Equipment)
	if len(ids) == 0 {
		return equipments, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := `SELECT id, name, equipment_type, description FROM equipments WHERE id IN (` + placeholders + `)`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eq models.Equipment
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.EquipmentType, &eq.Description); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		equipments[eq.ID] = eq
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equipments: %w", err)
	}

	return equipments, nil
}

// GetEquipmentsByNames resolves equipment names in one lookup, keyed by name.
// Missing names are absent from the map; the caller decides whether that is
// an error.
func GetEquipmentsByNames(db *sql.DB, names []string) (map[string]models.Equipment, error) {
	equipments := make(map[string]models.Equipment)
	if len(names) == 0 {
		return equipments, nil
	}

	placeholders := strings.Repeat("?,", len(names))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(names))
	for i, name := range names {
		args[i] = name
	}

	query := `SELECT id, name, equipment_type, description FROM equipments WHERE name IN (` + placeholders + `)`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eq models.Equipment
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.EquipmentType, &eq.Description); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		equipments[eq.Name] = eq
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equipments: %w", err)
	}

	return equipments, nil
}

// GetWeaponEquipmentByName resolves an equipment row by name, constrained to
// the weapon type.
func GetWeaponEquipmentByName(db *sql.DB, name string) (*models.Equipment, error) {
	eq := &models.Equipment{}
	query := `SELECT id, name, equipment_type, description FROM equipments WHERE name = ? AND equipment_type = ?`

	err := db.QueryRow(query, name, models.EquipmentTypeWeapon).Scan(&eq.ID, &eq.Name, &eq.EquipmentType, &eq.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("weapon", "weapon %q not found", name)
		}
		return nil, fmt.Errorf("failed to query weapon: %w", err)
	}

	return eq, nil
}

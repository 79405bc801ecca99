package database

import (
	"database/sql"
	"fmt"
	"strings"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/models"
)

func GetClassByName(db *sql.DB, name string) (*models.Class, error) {
	class := &models.Class{}
	query := `SELECT id, class_name FROM classes WHERE class_name = ?`

	err := db.QueryRow(query, name).Scan(&class.ID, &class.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("class", "class %q not found", name)
		}
		return nil, fmt.Errorf("failed to query class: %w", err)
	}

	return class, nil
}

// GetClassesByNames resolves a set of class names in one lookup. Names
// without a matching class are simply absent from the result map.
func GetClassesByNames(db *sql.DB, names []string) (map[string]models.Class, error) {
	classes := make(map[string]models.Class)
	if len(names) == 0 {
		return classes, nil
	}

	placeholders := strings.Repeat("?,", len(names))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(names))
	for i, name := range names {
		args[i] = name
	}

	query := `SELECT id, class_name FROM classes WHERE class_name IN (` + placeholders + `)`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query classes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var class models.Class
		if err := rows.Scan(&class.ID, &class.Name); err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes[class.Name] = class
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classes: %w", err)
	}

	return classes, nil
}

func GetArenas(db *sql.DB) ([]models.Arena, error) {
	query := `SELECT id, arena_name FROM arenas ORDER BY arena_name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query arenas: %w", err)
	}
	defer rows.Close()

	arenas := []models.Arena{}
	for rows.Next() {
		var arena models.Arena
		if err := rows.Scan(&arena.ID, &arena.Name); err != nil {
			return nil, fmt.Errorf("failed to scan arena: %w", err)
		}
		arenas = append(arenas, arena)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating arenas: %w", err)
	}

	return arenas, nil
}

func GetArena(db *sql.DB, id int) (*models.Arena, error) {
	arena := &models.Arena{}
	query := `SELECT id, arena_name FROM arenas WHERE id = ?`

	err := db.QueryRow(query, id).Scan(&arena.ID, &arena.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("arena", "arena with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to query arena: %w", err)
	}

	return arena, nil
}

func GetSpecializationsByClass(db *sql.DB, classID int) ([]models.Specialization, error) {
	query := `SELECT id, specialization_name, class_id FROM specializations WHERE class_id = ? ORDER BY specialization_name ASC`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to query specializations: %w", err)
	}
	defer rows.Close()

	specs := []models.Specialization{}
	for rows.Next() {
		var spec models.Specialization
		if err := rows.Scan(&spec.ID, &spec.Name, &spec.ClassID); err != nil {
			return nil, fmt.Errorf("failed to scan specialization: %w", err)
		}
		specs = append(specs, spec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specializations: %w", err)
	}

	return specs, nil
}

func GetSpecializationByName(db *sql.DB, name string) (*models.Specialization, error) {
	spec := &models.Specialization{}
	query := `SELECT id, specialization_name, class_id FROM specializations WHERE specialization_name = ?`

	err := db.QueryRow(query, name).Scan(&spec.ID, &spec.Name, &spec.ClassID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("specialization", "specialization %q not found", name)
		}
		return nil, fmt.Errorf("failed to query specialization: %w", err)
	}

	return spec, nil
}

// GetAllowedEquipment returns the equipment usable by a class: everything
// explicitly linked to it plus everything with no class links at all.
// Class-specific entries come first.
func GetAllowedEquipment(db *sql.DB, classID int) ([]models.AllowedEquipment, error) {
	query := `
		SELECT e.id, e.name, e.equipment_type, 0 AS source
		FROM equipments e
		INNER JOIN class_equipments ce ON ce.equipment_id = e.id
		WHERE ce.class_id = ?
		UNION ALL
		SELECT e.id, e.name, e.equipment_type, 1 AS source
		FROM equipments e
		WHERE NOT EXISTS (
			SELECT 1 FROM class_equipments ce WHERE ce.equipment_id = e.id
		)
		ORDER BY source, id
	`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to query allowed equipment: %w", err)
	}
	defer rows.Close()

	equipments := []models.AllowedEquipment{}
	for rows.Next() {
		var eq models.AllowedEquipment
		var source int
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.EquipmentType, &source); err != nil {
			return nil, fmt.Errorf("failed to scan allowed equipment: %w", err)
		}
		equipments = append(equipments, eq)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating allowed equipment: %w", err)
	}

	return equipments, nil
}

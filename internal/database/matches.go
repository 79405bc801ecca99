package database

import (
	"database/sql"
	"fmt"
	"time"

	"worldtour-tracker/internal/models"
)

func CreateMatch(db *sql.DB, match *models.Match) (*models.Match, error) {
	query := `
		INSERT INTO matches (
			character_id, loadout_id, arena_id, specialization_id, primary_weapon_id,
			won, progression_points, kills, assists, deaths, revives,
			damage_score, support_score, objective_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query,
		match.CharacterID,
		match.LoadoutID,
		match.ArenaID,
		match.SpecializationID,
		match.PrimaryWeaponID,
		match.Won,
		match.ProgressionPts,
		match.Kills,
		match.Assists,
		match.Deaths,
		match.Revives,
		match.DamageScore,
		match.SupportScore,
		match.ObjectiveScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get match ID: %w", err)
	}

	created := *match
	created.ID = int(id)

	err = db.QueryRow(`SELECT match_date FROM matches WHERE id = ?`, id).Scan(&created.MatchDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read back match date: %w", err)
	}

	return &created, nil
}

func CountMatches(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM matches`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

// GetMatchSummaries lists all matches newest first, denormalized with the
// names of everything a match references. KDRatio is left zero here; the
// read model computes it.
func GetMatchSummaries(db *sql.DB) ([]models.MatchSummary, error) {
	query := `
		SELECT m.id, ch.name, l.loadout_name,
		       e.name, s.specialization_name, a.arena_name,
		       m.won, m.progression_points, m.kills, m.assists, m.deaths, m.revives,
		       m.damage_score, m.support_score, m.objective_score, m.match_date
		FROM matches m
		INNER JOIN characters ch ON ch.id = m.character_id
		INNER JOIN loadouts l ON l.id = m.loadout_id
		LEFT JOIN equipments e ON e.id = m.primary_weapon_id
		LEFT JOIN specializations s ON s.id = m.specialization_id
		LEFT JOIN arenas a ON a.id = m.arena_id
		ORDER BY m.id DESC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	summaries := []models.MatchSummary{}
	for rows.Next() {
		var summary models.MatchSummary
		var weapon, spec, arena sql.NullString
		var matchDate time.Time

		err := rows.Scan(
			&summary.ID,
			&summary.CharacterName,
			&summary.LoadoutName,
			&weapon,
			&spec,
			&arena,
			&summary.Won,
			&summary.ProgressionPts,
			&summary.Kills,
			&summary.Assists,
			&summary.Deaths,
			&summary.Revives,
			&summary.DamageScore,
			&summary.SupportScore,
			&summary.ObjectiveScore,
			&matchDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}

		if weapon.Valid {
			summary.PrimaryWeapon = &weapon.String
		}
		if spec.Valid {
			summary.SpecializationName = &spec.String
		}
		if arena.Valid {
			summary.ArenaName = &arena.String
		}
		summary.MatchDate = matchDate

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}

	return summaries, nil
}

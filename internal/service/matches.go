package service

import (
	"database/sql"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/database"
	"worldtour-tracker/internal/models"
)

// Matches validates and records match results against the character, loadout
// and equipment graph, and serves the enriched match history read model.
type Matches struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewMatches(db *sql.DB, log zerolog.Logger) *Matches {
	return &Matches{db: db, log: log.With().Str("component", "matches").Logger()}
}

type RecordMatchInput struct {
	CharacterName      string
	LoadoutName        string
	PrimaryWeaponName  string
	SpecializationName string
	ArenaID            *int
	Won                bool
	ProgressionPts     int
	Kills              int
	Assists            int
	Deaths             int
	Revives            int
	DamageScore        int
	SupportScore       int
	ObjectiveScore     int
}

// Record validates the referenced entities in order, short-circuiting on the
// first failure, and persists the match only after every check passes.
func (s *Matches) Record(input RecordMatchInput) (*models.Match, error) {
	if strings.TrimSpace(input.CharacterName) == "" || strings.TrimSpace(input.LoadoutName) == "" {
		return nil, apperr.Validation("'character_name' and 'loadout_name' are required")
	}

	character, err := database.GetCharacterByName(s.db, input.CharacterName)
	if err != nil {
		return nil, err
	}

	loadout, err := database.GetLoadoutByCharacterAndName(s.db, character.ID, input.LoadoutName)
	if err != nil {
		return nil, err
	}

	match := &models.Match{
		CharacterID:    character.ID,
		LoadoutID:      loadout.ID,
		Won:            input.Won,
		ProgressionPts: input.ProgressionPts,
		Kills:          input.Kills,
		Assists:        input.Assists,
		Deaths:         input.Deaths,
		Revives:        input.Revives,
		DamageScore:    input.DamageScore,
		SupportScore:   input.SupportScore,
		ObjectiveScore: input.ObjectiveScore,
	}

	if input.ArenaID != nil {
		arena, err := database.GetArena(s.db, *input.ArenaID)
		if err != nil {
			return nil, err
		}
		match.ArenaID = &arena.ID
	}

	if strings.TrimSpace(input.SpecializationName) != "" {
		spec, err := database.GetSpecializationByName(s.db, input.SpecializationName)
		if err != nil {
			return nil, err
		}
		if spec.ClassID != character.ClassID {
			return nil, apperr.Consistency("specialization %q does not belong to the class of character %q", spec.Name, character.Name)
		}
		match.SpecializationID = &spec.ID
	}

	if strings.TrimSpace(input.PrimaryWeaponName) != "" {
		weapon, err := database.GetWeaponEquipmentByName(s.db, input.PrimaryWeaponName)
		if err != nil {
			return nil, err
		}

		inLoadout, err := database.LoadoutContainsEquipment(s.db, loadout.ID, weapon.ID)
		if err != nil {
			return nil, err
		}
		if !inLoadout {
			return nil, apperr.Consistency("weapon %q not found in loadout %q for %q", weapon.Name, loadout.Name, character.Name)
		}
		match.PrimaryWeaponID = &weapon.ID
	}

	created, err := database.CreateMatch(s.db, match)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("match_id", created.ID).
		Str("character", character.Name).
		Str("loadout", loadout.Name).
		Bool("won", created.Won).
		Msg("match recorded")

	return created, nil
}

// History returns all matches newest first with denormalized names and the
// derived kill/death ratio filled in.
func (s *Matches) History() ([]models.MatchSummary, error) {
	summaries, err := database.GetMatchSummaries(s.db)
	if err != nil {
		return nil, err
	}

	for i := range summaries {
		summaries[i].KDRatio = KDRatio(summaries[i].Kills, summaries[i].Deaths)
	}

	return summaries, nil
}

// KDRatio is kills when deaths is zero, otherwise kills/deaths rounded to
// three decimal places.
func KDRatio(kills, deaths int) float64 {
	if deaths == 0 {
		return float64(kills)
	}
	return math.Round(float64(kills)/float64(deaths)*1000) / 1000
}

package handlers

import (
	"strconv"
	"strings"
)

// flexInt accepts a JSON number, a numeric string, null, or garbage, and
// coerces everything unparseable to zero, matching how score fields arrive
// from loosely validated match forms.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		*f = flexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = flexInt(int(v))
		return nil
	}

	*f = 0
	return nil
}

type createCharacterRequest struct {
	Name      string `json:"name"`
	ClassName string `json:"class_name"`
}

type createEquipmentRequest struct {
	Name          string   `json:"name"`
	EquipmentType string   `json:"equipment_type"`
	Description   *string  `json:"description"`
	WeaponType    *string  `json:"weapon_type"`
	ClassNames    []string `json:"class_names"`
}

type loadoutSlotRequest struct {
	EquipmentName string `json:"equipment_name"`
	SlotNumber    int    `json:"slot_number"`
}

type createLoadoutRequest struct {
	CharacterName string               `json:"p_character_name"`
	ClassName     string               `json:"p_class_name"`
	LoadoutName   string               `json:"p_loadout_name"`
	Equipments    []loadoutSlotRequest `json:"p_equipments"`
}

type replaceSlotRequest struct {
	EquipmentID int `json:"equipment_id"`
}

type replaceLoadoutRequest struct {
	LoadoutName string               `json:"loadout_name"`
	Equipments  *[]replaceSlotRequest `json:"equipments"`
}

type createMatchRequest struct {
	CharacterName      string   `json:"character_name"`
	LoadoutName        string   `json:"loadout_name"`
	PrimaryWeaponName  string   `json:"primary_weapon_name"`
	SpecializationName string   `json:"specialization_name"`
	ArenaID            *flexInt `json:"arena_id"`
	Won                bool     `json:"won"`
	ProgressionPoints  flexInt  `json:"progression_points"`
	Kills              flexInt  `json:"kills"`
	Assists            flexInt  `json:"assists"`
	Deaths             flexInt  `json:"deaths"`
	Revives            flexInt  `json:"revives"`
	Damage             flexInt  `json:"damage"`
	Support            flexInt  `json:"support"`
	Objective          flexInt  `json:"objective"`
}

package models

import (
	"time"
)

const (
	EquipmentTypeWeapon = "weapon"
	EquipmentTypeGadget = "gadget"
)

type Class struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"class_name" db:"class_name"`
}

type Arena struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"arena_name" db:"arena_name"`
}

type Specialization struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"specialization_name" db:"specialization_name"`
	ClassID int    `json:"class_id" db:"class_id"`
}

type Equipment struct {
	ID            int     `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	EquipmentType string  `json:"equipment_type" db:"equipment_type"`
	Description   *string `json:"description" db:"description"`
}

type Weapon struct {
	ID          int    `json:"id" db:"id"`
	EquipmentID int    `json:"equipment_id" db:"equipment_id"`
	WeaponType  string `json:"weapon_type" db:"weapon_type"`
}

type Gadget struct {
	ID          int    `json:"id" db:"id"`
	EquipmentID int    `json:"equipment_id" db:"equipment_id"`
	GadgetType  string `json:"gadget_type" db:"gadget_type"`
}

type Character struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	ClassID int    `json:"class_id" db:"class_id"`
}

type Loadout struct {
	ID          int    `json:"id" db:"id"`
	CharacterID int    `json:"character_id" db:"character_id"`
	Name        string `json:"loadout_name" db:"loadout_name"`
}

type LoadoutSlot struct {
	ID          int `json:"id" db:"id"`
	LoadoutID   int `json:"loadout_id" db:"loadout_id"`
	EquipmentID int `json:"equipment_id" db:"equipment_id"`
	SlotNumber  int `json:"slot_number" db:"slot_number"`
}

type Match struct {
	ID               int       `json:"id" db:"id"`
	CharacterID      int       `json:"character_id" db:"character_id"`
	LoadoutID        int       `json:"loadout_id" db:"loadout_id"`
	ArenaID          *int      `json:"arena_id" db:"arena_id"`
	SpecializationID *int      `json:"specialization_id" db:"specialization_id"`
	PrimaryWeaponID  *int      `json:"primary_weapon_id" db:"primary_weapon_id"`
	Won              bool      `json:"won" db:"won"`
	ProgressionPts   int       `json:"progression_points" db:"progression_points"`
	Kills            int       `json:"kills" db:"kills"`
	Assists          int       `json:"assists" db:"assists"`
	Deaths           int       `json:"deaths" db:"deaths"`
	Revives          int       `json:"revives" db:"revives"`
	DamageScore      int       `json:"damage_score" db:"damage_score"`
	SupportScore     int       `json:"support_score" db:"support_score"`
	ObjectiveScore   int       `json:"objective_score" db:"objective_score"`
	MatchDate        time.Time `json:"match_date" db:"match_date"`
}

// EquipmentDetail is the equipment list projection: the base row plus the
// weapon/gadget subtype rows and the linked class names. An empty Classes
// slice means the equipment is global.
type EquipmentDetail struct {
	Equipment
	Weapon  *Weapon  `json:"weapon,omitempty"`
	Gadget  *Gadget  `json:"gadget,omitempty"`
	Classes []string `json:"class_names"`
}

// AllowedEquipment is the resolver projection: one equipment a class may use.
type AllowedEquipment struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	EquipmentType string `json:"equipment_type"`
}

type CharacterLoadoutEquipment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CharacterLoadout struct {
	ID         int                         `json:"id"`
	Name       string                      `json:"loadout_name"`
	Equipments []CharacterLoadoutEquipment `json:"equipments"`
}

// CharacterSummary is the character list projection with the class name and
// loadouts denormalized in.
type CharacterSummary struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	ClassName string             `json:"class_name"`
	Loadouts  []CharacterLoadout `json:"loadouts"`
}

type LoadoutSlotView struct {
	SlotNumber    int    `json:"slot_number"`
	EquipmentName string `json:"equipment_name"`
	EquipmentType string `json:"equipment_type"`
}

// LoadoutSummary is the loadout list projection, slots ordered ascending by
// slot number.
type LoadoutSummary struct {
	ID            int               `json:"id"`
	Name          string            `json:"loadout_name"`
	CharacterName string            `json:"character_name"`
	ClassName     string            `json:"class_name"`
	Equipments    []LoadoutSlotView `json:"equipments"`
}

// MatchSummary is the match history projection. KDRatio is derived at read
// time and never persisted.
type MatchSummary struct {
	ID                 int       `json:"id"`
	CharacterName      string    `json:"name"`
	LoadoutName        string    `json:"loadout_name"`
	PrimaryWeapon      *string   `json:"primary_weapon"`
	SpecializationName *string   `json:"specialization_name"`
	Won                bool      `json:"won"`
	ProgressionPts     int       `json:"progression_points"`
	Kills              int       `json:"kills"`
	Assists            int       `json:"assists"`
	Deaths             int       `json:"deaths"`
	Revives            int       `json:"revives"`
	DamageScore        int       `json:"damage_score"`
	SupportScore       int       `json:"support_score"`
	ObjectiveScore     int       `json:"objective_score"`
	ArenaName          *string   `json:"arena_name"`
	MatchDate          time.Time `json:"match_date"`
	KDRatio            float64   `json:"kd_ratio"`
}

package service

import (
	"testing"

	"github.com/rs/zerolog"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/database"
	"worldtour-tracker/internal/models"
)

func TestCreateLoadout(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	loadouts := NewLoadouts(db, catalog, zerolog.Nop())
	characters := NewCharacters(db, zerolog.Nop())

	if _, err := characters.Create("Ghost", "Light"); err != nil {
		t.Fatal("Failed to create character:", err)
	}

	weaponType := "SMG"
	if _, err := catalog.CreateEquipment(CreateEquipmentInput{
		Name: "XP-54", EquipmentType: models.EquipmentTypeWeapon, WeaponType: &weaponType, ClassNames: []string{"Light"},
	}); err != nil {
		t.Fatal("Failed to create weapon:", err)
	}
	if _, err := catalog.CreateEquipment(CreateEquipmentInput{
		Name: "Gateway", EquipmentType: models.EquipmentTypeGadget,
	}); err != nil {
		t.Fatal("Failed to create gadget:", err)
	}

	loadout, err := loadouts.Create(CreateLoadoutInput{
		CharacterName: "Ghost",
		ClassName:     "Light",
		LoadoutName:   "Runner",
		Equipments: []SlotInput{
			{EquipmentName: "XP-54"},
			{EquipmentName: "Gateway"},
		},
	})
	if err != nil {
		t.Fatal("Failed to create loadout:", err)
	}

	if loadout.Name != "Runner" {
		t.Errorf("Expected loadout name 'Runner', got %q", loadout.Name)
	}

	slots, err := database.GetLoadoutSlots(db, loadout.ID)
	if err != nil {
		t.Fatal("Failed to get slots:", err)
	}
	if len(slots) != 2 {
		t.Fatalf("Expected 2 slots, got %d", len(slots))
	}
	for i, slot := range slots {
		if slot.SlotNumber != i {
			t.Errorf("Expected slot_number %d, got %d", i, slot.SlotNumber)
		}
	}
}

func TestCreateLoadoutAutoName(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	loadouts := NewLoadouts(db, catalog, zerolog.Nop())
	characters := NewCharacters(db, zerolog.Nop())

	if _, err := characters.Create("Echo", "Medium"); err != nil {
		t.Fatal("Failed to create character:", err)
	}

	loadout, err := loadouts.Create(CreateLoadoutInput{CharacterName: "Echo", ClassName: "Medium"})
	if err != nil {
		t.Fatal("Failed to create loadout:", err)
	}
	if loadout.Name != "Echo 1" {
		t.Errorf("Expected auto-generated name 'Echo 1', got %q", loadout.Name)
	}
}

func TestCreateLoadoutMissingFields(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	loadouts := NewLoadouts(db, catalog, zerolog.Nop())

	_, err := loadouts.Create(CreateLoadoutInput{CharacterName: "Ghost"})
	if err == nil {
		t.Fatal("Expected error for missing class_name")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestCreateLoadoutUnknownEquipment(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	loadouts := NewLoadouts(db, catalog, zerolog.Nop())
	characters := NewCharacters(db, zerolog.Nop())

	if _, err := characters.Create("Ghost", "Light"); err != nil {
		t.Fatal("Failed to create character:", err)
	}

	_, err := loadouts.Create(CreateLoadoutInput{
		CharacterName: "Ghost",
		ClassName:     "Light",
		Equipments:    []SlotInput{{EquipmentName: "Railgun"}},
	})
	if err == nil {
		t.Fatal("Expected error for unknown equipment")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestCreateLoadoutEquipmentNotAllowed(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	loadouts := NewLoadouts(db, catalog, zerolog.Nop())
	characters := NewCharacters(db, zerolog.Nop())

	if _, err := characters.Create("Tank", "Heavy"); err != nil {
		t.Fatal("Failed to create character:", err)
	}

	// Linked to Light only, so Heavy must be rejected.
	weaponType := "SMG"
	if _, err := catalog.CreateEquipment(CreateEquipmentInput{
		Name: "XP-54", EquipmentType: models.EquipmentTypeWeapon, WeaponType: &weaponType, ClassNames: []string{"Light"},
	}); err != nil {
		t.Fatal("Failed to create weapon:", err)
	}

	_, err := loadouts.Create(CreateLoadoutInput{
		CharacterName: "Tank",
		ClassName:     "Heavy",
		Equipments:    []SlotInput{{EquipmentName: "XP-54"}},
	})
	if err == nil {
		t.Fatal("Expected error for equipment outside the class's allowed set")
	}
	if apperr.KindOf(err) != apperr.KindConsistency {
		t.Errorf("Expected consistency error, got %v", err)
	}
}

func TestReplaceLoadout(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	loadouts := NewLoadouts(db, catalog, zerolog.Nop())
	characters := NewCharacters(db, zerolog.Nop())

	if _, err := characters.Create("Ghost", "Light"); err != nil {
		t.Fatal("Failed to create character:", err)
	}

	a, err := catalog.CreateEquipment(CreateEquipmentInput{Name: "Smoke", EquipmentType: models.EquipmentTypeGadget})
	if err != nil {
		t.Fatal("Failed to create gadget:", err)
	}
	b, err := catalog.CreateEquipment(CreateEquipmentInput{Name: "Zipline", EquipmentType: models.EquipmentTypeGadget})
	if err != nil {
		t.Fatal("Failed to create gadget:", err)
	}

	loadout, err := loadouts.Create(CreateLoadoutInput{
		CharacterName: "Ghost",
		ClassName:     "Light",
		LoadoutName:   "Runner",
		Equipments:    []SlotInput{{EquipmentName: "Smoke"}},
	})
	if err != nil {
		t.Fatal("Failed to create loadout:", err)
	}

	updated, slots, err := loadouts.Replace(loadout.ID, "Runner v2", []int{b.ID, a.ID})
	if err != nil {
		t.Fatal("Failed to replace loadout:", err)
	}

	if updated.Name != "Runner v2" {
		t.Errorf("Expected renamed loadout 'Runner v2', got %q", updated.Name)
	}
	if len(slots) != 2 {
		t.Fatalf("Expected 2 slots, got %d", len(slots))
	}
	if slots[0].EquipmentID != b.ID || slots[1].EquipmentID != a.ID {
		t.Error("Expected slots to mirror input order")
	}
}

func TestListLoadoutsByCharacter(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	loadouts := NewLoadouts(db, catalog, zerolog.Nop())
	characters := NewCharacters(db, zerolog.Nop())

	ghost, err := characters.Create("Ghost", "Light")
	if err != nil {
		t.Fatal("Failed to create character:", err)
	}
	if _, err := characters.Create("Echo", "Medium"); err != nil {
		t.Fatal("Failed to create character:", err)
	}

	if _, err := loadouts.Create(CreateLoadoutInput{CharacterName: "Ghost", ClassName: "Light"}); err != nil {
		t.Fatal("Failed to create loadout:", err)
	}
	if _, err := loadouts.Create(CreateLoadoutInput{CharacterName: "Echo", ClassName: "Medium"}); err != nil {
		t.Fatal("Failed to create loadout:", err)
	}

	summaries, err := loadouts.ListByCharacter(ghost.ID)
	if err != nil {
		t.Fatal("Failed to list loadouts by character:", err)
	}
	if len(summaries) != 1 || summaries[0].CharacterName != "Ghost" {
		t.Errorf("Expected only Ghost's loadout, got %+v", summaries)
	}

	if _, err := loadouts.ListByCharacter(9999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected not-found error for unknown character, got %v", err)
	}
}

func TestReplaceLoadoutUnknownLoadout(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	loadouts := NewLoadouts(db, catalog, zerolog.Nop())

	_, _, err := loadouts.Replace(9999, "whatever", nil)
	if err == nil {
		t.Fatal("Expected error for unknown loadout")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestReplaceLoadoutUnknownEquipment(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	loadouts := NewLoadouts(db, catalog, zerolog.Nop())
	characters := NewCharacters(db, zerolog.Nop())

	if _, err := characters.Create("Ghost", "Light"); err != nil {
		t.Fatal("Failed to create character:", err)
	}
	loadout, err := loadouts.Create(CreateLoadoutInput{CharacterName: "Ghost", ClassName: "Light"})
	if err != nil {
		t.Fatal("Failed to create loadout:", err)
	}

	_, _, err = loadouts.Replace(loadout.ID, loadout.Name, []int{9999})
	if err == nil {
		t.Fatal("Expected error for unknown equipment id")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

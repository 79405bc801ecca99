package service

import (
	"testing"

	"github.com/rs/zerolog"

	"worldtour-tracker/internal/apperr"
	"worldtour-tracker/internal/models"
)

func TestAllowedEquipmentMissingClassName(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())

	_, err := catalog.AllowedEquipment("")
	if err == nil {
		t.Fatal("Expected error for missing class name")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestAllowedEquipmentUnknownClass(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())

	_, err := catalog.AllowedEquipment("Ultra")
	if err == nil {
		t.Fatal("Expected error for unknown class")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestAllowedEquipmentResolver(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())

	weaponType := "SMG"
	linked, err := catalog.CreateEquipment(CreateEquipmentInput{
		Name: "XP-54", EquipmentType: models.EquipmentTypeWeapon, WeaponType: &weaponType, ClassNames: []string{"Light"},
	})
	if err != nil {
		t.Fatal("Failed to create weapon:", err)
	}
	global, err := catalog.CreateEquipment(CreateEquipmentInput{Name: "Frag Grenade", EquipmentType: models.EquipmentTypeGadget})
	if err != nil {
		t.Fatal("Failed to create gadget:", err)
	}

	allowed, err := catalog.AllowedEquipment("Light")
	if err != nil {
		t.Fatal("Failed to resolve allowed equipment:", err)
	}

	var sawLinked, sawGlobal bool
	for _, eq := range allowed {
		if eq.ID == linked.ID {
			sawLinked = true
		}
		if eq.ID == global.ID {
			sawGlobal = true
		}
	}
	if !sawLinked || !sawGlobal {
		t.Errorf("Expected both linked and global equipment for Light, got linked=%v global=%v", sawLinked, sawGlobal)
	}
}

func TestCreateEquipmentMissingFields(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())

	_, err := catalog.CreateEquipment(CreateEquipmentInput{Name: "XP-54"})
	if err == nil {
		t.Fatal("Expected error for missing equipment_type")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestCreateEquipmentSkipsUnknownClass(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())

	detail, err := catalog.CreateEquipment(CreateEquipmentInput{
		Name:          "Riot Shield",
		EquipmentType: models.EquipmentTypeGadget,
		ClassNames:    []string{"Heavy", "Ultra"},
	})
	if err != nil {
		t.Fatal("Expected unknown class to be skipped, got:", err)
	}

	if len(detail.Classes) != 1 || detail.Classes[0] != "Heavy" {
		t.Errorf("Expected class links [Heavy], got %v", detail.Classes)
	}
}

func TestSpecializationsForCharacter(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())
	characters := NewCharacters(db, zerolog.Nop())

	character, err := characters.Create("Ghost", "Light")
	if err != nil {
		t.Fatal("Failed to create character:", err)
	}

	specs, err := catalog.SpecializationsForCharacter(character.ID)
	if err != nil {
		t.Fatal("Failed to list specializations:", err)
	}
	if len(specs) == 0 {
		t.Error("Expected Light specializations for the character")
	}
}

func TestSpecializationsForUnknownCharacter(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalog(db, zerolog.Nop())

	specs, err := catalog.SpecializationsForCharacter(9999)
	if err != nil {
		t.Fatal("Expected unknown character to degrade to an empty list, got:", err)
	}
	if len(specs) != 0 {
		t.Errorf("Expected empty list, got %d specializations", len(specs))
	}
}

func TestCreateCharacter(t *testing.T) {
	db := setupTestDB(t)
	characters := NewCharacters(db, zerolog.Nop())

	character, err := characters.Create("Ghost", "Light")
	if err != nil {
		t.Fatal("Failed to create character:", err)
	}
	if character.ID == 0 {
		t.Error("Expected generated character id")
	}

	summaries, err := characters.List()
	if err != nil {
		t.Fatal("Failed to list characters:", err)
	}
	if len(summaries) != 1 || summaries[0].Name != "Ghost" {
		t.Errorf("Expected listed character 'Ghost', got %+v", summaries)
	}
}

func TestCreateCharacterMissingFields(t *testing.T) {
	db := setupTestDB(t)
	characters := NewCharacters(db, zerolog.Nop())

	_, err := characters.Create("Ghost", "")
	if err == nil {
		t.Fatal("Expected error for missing class name")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestCreateCharacterUnknownClass(t *testing.T) {
	db := setupTestDB(t)
	characters := NewCharacters(db, zerolog.Nop())

	_, err := characters.Create("Ghost", "Ultra")
	if err == nil {
		t.Fatal("Expected error for unknown class")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

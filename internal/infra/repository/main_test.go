package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/vetclinic/clinic-records/internal/db"
	"github.com/vetclinic/clinic-records/internal/models"
)

// testDB opens a fresh in-memory database with the full schema and the
// baseline reference fixtures (roles, specialties, species, breeds).
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// A single connection keeps every session on the same in-memory store.
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := dbpkg.Seed(gdb); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return gdb
}

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func newUser(t *testing.T, gdb *gorm.DB, username, email string, roleID uint) models.AppUser {
	t.Helper()

	u := models.AppUser{
		Username:   username,
		Email:      email,
		Active:     true,
		UserRoleID: roleID,
	}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("fixture user: %v", err)
	}
	return u
}

func newOwner(t *testing.T, gdb *gorm.DB, username string) models.PetOwner {
	t.Helper()

	u := newUser(t, gdb, username, username+"@example.com", models.RoleIDPetOwner)
	o := models.PetOwner{
		UserID:                 u.ID,
		Country:                "Costa Rica",
		PreferredContactMethod: models.ContactMethodEmail,
	}
	if err := gdb.Create(&o).Error; err != nil {
		t.Fatalf("fixture owner: %v", err)
	}
	return o
}

func newVet(t *testing.T, gdb *gorm.DB, username string) models.Veterinarian {
	t.Helper()

	u := newUser(t, gdb, username, username+"@example.com", models.RoleIDVeterinarian)
	v := models.Veterinarian{UserID: u.ID}
	if err := gdb.Create(&v).Error; err != nil {
		t.Fatalf("fixture veterinarian: %v", err)
	}
	return v
}

func newPet(t *testing.T, gdb *gorm.DB, ownerID uint, name string) models.Pet {
	t.Helper()

	p := models.Pet{
		OwnerID:   ownerID,
		SpeciesID: 1,
		Name:      name,
	}
	if err := gdb.Create(&p).Error; err != nil {
		t.Fatalf("fixture pet: %v", err)
	}
	return p
}

func newRecord(t *testing.T, gdb *gorm.DB, petID uint, number string) models.MedicalRecord {
	t.Helper()

	rec := models.MedicalRecord{
		PetID:        petID,
		RecordNumber: number,
		Status:       models.RecordStatusActive,
	}
	if err := gdb.Create(&rec).Error; err != nil {
		t.Fatalf("fixture record: %v", err)
	}
	return rec
}

func countRows(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

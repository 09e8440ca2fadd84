package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vetclinic/clinic-records/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
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
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestSeedBaseline(t *testing.T) {
	gdb := openTestDB(t)

	if err := Seed(gdb); err != nil {
		t.Fatalf("seed: %v", err)
	}

	counts := []struct {
		model any
		want  int64
	}{
		{&models.UserRole{}, 3},
		{&models.Specialty{}, 5},
		{&models.AnimalSpecies{}, 3},
		{&models.Breed{}, 3},
	}
	for _, c := range counts {
		var n int64
		if err := gdb.Model(c.model).Count(&n).Error; err != nil {
			t.Fatalf("count %T: %v", c.model, err)
		}
		if n != c.want {
			t.Fatalf("%T: got %d rows, want %d", c.model, n, c.want)
		}
	}

	var admin models.UserRole
	if err := gdb.First(&admin, models.RoleIDAdmin).Error; err != nil {
		t.Fatalf("admin role: %v", err)
	}
	if admin.Name != "Admin" {
		t.Fatalf("role 1 is %q, want Admin", admin.Name)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb := openTestDB(t)

	if err := Seed(gdb); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(gdb); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var roles, species int64
	gdb.Model(&models.UserRole{}).Count(&roles)
	gdb.Model(&models.AnimalSpecies{}).Count(&species)
	if roles != 3 || species != 3 {
		t.Fatalf("reseed duplicated fixtures: %d roles, %d species", roles, species)
	}
}

func TestSeedKeepsUserEdits(t *testing.T) {
	gdb := openTestDB(t)

	if err := Seed(gdb); err != nil {
		t.Fatalf("seed: %v", err)
	}

	extra := models.AnimalSpecies{Name: "Rabbit", Active: true}
	if err := gdb.Create(&extra).Error; err != nil {
		t.Fatalf("create species: %v", err)
	}

	if err := Seed(gdb); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	var n int64
	gdb.Model(&models.AnimalSpecies{}).Count(&n)
	if n != 4 {
		t.Fatalf("user species lost or duplicated: %d rows", n)
	}
}

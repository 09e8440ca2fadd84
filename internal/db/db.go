package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/config"
	"github.com/vetclinic/clinic-records/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := Seed(db); err != nil {
		log.Fatalf("failed to seed reference data: %v", err)
	}

	return db
}

// Migrate creates one table per entity with the foreign keys and unique
// indexes declared on the models. Shared by the server and the test suites.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserRole{},
		&models.AppUser{},
		&models.Specialty{},
		&models.PetOwner{},
		&models.Veterinarian{},
		&models.AdminStaff{},
		&models.AnimalSpecies{},
		&models.Breed{},
		&models.Pet{},
		&models.MedicalRecord{},
		&models.MedicalConsultation{},
		&models.VitalSign{},
		&models.Medication{},
		&models.Prescription{},
		&models.Vaccine{},
		&models.VaccinationHistory{},
		&models.Appointment{},
		&models.AuditLog{},
	)
}

package db

import (
	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/models"
)

// Seed applies the baseline reference fixtures: 3 roles, 5 specialties,
// 3 species, 3 breeds. Idempotent; rows are matched by name and only
// inserted when missing, so reruns leave user-added data alone.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		roles := []models.UserRole{
			{ID: models.RoleIDAdmin, Name: "Admin", Description: "Clinic administrator", Active: true},
			{ID: models.RoleIDVeterinarian, Name: "Veterinarian", Description: "Attending veterinarian", Active: true},
			{ID: models.RoleIDPetOwner, Name: "PetOwner", Description: "Registered pet owner", Active: true},
		}
		for _, role := range roles {
			if err := firstOrCreateRole(tx, role); err != nil {
				return err
			}
		}

		specialties := []models.Specialty{
			{Name: "General Medicine", Description: "Primary veterinary care", Active: true},
			{Name: "Surgery", Description: "Soft tissue and orthopedic surgery", Active: true},
			{Name: "Dermatology", Description: "Skin and coat conditions", Active: true},
			{Name: "Cardiology", Description: "Heart and circulatory conditions", Active: true},
			{Name: "Dentistry", Description: "Oral health and dental procedures", Active: true},
		}
		for _, sp := range specialties {
			var existing models.Specialty
			err := tx.Where("name = ?", sp.Name).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				if err := tx.Create(&sp).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
		}

		species := []models.AnimalSpecies{
			{Name: "Dog", Description: "Domestic dog", Active: true},
			{Name: "Cat", Description: "Domestic cat", Active: true},
			{Name: "Bird", Description: "Companion bird", Active: true},
		}
		speciesByName := map[string]uint{}
		for _, sp := range species {
			var existing models.AnimalSpecies
			err := tx.Where("name = ?", sp.Name).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				if err := tx.Create(&sp).Error; err != nil {
					return err
				}
				speciesByName[sp.Name] = sp.ID
				continue
			}
			if err != nil {
				return err
			}
			speciesByName[existing.Name] = existing.ID
		}

		breeds := []struct {
			species string
			breed   models.Breed
		}{
			{"Dog", models.Breed{Name: "Labrador Retriever", Description: "Large sporting breed", Active: true}},
			{"Dog", models.Breed{Name: "German Shepherd", Description: "Large herding breed", Active: true}},
			{"Cat", models.Breed{Name: "Siamese", Description: "Short-haired oriental breed", Active: true}},
		}
		for _, b := range breeds {
			speciesID, ok := speciesByName[b.species]
			if !ok {
				continue
			}
			var existing models.Breed
			err := tx.Where("name = ? AND species_id = ?", b.breed.Name, speciesID).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				b.breed.SpeciesID = speciesID
				if err := tx.Create(&b.breed).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
		}

		return nil
	})
}

// Roles keep their conventional IDs so collaborators can rely on them.
func firstOrCreateRole(tx *gorm.DB, role models.UserRole) error {
	var existing models.UserRole
	err := tx.Where("name = ?", role.Name).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return tx.Create(&role).Error
	}
	return err
}

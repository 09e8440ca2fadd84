package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

type PetGormRepository struct {
	db *gorm.DB
}

func NewPetGormRepository(db *gorm.DB) *PetGormRepository {
	return &PetGormRepository{db: db}
}

func (r *PetGormRepository) CreatePet(
	ctx context.Context,
	pet *models.Pet,
) error {

	if strings.TrimSpace(pet.Name) == "" {
		return httperr.Validation("missing_pet_name", "Pet name is required.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.PetOwner](tx, pet.OwnerID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("owner_not_found", "Referenced owner does not exist.")
		}

		ok, err = exists[models.AnimalSpecies](tx, pet.SpeciesID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("species_not_found", "Referenced species does not exist.")
		}

		if err := assertBreedMatchesSpecies(tx, pet.BreedID, pet.SpeciesID); err != nil {
			return err
		}

		return tx.Create(pet).Error
	})

	return translateError(err)
}

func (r *PetGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Species").
		Preload("Breed").
		First(&pet, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &pet, nil
}

func (r *PetGormRepository) ListPets(
	ctx context.Context,
	ownerID uint,
) ([]models.Pet, error) {

	q := r.db.WithContext(ctx).
		Preload("Species").
		Preload("Breed").
		Order("id ASC")
	if ownerID > 0 {
		q = q.Where("owner_id = ?", ownerID)
	}

	var pets []models.Pet
	if err := q.Find(&pets).Error; err != nil {
		return nil, translateError(err)
	}
	return pets, nil
}

func (r *PetGormRepository) UpdatePet(
	ctx context.Context,
	pet *models.Pet,
) error {

	if strings.TrimSpace(pet.Name) == "" {
		return httperr.Validation("missing_pet_name", "Pet name is required.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.PetOwner](tx, pet.OwnerID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("owner_not_found", "Referenced owner does not exist.")
		}

		ok, err = exists[models.AnimalSpecies](tx, pet.SpeciesID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("species_not_found", "Referenced species does not exist.")
		}

		if err := assertBreedMatchesSpecies(tx, pet.BreedID, pet.SpeciesID); err != nil {
			return err
		}

		// Save skips nulling pointer fields, so clear explicitly.
		if pet.BreedID == nil {
			if err := tx.Model(&models.Pet{}).
				Where("id = ?", pet.ID).
				Update("breed_id", nil).Error; err != nil {
				return err
			}
		}

		return tx.Save(pet).Error
	})

	return translateError(err)
}

func (r *PetGormRepository) SetPhotoURL(
	ctx context.Context,
	id uint,
	url string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Where("id = ?", id).
		Update("photo_url", url)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.NotFoundError("pet_not_found", "Pet not found.")
	}
	return nil
}

// DeletePet is rejected while clinical history, vaccination history or
// appointments reference the pet.
func (r *PetGormRepository) DeletePet(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Pet](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("pet_not_found", "Pet not found.")
		}

		var records int64
		if err := tx.Model(&models.MedicalRecord{}).
			Where("pet_id = ?", id).
			Count(&records).Error; err != nil {
			return err
		}
		if records > 0 {
			return httperr.Referential("pet_has_medical_records", "Pet still has medical records.")
		}

		var doses int64
		if err := tx.Model(&models.VaccinationHistory{}).
			Where("pet_id = ?", id).
			Count(&doses).Error; err != nil {
			return err
		}
		if doses > 0 {
			return httperr.Referential("pet_has_vaccination_history", "Pet is referenced by vaccination history.")
		}

		var appointments int64
		if err := tx.Model(&models.Appointment{}).
			Where("pet_id = ?", id).
			Count(&appointments).Error; err != nil {
			return err
		}
		if appointments > 0 {
			return httperr.Referential("pet_has_appointments", "Pet is referenced by appointments.")
		}

		return tx.Delete(&models.Pet{}, id).Error
	})

	return translateError(err)
}

func assertBreedMatchesSpecies(tx *gorm.DB, breedID *uint, speciesID uint) error {
	if breedID == nil {
		return nil
	}

	var breed models.Breed
	if err := tx.First(&breed, *breedID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return httperr.Referential("breed_not_found", "Referenced breed does not exist.")
		}
		return err
	}

	if breed.SpeciesID != speciesID {
		return httperr.Validation("breed_species_mismatch", "Breed does not belong to the pet's species.")
	}
	return nil
}

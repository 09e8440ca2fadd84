package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

type TaxonomyGormRepository struct {
	db *gorm.DB
}

func NewTaxonomyGormRepository(db *gorm.DB) *TaxonomyGormRepository {
	return &TaxonomyGormRepository{db: db}
}

// --------------------------------------------------
// Species
// --------------------------------------------------

func (r *TaxonomyGormRepository) CreateSpecies(
	ctx context.Context,
	sp *models.AnimalSpecies,
) error {

	if strings.TrimSpace(sp.Name) == "" {
		return httperr.Validation("missing_species_name", "Species name is required.")
	}
	return translateError(r.db.WithContext(ctx).Create(sp).Error)
}

func (r *TaxonomyGormRepository) GetSpecies(
	ctx context.Context,
	id uint,
) (*models.AnimalSpecies, error) {

	var sp models.AnimalSpecies
	if err := r.db.WithContext(ctx).First(&sp, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &sp, nil
}

func (r *TaxonomyGormRepository) ListSpecies(
	ctx context.Context,
) ([]models.AnimalSpecies, error) {

	var sps []models.AnimalSpecies
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&sps).Error; err != nil {
		return nil, translateError(err)
	}
	return sps, nil
}

func (r *TaxonomyGormRepository) UpdateSpecies(
	ctx context.Context,
	sp *models.AnimalSpecies,
) error {

	if strings.TrimSpace(sp.Name) == "" {
		return httperr.Validation("missing_species_name", "Species name is required.")
	}
	return translateError(r.db.WithContext(ctx).Save(sp).Error)
}

// DeleteSpecies is restricted while breeds or pets classify under it.
func (r *TaxonomyGormRepository) DeleteSpecies(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.AnimalSpecies](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("species_not_found", "Species not found.")
		}

		var breeds int64
		if err := tx.Model(&models.Breed{}).
			Where("species_id = ?", id).
			Count(&breeds).Error; err != nil {
			return err
		}
		if breeds > 0 {
			return httperr.Referential("species_has_breeds", "Species still has breeds.")
		}

		var pets int64
		if err := tx.Model(&models.Pet{}).
			Where("species_id = ?", id).
			Count(&pets).Error; err != nil {
			return err
		}
		if pets > 0 {
			return httperr.Referential("species_has_pets", "Species is still assigned to pets.")
		}

		return tx.Delete(&models.AnimalSpecies{}, id).Error
	})

	return translateError(err)
}

// --------------------------------------------------
// Breeds
// --------------------------------------------------

func (r *TaxonomyGormRepository) CreateBreed(
	ctx context.Context,
	breed *models.Breed,
) error {

	if strings.TrimSpace(breed.Name) == "" {
		return httperr.Validation("missing_breed_name", "Breed name is required.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.AnimalSpecies](tx, breed.SpeciesID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("species_not_found", "Referenced species does not exist.")
		}

		return tx.Create(breed).Error
	})

	return translateError(err)
}

func (r *TaxonomyGormRepository) GetBreed(
	ctx context.Context,
	id uint,
) (*models.Breed, error) {

	var breed models.Breed
	if err := r.db.WithContext(ctx).
		Preload("Species").
		First(&breed, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &breed, nil
}

func (r *TaxonomyGormRepository) ListBreeds(
	ctx context.Context,
	speciesID uint,
) ([]models.Breed, error) {

	q := r.db.WithContext(ctx).Order("id ASC")
	if speciesID > 0 {
		q = q.Where("species_id = ?", speciesID)
	}

	var breeds []models.Breed
	if err := q.Find(&breeds).Error; err != nil {
		return nil, translateError(err)
	}
	return breeds, nil
}

func (r *TaxonomyGormRepository) UpdateBreed(
	ctx context.Context,
	breed *models.Breed,
) error {

	if strings.TrimSpace(breed.Name) == "" {
		return httperr.Validation("missing_breed_name", "Breed name is required.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.AnimalSpecies](tx, breed.SpeciesID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("species_not_found", "Referenced species does not exist.")
		}

		return tx.Save(breed).Error
	})

	return translateError(err)
}

// DeleteBreed succeeds even when pets reference the breed: their breed link
// is cleared in the same transaction. The one place taxonomy change is
// silently propagated.
func (r *TaxonomyGormRepository) DeleteBreed(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Breed](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("breed_not_found", "Breed not found.")
		}

		if err := tx.Model(&models.Pet{}).
			Where("breed_id = ?", id).
			Update("breed_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Breed{}, id).Error
	})

	return translateError(err)
}

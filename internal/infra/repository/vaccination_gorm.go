package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/timezone"
)

type VaccinationGormRepository struct {
	db       *gorm.DB
	clinicTZ string
}

func NewVaccinationGormRepository(db *gorm.DB, clinicTZ string) *VaccinationGormRepository {
	return &VaccinationGormRepository{db: db, clinicTZ: clinicTZ}
}

// --------------------------------------------------
// Vaccines
// --------------------------------------------------

func (r *VaccinationGormRepository) CreateVaccine(
	ctx context.Context,
	v *models.Vaccine,
) error {

	if strings.TrimSpace(v.Name) == "" {
		return httperr.Validation("missing_vaccine_name", "Vaccine name is required.")
	}
	return translateError(r.db.WithContext(ctx).Create(v).Error)
}

func (r *VaccinationGormRepository) GetVaccine(
	ctx context.Context,
	id uint,
) (*models.Vaccine, error) {

	var v models.Vaccine
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &v, nil
}

func (r *VaccinationGormRepository) ListVaccines(
	ctx context.Context,
) ([]models.Vaccine, error) {

	var vaccines []models.Vaccine
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&vaccines).Error; err != nil {
		return nil, translateError(err)
	}
	return vaccines, nil
}

func (r *VaccinationGormRepository) UpdateVaccine(
	ctx context.Context,
	v *models.Vaccine,
) error {

	if strings.TrimSpace(v.Name) == "" {
		return httperr.Validation("missing_vaccine_name", "Vaccine name is required.")
	}
	return translateError(r.db.WithContext(ctx).Save(v).Error)
}

func (r *VaccinationGormRepository) DeleteVaccine(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Vaccine](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("vaccine_not_found", "Vaccine not found.")
		}

		var doses int64
		if err := tx.Model(&models.VaccinationHistory{}).
			Where("vaccine_id = ?", id).
			Count(&doses).Error; err != nil {
			return err
		}
		if doses > 0 {
			return httperr.Referential("vaccine_administered", "Vaccine is referenced by vaccination history.")
		}

		return tx.Delete(&models.Vaccine{}, id).Error
	})

	return translateError(err)
}

// --------------------------------------------------
// Vaccination history
// --------------------------------------------------

func (r *VaccinationGormRepository) CreateHistory(
	ctx context.Context,
	h *models.VaccinationHistory,
) error {

	if h.VaccinationDate.IsZero() {
		h.VaccinationDate = timezone.Today(r.clinicTZ)
	}
	if h.NextDueDate != nil && h.NextDueDate.Before(h.VaccinationDate) {
		return httperr.Validation("next_due_before_dose", "Next due date cannot precede the vaccination date.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Pet](tx, h.PetID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("pet_not_found", "Referenced pet does not exist.")
		}

		ok, err = exists[models.Vaccine](tx, h.VaccineID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("vaccine_not_found", "Referenced vaccine does not exist.")
		}

		ok, err = exists[models.Veterinarian](tx, h.VeterinarianID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("veterinarian_not_found", "Referenced veterinarian does not exist.")
		}

		return tx.Create(h).Error
	})

	return translateError(err)
}

func (r *VaccinationGormRepository) GetHistory(
	ctx context.Context,
	id uint,
) (*models.VaccinationHistory, error) {

	var h models.VaccinationHistory
	if err := r.db.WithContext(ctx).
		Preload("Vaccine").
		Preload("Veterinarian").
		First(&h, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &h, nil
}

func (r *VaccinationGormRepository) ListHistory(
	ctx context.Context,
	petID uint,
) ([]models.VaccinationHistory, error) {

	q := r.db.WithContext(ctx).
		Preload("Vaccine").
		Order("vaccination_date ASC")
	if petID > 0 {
		q = q.Where("pet_id = ?", petID)
	}

	var history []models.VaccinationHistory
	if err := q.Find(&history).Error; err != nil {
		return nil, translateError(err)
	}
	return history, nil
}

// UpdateHistory only touches the advisory fields; the administering pet,
// vaccine and veterinarian of a recorded dose never change.
func (r *VaccinationGormRepository) UpdateHistory(
	ctx context.Context,
	h *models.VaccinationHistory,
) error {

	if h.NextDueDate != nil && h.NextDueDate.Before(h.VaccinationDate) {
		return httperr.Validation("next_due_before_dose", "Next due date cannot precede the vaccination date.")
	}

	err := r.db.WithContext(ctx).
		Model(&models.VaccinationHistory{}).
		Where("id = ?", h.ID).
		Updates(map[string]any{
			"batch_number":    h.BatchNumber,
			"expiration_date": h.ExpirationDate,
			"next_due_date":   h.NextDueDate,
			"reactions":       h.Reactions,
		}).Error

	return translateError(err)
}

func (r *VaccinationGormRepository) DeleteHistory(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.VaccinationHistory{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.NotFoundError("vaccination_not_found", "Vaccination history entry not found.")
	}
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/vetclinic/clinic-records/internal/domain/appointment"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &pet, nil
}

func (r *AppointmentGormRepository) GetVeterinarian(
	ctx context.Context,
	id uint,
) (*models.Veterinarian, error) {

	var vet models.Veterinarian
	if err := r.db.WithContext(ctx).First(&vet, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &vet, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment re-checks both foreign keys inside the write transaction
// so a concurrent pet or veterinarian delete cannot interleave an orphan.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Pet](tx, ap.PetID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("pet_not_found", "Referenced pet does not exist.")
		}

		ok, err = exists[models.Veterinarian](tx, ap.VeterinarianID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("veterinarian_not_found", "Referenced veterinarian does not exist.")
		}

		return tx.Create(ap).Error
	})

	return translateError(err)
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translateError(r.db.WithContext(ctx).Save(ap).Error)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.NotFoundError("appointment_not_found", "Appointment not found.")
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPet(
	ctx context.Context,
	petID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, translateError(err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForVeterinarian(
	ctx context.Context,
	vetID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("veterinarian_id = ?", vetID).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, translateError(err)
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

type PartyGormRepository struct {
	db *gorm.DB
}

func NewPartyGormRepository(db *gorm.DB) *PartyGormRepository {
	return &PartyGormRepository{db: db}
}

// --------------------------------------------------
// Pet owners
// --------------------------------------------------

func (r *PartyGormRepository) CreateOwner(
	ctx context.Context,
	owner *models.PetOwner,
) error {

	if err := validateContactMethod(owner.PreferredContactMethod); err != nil {
		return err
	}
	applyOwnerDefaults(owner)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.AppUser](tx, owner.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("user_not_found", "Referenced user does not exist.")
		}

		var count int64
		if err := tx.Model(&models.PetOwner{}).
			Where("user_id = ?", owner.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.UniqueConflict("owner_profile_exists", "User already has a pet owner profile.")
		}

		return tx.Create(owner).Error
	})

	return translateError(err)
}

func (r *PartyGormRepository) GetOwner(
	ctx context.Context,
	id uint,
) (*models.PetOwner, error) {

	var owner models.PetOwner
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&owner, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &owner, nil
}

func (r *PartyGormRepository) ListOwners(
	ctx context.Context,
) ([]models.PetOwner, error) {

	var owners []models.PetOwner
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&owners).Error; err != nil {
		return nil, translateError(err)
	}
	return owners, nil
}

func (r *PartyGormRepository) UpdateOwner(
	ctx context.Context,
	owner *models.PetOwner,
) error {

	if err := validateContactMethod(owner.PreferredContactMethod); err != nil {
		return err
	}
	applyOwnerDefaults(owner)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(owner).Error
	})

	return translateError(err)
}

// DeleteOwner is rejected while pets reference the owner.
func (r *PartyGormRepository) DeleteOwner(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.PetOwner](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("owner_not_found", "Pet owner not found.")
		}

		var pets int64
		if err := tx.Model(&models.Pet{}).
			Where("owner_id = ?", id).
			Count(&pets).Error; err != nil {
			return err
		}
		if pets > 0 {
			return httperr.Referential("owner_has_pets", "Owner still has registered pets.")
		}

		return tx.Delete(&models.PetOwner{}, id).Error
	})

	return translateError(err)
}

// --------------------------------------------------
// Veterinarians
// --------------------------------------------------

func (r *PartyGormRepository) CreateVeterinarian(
	ctx context.Context,
	vet *models.Veterinarian,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.AppUser](tx, vet.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("user_not_found", "Referenced user does not exist.")
		}

		var count int64
		if err := tx.Model(&models.Veterinarian{}).
			Where("user_id = ?", vet.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.UniqueConflict("veterinarian_profile_exists", "User already has a veterinarian profile.")
		}

		if err := assertSpecialtyExists(tx, vet.SpecialtyID); err != nil {
			return err
		}

		return tx.Create(vet).Error
	})

	return translateError(err)
}

func (r *PartyGormRepository) GetVeterinarian(
	ctx context.Context,
	id uint,
) (*models.Veterinarian, error) {

	var vet models.Veterinarian
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialty").
		First(&vet, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &vet, nil
}

func (r *PartyGormRepository) ListVeterinarians(
	ctx context.Context,
) ([]models.Veterinarian, error) {

	var vets []models.Veterinarian
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialty").
		Order("id ASC").
		Find(&vets).Error; err != nil {
		return nil, translateError(err)
	}
	return vets, nil
}

// UpdateVeterinarian persists profile changes. Assigning or clearing the
// specialty is unconstrained beyond existence of the target.
func (r *PartyGormRepository) UpdateVeterinarian(
	ctx context.Context,
	vet *models.Veterinarian,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSpecialtyExists(tx, vet.SpecialtyID); err != nil {
			return err
		}

		// Save skips nulling pointer fields, so clear explicitly.
		if vet.SpecialtyID == nil {
			if err := tx.Model(&models.Veterinarian{}).
				Where("id = ?", vet.ID).
				Update("specialty_id", nil).Error; err != nil {
				return err
			}
		}

		return tx.Save(vet).Error
	})

	return translateError(err)
}

// DeleteVeterinarian must not orphan clinical attribution.
func (r *PartyGormRepository) DeleteVeterinarian(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Veterinarian](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("veterinarian_not_found", "Veterinarian not found.")
		}

		if err := assertVeterinarianUnreferenced(tx, id); err != nil {
			return err
		}

		return tx.Delete(&models.Veterinarian{}, id).Error
	})

	return translateError(err)
}

// --------------------------------------------------
// Admin staff
// --------------------------------------------------

func (r *PartyGormRepository) CreateAdminStaff(
	ctx context.Context,
	staff *models.AdminStaff,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.AppUser](tx, staff.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("user_not_found", "Referenced user does not exist.")
		}

		var count int64
		if err := tx.Model(&models.AdminStaff{}).
			Where("user_id = ?", staff.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.UniqueConflict("admin_profile_exists", "User already has an admin staff profile.")
		}

		return tx.Create(staff).Error
	})

	return translateError(err)
}

func (r *PartyGormRepository) GetAdminStaff(
	ctx context.Context,
	id uint,
) (*models.AdminStaff, error) {

	var staff models.AdminStaff
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&staff, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &staff, nil
}

func (r *PartyGormRepository) ListAdminStaff(
	ctx context.Context,
) ([]models.AdminStaff, error) {

	var staff []models.AdminStaff
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&staff).Error; err != nil {
		return nil, translateError(err)
	}
	return staff, nil
}

func (r *PartyGormRepository) UpdateAdminStaff(
	ctx context.Context,
	staff *models.AdminStaff,
) error {
	return translateError(r.db.WithContext(ctx).Save(staff).Error)
}

func (r *PartyGormRepository) DeleteAdminStaff(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.AdminStaff](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("admin_staff_not_found", "Admin staff not found.")
		}
		return tx.Delete(&models.AdminStaff{}, id).Error
	})

	return translateError(err)
}

// --------------------------------------------------
// Specialties
// --------------------------------------------------

func (r *PartyGormRepository) CreateSpecialty(
	ctx context.Context,
	sp *models.Specialty,
) error {

	if strings.TrimSpace(sp.Name) == "" {
		return httperr.Validation("missing_specialty_name", "Specialty name is required.")
	}
	return translateError(r.db.WithContext(ctx).Create(sp).Error)
}

func (r *PartyGormRepository) GetSpecialty(
	ctx context.Context,
	id uint,
) (*models.Specialty, error) {

	var sp models.Specialty
	if err := r.db.WithContext(ctx).First(&sp, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &sp, nil
}

func (r *PartyGormRepository) ListSpecialties(
	ctx context.Context,
) ([]models.Specialty, error) {

	var sps []models.Specialty
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&sps).Error; err != nil {
		return nil, translateError(err)
	}
	return sps, nil
}

func (r *PartyGormRepository) UpdateSpecialty(
	ctx context.Context,
	sp *models.Specialty,
) error {

	if strings.TrimSpace(sp.Name) == "" {
		return httperr.Validation("missing_specialty_name", "Specialty name is required.")
	}
	return translateError(r.db.WithContext(ctx).Save(sp).Error)
}

// DeleteSpecialty nulls the specialty reference on attached veterinarians
// instead of failing; the link is optional classification only.
func (r *PartyGormRepository) DeleteSpecialty(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Specialty](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("specialty_not_found", "Specialty not found.")
		}

		if err := tx.Model(&models.Veterinarian{}).
			Where("specialty_id = ?", id).
			Update("specialty_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Specialty{}, id).Error
	})

	return translateError(err)
}

// --------------------------------------------------
// Shared assertions
// --------------------------------------------------

// assertVeterinarianUnreferenced guards every path that would remove a
// veterinarian row: the clinical trail must survive staff turnover.
func assertVeterinarianUnreferenced(tx *gorm.DB, vetID uint) error {
	var consultations int64
	if err := tx.Model(&models.MedicalConsultation{}).
		Where("veterinarian_id = ?", vetID).
		Count(&consultations).Error; err != nil {
		return err
	}
	if consultations > 0 {
		return httperr.Referential("veterinarian_has_consultations", "Veterinarian has authored consultations.")
	}

	var doses int64
	if err := tx.Model(&models.VaccinationHistory{}).
		Where("veterinarian_id = ?", vetID).
		Count(&doses).Error; err != nil {
		return err
	}
	if doses > 0 {
		return httperr.Referential("veterinarian_has_vaccinations", "Veterinarian is referenced by vaccination history.")
	}

	var appointments int64
	if err := tx.Model(&models.Appointment{}).
		Where("veterinarian_id = ?", vetID).
		Count(&appointments).Error; err != nil {
		return err
	}
	if appointments > 0 {
		return httperr.Referential("veterinarian_has_appointments", "Veterinarian is referenced by appointments.")
	}

	return nil
}

func assertSpecialtyExists(tx *gorm.DB, specialtyID *uint) error {
	if specialtyID == nil {
		return nil
	}
	ok, err := exists[models.Specialty](tx, *specialtyID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.Referential("specialty_not_found", "Referenced specialty does not exist.")
	}
	return nil
}

func validateContactMethod(method string) error {
	switch method {
	case "", models.ContactMethodEmail, models.ContactMethodPhone, models.ContactMethodSMS:
		return nil
	}
	return httperr.Validation("invalid_contact_method", "Preferred contact method is not recognized.")
}

func applyOwnerDefaults(owner *models.PetOwner) {
	if owner.Country == "" {
		owner.Country = "Costa Rica"
	}
	if owner.PreferredContactMethod == "" {
		owner.PreferredContactMethod = models.ContactMethodEmail
	}
}

package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

type ClinicalGormRepository struct {
	db *gorm.DB
}

func NewClinicalGormRepository(db *gorm.DB) *ClinicalGormRepository {
	return &ClinicalGormRepository{db: db}
}

// --------------------------------------------------
// Medical records
// --------------------------------------------------

func (r *ClinicalGormRepository) CreateRecord(
	ctx context.Context,
	record *models.MedicalRecord,
) error {

	if strings.TrimSpace(record.RecordNumber) == "" {
		return httperr.Validation("missing_record_number", "Record number is required.")
	}
	if err := validateRecordStatus(record.Status); err != nil {
		return err
	}
	if record.Status == "" {
		record.Status = models.RecordStatusActive
	}
	if record.CreationDate.IsZero() {
		record.CreationDate = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Pet](tx, record.PetID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("pet_not_found", "Referenced pet does not exist.")
		}

		var count int64
		if err := tx.Model(&models.MedicalRecord{}).
			Where("record_number = ?", record.RecordNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.UniqueConflict("record_number_taken", "Record number is already in use.")
		}

		return tx.Create(record).Error
	})

	return translateError(err)
}

func (r *ClinicalGormRepository) GetRecord(
	ctx context.Context,
	id uint,
) (*models.MedicalRecord, error) {

	var record models.MedicalRecord
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		First(&record, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

func (r *ClinicalGormRepository) ListRecords(
	ctx context.Context,
	petID uint,
) ([]models.MedicalRecord, error) {

	q := r.db.WithContext(ctx).Order("id ASC")
	if petID > 0 {
		q = q.Where("pet_id = ?", petID)
	}

	var records []models.MedicalRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, translateError(err)
	}
	return records, nil
}

func (r *ClinicalGormRepository) UpdateRecord(
	ctx context.Context,
	record *models.MedicalRecord,
) error {

	if strings.TrimSpace(record.RecordNumber) == "" {
		return httperr.Validation("missing_record_number", "Record number is required.")
	}
	if err := validateRecordStatus(record.Status); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MedicalRecord{}).
			Where("record_number = ? AND id <> ?", record.RecordNumber, record.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.UniqueConflict("record_number_taken", "Record number is already in use.")
		}

		return tx.Save(record).Error
	})

	return translateError(err)
}

// DeleteRecord cascades: consultations go, and with them their vital signs
// and prescriptions, all in one transaction.
func (r *ClinicalGormRepository) DeleteRecord(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.MedicalRecord](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("record_not_found", "Medical record not found.")
		}

		var consultationIDs []uint
		if err := tx.Model(&models.MedicalConsultation{}).
			Where("medical_record_id = ?", id).
			Pluck("id", &consultationIDs).Error; err != nil {
			return err
		}

		if len(consultationIDs) > 0 {
			if err := deleteConsultationChildren(tx, consultationIDs); err != nil {
				return err
			}
			if err := tx.Where("medical_record_id = ?", id).
				Delete(&models.MedicalConsultation{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.MedicalRecord{}, id).Error
	})

	return translateError(err)
}

// --------------------------------------------------
// Consultations
// --------------------------------------------------

func (r *ClinicalGormRepository) CreateConsultation(
	ctx context.Context,
	consultation *models.MedicalConsultation,
) error {

	if consultation.ConsultationDate.IsZero() {
		consultation.ConsultationDate = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.MedicalRecord](tx, consultation.MedicalRecordID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("record_not_found", "Referenced medical record does not exist.")
		}

		ok, err = exists[models.Veterinarian](tx, consultation.VeterinarianID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("veterinarian_not_found", "Referenced veterinarian does not exist.")
		}

		return tx.Create(consultation).Error
	})

	return translateError(err)
}

func (r *ClinicalGormRepository) GetConsultation(
	ctx context.Context,
	id uint,
) (*models.MedicalConsultation, error) {

	var consultation models.MedicalConsultation
	if err := r.db.WithContext(ctx).
		Preload("Veterinarian").
		First(&consultation, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &consultation, nil
}

func (r *ClinicalGormRepository) ListConsultations(
	ctx context.Context,
	recordID uint,
) ([]models.MedicalConsultation, error) {

	q := r.db.WithContext(ctx).Order("consultation_date ASC")
	if recordID > 0 {
		q = q.Where("medical_record_id = ?", recordID)
	}

	var consultations []models.MedicalConsultation
	if err := q.Find(&consultations).Error; err != nil {
		return nil, translateError(err)
	}
	return consultations, nil
}

func (r *ClinicalGormRepository) UpdateConsultation(
	ctx context.Context,
	consultation *models.MedicalConsultation,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Veterinarian](tx, consultation.VeterinarianID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("veterinarian_not_found", "Referenced veterinarian does not exist.")
		}

		return tx.Save(consultation).Error
	})

	return translateError(err)
}

func (r *ClinicalGormRepository) DeleteConsultation(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.MedicalConsultation](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("consultation_not_found", "Consultation not found.")
		}

		if err := deleteConsultationChildren(tx, []uint{id}); err != nil {
			return err
		}

		return tx.Delete(&models.MedicalConsultation{}, id).Error
	})

	return translateError(err)
}

func deleteConsultationChildren(tx *gorm.DB, consultationIDs []uint) error {
	if err := tx.Where("consultation_id IN ?", consultationIDs).
		Delete(&models.VitalSign{}).Error; err != nil {
		return err
	}
	return tx.Where("consultation_id IN ?", consultationIDs).
		Delete(&models.Prescription{}).Error
}

// --------------------------------------------------
// Vital signs
// --------------------------------------------------

func (r *ClinicalGormRepository) CreateVitalSign(
	ctx context.Context,
	vs *models.VitalSign,
) error {

	if vs.RecordedAt.IsZero() {
		vs.RecordedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.MedicalConsultation](tx, vs.ConsultationID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("consultation_not_found", "Referenced consultation does not exist.")
		}

		return tx.Create(vs).Error
	})

	return translateError(err)
}

func (r *ClinicalGormRepository) ListVitalSigns(
	ctx context.Context,
	consultationID uint,
) ([]models.VitalSign, error) {

	var signs []models.VitalSign
	if err := r.db.WithContext(ctx).
		Where("consultation_id = ?", consultationID).
		Order("recorded_at ASC").
		Find(&signs).Error; err != nil {
		return nil, translateError(err)
	}
	return signs, nil
}

func (r *ClinicalGormRepository) DeleteVitalSign(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.VitalSign{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.NotFoundError("vital_sign_not_found", "Vital sign not found.")
	}
	return nil
}

// --------------------------------------------------
// Prescriptions
// --------------------------------------------------

func (r *ClinicalGormRepository) CreatePrescription(
	ctx context.Context,
	p *models.Prescription,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.MedicalConsultation](tx, p.ConsultationID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("consultation_not_found", "Referenced consultation does not exist.")
		}

		ok, err = exists[models.Medication](tx, p.MedicationID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.Referential("medication_not_found", "Referenced medication does not exist.")
		}

		return tx.Create(p).Error
	})

	return translateError(err)
}

func (r *ClinicalGormRepository) ListPrescriptions(
	ctx context.Context,
	consultationID uint,
) ([]models.Prescription, error) {

	var prescriptions []models.Prescription
	if err := r.db.WithContext(ctx).
		Preload("Medication").
		Where("consultation_id = ?", consultationID).
		Order("id ASC").
		Find(&prescriptions).Error; err != nil {
		return nil, translateError(err)
	}
	return prescriptions, nil
}

func (r *ClinicalGormRepository) DeletePrescription(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Prescription{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.NotFoundError("prescription_not_found", "Prescription not found.")
	}
	return nil
}

// --------------------------------------------------
// Medications
// --------------------------------------------------

func (r *ClinicalGormRepository) CreateMedication(
	ctx context.Context,
	m *models.Medication,
) error {

	if strings.TrimSpace(m.Name) == "" {
		return httperr.Validation("missing_medication_name", "Medication name is required.")
	}
	if m.CreatedDate.IsZero() {
		m.CreatedDate = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Medication{}).
			Where("name = ?", m.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.UniqueConflict("medication_name_taken", "A medication with this name already exists.")
		}

		return tx.Create(m).Error
	})

	return translateError(err)
}

func (r *ClinicalGormRepository) GetMedication(
	ctx context.Context,
	id uint,
) (*models.Medication, error) {

	var m models.Medication
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *ClinicalGormRepository) ListMedications(
	ctx context.Context,
) ([]models.Medication, error) {

	var meds []models.Medication
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&meds).Error; err != nil {
		return nil, translateError(err)
	}
	return meds, nil
}

func (r *ClinicalGormRepository) UpdateMedication(
	ctx context.Context,
	m *models.Medication,
) error {

	if strings.TrimSpace(m.Name) == "" {
		return httperr.Validation("missing_medication_name", "Medication name is required.")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Medication{}).
			Where("name = ? AND id <> ?", m.Name, m.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.UniqueConflict("medication_name_taken", "A medication with this name already exists.")
		}

		return tx.Save(m).Error
	})

	return translateError(err)
}

func (r *ClinicalGormRepository) DeleteMedication(
	ctx context.Context,
	id uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists[models.Medication](tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.NotFoundError("medication_not_found", "Medication not found.")
		}

		var prescriptions int64
		if err := tx.Model(&models.Prescription{}).
			Where("medication_id = ?", id).
			Count(&prescriptions).Error; err != nil {
			return err
		}
		if prescriptions > 0 {
			return httperr.Referential("medication_prescribed", "Medication is referenced by prescriptions.")
		}

		return tx.Delete(&models.Medication{}, id).Error
	})

	return translateError(err)
}

func validateRecordStatus(status string) error {
	switch status {
	case "", models.RecordStatusActive, models.RecordStatusArchived:
		return nil
	}
	return httperr.Validation("invalid_record_status", "Medical record status is not recognized.")
}

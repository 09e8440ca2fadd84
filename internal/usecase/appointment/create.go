package appointment

import (
	"context"
	"time"

	"github.com/vetclinic/clinic-records/internal/audit"
	domain "github.com/vetclinic/clinic-records/internal/domain/appointment"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PetID          uint
	VeterinarianID uint

	AppointmentDate time.Time
	DurationMin     int

	AppointmentType string
	Notes           string
	ReasonForVisit  string

	EstimatedCost *float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	clinicTZ string
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clinicTZ string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		audit:    audit,
		clinicTZ: clinicTZ,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.AppointmentType == "" {
		return nil, httperr.Validation("missing_appointment_type", "Appointment type is required.")
	}
	if len(in.AppointmentType) > 50 {
		return nil, httperr.Validation("appointment_type_too_long", "Appointment type exceeds 50 characters.")
	}
	if in.AppointmentDate.IsZero() {
		return nil, httperr.Validation("missing_appointment_date", "Appointment date is required.")
	}

	// Present-or-future, with a minute of grace for clock skew.
	now := timezone.NowIn(uc.clinicTZ)
	if in.AppointmentDate.Before(now.Add(-time.Minute)) {
		return nil, httperr.Validation("appointment_in_past", "Appointment date cannot be in the past.")
	}

	if in.EstimatedCost != nil {
		if err := domain.ValidateCost(*in.EstimatedCost); err != nil {
			return nil, err
		}
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = 30
	}

	ap := &models.Appointment{
		PetID:           in.PetID,
		VeterinarianID:  in.VeterinarianID,
		AppointmentDate: in.AppointmentDate,
		DurationMin:     duration,
		AppointmentType: in.AppointmentType,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
		ReasonForVisit:  in.ReasonForVisit,
		EstimatedCost:   in.EstimatedCost,
	}

	// Referential checks run inside the repository's write transaction.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

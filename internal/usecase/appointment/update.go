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

type UpdateAppointmentInput struct {
	AppointmentDate *time.Time
	DurationMin     *int
	AppointmentType *string
	Notes           *string
	ReasonForVisit  *string
	EstimatedCost   *float64
}

// UpdateAppointment reschedules or edits a scheduled appointment. Status
// changes go through the dedicated complete/cancel/no-show use cases.
type UpdateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	clinicTZ string
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clinicTZ string,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		audit:    audit,
		clinicTZ: clinicTZ,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if domain.Status(ap.Status) != domain.StatusScheduled {
		return nil, httperr.Validation("invalid_state", "Only scheduled appointments can be edited.")
	}

	if in.AppointmentDate != nil {
		now := timezone.NowIn(uc.clinicTZ)
		if in.AppointmentDate.Before(now.Add(-time.Minute)) {
			return nil, httperr.Validation("appointment_in_past", "Appointment date cannot be in the past.")
		}
		ap.AppointmentDate = *in.AppointmentDate
	}
	if in.DurationMin != nil {
		if *in.DurationMin <= 0 {
			return nil, httperr.Validation("invalid_duration", "Duration must be a positive number of minutes.")
		}
		ap.DurationMin = *in.DurationMin
	}
	if in.AppointmentType != nil {
		if *in.AppointmentType == "" {
			return nil, httperr.Validation("missing_appointment_type", "Appointment type is required.")
		}
		if len(*in.AppointmentType) > 50 {
			return nil, httperr.Validation("appointment_type_too_long", "Appointment type exceeds 50 characters.")
		}
		ap.AppointmentType = *in.AppointmentType
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if in.ReasonForVisit != nil {
		ap.ReasonForVisit = *in.ReasonForVisit
	}
	if in.EstimatedCost != nil {
		if err := domain.ValidateCost(*in.EstimatedCost); err != nil {
			return nil, err
		}
		ap.EstimatedCost = in.EstimatedCost
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

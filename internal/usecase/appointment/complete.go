package appointment

import (
	"context"

	"github.com/vetclinic/clinic-records/internal/audit"
	domain "github.com/vetclinic/clinic-records/internal/domain/appointment"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/timezone"
)

type CompleteAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	clinicTZ string
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clinicTZ string,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:     repo,
		audit:    audit,
		clinicTZ: clinicTZ,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actualCost *float64,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.clinicTZ)
	if err := domain.Complete(ap, now, actualCost); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

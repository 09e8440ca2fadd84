package appointment

import (
	"context"

	"github.com/vetclinic/clinic-records/internal/audit"
	domain "github.com/vetclinic/clinic-records/internal/domain/appointment"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/timezone"
)

type CancelAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	clinicTZ string
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clinicTZ string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		audit:    audit,
		clinicTZ: clinicTZ,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.clinicTZ)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

package appointment

import (
	"context"

	"github.com/vetclinic/clinic-records/internal/audit"
	domain "github.com/vetclinic/clinic-records/internal/domain/appointment"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/timezone"
)

type MarkNoShow struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	clinicTZ string
}

func NewMarkNoShow(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clinicTZ string,
) *MarkNoShow {
	return &MarkNoShow{
		repo:     repo,
		audit:    audit,
		clinicTZ: clinicTZ,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.clinicTZ)
	if err := domain.MarkNoShow(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_no_show",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

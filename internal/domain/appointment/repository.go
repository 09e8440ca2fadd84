package appointment

import (
	"context"

	"github.com/vetclinic/clinic-records/internal/models"
)

type Repository interface {
	// -------- Referenced entities --------
	GetPet(ctx context.Context, id uint) (*models.Pet, error)

	GetVeterinarian(ctx context.Context, id uint) (*models.Veterinarian, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	DeleteAppointment(ctx context.Context, id uint) error

	ListAppointmentsForPet(ctx context.Context, petID uint) ([]models.Appointment, error)

	ListAppointmentsForVeterinarian(ctx context.Context, vetID uint) ([]models.Appointment, error)
}

package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/vetclinic/clinic-records/internal/domain/appointment"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/timezone"
)

// stubRepo keeps appointments in memory and satisfies the repository
// contract without a database.
type stubRepo struct {
	pets         map[uint]*models.Pet
	vets         map[uint]*models.Veterinarian
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		pets: map[uint]*models.Pet{
			1: {ID: 1, Name: "Rocky"},
		},
		vets: map[uint]*models.Veterinarian{
			1: {ID: 1},
		},
		appointments: map[uint]*models.Appointment{},
	}
}

func (s *stubRepo) GetPet(_ context.Context, id uint) (*models.Pet, error) {
	if p, ok := s.pets[id]; ok {
		return p, nil
	}
	return nil, httperr.NotFoundError("pet_not_found", "Pet not found.")
}

func (s *stubRepo) GetVeterinarian(_ context.Context, id uint) (*models.Veterinarian, error) {
	if v, ok := s.vets[id]; ok {
		return v, nil
	}
	return nil, httperr.NotFoundError("veterinarian_not_found", "Veterinarian not found.")
}

func (s *stubRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := s.pets[ap.PetID]; !ok {
		return httperr.Referential("pet_not_found", "Referenced pet does not exist.")
	}
	if _, ok := s.vets[ap.VeterinarianID]; !ok {
		return httperr.Referential("veterinarian_not_found", "Referenced veterinarian does not exist.")
	}
	s.nextID++
	ap.ID = s.nextID
	s.appointments[ap.ID] = ap
	return nil
}

func (s *stubRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := s.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, httperr.NotFoundError("appointment_not_found", "Appointment not found.")
}

func (s *stubRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := s.appointments[ap.ID]; !ok {
		return httperr.NotFoundError("appointment_not_found", "Appointment not found.")
	}
	cp := *ap
	s.appointments[ap.ID] = &cp
	return nil
}

func (s *stubRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := s.appointments[id]; !ok {
		return httperr.NotFoundError("appointment_not_found", "Appointment not found.")
	}
	delete(s.appointments, id)
	return nil
}

func (s *stubRepo) ListAppointmentsForPet(_ context.Context, petID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.PetID == petID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAppointmentsForVeterinarian(_ context.Context, vetID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.VeterinarianID == vetID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*stubRepo)(nil)

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		PetID:           1,
		VeterinarianID:  1,
		AppointmentDate: time.Now().Add(48 * time.Hour),
		AppointmentType: "Checkup",
	}
}

func TestCreateAppointmentDefaults(t *testing.T) {
	uc := NewCreateAppointment(newStubRepo(), nil, timezone.DefaultTimezone)

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if ap.Status != string(domain.StatusScheduled) {
		t.Fatalf("initial status: %s", ap.Status)
	}
	if ap.DurationMin != 30 {
		t.Fatalf("duration default: %d", ap.DurationMin)
	}
	if ap.ActualCost != nil {
		t.Fatal("actual cost set at creation")
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	uc := NewCreateAppointment(newStubRepo(), nil, timezone.DefaultTimezone)
	ctx := context.Background()

	in := validInput()
	in.AppointmentType = ""
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "missing_appointment_type") {
		t.Fatalf("missing type: got %v", err)
	}

	in = validInput()
	in.AppointmentType = "x"
	for len(in.AppointmentType) <= 50 {
		in.AppointmentType += "x"
	}
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "appointment_type_too_long") {
		t.Fatalf("long type: got %v", err)
	}

	in = validInput()
	in.AppointmentDate = time.Time{}
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "missing_appointment_date") {
		t.Fatalf("missing date: got %v", err)
	}

	in = validInput()
	in.AppointmentDate = time.Now().Add(-24 * time.Hour)
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "appointment_in_past") {
		t.Fatalf("past date: got %v", err)
	}

	in = validInput()
	bad := 10.999
	in.EstimatedCost = &bad
	if _, err := uc.Execute(ctx, in); !httperr.IsBusiness(err, "cost_precision") {
		t.Fatalf("cost precision: got %v", err)
	}

	in = validInput()
	in.PetID = 42
	if _, err := uc.Execute(ctx, in); !httperr.IsKind(err, httperr.KindReferential) {
		t.Fatalf("unknown pet: got %v", err)
	}
}

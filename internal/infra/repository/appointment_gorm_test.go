package repository

import (
	"context"
	"testing"
	"time"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

func TestCreateAppointmentUnknownPet(t *testing.T) {
	gdb := testDB(t)
	repo := NewAppointmentGormRepository(gdb)

	vet := newVet(t, gdb, "drluis")

	ap := models.Appointment{
		PetID:           999,
		VeterinarianID:  vet.ID,
		AppointmentDate: time.Now().Add(24 * time.Hour),
		AppointmentType: "Checkup",
		Status:          "Scheduled",
	}
	err := repo.CreateAppointment(context.Background(), &ap)
	if !httperr.IsBusiness(err, "pet_not_found") {
		t.Fatalf("expected pet_not_found, got %v", err)
	}
}

func TestCreateAppointmentUnknownVeterinarian(t *testing.T) {
	gdb := testDB(t)
	repo := NewAppointmentGormRepository(gdb)

	owner := newOwner(t, gdb, "carla")
	pet := newPet(t, gdb, owner.ID, "Rocky")

	ap := models.Appointment{
		PetID:           pet.ID,
		VeterinarianID:  999,
		AppointmentDate: time.Now().Add(24 * time.Hour),
		AppointmentType: "Checkup",
		Status:          "Scheduled",
	}
	err := repo.CreateAppointment(context.Background(), &ap)
	if !httperr.IsBusiness(err, "veterinarian_not_found") {
		t.Fatalf("expected veterinarian_not_found, got %v", err)
	}
}

func TestListAppointmentsForPet(t *testing.T) {
	gdb := testDB(t)
	repo := NewAppointmentGormRepository(gdb)
	ctx := context.Background()

	vet := newVet(t, gdb, "drluis")
	owner := newOwner(t, gdb, "carla")
	pet := newPet(t, gdb, owner.ID, "Rocky")
	other := newPet(t, gdb, owner.ID, "Luna")

	for i, petID := range []uint{pet.ID, pet.ID, other.ID} {
		ap := models.Appointment{
			PetID:           petID,
			VeterinarianID:  vet.ID,
			AppointmentDate: time.Now().Add(time.Duration(i+1) * 24 * time.Hour),
			AppointmentType: "Checkup",
			Status:          "Scheduled",
		}
		if err := repo.CreateAppointment(ctx, &ap); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	aps, err := repo.ListAppointmentsForPet(ctx, pet.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(aps) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(aps))
	}
}

func TestDeleteAppointmentMissing(t *testing.T) {
	gdb := testDB(t)
	repo := NewAppointmentGormRepository(gdb)

	err := repo.DeleteAppointment(context.Background(), 999)
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/timezone"
)

func TestCreateHistoryDefaultsDate(t *testing.T) {
	gdb := testDB(t)
	repo := NewVaccinationGormRepository(gdb, timezone.DefaultTimezone)
	ctx := context.Background()

	vet := newVet(t, gdb, "drluis")
	owner := newOwner(t, gdb, "carla")
	pet := newPet(t, gdb, owner.ID, "Rocky")

	vaccine := models.Vaccine{Name: "Rabies", Active: true}
	if err := repo.CreateVaccine(ctx, &vaccine); err != nil {
		t.Fatalf("create vaccine: %v", err)
	}

	entry := models.VaccinationHistory{
		PetID:          pet.ID,
		VaccineID:      vaccine.ID,
		VeterinarianID: vet.ID,
	}
	if err := repo.CreateHistory(ctx, &entry); err != nil {
		t.Fatalf("create history: %v", err)
	}

	want := timezone.Today(timezone.DefaultTimezone)
	if !entry.VaccinationDate.Equal(want) {
		t.Fatalf("vaccination date default: got %v, want %v", entry.VaccinationDate, want)
	}
}

func TestCreateHistoryNextDueBeforeDose(t *testing.T) {
	gdb := testDB(t)
	repo := NewVaccinationGormRepository(gdb, timezone.DefaultTimezone)
	ctx := context.Background()

	vet := newVet(t, gdb, "drluis")
	owner := newOwner(t, gdb, "carla")
	pet := newPet(t, gdb, owner.ID, "Rocky")

	vaccine := models.Vaccine{Name: "Rabies", Active: true}
	if err := repo.CreateVaccine(ctx, &vaccine); err != nil {
		t.Fatalf("create vaccine: %v", err)
	}

	dose := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	due := dose.AddDate(0, -1, 0)
	entry := models.VaccinationHistory{
		PetID:           pet.ID,
		VaccineID:       vaccine.ID,
		VeterinarianID:  vet.ID,
		VaccinationDate: dose,
		NextDueDate:     &due,
	}
	err := repo.CreateHistory(ctx, &entry)
	if !httperr.IsBusiness(err, "next_due_before_dose") {
		t.Fatalf("expected next_due_before_dose, got %v", err)
	}
}

func TestCreateHistoryUnknownVaccine(t *testing.T) {
	gdb := testDB(t)
	repo := NewVaccinationGormRepository(gdb, timezone.DefaultTimezone)

	vet := newVet(t, gdb, "drluis")
	owner := newOwner(t, gdb, "carla")
	pet := newPet(t, gdb, owner.ID, "Rocky")

	entry := models.VaccinationHistory{
		PetID:          pet.ID,
		VaccineID:      999,
		VeterinarianID: vet.ID,
	}
	err := repo.CreateHistory(context.Background(), &entry)
	if !httperr.IsBusiness(err, "vaccine_not_found") {
		t.Fatalf("expected vaccine_not_found, got %v", err)
	}
}

func TestDeleteVaccineAdministeredBlocked(t *testing.T) {
	gdb := testDB(t)
	repo := NewVaccinationGormRepository(gdb, timezone.DefaultTimezone)
	ctx := context.Background()

	vet := newVet(t, gdb, "drluis")
	owner := newOwner(t, gdb, "carla")
	pet := newPet(t, gdb, owner.ID, "Rocky")

	vaccine := models.Vaccine{Name: "Rabies", Active: true}
	if err := repo.CreateVaccine(ctx, &vaccine); err != nil {
		t.Fatalf("create vaccine: %v", err)
	}

	entry := models.VaccinationHistory{
		PetID:          pet.ID,
		VaccineID:      vaccine.ID,
		VeterinarianID: vet.ID,
	}
	if err := repo.CreateHistory(ctx, &entry); err != nil {
		t.Fatalf("create history: %v", err)
	}

	err := repo.DeleteVaccine(ctx, vaccine.ID)
	if !httperr.IsBusiness(err, "vaccine_administered") {
		t.Fatalf("expected vaccine_administered, got %v", err)
	}
}

func TestUpdateHistoryOnlyAdvisoryFields(t *testing.T) {
	gdb := testDB(t)
	repo := NewVaccinationGormRepository(gdb, timezone.DefaultTimezone)
	ctx := context.Background()

	vet := newVet(t, gdb, "drluis")
	owner := newOwner(t, gdb, "carla")
	pet := newPet(t, gdb, owner.ID, "Rocky")

	vaccine := models.Vaccine{Name: "Rabies", Active: true}
	if err := repo.CreateVaccine(ctx, &vaccine); err != nil {
		t.Fatalf("create vaccine: %v", err)
	}

	entry := models.VaccinationHistory{
		PetID:          pet.ID,
		VaccineID:      vaccine.ID,
		VeterinarianID: vet.ID,
	}
	if err := repo.CreateHistory(ctx, &entry); err != nil {
		t.Fatalf("create history: %v", err)
	}

	entry.BatchNumber = "B-42"
	entry.Reactions = "mild swelling"
	entry.PetID = 999 // must be ignored by the update
	if err := repo.UpdateHistory(ctx, &entry); err != nil {
		t.Fatalf("update history: %v", err)
	}

	var reloaded models.VaccinationHistory
	if err := gdb.First(&reloaded, entry.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.BatchNumber != "B-42" || reloaded.Reactions != "mild swelling" {
		t.Fatalf("advisory fields not updated: %+v", reloaded)
	}
	if reloaded.PetID == 999 {
		t.Fatal("pet attribution changed through update")
	}
}

package repository

import (
	"context"
	"testing"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

func TestCreateUserDuplicateUsername(t *testing.T) {
	gdb := testDB(t)
	repo := NewIdentityGormRepository(gdb)
	ctx := context.Background()

	first := models.AppUser{Username: "ana", Email: "ana@example.com", UserRoleID: models.RoleIDAdmin}
	if err := repo.CreateUser(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}

	before := countRows(t, gdb, &models.AppUser{})

	dup := models.AppUser{Username: "ana", Email: "other@example.com", UserRoleID: models.RoleIDAdmin}
	err := repo.CreateUser(ctx, &dup)
	if !httperr.IsBusiness(err, "username_taken") {
		t.Fatalf("expected username_taken, got %v", err)
	}

	if after := countRows(t, gdb, &models.AppUser{}); after != before {
		t.Fatalf("row count changed on rejected insert: %d -> %d", before, after)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	gdb := testDB(t)
	repo := NewIdentityGormRepository(gdb)
	ctx := context.Background()

	first := models.AppUser{Username: "ana", Email: "ana@example.com", UserRoleID: models.RoleIDAdmin}
	if err := repo.CreateUser(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := models.AppUser{Username: "bruno", Email: "ana@example.com", UserRoleID: models.RoleIDAdmin}
	err := repo.CreateUser(ctx, &dup)
	if !httperr.IsKind(err, httperr.KindUniqueConflict) {
		t.Fatalf("expected unique conflict, got %v", err)
	}
}

func TestCreateUserUnknownRole(t *testing.T) {
	gdb := testDB(t)
	repo := NewIdentityGormRepository(gdb)

	u := models.AppUser{Username: "ana", Email: "ana@example.com", UserRoleID: 999}
	err := repo.CreateUser(context.Background(), &u)
	if !httperr.IsBusiness(err, "role_not_found") {
		t.Fatalf("expected role_not_found, got %v", err)
	}
}

func TestDeleteRoleInUse(t *testing.T) {
	gdb := testDB(t)
	repo := NewIdentityGormRepository(gdb)
	ctx := context.Background()

	newUser(t, gdb, "ana", "ana@example.com", models.RoleIDAdmin)

	err := repo.DeleteRole(ctx, models.RoleIDAdmin)
	if !httperr.IsBusiness(err, "role_in_use") {
		t.Fatalf("expected role_in_use, got %v", err)
	}

	// Unused roles delete cleanly.
	spare := models.UserRole{Name: "Receptionist", Active: true}
	if err := repo.CreateRole(ctx, &spare); err != nil {
		t.Fatalf("create role: %v", err)
	}
	if err := repo.DeleteRole(ctx, spare.ID); err != nil {
		t.Fatalf("delete unused role: %v", err)
	}
}

func TestCreateRoleDuplicateName(t *testing.T) {
	gdb := testDB(t)
	repo := NewIdentityGormRepository(gdb)

	dup := models.UserRole{Name: "Admin"}
	err := repo.CreateRole(context.Background(), &dup)
	if !httperr.IsBusiness(err, "role_name_taken") {
		t.Fatalf("expected role_name_taken, got %v", err)
	}
}

func TestDeleteUserWithOwnerProfileBlocked(t *testing.T) {
	gdb := testDB(t)
	repo := NewIdentityGormRepository(gdb)

	owner := newOwner(t, gdb, "carla")

	err := repo.DeleteUser(context.Background(), owner.UserID)
	if !httperr.IsBusiness(err, "user_has_owner_profile") {
		t.Fatalf("expected user_has_owner_profile, got %v", err)
	}
}

func TestDeleteUserCascadesVeterinarianProfile(t *testing.T) {
	gdb := testDB(t)
	repo := NewIdentityGormRepository(gdb)
	ctx := context.Background()

	vet := newVet(t, gdb, "drluis")

	if err := repo.DeleteUser(ctx, vet.UserID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if n := countRows(t, gdb, &models.Veterinarian{}); n != 0 {
		t.Fatalf("veterinarian profile survived user delete: %d rows", n)
	}
}

func TestDeleteUserKeepsReferencedVeterinarian(t *testing.T) {
	gdb := testDB(t)
	repo := NewIdentityGormRepository(gdb)

	vet := newVet(t, gdb, "drluis")
	owner := newOwner(t, gdb, "carla")
	pet := newPet(t, gdb, owner.ID, "Rocky")
	rec := newRecord(t, gdb, pet.ID, "MR-001")

	consultation := models.MedicalConsultation{
		MedicalRecordID: rec.ID,
		VeterinarianID:  vet.ID,
	}
	if err := gdb.Create(&consultation).Error; err != nil {
		t.Fatalf("fixture consultation: %v", err)
	}

	err := repo.DeleteUser(context.Background(), vet.UserID)
	if !httperr.IsKind(err, httperr.KindReferential) {
		t.Fatalf("expected referential error, got %v", err)
	}
}

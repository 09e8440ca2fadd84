package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/vetclinic/clinic-records/internal/db"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/timezone"
)

func appointmentRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := dbpkg.Seed(gdb); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := repository.NewAppointmentGormRepository(gdb)
	h := NewAppointmentHandler(repo, nil, timezone.DefaultTimezone)

	r := gin.New()
	r.PATCH("/appointments/:id/complete", h.Complete)
	return r, gdb
}

func scheduledAppointment(t *testing.T, gdb *gorm.DB) models.Appointment {
	t.Helper()

	user := models.AppUser{
		Username:   "drsofia",
		Email:      "drsofia@example.com",
		Active:     true,
		UserRoleID: models.RoleIDVeterinarian,
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("fixture user: %v", err)
	}
	vet := models.Veterinarian{UserID: user.ID}
	if err := gdb.Create(&vet).Error; err != nil {
		t.Fatalf("fixture veterinarian: %v", err)
	}

	ownerUser := models.AppUser{
		Username:   "marta",
		Email:      "marta@example.com",
		Active:     true,
		UserRoleID: models.RoleIDPetOwner,
	}
	if err := gdb.Create(&ownerUser).Error; err != nil {
		t.Fatalf("fixture user: %v", err)
	}
	owner := models.PetOwner{
		UserID:                 ownerUser.ID,
		Country:                "Costa Rica",
		PreferredContactMethod: models.ContactMethodEmail,
	}
	if err := gdb.Create(&owner).Error; err != nil {
		t.Fatalf("fixture owner: %v", err)
	}
	pet := models.Pet{OwnerID: owner.ID, SpeciesID: 1, Name: "Rocky"}
	if err := gdb.Create(&pet).Error; err != nil {
		t.Fatalf("fixture pet: %v", err)
	}

	ap := models.Appointment{
		PetID:           pet.ID,
		VeterinarianID:  vet.ID,
		AppointmentDate: time.Now().Add(24 * time.Hour),
		DurationMin:     30,
		AppointmentType: "Checkup",
		Status:          "Scheduled",
	}
	if err := gdb.Create(&ap).Error; err != nil {
		t.Fatalf("fixture appointment: %v", err)
	}
	return ap
}

func TestCompleteWithoutBody(t *testing.T) {
	r, gdb := appointmentRouter(t)
	ap := scheduledAppointment(t, gdb)

	req := httptest.NewRequest(http.MethodPatch, "/appointments/1/complete", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var got models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != ap.ID || got.Status != "Completed" {
		t.Fatalf("appointment not completed: %+v", got)
	}
	if got.ActualCost != nil {
		t.Fatalf("actual cost should stay unset: %v", *got.ActualCost)
	}
}

func TestCompleteWithActualCost(t *testing.T) {
	r, gdb := appointmentRouter(t)
	scheduledAppointment(t, gdb)

	body := strings.NewReader(`{"actual_cost": 80.50}`)
	req := httptest.NewRequest(http.MethodPatch, "/appointments/1/complete", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var got models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ActualCost == nil || *got.ActualCost != 80.50 {
		t.Fatalf("actual cost not recorded: %+v", got.ActualCost)
	}
}

func TestCompleteRejectsMalformedBody(t *testing.T) {
	r, gdb := appointmentRouter(t)
	scheduledAppointment(t, gdb)

	req := httptest.NewRequest(http.MethodPatch, "/appointments/1/complete", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

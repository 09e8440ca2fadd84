package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vetclinic/clinic-records/internal/audit"
	"github.com/vetclinic/clinic-records/internal/cache"
	"github.com/vetclinic/clinic-records/internal/config"
	"github.com/vetclinic/clinic-records/internal/handlers"
	infraRepo "github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/media"
)

// Reference lists change rarely; an hour of staleness is acceptable.
const referenceCacheTTL = time.Hour

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	identityRepo := infraRepo.NewIdentityGormRepository(db)
	partyRepo := infraRepo.NewPartyGormRepository(db)
	taxonomyRepo := infraRepo.NewTaxonomyGormRepository(db)
	petRepo := infraRepo.NewPetGormRepository(db)
	clinicalRepo := infraRepo.NewClinicalGormRepository(db)
	vaccinationRepo := infraRepo.NewVaccinationGormRepository(db, cfg.ClinicTimezone)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	refCache := cache.NewFromURL(cfg.RedisURL, referenceCacheTTL)
	uploader := media.NewUploader(cfg)

	// ======================================================
	// HANDLERS
	// ======================================================
	roleHandler := handlers.NewRoleHandler(identityRepo, refCache)
	userHandler := handlers.NewUserHandler(identityRepo, auditDispatcher)

	ownerHandler := handlers.NewOwnerHandler(partyRepo)
	vetHandler := handlers.NewVeterinarianHandler(partyRepo)
	staffHandler := handlers.NewAdminStaffHandler(partyRepo)
	specialtyHandler := handlers.NewSpecialtyHandler(partyRepo, refCache)

	speciesHandler := handlers.NewSpeciesHandler(taxonomyRepo, refCache)
	breedHandler := handlers.NewBreedHandler(taxonomyRepo, refCache)

	petHandler := handlers.NewPetHandler(petRepo, uploader, auditDispatcher)

	recordHandler := handlers.NewMedicalRecordHandler(clinicalRepo, auditDispatcher)
	consultationHandler := handlers.NewConsultationHandler(clinicalRepo)
	vitalSignHandler := handlers.NewVitalSignHandler(clinicalRepo)
	prescriptionHandler := handlers.NewPrescriptionHandler(clinicalRepo)
	medicationHandler := handlers.NewMedicationHandler(clinicalRepo)

	vaccineHandler := handlers.NewVaccineHandler(vaccinationRepo, refCache)
	vaccinationHandler := handlers.NewVaccinationHistoryHandler(vaccinationRepo, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, auditDispatcher, cfg.ClinicTimezone)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// IDENTITY
		// ------------------------------
		api.POST("/roles", roleHandler.Create)
		api.GET("/roles", roleHandler.List)
		api.GET("/roles/:id", roleHandler.Get)
		api.PUT("/roles/:id", roleHandler.Update)
		api.DELETE("/roles/:id", roleHandler.Delete)

		api.POST("/users", userHandler.Create)
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)
		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)

		// ------------------------------
		// PARTIES
		// ------------------------------
		api.POST("/owners", ownerHandler.Create)
		api.GET("/owners", ownerHandler.List)
		api.GET("/owners/:id", ownerHandler.Get)
		api.PUT("/owners/:id", ownerHandler.Update)
		api.DELETE("/owners/:id", ownerHandler.Delete)

		api.POST("/veterinarians", vetHandler.Create)
		api.GET("/veterinarians", vetHandler.List)
		api.GET("/veterinarians/:id", vetHandler.Get)
		api.PUT("/veterinarians/:id", vetHandler.Update)
		api.DELETE("/veterinarians/:id", vetHandler.Delete)

		api.POST("/admin-staff", staffHandler.Create)
		api.GET("/admin-staff", staffHandler.List)
		api.GET("/admin-staff/:id", staffHandler.Get)
		api.PUT("/admin-staff/:id", staffHandler.Update)
		api.DELETE("/admin-staff/:id", staffHandler.Delete)

		api.POST("/specialties", specialtyHandler.Create)
		api.GET("/specialties", specialtyHandler.List)
		api.GET("/specialties/:id", specialtyHandler.Get)
		api.PUT("/specialties/:id", specialtyHandler.Update)
		api.DELETE("/specialties/:id", specialtyHandler.Delete)

		// ------------------------------
		// TAXONOMY
		// ------------------------------
		api.POST("/species", speciesHandler.Create)
		api.GET("/species", speciesHandler.List)
		api.GET("/species/:id", speciesHandler.Get)
		api.PUT("/species/:id", speciesHandler.Update)
		api.DELETE("/species/:id", speciesHandler.Delete)

		api.POST("/breeds", breedHandler.Create)
		api.GET("/breeds", breedHandler.List)
		api.GET("/breeds/:id", breedHandler.Get)
		api.PUT("/breeds/:id", breedHandler.Update)
		api.DELETE("/breeds/:id", breedHandler.Delete)

		// ------------------------------
		// PETS
		// ------------------------------
		api.POST("/pets", petHandler.Create)
		api.GET("/pets", petHandler.List)
		api.GET("/pets/:id", petHandler.Get)
		api.PUT("/pets/:id", petHandler.Update)
		api.POST("/pets/:id/photo", petHandler.UploadPhoto)
		api.DELETE("/pets/:id", petHandler.Delete)

		// ------------------------------
		// CLINICAL
		// ------------------------------
		api.POST("/medical-records", recordHandler.Create)
		api.GET("/medical-records", recordHandler.List)
		api.GET("/medical-records/:id", recordHandler.Get)
		api.PUT("/medical-records/:id", recordHandler.Update)
		api.DELETE("/medical-records/:id", recordHandler.Delete)
		api.GET("/medical-records/:id/consultations", consultationHandler.ListForRecord)

		api.POST("/consultations", consultationHandler.Create)
		api.GET("/consultations", consultationHandler.List)
		api.GET("/consultations/:id", consultationHandler.Get)
		api.PUT("/consultations/:id", consultationHandler.Update)
		api.DELETE("/consultations/:id", consultationHandler.Delete)

		api.POST("/vital-signs", vitalSignHandler.Create)
		api.GET("/consultations/:id/vital-signs", vitalSignHandler.List)
		api.DELETE("/vital-signs/:id", vitalSignHandler.Delete)

		api.POST("/prescriptions", prescriptionHandler.Create)
		api.GET("/consultations/:id/prescriptions", prescriptionHandler.List)
		api.DELETE("/prescriptions/:id", prescriptionHandler.Delete)

		api.POST("/medications", medicationHandler.Create)
		api.GET("/medications", medicationHandler.List)
		api.GET("/medications/:id", medicationHandler.Get)
		api.PUT("/medications/:id", medicationHandler.Update)
		api.DELETE("/medications/:id", medicationHandler.Delete)

		// ------------------------------
		// VACCINATION
		// ------------------------------
		api.POST("/vaccines", vaccineHandler.Create)
		api.GET("/vaccines", vaccineHandler.List)
		api.GET("/vaccines/:id", vaccineHandler.Get)
		api.PUT("/vaccines/:id", vaccineHandler.Update)
		api.DELETE("/vaccines/:id", vaccineHandler.Delete)

		api.POST("/vaccinations", vaccinationHandler.Create)
		api.GET("/vaccinations", vaccinationHandler.List)
		api.GET("/vaccinations/:id", vaccinationHandler.Get)
		api.PUT("/vaccinations/:id", vaccinationHandler.Update)
		api.DELETE("/vaccinations/:id", vaccinationHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/audit"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type MedicalRecordHandler struct {
	repo  *repository.ClinicalGormRepository
	audit *audit.Dispatcher
}

func NewMedicalRecordHandler(repo *repository.ClinicalGormRepository, dispatcher *audit.Dispatcher) *MedicalRecordHandler {
	return &MedicalRecordHandler{repo: repo, audit: dispatcher}
}

type CreateMedicalRecordRequest struct {
	PetID        uint   `json:"pet_id" binding:"required"`
	RecordNumber string `json:"record_number" binding:"required"`
	GeneralNotes string `json:"general_notes"`
	Status       string `json:"status"`
}

type UpdateMedicalRecordRequest struct {
	RecordNumber string `json:"record_number" binding:"required"`
	GeneralNotes string `json:"general_notes"`
	Status       string `json:"status"`
}

func (h *MedicalRecordHandler) Create(c *gin.Context) {
	var req CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid medical record payload.")
		return
	}

	record := models.MedicalRecord{
		PetID:        req.PetID,
		RecordNumber: req.RecordNumber,
		GeneralNotes: req.GeneralNotes,
		Status:       req.Status,
	}

	if err := h.repo.CreateRecord(c.Request.Context(), &record); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "medical_record_created",
		Entity:   "medical_record",
		EntityID: &record.ID,
	})

	httpresp.Created(c, record)
}

func (h *MedicalRecordHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.repo.GetRecord(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, record)
}

// List returns all records, or one pet's records with ?pet_id=N.
func (h *MedicalRecordHandler) List(c *gin.Context) {
	petID, ok := parseIDQuery(c, "pet_id")
	if !ok {
		return
	}

	records, err := h.repo.ListRecords(c.Request.Context(), petID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, records)
}

func (h *MedicalRecordHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid medical record payload.")
		return
	}

	record, err := h.repo.GetRecord(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	// A record never moves between pets.
	record.RecordNumber = req.RecordNumber
	record.GeneralNotes = req.GeneralNotes
	if req.Status != "" {
		record.Status = req.Status
	}
	record.Pet = models.Pet{}

	if err := h.repo.UpdateRecord(c.Request.Context(), record); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, record)
}

func (h *MedicalRecordHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteRecord(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "medical_record_deleted",
		Entity:   "medical_record",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": id})
}

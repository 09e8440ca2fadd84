package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type ConsultationHandler struct {
	repo *repository.ClinicalGormRepository
}

func NewConsultationHandler(repo *repository.ClinicalGormRepository) *ConsultationHandler {
	return &ConsultationHandler{repo: repo}
}

type CreateConsultationRequest struct {
	MedicalRecordID uint `json:"medical_record_id" binding:"required"`
	VeterinarianID  uint `json:"veterinarian_id" binding:"required"`

	ConsultationDate *time.Time `json:"consultation_date"`

	Reason    string `json:"reason"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
}

type UpdateConsultationRequest struct {
	VeterinarianID uint `json:"veterinarian_id" binding:"required"`

	Reason    string `json:"reason"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`
}

func (h *ConsultationHandler) Create(c *gin.Context) {
	var req CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid consultation payload.")
		return
	}

	consultation := models.MedicalConsultation{
		MedicalRecordID: req.MedicalRecordID,
		VeterinarianID:  req.VeterinarianID,
		Reason:          req.Reason,
		Diagnosis:       req.Diagnosis,
		Treatment:       req.Treatment,
		Notes:           req.Notes,
	}
	if req.ConsultationDate != nil {
		consultation.ConsultationDate = *req.ConsultationDate
	}

	if err := h.repo.CreateConsultation(c.Request.Context(), &consultation); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Created(c, consultation)
}

func (h *ConsultationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	consultation, err := h.repo.GetConsultation(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, consultation)
}

// List returns all consultations, or one record's with ?record_id=N.
func (h *ConsultationHandler) List(c *gin.Context) {
	recordID, ok := parseIDQuery(c, "record_id")
	if !ok {
		return
	}

	consultations, err := h.repo.ListConsultations(c.Request.Context(), recordID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, consultations)
}

// ListForRecord returns the consultations of the record in the path.
func (h *ConsultationHandler) ListForRecord(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	consultations, err := h.repo.ListConsultations(c.Request.Context(), recordID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, consultations)
}

func (h *ConsultationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid consultation payload.")
		return
	}

	consultation, err := h.repo.GetConsultation(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	// Consultations never move between records; attribution may be corrected.
	consultation.VeterinarianID = req.VeterinarianID
	consultation.Veterinarian = models.Veterinarian{}
	consultation.Reason = req.Reason
	consultation.Diagnosis = req.Diagnosis
	consultation.Treatment = req.Treatment
	consultation.Notes = req.Notes

	if err := h.repo.UpdateConsultation(c.Request.Context(), consultation); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, consultation)
}

func (h *ConsultationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteConsultation(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}

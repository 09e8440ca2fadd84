package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type PrescriptionHandler struct {
	repo *repository.ClinicalGormRepository
}

func NewPrescriptionHandler(repo *repository.ClinicalGormRepository) *PrescriptionHandler {
	return &PrescriptionHandler{repo: repo}
}

type PrescriptionRequest struct {
	ConsultationID uint `json:"consultation_id" binding:"required"`
	MedicationID   uint `json:"medication_id" binding:"required"`

	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req PrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid prescription payload.")
		return
	}

	p := models.Prescription{
		ConsultationID: req.ConsultationID,
		MedicationID:   req.MedicationID,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Duration:       req.Duration,
		Instructions:   req.Instructions,
	}

	if err := h.repo.CreatePrescription(c.Request.Context(), &p); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PrescriptionHandler) List(c *gin.Context) {
	consultationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	prescriptions, err := h.repo.ListPrescriptions(c.Request.Context(), consultationID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, prescriptions)
}

func (h *PrescriptionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeletePrescription(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}

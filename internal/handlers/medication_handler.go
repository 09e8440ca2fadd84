package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type MedicationHandler struct {
	repo *repository.ClinicalGormRepository
}

func NewMedicationHandler(repo *repository.ClinicalGormRepository) *MedicationHandler {
	return &MedicationHandler{repo: repo}
}

type MedicationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *MedicationHandler) Create(c *gin.Context) {
	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid medication payload.")
		return
	}

	m := models.Medication{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.repo.CreateMedication(c.Request.Context(), &m); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Created(c, m)
}

func (h *MedicationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	m, err := h.repo.GetMedication(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, m)
}

func (h *MedicationHandler) List(c *gin.Context) {
	meds, err := h.repo.ListMedications(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, meds)
}

func (h *MedicationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid medication payload.")
		return
	}

	m, err := h.repo.GetMedication(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	m.Name = req.Name
	m.Description = req.Description

	if err := h.repo.UpdateMedication(c.Request.Context(), m); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, m)
}

func (h *MedicationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteMedication(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}

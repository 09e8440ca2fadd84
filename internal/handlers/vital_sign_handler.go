package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type VitalSignHandler struct {
	repo *repository.ClinicalGormRepository
}

func NewVitalSignHandler(repo *repository.ClinicalGormRepository) *VitalSignHandler {
	return &VitalSignHandler{repo: repo}
}

type VitalSignRequest struct {
	ConsultationID uint `json:"consultation_id" binding:"required"`

	TemperatureC    float64 `json:"temperature_c"`
	HeartRate       int     `json:"heart_rate"`
	RespiratoryRate int     `json:"respiratory_rate"`
	WeightKg        float64 `json:"weight_kg"`

	RecordedAt *time.Time `json:"recorded_at"`
}

func (h *VitalSignHandler) Create(c *gin.Context) {
	var req VitalSignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid vital sign payload.")
		return
	}

	vs := models.VitalSign{
		ConsultationID:  req.ConsultationID,
		TemperatureC:    req.TemperatureC,
		HeartRate:       req.HeartRate,
		RespiratoryRate: req.RespiratoryRate,
		WeightKg:        req.WeightKg,
	}
	if req.RecordedAt != nil {
		vs.RecordedAt = *req.RecordedAt
	}

	if err := h.repo.CreateVitalSign(c.Request.Context(), &vs); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Created(c, vs)
}

func (h *VitalSignHandler) List(c *gin.Context) {
	consultationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	signs, err := h.repo.ListVitalSigns(c.Request.Context(), consultationID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, signs)
}

func (h *VitalSignHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteVitalSign(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type VeterinarianHandler struct {
	repo *repository.PartyGormRepository
}

func NewVeterinarianHandler(repo *repository.PartyGormRepository) *VeterinarianHandler {
	return &VeterinarianHandler{repo: repo}
}

type VeterinarianRequest struct {
	UserID uint `json:"user_id" binding:"required"`

	SpecialtyID       *uint  `json:"specialty_id"`
	YearsOfExperience int    `json:"years_of_experience"`
	Education         string `json:"education"`
}

func (h *VeterinarianHandler) Create(c *gin.Context) {
	var req VeterinarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid veterinarian payload.")
		return
	}

	vet := models.Veterinarian{
		UserID:            req.UserID,
		SpecialtyID:       req.SpecialtyID,
		YearsOfExperience: req.YearsOfExperience,
		Education:         req.Education,
	}

	if err := h.repo.CreateVeterinarian(c.Request.Context(), &vet); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Created(c, vet)
}

func (h *VeterinarianHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vet, err := h.repo.GetVeterinarian(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, vet)
}

func (h *VeterinarianHandler) List(c *gin.Context) {
	vets, err := h.repo.ListVeterinarians(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, vets)
}

func (h *VeterinarianHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req VeterinarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid veterinarian payload.")
		return
	}

	vet, err := h.repo.GetVeterinarian(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	vet.SpecialtyID = req.SpecialtyID
	vet.Specialty = nil
	vet.YearsOfExperience = req.YearsOfExperience
	vet.Education = req.Education

	if err := h.repo.UpdateVeterinarian(c.Request.Context(), vet); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, vet)
}

func (h *VeterinarianHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteVeterinarian(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/cache"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type VaccineHandler struct {
	repo  *repository.VaccinationGormRepository
	cache *cache.Reference
}

func NewVaccineHandler(repo *repository.VaccinationGormRepository, ref *cache.Reference) *VaccineHandler {
	return &VaccineHandler{repo: repo, cache: ref}
}

type VaccineRequest struct {
	Name         string `json:"name" binding:"required"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description"`
	Active       *bool  `json:"active"`
}

func (h *VaccineHandler) Create(c *gin.Context) {
	var req VaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid vaccine payload.")
		return
	}

	v := models.Vaccine{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Description:  req.Description,
		Active:       true,
	}
	if req.Active != nil {
		v.Active = *req.Active
	}

	if err := h.repo.CreateVaccine(c.Request.Context(), &v); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyVaccines)
	httpresp.Created(c, v)
}

func (h *VaccineHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	v, err := h.repo.GetVaccine(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *VaccineHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var vaccines []models.Vaccine
	if h.cache.GetJSON(ctx, cache.KeyVaccines, &vaccines) {
		httpresp.List(c, vaccines)
		return
	}

	vaccines, err := h.repo.ListVaccines(ctx)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.SetJSON(ctx, cache.KeyVaccines, vaccines)
	httpresp.List(c, vaccines)
}

func (h *VaccineHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req VaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid vaccine payload.")
		return
	}

	v, err := h.repo.GetVaccine(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	v.Name = req.Name
	v.Manufacturer = req.Manufacturer
	v.Description = req.Description
	if req.Active != nil {
		v.Active = *req.Active
	}

	if err := h.repo.UpdateVaccine(c.Request.Context(), v); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyVaccines)
	httpresp.OK(c, v)
}

func (h *VaccineHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteVaccine(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyVaccines)
	httpresp.OK(c, gin.H{"deleted": id})
}

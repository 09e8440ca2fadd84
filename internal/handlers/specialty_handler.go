package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/cache"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type SpecialtyHandler struct {
	repo  *repository.PartyGormRepository
	cache *cache.Reference
}

func NewSpecialtyHandler(repo *repository.PartyGormRepository, ref *cache.Reference) *SpecialtyHandler {
	return &SpecialtyHandler{repo: repo, cache: ref}
}

type SpecialtyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req SpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid specialty payload.")
		return
	}

	sp := models.Specialty{
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if req.Active != nil {
		sp.Active = *req.Active
	}

	if err := h.repo.CreateSpecialty(c.Request.Context(), &sp); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeySpecialties)
	httpresp.Created(c, sp)
}

func (h *SpecialtyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sp, err := h.repo.GetSpecialty(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, sp)
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var sps []models.Specialty
	if h.cache.GetJSON(ctx, cache.KeySpecialties, &sps) {
		httpresp.List(c, sps)
		return
	}

	sps, err := h.repo.ListSpecialties(ctx)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.SetJSON(ctx, cache.KeySpecialties, sps)
	httpresp.List(c, sps)
}

func (h *SpecialtyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid specialty payload.")
		return
	}

	sp, err := h.repo.GetSpecialty(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	sp.Name = req.Name
	sp.Description = req.Description
	if req.Active != nil {
		sp.Active = *req.Active
	}

	if err := h.repo.UpdateSpecialty(c.Request.Context(), sp); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeySpecialties)
	httpresp.OK(c, sp)
}

func (h *SpecialtyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteSpecialty(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeySpecialties)
	httpresp.OK(c, gin.H{"deleted": id})
}

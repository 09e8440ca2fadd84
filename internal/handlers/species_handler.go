package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/cache"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type SpeciesHandler struct {
	repo  *repository.TaxonomyGormRepository
	cache *cache.Reference
}

func NewSpeciesHandler(repo *repository.TaxonomyGormRepository, ref *cache.Reference) *SpeciesHandler {
	return &SpeciesHandler{repo: repo, cache: ref}
}

type SpeciesRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (h *SpeciesHandler) Create(c *gin.Context) {
	var req SpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid species payload.")
		return
	}

	sp := models.AnimalSpecies{
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if req.Active != nil {
		sp.Active = *req.Active
	}

	if err := h.repo.CreateSpecies(c.Request.Context(), &sp); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeySpecies)
	httpresp.Created(c, sp)
}

func (h *SpeciesHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sp, err := h.repo.GetSpecies(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, sp)
}

func (h *SpeciesHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var sps []models.AnimalSpecies
	if h.cache.GetJSON(ctx, cache.KeySpecies, &sps) {
		httpresp.List(c, sps)
		return
	}

	sps, err := h.repo.ListSpecies(ctx)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.SetJSON(ctx, cache.KeySpecies, sps)
	httpresp.List(c, sps)
}

func (h *SpeciesHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid species payload.")
		return
	}

	sp, err := h.repo.GetSpecies(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	sp.Name = req.Name
	sp.Description = req.Description
	if req.Active != nil {
		sp.Active = *req.Active
	}

	if err := h.repo.UpdateSpecies(c.Request.Context(), sp); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeySpecies)
	httpresp.OK(c, sp)
}

func (h *SpeciesHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteSpecies(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeySpecies)
	httpresp.OK(c, gin.H{"deleted": id})
}

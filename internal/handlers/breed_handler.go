package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/cache"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type BreedHandler struct {
	repo  *repository.TaxonomyGormRepository
	cache *cache.Reference
}

func NewBreedHandler(repo *repository.TaxonomyGormRepository, ref *cache.Reference) *BreedHandler {
	return &BreedHandler{repo: repo, cache: ref}
}

type BreedRequest struct {
	SpeciesID   uint   `json:"species_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (h *BreedHandler) Create(c *gin.Context) {
	var req BreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid breed payload.")
		return
	}

	breed := models.Breed{
		SpeciesID:   req.SpeciesID,
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if req.Active != nil {
		breed.Active = *req.Active
	}

	if err := h.repo.CreateBreed(c.Request.Context(), &breed); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyBreeds)
	httpresp.Created(c, breed)
}

func (h *BreedHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	breed, err := h.repo.GetBreed(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, breed)
}

// List returns all breeds, or one species' breeds with ?species_id=N. The
// cache only covers the unfiltered listing.
func (h *BreedHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	speciesID, ok := parseIDQuery(c, "species_id")
	if !ok {
		return
	}

	if speciesID == 0 {
		var breeds []models.Breed
		if h.cache.GetJSON(ctx, cache.KeyBreeds, &breeds) {
			httpresp.List(c, breeds)
			return
		}
	}

	breeds, err := h.repo.ListBreeds(ctx, speciesID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	if speciesID == 0 {
		h.cache.SetJSON(ctx, cache.KeyBreeds, breeds)
	}
	httpresp.List(c, breeds)
}

func (h *BreedHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid breed payload.")
		return
	}

	breed, err := h.repo.GetBreed(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	breed.SpeciesID = req.SpeciesID
	breed.Species = models.AnimalSpecies{}
	breed.Name = req.Name
	breed.Description = req.Description
	if req.Active != nil {
		breed.Active = *req.Active
	}

	if err := h.repo.UpdateBreed(c.Request.Context(), breed); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyBreeds)
	httpresp.OK(c, breed)
}

func (h *BreedHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteBreed(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyBreeds)
	httpresp.OK(c, gin.H{"deleted": id})
}

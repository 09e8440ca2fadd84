package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vetclinic/clinic-records/internal/audit"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/media"
	"github.com/vetclinic/clinic-records/internal/models"
)

// Uploads above this size are rejected before decoding.
const maxPhotoUploadBytes = 10 << 20

type PetHandler struct {
	repo     *repository.PetGormRepository
	uploader *media.Uploader
	audit    *audit.Dispatcher
}

func NewPetHandler(
	repo *repository.PetGormRepository,
	uploader *media.Uploader,
	dispatcher *audit.Dispatcher,
) *PetHandler {
	return &PetHandler{
		repo:     repo,
		uploader: uploader,
		audit:    dispatcher,
	}
}

type PetRequest struct {
	OwnerID   uint  `json:"owner_id" binding:"required"`
	SpeciesID uint  `json:"species_id" binding:"required"`
	BreedID   *uint `json:"breed_id"`

	Name        string  `json:"name" binding:"required"`
	DateOfBirth string  `json:"date_of_birth"`
	Gender      string  `json:"gender"`
	Color       string  `json:"color"`
	WeightKg    float64 `json:"weight_kg"`
}

func (h *PetHandler) Create(c *gin.Context) {
	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet payload.")
		return
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date of birth must be YYYY-MM-DD.")
		return
	}

	pet := models.Pet{
		OwnerID:     req.OwnerID,
		SpeciesID:   req.SpeciesID,
		BreedID:     req.BreedID,
		Name:        req.Name,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Color:       req.Color,
		WeightKg:    req.WeightKg,
	}

	if err := h.repo.CreatePet(c.Request.Context(), &pet); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "pet_created",
		Entity:   "pet",
		EntityID: &pet.ID,
	})

	httpresp.Created(c, pet)
}

func (h *PetHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pet, err := h.repo.GetPet(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, pet)
}

// List returns all pets, or one owner's pets with ?owner_id=N.
func (h *PetHandler) List(c *gin.Context) {
	ownerID, ok := parseIDQuery(c, "owner_id")
	if !ok {
		return
	}

	pets, err := h.repo.ListPets(c.Request.Context(), ownerID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, pets)
}

func (h *PetHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet payload.")
		return
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date of birth must be YYYY-MM-DD.")
		return
	}

	pet, err := h.repo.GetPet(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	pet.OwnerID = req.OwnerID
	pet.SpeciesID = req.SpeciesID
	pet.BreedID = req.BreedID
	pet.Name = req.Name
	pet.DateOfBirth = dob
	pet.Gender = req.Gender
	pet.Color = req.Color
	pet.WeightKg = req.WeightKg

	pet.Owner = models.PetOwner{}
	pet.Species = models.AnimalSpecies{}
	pet.Breed = nil

	if err := h.repo.UpdatePet(c.Request.Context(), pet); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, pet)
}

// UploadPhoto accepts a multipart "photo" file, normalizes it to WebP and
// stores it in the configured bucket.
func (h *PetHandler) UploadPhoto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.uploader.Enabled() {
		httperr.Write(c, 503, "photo_storage_disabled", "Photo storage is not configured.")
		return
	}

	pet, err := h.repo.GetPet(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field photo is required.")
		return
	}
	if fileHeader.Size > maxPhotoUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "Photo exceeds the upload limit.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "photo_read_error", "Could not read the upload.")
		return
	}
	defer file.Close()

	normalized, err := media.NormalizePhoto(file)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	key := fmt.Sprintf("pets/%d/%s.webp", pet.ID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, normalized, "image/webp")
	if err != nil {
		httperr.Internal(c, "photo_upload_error", "Could not store the photo.")
		return
	}

	if err := h.repo.SetPhotoURL(c.Request.Context(), pet.ID, url); err != nil {
		httperr.WriteError(c, err)
		return
	}

	pet.PhotoURL = url
	httpresp.OK(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeletePet(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "pet_deleted",
		Entity:   "pet",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": id})
}

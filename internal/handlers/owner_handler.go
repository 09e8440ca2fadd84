package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type OwnerHandler struct {
	repo *repository.PartyGormRepository
}

func NewOwnerHandler(repo *repository.PartyGormRepository) *OwnerHandler {
	return &OwnerHandler{repo: repo}
}

type OwnerRequest struct {
	UserID uint `json:"user_id" binding:"required"`

	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`

	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`

	PreferredContactMethod string `json:"preferred_contact_method"`
}

func (h *OwnerHandler) Create(c *gin.Context) {
	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid owner payload.")
		return
	}

	owner := models.PetOwner{
		UserID:                 req.UserID,
		Address:                req.Address,
		City:                   req.City,
		Province:               req.Province,
		PostalCode:             req.PostalCode,
		Country:                req.Country,
		EmergencyContactName:   req.EmergencyContactName,
		EmergencyContactPhone:  req.EmergencyContactPhone,
		PreferredContactMethod: req.PreferredContactMethod,
	}

	if err := h.repo.CreateOwner(c.Request.Context(), &owner); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Created(c, owner)
}

func (h *OwnerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	owner, err := h.repo.GetOwner(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, owner)
}

func (h *OwnerHandler) List(c *gin.Context) {
	owners, err := h.repo.ListOwners(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, owners)
}

func (h *OwnerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid owner payload.")
		return
	}

	owner, err := h.repo.GetOwner(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	// The owning user of a profile never changes.
	owner.Address = req.Address
	owner.City = req.City
	owner.Province = req.Province
	owner.PostalCode = req.PostalCode
	owner.Country = req.Country
	owner.EmergencyContactName = req.EmergencyContactName
	owner.EmergencyContactPhone = req.EmergencyContactPhone
	owner.PreferredContactMethod = req.PreferredContactMethod

	if err := h.repo.UpdateOwner(c.Request.Context(), owner); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, owner)
}

func (h *OwnerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteOwner(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}

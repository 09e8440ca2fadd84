package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type AdminStaffHandler struct {
	repo *repository.PartyGormRepository
}

func NewAdminStaffHandler(repo *repository.PartyGormRepository) *AdminStaffHandler {
	return &AdminStaffHandler{repo: repo}
}

type AdminStaffRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Position string `json:"position"`
	Notes    string `json:"notes"`
}

func (h *AdminStaffHandler) Create(c *gin.Context) {
	var req AdminStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid staff payload.")
		return
	}

	staff := models.AdminStaff{
		UserID:   req.UserID,
		Position: req.Position,
		Notes:    req.Notes,
	}

	if err := h.repo.CreateAdminStaff(c.Request.Context(), &staff); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Created(c, staff)
}

func (h *AdminStaffHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	staff, err := h.repo.GetAdminStaff(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, staff)
}

func (h *AdminStaffHandler) List(c *gin.Context) {
	staff, err := h.repo.ListAdminStaff(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, staff)
}

func (h *AdminStaffHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdminStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid staff payload.")
		return
	}

	staff, err := h.repo.GetAdminStaff(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	staff.Position = req.Position
	staff.Notes = req.Notes

	if err := h.repo.UpdateAdminStaff(c.Request.Context(), staff); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, staff)
}

func (h *AdminStaffHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteAdminStaff(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": id})
}

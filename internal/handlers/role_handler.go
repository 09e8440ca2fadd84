package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/cache"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type RoleHandler struct {
	repo  *repository.IdentityGormRepository
	cache *cache.Reference
}

func NewRoleHandler(repo *repository.IdentityGormRepository, ref *cache.Reference) *RoleHandler {
	return &RoleHandler{repo: repo, cache: ref}
}

type RoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid role payload.")
		return
	}

	role := models.UserRole{
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if req.Active != nil {
		role.Active = *req.Active
	}

	if err := h.repo.CreateRole(c.Request.Context(), &role); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyRoles)
	httpresp.Created(c, role)
}

func (h *RoleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	role, err := h.repo.GetRole(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, role)
}

func (h *RoleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var roles []models.UserRole
	if h.cache.GetJSON(ctx, cache.KeyRoles, &roles) {
		httpresp.List(c, roles)
		return
	}

	roles, err := h.repo.ListRoles(ctx)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.SetJSON(ctx, cache.KeyRoles, roles)
	httpresp.List(c, roles)
}

func (h *RoleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid role payload.")
		return
	}

	role, err := h.repo.GetRole(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	role.Name = req.Name
	role.Description = req.Description
	if req.Active != nil {
		role.Active = *req.Active
	}

	if err := h.repo.UpdateRole(c.Request.Context(), role); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyRoles)
	httpresp.OK(c, role)
}

func (h *RoleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteRole(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyRoles)
	httpresp.OK(c, gin.H{"deleted": id})
}

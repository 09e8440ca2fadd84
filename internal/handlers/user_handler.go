package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetclinic/clinic-records/internal/audit"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/validators"
)

type UserHandler struct {
	repo  *repository.IdentityGormRepository
	audit *audit.Dispatcher
}

func NewUserHandler(repo *repository.IdentityGormRepository, dispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{repo: repo, audit: dispatcher}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	UserRoleID uint `json:"user_role_id" binding:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Active    *bool  `json:"active"`

	UserRoleID uint `json:"user_role_id" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_error", "Could not process credentials.")
		return
	}

	user := models.AppUser{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Active:       true,
		UserRoleID:   req.UserRoleID,
	}

	if err := h.repo.CreateUser(c.Request.Context(), &user); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.repo.GetUser(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.ListUsers(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	user, err := h.repo.GetUser(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	user.Username = req.Username
	user.Email = validators.NormalizeEmail(req.Email)
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	user.UserRoleID = req.UserRoleID
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := h.repo.UpdateUser(c.Request.Context(), user); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteUser(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": id})
}

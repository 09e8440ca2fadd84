package handlers

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/audit"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
	"github.com/vetclinic/clinic-records/internal/usecase/appointment"
)

type AppointmentHandler struct {
	repo  *repository.AppointmentGormRepository
	audit *audit.Dispatcher

	create   *appointment.CreateAppointment
	update   *appointment.UpdateAppointment
	complete *appointment.CompleteAppointment
	cancel   *appointment.CancelAppointment
	noShow   *appointment.MarkNoShow
}

func NewAppointmentHandler(
	repo *repository.AppointmentGormRepository,
	dispatcher *audit.Dispatcher,
	clinicTZ string,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:  repo,
		audit: dispatcher,

		create:   appointment.NewCreateAppointment(repo, dispatcher, clinicTZ),
		update:   appointment.NewUpdateAppointment(repo, dispatcher, clinicTZ),
		complete: appointment.NewCompleteAppointment(repo, dispatcher, clinicTZ),
		cancel:   appointment.NewCancelAppointment(repo, dispatcher, clinicTZ),
		noShow:   appointment.NewMarkNoShow(repo, dispatcher, clinicTZ),
	}
}

type CreateAppointmentRequest struct {
	PetID          uint `json:"pet_id" binding:"required"`
	VeterinarianID uint `json:"veterinarian_id" binding:"required"`

	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	DurationMin     int       `json:"duration_min"`

	AppointmentType string `json:"appointment_type" binding:"required"`
	Notes           string `json:"notes"`
	ReasonForVisit  string `json:"reason_for_visit"`

	EstimatedCost *float64 `json:"estimated_cost"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate *time.Time `json:"appointment_date"`
	DurationMin     *int       `json:"duration_min"`
	AppointmentType *string    `json:"appointment_type"`
	Notes           *string    `json:"notes"`
	ReasonForVisit  *string    `json:"reason_for_visit"`
	EstimatedCost   *float64   `json:"estimated_cost"`
}

type CompleteAppointmentRequest struct {
	ActualCost *float64 `json:"actual_cost"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		PetID:           req.PetID,
		VeterinarianID:  req.VeterinarianID,
		AppointmentDate: req.AppointmentDate,
		DurationMin:     req.DurationMin,
		AppointmentType: req.AppointmentType,
		Notes:           req.Notes,
		ReasonForVisit:  req.ReasonForVisit,
		EstimatedCost:   req.EstimatedCost,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// List filters by ?pet_id=N or ?veterinarian_id=N; one is required.
func (h *AppointmentHandler) List(c *gin.Context) {
	petID, ok := parseIDQuery(c, "pet_id")
	if !ok {
		return
	}
	vetID, ok := parseIDQuery(c, "veterinarian_id")
	if !ok {
		return
	}

	var (
		aps []models.Appointment
		err error
	)
	switch {
	case petID > 0:
		aps, err = h.repo.ListAppointmentsForPet(c.Request.Context(), petID)
	case vetID > 0:
		aps, err = h.repo.ListAppointmentsForVeterinarian(c.Request.Context(), vetID)
	default:
		httperr.BadRequest(c, "missing_filter", "Filter by pet_id or veterinarian_id.")
		return
	}
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, appointment.UpdateAppointmentInput{
		AppointmentDate: req.AppointmentDate,
		DurationMin:     req.DurationMin,
		AppointmentType: req.AppointmentType,
		Notes:           req.Notes,
		ReasonForVisit:  req.ReasonForVisit,
		EstimatedCost:   req.EstimatedCost,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// The body is optional; a bodyless PATCH completes without an actual cost.
	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, "invalid_request", "Invalid completion payload.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, req.ActualCost)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteAppointment(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": id})
}

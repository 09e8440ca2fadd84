package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vetclinic/clinic-records/internal/audit"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/httpresp"
	"github.com/vetclinic/clinic-records/internal/infra/repository"
	"github.com/vetclinic/clinic-records/internal/models"
)

type VaccinationHistoryHandler struct {
	repo  *repository.VaccinationGormRepository
	audit *audit.Dispatcher
}

func NewVaccinationHistoryHandler(
	repo *repository.VaccinationGormRepository,
	dispatcher *audit.Dispatcher,
) *VaccinationHistoryHandler {
	return &VaccinationHistoryHandler{repo: repo, audit: dispatcher}
}

type CreateVaccinationRequest struct {
	PetID          uint `json:"pet_id" binding:"required"`
	VaccineID      uint `json:"vaccine_id" binding:"required"`
	VeterinarianID uint `json:"veterinarian_id" binding:"required"`

	VaccinationDate string `json:"vaccination_date"`
	BatchNumber     string `json:"batch_number"`
	ExpirationDate  string `json:"expiration_date"`
	NextDueDate     string `json:"next_due_date"`
	Reactions       string `json:"reactions"`
}

type UpdateVaccinationRequest struct {
	BatchNumber    string `json:"batch_number"`
	ExpirationDate string `json:"expiration_date"`
	NextDueDate    string `json:"next_due_date"`
	Reactions      string `json:"reactions"`
}

func (h *VaccinationHistoryHandler) Create(c *gin.Context) {
	var req CreateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid vaccination payload.")
		return
	}

	vaccinationDate, err := parseDate(req.VaccinationDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Vaccination date must be YYYY-MM-DD.")
		return
	}
	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expiration date must be YYYY-MM-DD.")
		return
	}
	nextDueDate, err := parseDate(req.NextDueDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Next due date must be YYYY-MM-DD.")
		return
	}

	entry := models.VaccinationHistory{
		PetID:          req.PetID,
		VaccineID:      req.VaccineID,
		VeterinarianID: req.VeterinarianID,
		BatchNumber:    req.BatchNumber,
		ExpirationDate: expirationDate,
		NextDueDate:    nextDueDate,
		Reactions:      req.Reactions,
	}
	if vaccinationDate != nil {
		entry.VaccinationDate = *vaccinationDate
	}

	if err := h.repo.CreateHistory(c.Request.Context(), &entry); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "vaccination_recorded",
		Entity:   "vaccination_history",
		EntityID: &entry.ID,
	})

	httpresp.Created(c, entry)
}

func (h *VaccinationHistoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.repo.GetHistory(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, entry)
}

// List returns the full ledger, or one pet's with ?pet_id=N.
func (h *VaccinationHistoryHandler) List(c *gin.Context) {
	petID, ok := parseIDQuery(c, "pet_id")
	if !ok {
		return
	}

	history, err := h.repo.ListHistory(c.Request.Context(), petID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, history)
}

// Update only touches the advisory fields of a recorded dose.
func (h *VaccinationHistoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid vaccination payload.")
		return
	}

	expirationDate, err := parseDate(req.ExpirationDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expiration date must be YYYY-MM-DD.")
		return
	}
	nextDueDate, err := parseDate(req.NextDueDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Next due date must be YYYY-MM-DD.")
		return
	}

	entry, err := h.repo.GetHistory(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	entry.BatchNumber = req.BatchNumber
	entry.ExpirationDate = expirationDate
	entry.NextDueDate = nextDueDate
	entry.Reactions = req.Reactions

	if err := h.repo.UpdateHistory(c.Request.Context(), entry); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, entry)
}

func (h *VaccinationHistoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteHistory(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "vaccination_deleted",
		Entity:   "vaccination_history",
		EntityID: &id,
	})

	httpresp.OK(c, gin.H{"deleted": id})
}

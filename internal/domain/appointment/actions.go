package appointment

import (
	"math"
	"time"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time, actualCost *float64) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	if actualCost != nil {
		if err := ValidateCost(*actualCost); err != nil {
			return err
		}
		ap.ActualCost = actualCost
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	ap.NoShowAt = &now
	return nil
}

// ValidateCost checks a monetary field: non-negative, two-decimal precision.
func ValidateCost(v float64) error {
	if v < 0 {
		return httperr.Validation("negative_cost", "Cost cannot be negative.")
	}
	cents := v * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		return httperr.Validation("cost_precision", "Cost must have at most two decimal places.")
	}
	return nil
}

// ValidateActualCost enforces the business rule that actual cost is only
// recorded on completed appointments.
func ValidateActualCost(status Status, actualCost *float64) error {
	if actualCost == nil {
		return nil
	}
	if status != StatusCompleted {
		return httperr.Validation("actual_cost_not_completed", "Actual cost can only be set on a completed appointment.")
	}
	return ValidateCost(*actualCost)
}

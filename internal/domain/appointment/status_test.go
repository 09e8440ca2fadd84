package appointment

import (
	"testing"
	"time"

	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name     string
		from, to Status
		wantCode string
	}{
		{"scheduled to completed", StatusScheduled, StatusCompleted, ""},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, ""},
		{"scheduled to no-show", StatusScheduled, StatusNoShow, ""},
		{"completed is frozen", StatusCompleted, StatusCancelled, "invalid_state"},
		{"cancelled is frozen", StatusCancelled, StatusCompleted, "invalid_state"},
		{"no-show is frozen", StatusNoShow, StatusCompleted, "invalid_state"},
		{"no return to scheduled", StatusCompleted, StatusScheduled, "invalid_state"},
		{"unknown target", StatusScheduled, Status("Archived"), "unknown_status"},
		{"scheduled to scheduled is a no-op", StatusScheduled, StatusScheduled, ""},
		{"repeat complete is frozen", StatusCompleted, StatusCompleted, "invalid_state"},
		{"repeat cancel is frozen", StatusCancelled, StatusCancelled, "invalid_state"},
		{"repeat no-show is frozen", StatusNoShow, StatusNoShow, "invalid_state"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("want %s, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestIsKnown(t *testing.T) {
	for _, s := range []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow} {
		if !IsKnown(s) {
			t.Fatalf("%s should be known", s)
		}
	}
	if IsKnown(Status("Pending")) {
		t.Fatal("Pending should not be known")
	}
}

func TestValidateCost(t *testing.T) {
	cases := []struct {
		v        float64
		wantCode string
	}{
		{0, ""},
		{45.5, ""},
		{45.55, ""},
		{-1, "negative_cost"},
		{45.555, "cost_precision"},
	}
	for _, tc := range cases {
		err := ValidateCost(tc.v)
		if tc.wantCode == "" && err != nil {
			t.Fatalf("ValidateCost(%v): unexpected error %v", tc.v, err)
		}
		if tc.wantCode != "" && !httperr.IsBusiness(err, tc.wantCode) {
			t.Fatalf("ValidateCost(%v): want %s, got %v", tc.v, tc.wantCode, err)
		}
	}
}

func TestValidateActualCost(t *testing.T) {
	cost := 80.0
	if err := ValidateActualCost(StatusCompleted, &cost); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateActualCost(StatusScheduled, nil); err != nil {
		t.Fatalf("nil cost should always pass: %v", err)
	}
	err := ValidateActualCost(StatusScheduled, &cost)
	if !httperr.IsBusiness(err, "actual_cost_not_completed") {
		t.Fatalf("want actual_cost_not_completed, got %v", err)
	}
}

func TestCompleteStampsAppointment(t *testing.T) {
	now := time.Now()
	cost := 120.50
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Complete(ap, now, &cost); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Fatalf("status: %s", ap.Status)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatal("completed timestamp not stamped")
	}
	if ap.ActualCost == nil || *ap.ActualCost != cost {
		t.Fatal("actual cost not recorded")
	}
}

func TestCompleteTwiceKeepsFirstOutcome(t *testing.T) {
	first := time.Now()
	cost := 100.0
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Complete(ap, first, &cost); err != nil {
		t.Fatalf("complete: %v", err)
	}

	override := 1.0
	err := Complete(ap, first.Add(time.Hour), &override)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("want invalid_state, got %v", err)
	}
	if ap.ActualCost == nil || *ap.ActualCost != cost {
		t.Fatalf("actual cost overwritten: %v", ap.ActualCost)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(first) {
		t.Fatalf("completion timestamp overwritten: %v", ap.CompletedAt)
	}
}

func TestCancelTerminalRejected(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}
	err := Cancel(ap, time.Now())
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("want invalid_state, got %v", err)
	}
	if ap.CancelledAt != nil {
		t.Fatal("cancelled timestamp set on rejected transition")
	}
}

func TestMarkNoShow(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusScheduled)}
	if err := MarkNoShow(ap, now); err != nil {
		t.Fatalf("no-show: %v", err)
	}
	if ap.Status != string(StatusNoShow) {
		t.Fatalf("status: %s", ap.Status)
	}
	if ap.NoShowAt == nil || !ap.NoShowAt.Equal(now) {
		t.Fatal("no-show timestamp not stamped")
	}
}

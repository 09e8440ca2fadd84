package appointment

import (
	"context"
	"testing"

	domain "github.com/vetclinic/clinic-records/internal/domain/appointment"
	"github.com/vetclinic/clinic-records/internal/httperr"
	"github.com/vetclinic/clinic-records/internal/timezone"
)

func createScheduled(t *testing.T, repo *stubRepo) uint {
	t.Helper()

	uc := NewCreateAppointment(repo, nil, timezone.DefaultTimezone)
	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return ap.ID
}

func TestCompleteRecordsActualCost(t *testing.T) {
	repo := newStubRepo()
	id := createScheduled(t, repo)

	cost := 95.25
	uc := NewCompleteAppointment(repo, nil, timezone.DefaultTimezone)
	ap, err := uc.Execute(context.Background(), id, &cost)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if ap.Status != string(domain.StatusCompleted) {
		t.Fatalf("status: %s", ap.Status)
	}
	if ap.ActualCost == nil || *ap.ActualCost != cost {
		t.Fatal("actual cost not recorded")
	}
	if ap.CompletedAt == nil {
		t.Fatal("completion timestamp missing")
	}

	// Completed is terminal: repeating the transition must not re-stamp
	// the appointment or overwrite the recorded cost.
	override := 1.0
	if _, err := uc.Execute(context.Background(), id, &override); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
	stored, err := repo.GetAppointment(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.ActualCost == nil || *stored.ActualCost != cost {
		t.Fatalf("actual cost overwritten: %v", stored.ActualCost)
	}
}

func TestCancelThenCompleteRejected(t *testing.T) {
	repo := newStubRepo()
	id := createScheduled(t, repo)
	ctx := context.Background()

	cancel := NewCancelAppointment(repo, nil, timezone.DefaultTimezone)
	if _, err := cancel.Execute(ctx, id); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	complete := NewCompleteAppointment(repo, nil, timezone.DefaultTimezone)
	_, err := complete.Execute(ctx, id, nil)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	// The stored row still reflects the cancellation.
	stored, err := repo.GetAppointment(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != string(domain.StatusCancelled) {
		t.Fatalf("stored status: %s", stored.Status)
	}
	if stored.CancelledAt == nil {
		t.Fatal("cancellation timestamp missing")
	}
}

func TestNoShowLifecycle(t *testing.T) {
	repo := newStubRepo()
	id := createScheduled(t, repo)
	ctx := context.Background()

	noShow := NewMarkNoShow(repo, nil, timezone.DefaultTimezone)
	ap, err := noShow.Execute(ctx, id)
	if err != nil {
		t.Fatalf("no-show: %v", err)
	}
	if ap.Status != string(domain.StatusNoShow) {
		t.Fatalf("status: %s", ap.Status)
	}
	if ap.NoShowAt == nil {
		t.Fatal("no-show timestamp missing")
	}

	// Terminal: a second transition is rejected.
	if _, err := noShow.Execute(ctx, id); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestUpdateAppointmentOnlyWhileScheduled(t *testing.T) {
	repo := newStubRepo()
	id := createScheduled(t, repo)
	ctx := context.Background()

	update := NewUpdateAppointment(repo, nil, timezone.DefaultTimezone)

	notes := "bring previous x-rays"
	ap, err := update.Execute(ctx, id, UpdateAppointmentInput{Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ap.Notes != notes {
		t.Fatalf("notes not applied: %q", ap.Notes)
	}

	cancel := NewCancelAppointment(repo, nil, timezone.DefaultTimezone)
	if _, err := cancel.Execute(ctx, id); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err = update.Execute(ctx, id, UpdateAppointmentInput{Notes: &notes})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestUpdateAppointmentRejectsBadDuration(t *testing.T) {
	repo := newStubRepo()
	id := createScheduled(t, repo)

	update := NewUpdateAppointment(repo, nil, timezone.DefaultTimezone)
	bad := -10
	_, err := update.Execute(context.Background(), id, UpdateAppointmentInput{DurationMin: &bad})
	if !httperr.IsBusiness(err, "invalid_duration") {
		t.Fatalf("expected invalid_duration, got %v", err)
	}
}

package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindClassification(t *testing.T) {
	cases := []struct {
		err  error
		kind Kind
	}{
		{Validation("bad_input", "Bad input."), KindValidation},
		{UniqueConflict("taken", "Taken."), KindUniqueConflict},
		{Referential("missing_ref", "Missing."), KindReferential},
		{NotFoundError("not_found", "Not found."), KindNotFound},
	}

	for _, tc := range cases {
		if !IsKind(tc.err, tc.kind) {
			t.Fatalf("%v not classified as kind %d", tc.err, tc.kind)
		}
	}
}

func TestIsBusinessMatchesCode(t *testing.T) {
	err := UniqueConflict("email_taken", "Email is already registered.")

	if !IsBusiness(err, "email_taken") {
		t.Fatal("code should match")
	}
	if IsBusiness(err, "username_taken") {
		t.Fatal("wrong code should not match")
	}
	if IsBusiness(errors.New("plain"), "email_taken") {
		t.Fatal("plain errors are not business errors")
	}
}

func TestWrappedErrorsStillClassify(t *testing.T) {
	inner := Referential("pet_not_found", "Referenced pet does not exist.")
	wrapped := fmt.Errorf("creating appointment: %w", inner)

	if !IsKind(wrapped, KindReferential) {
		t.Fatal("wrapped error lost its kind")
	}
	if !IsBusiness(wrapped, "pet_not_found") {
		t.Fatal("wrapped error lost its code")
	}
}

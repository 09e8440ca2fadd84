package timezone

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	if !IsValid(DefaultTimezone) {
		t.Fatalf("%s should be valid", DefaultTimezone)
	}
	if IsValid("") || IsValid("Mars/Olympus_Mons") {
		t.Fatal("bogus zones should be invalid")
	}
}

func TestLocationFallsBack(t *testing.T) {
	loc := Location("Mars/Olympus_Mons")
	want, _ := time.LoadLocation(DefaultTimezone)
	if loc.String() != want.String() {
		t.Fatalf("fallback location: %s", loc)
	}
}

func TestTodayIsMidnight(t *testing.T) {
	today := Today(DefaultTimezone)
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
		t.Fatalf("not midnight: %v", today)
	}
	if today.Location().String() != DefaultTimezone {
		t.Fatalf("wrong zone: %s", today.Location())
	}
}

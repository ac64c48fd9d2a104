package validation

import (
	"strings"
	"testing"

	"canary-service/config"
)

func TestValidExternalID_DefaultPattern(t *testing.T) {
	r := MustRules(config.DefaultExternalIDPattern)
	cases := map[string]bool{
		"12345678901234567":    true,
		"123456789012345678":   true,
		"1234567890123456789":  true,
		"1234567890123456":     false,
		"12345678901234567890": false,
		"42":                   false,
		"12345678901234567a":   false,
		"":                     false,
	}
	for id, want := range cases {
		if got := r.ValidExternalID(id); got != want {
			t.Fatalf("ValidExternalID(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestValidExternalID_CustomPattern(t *testing.T) {
	r, err := NewRules(`^U[0-9A-Z]{8,}$`)
	if err != nil {
		t.Fatalf("new rules: %v", err)
	}
	if !r.ValidExternalID("U024BE7LH") {
		t.Fatalf("expected custom id to pass")
	}
	if r.ValidExternalID("123456789012345678") {
		t.Fatalf("expected numeric id to fail custom pattern")
	}
}

func TestNewRules_BadPattern(t *testing.T) {
	if _, err := NewRules(`(`); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "in-progress", "completed"} {
		if !ValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "done", "Pending", "in_progress"} {
		if ValidStatus(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestValidDescription(t *testing.T) {
	if ValidDescription("   ") {
		t.Fatalf("blank description accepted")
	}
	if !ValidDescription(strings.Repeat("a", 256)) {
		t.Fatalf("256 chars rejected")
	}
	if ValidDescription(strings.Repeat("a", 257)) {
		t.Fatalf("257 chars accepted")
	}
}

func TestValidBedtime(t *testing.T) {
	for _, b := range []string{"00:00", "09:05", "23:59"} {
		if !ValidBedtime(b) {
			t.Fatalf("expected %q valid", b)
		}
	}
	for _, b := range []string{"24:00", "9:05", "12:60", "noon", "12:30:00"} {
		if ValidBedtime(b) {
			t.Fatalf("expected %q invalid", b)
		}
	}
}

package models

import (
	"strings"
	"testing"
)

func TestCreateGuestNormalizesPhone(t *testing.T) {
	setupHookTestDB(t)
	ctx := tenantCtx()

	guest, err := CreateGuest(ctx, &NewGuest{Name: "Ana Smith", Phone: "(202) 555-0147"})
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}
	if guest.Phone != "+12025550147" {
		t.Fatalf("phone not normalized: %q", guest.Phone)
	}
	if guest.BusinessId != testBusinessId {
		t.Fatalf("tenant not stamped: %q", guest.BusinessId)
	}
}

func TestCreateGuestRejectsInvalidPhone(t *testing.T) {
	setupHookTestDB(t)
	ctx := tenantCtx()

	if _, err := CreateGuest(ctx, &NewGuest{Name: "Ana Smith", Phone: "12345"}); err == nil {
		t.Fatal("expected invalid phone to be rejected")
	}
}

func TestCreateGuestDuplicateEmail(t *testing.T) {
	setupHookTestDB(t)
	ctx := tenantCtx()

	if _, err := CreateGuest(ctx, &NewGuest{Name: "Ana Smith", Email: "ana@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := CreateGuest(ctx, &NewGuest{Name: "Another Smith", Email: "ana@example.com"})
	if err == nil || !strings.Contains(err.Error(), "email") {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestCreateGuestDuplicatePhoneAcrossFormats(t *testing.T) {
	setupHookTestDB(t)
	ctx := tenantCtx()

	if _, err := CreateGuest(ctx, &NewGuest{Name: "Ana Smith", Phone: "+12025550147"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// a differently formatted rendering of the same number collides
	_, err := CreateGuest(ctx, &NewGuest{Name: "Another Smith", Phone: "202-555-0147"})
	if err == nil || !strings.Contains(err.Error(), "phone") {
		t.Fatalf("expected duplicate phone error, got %v", err)
	}
}

package services

import (
	"errors"
	"testing"
)

func TestEnsureFirstSuperuserCreatesAdminOnce(t *testing.T) {
	repo := newStubUserRepo()
	service := NewSetupService(repo, NewUserService(repo))

	created, err := service.EnsureFirstSuperuser("Root@Example.com", "root-password")
	if err != nil {
		t.Fatalf("EnsureFirstSuperuser() unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected superuser to be created")
	}

	admin, err := repo.FindByNormalizedEmail("root@example.com")
	if err != nil {
		t.Fatalf("expected superuser to be stored: %v", err)
	}
	if !admin.IsAdmin || !admin.IsActive {
		t.Fatalf("expected active admin, got active=%v admin=%v", admin.IsActive, admin.IsAdmin)
	}

	created, err = service.EnsureFirstSuperuser("root@example.com", "other-password")
	if err != nil {
		t.Fatalf("second EnsureFirstSuperuser() unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected existing superuser to be kept")
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected one stored user, got %d", len(repo.users))
	}
}

func TestEnsureFirstSuperuserRejectsInvalidEmail(t *testing.T) {
	repo := newStubUserRepo()
	service := NewSetupService(repo, NewUserService(repo))

	for _, email := range []string{"root", "Root <root@example.com>"} {
		if _, err := service.EnsureFirstSuperuser(email, "root-password"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("EnsureFirstSuperuser(%q) expected ErrInvalidEmail, got %v", email, err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no stored users, got %d", len(repo.users))
	}
}

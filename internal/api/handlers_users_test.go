package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habitual/internal/models"
)

func TestSignupCreatesActiveNonAdminUser(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/users/signup", "", map[string]string{
		"email":    "New@Example.com",
		"password": "new-user-password",
	})
	response.expect(t, fiber.StatusCreated, "")

	view := userView{}
	response.decode(t, &view)
	if view.Email != "new@example.com" || !view.IsActive || view.IsAdmin {
		t.Fatalf("unexpected signup view: %#v", view)
	}
	if strings.Contains(string(response.body), "hashed_password") {
		t.Fatalf("expected public view without password hash, got %s", response.body)
	}

	loginToken(t, app, "new@example.com", "new-user-password")
}

func TestSignupRejectsDuplicateAndInvalidInput(t *testing.T) {
	app, handler, _ := newTestApp(t)
	createTestUser(t, handler, "taken@example.com", "taken-password", false)

	doJSON(t, app, http.MethodPost, "/users/signup", "", map[string]string{
		"email":    "TAKEN@example.com",
		"password": "another-password",
	}).expect(t, fiber.StatusBadRequest, "The user with this email already exists in the system")

	doJSON(t, app, http.MethodPost, "/users/signup", "", map[string]string{
		"email":    "short@example.com",
		"password": "short",
	}).expect(t, fiber.StatusBadRequest, "password must be at least 8 characters")

	doJSON(t, app, http.MethodPost, "/users/signup", "", map[string]string{
		"email":    "not-an-email",
		"password": "long-enough-password",
	}).expect(t, fiber.StatusBadRequest, "email must be a valid email address")
}

func TestSignupRejectsPasswordOverBcryptLimit(t *testing.T) {
	app, _, _ := newTestApp(t)

	doJSON(t, app, http.MethodPost, "/users/signup", "", map[string]string{
		"email":    "wide@example.com",
		"password": strings.Repeat("密", 25),
	}).expect(t, fiber.StatusBadRequest, "password must be between 8 and 40 characters and at most 72 bytes")

	doJSON(t, app, http.MethodPost, "/users/signup", "", map[string]string{
		"email":    "wide@example.com",
		"password": strings.Repeat("密", 24),
	}).expect(t, fiber.StatusCreated, "")
}

func TestUpdateMeChangesEmail(t *testing.T) {
	app, handler, _ := newTestApp(t)
	createTestUser(t, handler, "me@example.com", "me-password", false)
	createTestUser(t, handler, "other@example.com", "other-password", false)
	token := loginToken(t, app, "me@example.com", "me-password")

	doJSON(t, app, http.MethodPatch, "/users/me", token, map[string]string{"email": "other@example.com"}).
		expect(t, fiber.StatusBadRequest, "The user with this email already exists in the system")

	response := doJSON(t, app, http.MethodPatch, "/users/me", token, map[string]string{"email": "renamed@example.com"})
	response.expect(t, fiber.StatusOK, "")
	view := userView{}
	response.decode(t, &view)
	if view.Email != "renamed@example.com" {
		t.Fatalf("expected renamed email, got %q", view.Email)
	}

	me := doJSON(t, app, http.MethodGet, "/users/me", token, nil)
	me.expect(t, fiber.StatusOK, "")
	me.decode(t, &view)
	if view.Email != "renamed@example.com" {
		t.Fatalf("expected persisted email change, got %q", view.Email)
	}
}

func TestUpdatePasswordMe(t *testing.T) {
	app, handler, _ := newTestApp(t)
	createTestUser(t, handler, "me@example.com", "me-password", false)
	token := loginToken(t, app, "me@example.com", "me-password")

	doJSON(t, app, http.MethodPatch, "/users/me/password", token, map[string]string{
		"current_password": "wrong-password",
		"new_password":     "fresh-password",
	}).expect(t, fiber.StatusBadRequest, "Incorrect password")

	doJSON(t, app, http.MethodPatch, "/users/me/password", token, map[string]string{
		"current_password": "me-password",
		"new_password":     "me-password",
	}).expect(t, fiber.StatusBadRequest, "New password cannot be the same as the current one")

	doJSON(t, app, http.MethodPatch, "/users/me/password", token, map[string]string{
		"current_password": "me-password",
		"new_password":     "fresh-password",
	}).expect(t, fiber.StatusOK, "")

	loginForm(t, app, "me@example.com", "me-password").expect(t, fiber.StatusBadRequest, "Incorrect email or password")
	loginToken(t, app, "me@example.com", "fresh-password")
}

func TestDeleteMe(t *testing.T) {
	app, handler, database := newTestApp(t)
	createTestUser(t, handler, "admin@example.com", "admin-password", true)
	member := createTestUser(t, handler, "member@example.com", "member-password", false)
	adminToken := loginToken(t, app, "admin@example.com", "admin-password")
	memberToken := loginToken(t, app, "member@example.com", "member-password")

	doJSON(t, app, http.MethodDelete, "/users/me", adminToken, nil).
		expect(t, fiber.StatusForbidden, "Super users are not allowed to delete themselves")

	habit := createHabitViaAPI(t, app, memberToken, map[string]any{"name": "Floss"})
	createRecordViaAPI(t, app, memberToken, habit.ID.String(), map[string]any{})

	doJSON(t, app, http.MethodDelete, "/users/me", memberToken, nil).expect(t, fiber.StatusOK, "")

	var remaining int64
	if err := database.Model(&models.Habit{}).Where("owner_id = ?", member.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count habits: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected habits to be removed with their owner, got %d", remaining)
	}
	if err := database.Model(&models.Record{}).Where("owner_id = ?", member.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected records to be removed with their owner, got %d", remaining)
	}

	doJSON(t, app, http.MethodGet, "/users/me", memberToken, nil).expect(t, fiber.StatusNotFound, "User not found")
}

func TestAdminRoutesRequirePrivileges(t *testing.T) {
	app, handler, _ := newTestApp(t)
	member := createTestUser(t, handler, "member@example.com", "member-password", false)
	token := loginToken(t, app, "member@example.com", "member-password")

	doJSON(t, app, http.MethodGet, "/users/", token, nil).
		expect(t, fiber.StatusForbidden, "The user doesn't have enough privileges")
	doJSON(t, app, http.MethodGet, "/users/"+member.ID.String(), token, nil).
		expect(t, fiber.StatusForbidden, "The user doesn't have enough privileges")
}

func TestAdminManagesUsers(t *testing.T) {
	app, handler, _ := newTestApp(t)
	admin := createTestUser(t, handler, "admin@example.com", "admin-password", true)
	token := loginToken(t, app, "admin@example.com", "admin-password")

	created := doJSON(t, app, http.MethodPost, "/users/", token, map[string]any{
		"email":     "staff@example.com",
		"password":  "staff-password",
		"is_active": false,
	})
	created.expect(t, fiber.StatusCreated, "")
	staff := userView{}
	created.decode(t, &staff)
	if staff.IsActive {
		t.Fatalf("expected explicitly inactive user, got %#v", staff)
	}

	list := doJSON(t, app, http.MethodGet, "/users/?limit=1", token, nil)
	list.expect(t, fiber.StatusOK, "")
	page := pageView[userView]{}
	list.decode(t, &page)
	if page.Count != 2 || len(page.Data) != 1 {
		t.Fatalf("expected count 2 with one row, got count=%d rows=%d", page.Count, len(page.Data))
	}

	patched := doJSON(t, app, http.MethodPatch, "/users/"+staff.ID.String(), token, map[string]any{"is_active": true})
	patched.expect(t, fiber.StatusOK, "")
	patched.decode(t, &staff)
	if !staff.IsActive || staff.Email != "staff@example.com" {
		t.Fatalf("expected activated user with unchanged email, got %#v", staff)
	}
	loginToken(t, app, "staff@example.com", "staff-password")

	doJSON(t, app, http.MethodGet, "/users/not-a-uuid", token, nil).expect(t, fiber.StatusBadRequest, "invalid user id")
	doJSON(t, app, http.MethodDelete, "/users/"+admin.ID.String(), token, nil).
		expect(t, fiber.StatusForbidden, "Super users are not allowed to delete themselves")
	doJSON(t, app, http.MethodDelete, "/users/"+staff.ID.String(), token, nil).expect(t, fiber.StatusOK, "")
	doJSON(t, app, http.MethodGet, "/users/"+staff.ID.String(), token, nil).expect(t, fiber.StatusNotFound, "User not found")
}
